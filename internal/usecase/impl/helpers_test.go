package impl

import (
	"io"
	"log/slog"

	"plateful/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestActor(userID int64) *service.IdentityClaims {
	return &service.IdentityClaims{
		UserID:   userID,
		Username: "alice",
		Email:    "alice@example.com",
	}
}
