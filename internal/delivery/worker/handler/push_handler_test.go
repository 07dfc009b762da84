package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/config"
	"plateful/internal/domain/constants"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	mockrepository "plateful/internal/mocks/repository"
	"plateful/internal/usecase/impl"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockrepository.MockActivityRepository) {
	t.Helper()

	cfg := &config.Config{}
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderLocal}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	activityRepo := mockrepository.NewMockActivityRepository(t)
	activitySvc := impl.NewActivityService(impl.ActivityServiceParams{
		ActivityRepo: activityRepo,
		Logger:       logger,
	})

	h := NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      logger,
		ActivitySvc: activitySvc,
	})

	return h, activityRepo
}

func pushRequest(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func envelope(t *testing.T, event *service.ActivityEvent) []byte {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}
	msg.Subscription = "projects/local/subscriptions/activity-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func testEvent() *service.ActivityEvent {
	return &service.ActivityEvent{
		EventID:    "evt-1",
		Kind:       entity.ActivityRecipeCreated,
		ActorID:    7,
		ActorName:  "alice",
		RecipeID:   3,
		Subject:    "Pho",
		OccurredAt: time.Now().UTC(),
	}
}

func TestPushHandler_RecordsActivity(t *testing.T) {
	h, activityRepo := newPushHandler(t)

	activityRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, activity *entity.Activity) error {
			require.Equal(t, "evt-1", activity.EventID)
			require.Equal(t, int64(7), activity.ActorID)
			return nil
		},
	)

	c, rec := pushRequest(t, envelope(t, testEvent()))
	require.NoError(t, h.HandlePush(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	h, _ := newPushHandler(t)

	c, rec := pushRequest(t, []byte("{not json"))
	require.NoError(t, h.HandlePush(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_BadBase64(t *testing.T) {
	h, _ := newPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "%%%not-base64%%%"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	c, rec := pushRequest(t, body)
	require.NoError(t, h.HandlePush(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_MissingEventFields(t *testing.T) {
	h, _ := newPushHandler(t)

	event := testEvent()
	event.EventID = ""

	c, rec := pushRequest(t, envelope(t, event))
	require.NoError(t, h.HandlePush(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_DuplicateEventIsAcked(t *testing.T) {
	h, activityRepo := newPushHandler(t)

	activityRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateActivity)

	c, rec := pushRequest(t, envelope(t, testEvent()))
	require.NoError(t, h.HandlePush(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StorageFailureIsRetryable(t *testing.T) {
	h, activityRepo := newPushHandler(t)

	activityRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	c, rec := pushRequest(t, envelope(t, testEvent()))
	require.NoError(t, h.HandlePush(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
