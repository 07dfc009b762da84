package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnershipGuard_Authorize(t *testing.T) {
	guard := NewOwnershipGuard()

	tests := []struct {
		name            string
		resourceOwnerID int64
		requesterID     int64
		want            bool
	}{
		{name: "owner matches requester", resourceOwnerID: 7, requesterID: 7, want: true},
		{name: "different user", resourceOwnerID: 7, requesterID: 8, want: false},
		{name: "zero requester never owns", resourceOwnerID: 7, requesterID: 0, want: false},
		{name: "zero owner only matches zero", resourceOwnerID: 0, requesterID: 0, want: true},
		{name: "negative ids compare by value", resourceOwnerID: -1, requesterID: -1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.Authorize(tt.resourceOwnerID, tt.requesterID))
		})
	}
}
