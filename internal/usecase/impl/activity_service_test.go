package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	mockrepository "plateful/internal/mocks/repository"
	"plateful/internal/usecase"
)

func newActivityService(t *testing.T) (usecase.ActivityUsecase, *mockrepository.MockActivityRepository) {
	t.Helper()

	activityRepo := mockrepository.NewMockActivityRepository(t)
	srv := NewActivityService(ActivityServiceParams{
		ActivityRepo: activityRepo,
		Logger:       newDiscardLogger(),
	})

	return srv, activityRepo
}

func TestActivityService_RecordActivity(t *testing.T) {
	srv, activityRepo := newActivityService(t)

	occurred := time.Now().UTC().Truncate(time.Second)
	event := &service.ActivityEvent{
		EventID:    "evt-1",
		Kind:       entity.ActivityRecipeCreated,
		ActorID:    7,
		ActorName:  "alice",
		RecipeID:   3,
		Subject:    "Pho",
		OccurredAt: occurred,
	}

	activityRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, activity *entity.Activity) error {
			require.Equal(t, "evt-1", activity.EventID)
			require.Equal(t, entity.ActivityRecipeCreated, activity.Kind)
			require.Equal(t, int64(7), activity.ActorID)
			require.Equal(t, "Pho", activity.Subject)
			require.Equal(t, occurred, activity.OccurredAt)
			return nil
		},
	)

	require.NoError(t, srv.RecordActivity(context.Background(), event))
}

func TestActivityService_RecordActivity_DuplicateIsDropped(t *testing.T) {
	srv, activityRepo := newActivityService(t)

	activityRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateActivity)

	err := srv.RecordActivity(context.Background(), &service.ActivityEvent{
		EventID: "evt-1",
		Kind:    entity.ActivityCommentCreated,
		ActorID: 7,
	})
	require.NoError(t, err)
}

func TestActivityService_ListUserActivity(t *testing.T) {
	srv, activityRepo := newActivityService(t)

	activityRepo.EXPECT().FindByActorID(mock.Anything, int64(7), activityFeedLimit).Return([]*entity.Activity{
		{ID: 2, EventID: "evt-2", Kind: entity.ActivityCommentCreated, ActorID: 7},
		{ID: 1, EventID: "evt-1", Kind: entity.ActivityRecipeCreated, ActorID: 7},
	}, nil)

	views, err := srv.ListUserActivity(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, entity.ActivityCommentCreated, views[0].Kind)
}
