package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	mockrepository "plateful/internal/mocks/repository"
	mockservice "plateful/internal/mocks/service"
	"plateful/internal/usecase"
)

type commentServiceMocks struct {
	commentRepo *mockrepository.MockCommentRepository
	recipeRepo  *mockrepository.MockRecipeRepository
	publisher   *mockservice.MockEventPublisher
}

func newCommentService(t *testing.T) (usecase.CommentUsecase, *commentServiceMocks) {
	t.Helper()

	mocks := &commentServiceMocks{
		commentRepo: mockrepository.NewMockCommentRepository(t),
		recipeRepo:  mockrepository.NewMockRecipeRepository(t),
		publisher:   mockservice.NewMockEventPublisher(t),
	}

	srv := NewCommentService(CommentServiceParams{
		CommentRepo: mocks.commentRepo,
		RecipeRepo:  mocks.recipeRepo,
		Guard:       service.NewOwnershipGuard(),
		Publisher:   mocks.publisher,
		Logger:      newDiscardLogger(),
	})

	return srv, mocks
}

func ratingOf(v float64) *float64 {
	return &v
}

func TestCommentService_CreateComment(t *testing.T) {
	srv, mocks := newCommentService(t)
	actor := newTestActor(7)

	recipe := &entity.Recipe{ID: 3, Title: "Pho", UserID: 2}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(recipe, nil)
	mocks.commentRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, comment *entity.Comment) error {
			require.Equal(t, int64(7), comment.UserID)
			require.Equal(t, int64(3), comment.RecipeID)
			require.Equal(t, "Delicious", comment.Content)
			comment.ID = 11
			return nil
		},
	)
	mocks.publisher.EXPECT().PublishActivityEvent(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, event *service.ActivityEvent) error {
			require.Equal(t, entity.ActivityCommentCreated, event.Kind)
			require.Equal(t, int64(3), event.RecipeID)
			require.Equal(t, "Pho", event.Subject)
			return nil
		},
	)

	view, err := srv.CreateComment(context.Background(), actor, &usecase.CreateCommentInput{
		Content:  "Delicious",
		RecipeID: 3,
		Rating:   ratingOf(4.5),
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), view.ID)
	require.Equal(t, "alice", view.UserName)
	require.NotNil(t, view.Rating)
	require.InDelta(t, 4.5, *view.Rating, 0.001)
}

func TestCommentService_CreateComment_MissingRecipe(t *testing.T) {
	srv, mocks := newCommentService(t)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRecipeNotFound)

	_, err := srv.CreateComment(context.Background(), newTestActor(7), &usecase.CreateCommentInput{
		Content:  "Delicious",
		RecipeID: 99,
	})
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestCommentService_ListRecipeComments(t *testing.T) {
	srv, mocks := newCommentService(t)

	recipe := &entity.Recipe{ID: 3, Title: "Pho", UserID: 2}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(recipe, nil)
	mocks.commentRepo.EXPECT().FindByRecipeID(mock.Anything, int64(3)).Return([]*entity.Comment{
		{ID: 11, Content: "Delicious", UserID: 7, RecipeID: 3, UserName: "alice"},
		{ID: 10, Content: "Too salty", UserID: 8, RecipeID: 3, UserName: "bob"},
	}, nil)

	views, err := srv.ListRecipeComments(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "alice", views[0].UserName)
}

func TestCommentService_ListRecipeComments_MissingRecipe(t *testing.T) {
	srv, mocks := newCommentService(t)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRecipeNotFound)

	_, err := srv.ListRecipeComments(context.Background(), 99)
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestCommentService_UpdateComment_ByOwner(t *testing.T) {
	srv, mocks := newCommentService(t)

	stored := &entity.Comment{ID: 11, Content: "Delicious", UserID: 7, RecipeID: 3}
	mocks.commentRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(stored, nil).Once()
	mocks.commentRepo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, comment *entity.Comment) error {
			require.Equal(t, "Even better reheated", comment.Content)
			return nil
		},
	)
	updated := &entity.Comment{ID: 11, Content: "Even better reheated", UserID: 7, RecipeID: 3}
	mocks.commentRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(updated, nil).Once()

	view, err := srv.UpdateComment(context.Background(), newTestActor(7), 11, &usecase.UpdateCommentInput{
		Content: "Even better reheated",
	})
	require.NoError(t, err)
	require.Equal(t, "Even better reheated", view.Content)
}

func TestCommentService_UpdateComment_ByNonOwner(t *testing.T) {
	srv, mocks := newCommentService(t)

	stored := &entity.Comment{ID: 11, Content: "Delicious", UserID: 7, RecipeID: 3}
	mocks.commentRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(stored, nil)

	_, err := srv.UpdateComment(context.Background(), newTestActor(8), 11, &usecase.UpdateCommentInput{
		Content: "Hijacked",
	})
	require.ErrorIs(t, err, domainerrors.ErrCommentEditForbidden)
}

func TestCommentService_UpdateComment_MissingBeatsForbidden(t *testing.T) {
	srv, mocks := newCommentService(t)

	mocks.commentRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrCommentNotFound)

	_, err := srv.UpdateComment(context.Background(), newTestActor(8), 99, &usecase.UpdateCommentInput{
		Content: "x",
	})
	require.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestCommentService_DeleteComment_ByOwner(t *testing.T) {
	srv, mocks := newCommentService(t)

	stored := &entity.Comment{ID: 11, Content: "Delicious", UserID: 7, RecipeID: 3}
	mocks.commentRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(stored, nil)
	mocks.commentRepo.EXPECT().Delete(mock.Anything, int64(11)).Return(nil)

	err := srv.DeleteComment(context.Background(), newTestActor(7), 11)
	require.NoError(t, err)
}

func TestCommentService_DeleteComment_ByNonOwner(t *testing.T) {
	srv, mocks := newCommentService(t)

	stored := &entity.Comment{ID: 11, Content: "Delicious", UserID: 7, RecipeID: 3}
	mocks.commentRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(stored, nil)

	err := srv.DeleteComment(context.Background(), newTestActor(8), 11)
	require.ErrorIs(t, err, domainerrors.ErrCommentDeleteForbidden)
}

func TestCommentService_ListUserComments(t *testing.T) {
	srv, mocks := newCommentService(t)

	mocks.commentRepo.EXPECT().FindByUserID(mock.Anything, int64(7)).Return([]*entity.Comment{
		{ID: 11, Content: "Delicious", UserID: 7, RecipeID: 3},
	}, nil)

	views, err := srv.ListUserComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, views, 1)
}
