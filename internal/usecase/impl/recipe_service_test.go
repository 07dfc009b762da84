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

type recipeServiceMocks struct {
	txManager  *mockrepository.MockTransactionManager
	recipeRepo *mockrepository.MockRecipeRepository
	publisher  *mockservice.MockEventPublisher
	qrService  *mockservice.MockQRCodeService
}

func newRecipeService(t *testing.T) (usecase.RecipeUsecase, *recipeServiceMocks) {
	t.Helper()

	mocks := &recipeServiceMocks{
		txManager:  mockrepository.NewMockTransactionManager(t),
		recipeRepo: mockrepository.NewMockRecipeRepository(t),
		publisher:  mockservice.NewMockEventPublisher(t),
		qrService:  mockservice.NewMockQRCodeService(t),
	}

	srv := NewRecipeService(RecipeServiceParams{
		TxManager:  mocks.txManager,
		RecipeRepo: mocks.recipeRepo,
		Guard:      service.NewOwnershipGuard(),
		Publisher:  mocks.publisher,
		QRService:  mocks.qrService,
		Logger:     newDiscardLogger(),
	})

	return srv, mocks
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	srv, mocks := newRecipeService(t)
	actor := newTestActor(7)

	mocks.recipeRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, recipe *entity.Recipe) error {
			require.Equal(t, int64(7), recipe.UserID)
			require.Equal(t, "Pho", recipe.Title)
			recipe.ID = 3
			return nil
		},
	)
	mocks.publisher.EXPECT().PublishActivityEvent(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, event *service.ActivityEvent) error {
			require.Equal(t, entity.ActivityRecipeCreated, event.Kind)
			require.Equal(t, int64(7), event.ActorID)
			require.Equal(t, int64(3), event.RecipeID)
			require.Equal(t, "Pho", event.Subject)
			require.NotEmpty(t, event.EventID)
			return nil
		},
	)

	view, err := srv.CreateRecipe(context.Background(), actor, &usecase.RecipeInput{
		Title:        "Pho",
		Ingredients:  "beef, noodles, broth",
		Instructions: "simmer the broth",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), view.ID)
	require.Equal(t, int64(7), view.UserID)
}

func TestRecipeService_CreateRecipe_PublishFailureIsIgnored(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	mocks.publisher.EXPECT().PublishActivityEvent(mock.Anything, mock.Anything).
		Return(context.DeadlineExceeded)

	view, err := srv.CreateRecipe(context.Background(), newTestActor(7), &usecase.RecipeInput{
		Title:        "Pho",
		Ingredients:  "beef",
		Instructions: "simmer",
	})
	require.NoError(t, err)
	require.NotNil(t, view)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRecipeNotFound)

	_, err := srv.GetRecipe(context.Background(), 99)
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_SearchRecipes_BlankQuery(t *testing.T) {
	srv, _ := newRecipeService(t)

	for _, query := range []string{"", "   ", "\t"} {
		views, err := srv.SearchRecipes(context.Background(), query)
		require.NoError(t, err)
		require.NotNil(t, views)
		require.Empty(t, views)
	}
}

func TestRecipeService_SearchRecipes(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().SearchByTitle(mock.Anything, "pho").Return([]*entity.Recipe{
		{ID: 1, Title: "Pho", UserID: 7},
	}, nil)

	views, err := srv.SearchRecipes(context.Background(), "pho")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Pho", views[0].Title)
}

func TestRecipeService_UpdateRecipe_ByOwner(t *testing.T) {
	srv, mocks := newRecipeService(t)
	actor := newTestActor(7)

	stored := &entity.Recipe{ID: 3, Title: "Pho", Ingredients: "beef", Instructions: "simmer", UserID: 7}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(stored, nil).Once()
	mocks.recipeRepo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, recipe *entity.Recipe) error {
			require.Equal(t, "Pho Bo", recipe.Title)
			require.Equal(t, int64(7), recipe.UserID)
			return nil
		},
	)
	updated := &entity.Recipe{ID: 3, Title: "Pho Bo", Ingredients: "beef", Instructions: "simmer", UserID: 7}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(updated, nil).Once()

	view, err := srv.UpdateRecipe(context.Background(), actor, 3, &usecase.RecipeInput{
		Title:        "Pho Bo",
		Ingredients:  "beef",
		Instructions: "simmer",
	})
	require.NoError(t, err)
	require.Equal(t, "Pho Bo", view.Title)
}

func TestRecipeService_UpdateRecipe_ByNonOwner(t *testing.T) {
	srv, mocks := newRecipeService(t)

	stored := &entity.Recipe{ID: 3, Title: "Pho", UserID: 7}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(stored, nil)

	_, err := srv.UpdateRecipe(context.Background(), newTestActor(8), 3, &usecase.RecipeInput{
		Title:        "Hijacked",
		Ingredients:  "x",
		Instructions: "y",
	})
	require.ErrorIs(t, err, domainerrors.ErrRecipeEditForbidden)
}

func TestRecipeService_UpdateRecipe_MissingBeatsForbidden(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRecipeNotFound)

	// A non-owner probing a missing id must see not-found, not forbidden.
	_, err := srv.UpdateRecipe(context.Background(), newTestActor(8), 99, &usecase.RecipeInput{
		Title:        "x",
		Ingredients:  "y",
		Instructions: "z",
	})
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_DeleteRecipe_ByOwner(t *testing.T) {
	srv, mocks := newRecipeService(t)

	stored := &entity.Recipe{ID: 3, Title: "Pho", UserID: 7}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(stored, nil)

	factory := mockrepository.NewMockRepositoryFactory(t)
	txCommentRepo := mockrepository.NewMockCommentRepository(t)
	txRecipeRepo := mockrepository.NewMockRecipeRepository(t)
	factory.EXPECT().CommentRepo().Return(txCommentRepo)
	factory.EXPECT().RecipeRepo().Return(txRecipeRepo)
	txCommentRepo.EXPECT().DeleteByRecipeID(mock.Anything, int64(3)).Return(nil)
	txRecipeRepo.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)
	runInTx(mocks.txManager, factory)

	err := srv.DeleteRecipe(context.Background(), newTestActor(7), 3)
	require.NoError(t, err)
}

func TestRecipeService_DeleteRecipe_ByNonOwner(t *testing.T) {
	srv, mocks := newRecipeService(t)

	stored := &entity.Recipe{ID: 3, Title: "Pho", UserID: 7}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(stored, nil)

	err := srv.DeleteRecipe(context.Background(), newTestActor(8), 3)
	require.ErrorIs(t, err, domainerrors.ErrRecipeDeleteForbidden)
}

func TestRecipeService_ListOwnRecipes(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().FindByUserID(mock.Anything, int64(7)).Return([]*entity.Recipe{
		{ID: 1, Title: "Pho", UserID: 7},
		{ID: 2, Title: "Banh Mi", UserID: 7},
	}, nil)

	views, err := srv.ListOwnRecipes(context.Background(), newTestActor(7))
	require.NoError(t, err)
	require.Len(t, views, 2)
}

func TestRecipeService_SearchOwnRecipes(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().SearchByTitleForUser(mock.Anything, int64(7), "pho").Return([]*entity.Recipe{
		{ID: 1, Title: "Pho", UserID: 7},
	}, nil)

	views, err := srv.SearchOwnRecipes(context.Background(), newTestActor(7), "pho")
	require.NoError(t, err)
	require.Len(t, views, 1)

	views, err = srv.SearchOwnRecipes(context.Background(), newTestActor(7), " ")
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestRecipeService_GenerateShareQR(t *testing.T) {
	srv, mocks := newRecipeService(t)

	stored := &entity.Recipe{ID: 3, Title: "Pho", UserID: 7}
	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(stored, nil)
	mocks.qrService.EXPECT().GenerateRecipeShareQR(int64(3)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := srv.GenerateShareQR(context.Background(), 3)
	require.NoError(t, err)
	require.NotEmpty(t, png)
}

func TestRecipeService_GenerateShareQR_MissingRecipe(t *testing.T) {
	srv, mocks := newRecipeService(t)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRecipeNotFound)

	_, err := srv.GenerateShareQR(context.Background(), 99)
	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}
