package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	mockrepository "plateful/internal/mocks/repository"
	mockservice "plateful/internal/mocks/service"
	"plateful/internal/usecase"
)

type userServiceMocks struct {
	txManager *mockrepository.MockTransactionManager
	userRepo  *mockrepository.MockUserRepository
	hasher    *mockservice.MockPasswordHasher
	tokenSvc  *mockservice.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		txManager: mockrepository.NewMockTransactionManager(t),
		userRepo:  mockrepository.NewMockUserRepository(t),
		hasher:    mockservice.NewMockPasswordHasher(t),
		tokenSvc:  mockservice.NewMockTokenService(t),
	}

	srv := NewUserService(UserServiceParams{
		TxManager:    mocks.txManager,
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return srv, mocks
}

// runInTx wires the transaction mock so the callback executes against the
// given repository factory, mirroring what the real manager does on commit.
func runInTx(txManager *mockrepository.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		},
	)
}

func TestUserService_RegisterUser(t *testing.T) {
	srv, mocks := newUserService(t)

	factory := mockrepository.NewMockRepositoryFactory(t)
	txUserRepo := mockrepository.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	runInTx(mocks.txManager, factory)

	mocks.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	txUserRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, user *entity.User) error {
			require.Equal(t, "alice", user.Name)
			require.Equal(t, "hashed", user.PasswordHash)
			user.ID = 42
			return nil
		},
	)

	out, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), out.User.ID)
	require.Equal(t, "alice", out.User.Name)
	require.Equal(t, "alice@example.com", out.User.Email)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	srv, mocks := newUserService(t)

	factory := mockrepository.NewMockRepositoryFactory(t)
	txUserRepo := mockrepository.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	runInTx(mocks.txManager, factory)

	mocks.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	txUserRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").
		Return(&entity.User{ID: 1, Email: "alice@example.com"}, nil)

	_, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	srv, mocks := newUserService(t)

	mocks.hasher.EXPECT().Hash("s3cretpass").Return("", domainerrors.ErrPasswordHashFailed)

	_, err := srv.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, domainerrors.ErrPasswordHashFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_Login(t *testing.T) {
	srv, mocks := newUserService(t)

	user := &entity.User{ID: 7, Name: "alice", Email: "alice@example.com", PasswordHash: "hashed"}
	mocks.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	mocks.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
	mocks.tokenSvc.EXPECT().Issue(int64(7), "alice", "alice@example.com").Return("signed-token", nil)

	out, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	require.Equal(t, "signed-token", out.Token)
	require.Equal(t, int64(7), out.UserID)
	require.Equal(t, "alice", out.Username)
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	srv, _ := newUserService(t)

	cases := []*usecase.LoginInput{
		{Email: "", Password: "s3cretpass"},
		{Email: "alice@example.com", Password: ""},
		{},
	}
	for _, input := range cases {
		_, err := srv.Login(context.Background(), input)
		require.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	srv, mocks := newUserService(t)

	mocks.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	srv, mocks := newUserService(t)

	user := &entity.User{ID: 7, Name: "alice", Email: "alice@example.com", PasswordHash: "hashed"}
	mocks.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	mocks.hasher.EXPECT().Check("wrongpass", "hashed").Return(false)

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrongpass",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_ListUsers(t *testing.T) {
	srv, mocks := newUserService(t)

	users := []*entity.User{
		{ID: 2, Name: "bob", Email: "bob@example.com", PasswordHash: "hash-b"},
		{ID: 1, Name: "alice", Email: "alice@example.com", PasswordHash: "hash-a"},
	}
	mocks.userRepo.EXPECT().FindAll(mock.Anything).Return(users, nil)

	views, err := srv.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, int64(2), views[0].ID)
	require.Equal(t, "bob", views[0].Name)
}
