package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"plateful/config"
	httpmw "plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/router/handler"
	"plateful/internal/delivery/http/validator"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/infra/auth"
	mockrepository "plateful/internal/mocks/repository"
	mockservice "plateful/internal/mocks/service"
	"plateful/internal/usecase/impl"
)

type apiMocks struct {
	userRepo     *mockrepository.MockUserRepository
	recipeRepo   *mockrepository.MockRecipeRepository
	commentRepo  *mockrepository.MockCommentRepository
	activityRepo *mockrepository.MockActivityRepository
	txManager    *mockrepository.MockTransactionManager
	publisher    *mockservice.MockEventPublisher
	qrService    *mockservice.MockQRCodeService
	tokenSvc     service.TokenService
	hasher       service.PasswordHasher
}

// newTestAPI assembles the full HTTP surface against mocked persistence,
// with the real token service, password hasher and ownership guard.
func newTestAPI(t *testing.T) (*echo.Echo, *apiMocks) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)
	guard := service.NewOwnershipGuard()

	mocks := &apiMocks{
		userRepo:     mockrepository.NewMockUserRepository(t),
		recipeRepo:   mockrepository.NewMockRecipeRepository(t),
		commentRepo:  mockrepository.NewMockCommentRepository(t),
		activityRepo: mockrepository.NewMockActivityRepository(t),
		txManager:    mockrepository.NewMockTransactionManager(t),
		publisher:    mockservice.NewMockEventPublisher(t),
		qrService:    mockservice.NewMockQRCodeService(t),
		tokenSvc:     tokenSvc,
		hasher:       hasher,
	}

	userSvc := impl.NewUserService(impl.UserServiceParams{
		TxManager:    mocks.txManager,
		UserRepo:     mocks.userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	recipeSvc := impl.NewRecipeService(impl.RecipeServiceParams{
		TxManager:  mocks.txManager,
		RecipeRepo: mocks.recipeRepo,
		Guard:      guard,
		Publisher:  mocks.publisher,
		QRService:  mocks.qrService,
		Logger:     logger,
	})
	commentSvc := impl.NewCommentService(impl.CommentServiceParams{
		CommentRepo: mocks.commentRepo,
		RecipeRepo:  mocks.recipeRepo,
		Guard:       guard,
		Publisher:   mocks.publisher,
		Logger:      logger,
	})
	activitySvc := impl.NewActivityService(impl.ActivityServiceParams{
		ActivityRepo: mocks.activityRepo,
		Logger:       logger,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmw.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		Config:          cfg,
		UserHandler:     handler.NewUserHandler(userSvc, nil, logger),
		RecipeHandler:   handler.NewRecipeHandler(recipeSvc),
		CommentHandler:  handler.NewCommentHandler(commentSvc),
		ActivityHandler: handler.NewActivityHandler(activitySvc),
		TestHandler:     handler.NewTestHandler(),
		AuthMiddleware:  httpmw.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return e, mocks
}

func doRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func issueToken(t *testing.T, tokenSvc service.TokenService, userID int64) string {
	t.Helper()

	token, err := tokenSvc.Issue(userID, "alice", "alice@example.com")
	require.NoError(t, err)

	return token
}

func TestAPI_RegisterLoginProtectedFlow(t *testing.T) {
	e, mocks := newTestAPI(t)

	factory := mockrepository.NewMockRepositoryFactory(t)
	txUserRepo := mockrepository.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	mocks.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		},
	)

	var storedHash string
	txUserRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, user *entity.User) error {
			user.ID = 7
			storedHash = user.PasswordHash
			return nil
		},
	)

	rec := doRequest(e, http.MethodPost, "/users",
		`{"name":"alice","email":"alice@example.com","password":"s3cretpass"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	registered := decodeBody(t, rec)
	require.Equal(t, float64(7), registered["id"])
	require.NotContains(t, rec.Body.String(), "password")

	mocks.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").RunAndReturn(
		func(context.Context, string) (*entity.User, error) {
			return &entity.User{ID: 7, Name: "alice", Email: "alice@example.com", PasswordHash: storedHash}, nil
		},
	)

	rec = doRequest(e, http.MethodPost, "/users/login",
		`{"email":"alice@example.com","password":"s3cretpass"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	login := decodeBody(t, rec)
	require.Equal(t, float64(7), login["user_id"])
	require.Equal(t, "alice", login["username"])
	token, ok := login["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	rec = doRequest(e, http.MethodGet, "/protected", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	greeting := decodeBody(t, rec)
	require.Equal(t, float64(7), greeting["user_id"])
	require.Equal(t, "alice", greeting["username"])
}

func TestAPI_ProtectedRouteAuthErrors(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/protected", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Authentication token is missing"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	malformed := httptest.NewRecorder()
	e.ServeHTTP(malformed, req)
	require.Equal(t, http.StatusUnauthorized, malformed.Code)
	require.JSONEq(t, `{"error":"Invalid authorization header format. Expected: Bearer <token>"}`, malformed.Body.String())

	rec = doRequest(e, http.MethodGet, "/protected", "", "not.a.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
}

func TestAPI_LoginErrors(t *testing.T) {
	e, mocks := newTestAPI(t)

	rec := doRequest(e, http.MethodPost, "/users/login", `{"email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Email and password are required"}`, rec.Body.String())

	hash, err := mocks.hasher.Hash("rightpass1")
	require.NoError(t, err)
	mocks.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").
		Return(&entity.User{ID: 7, Name: "alice", Email: "alice@example.com", PasswordHash: hash}, nil)

	rec = doRequest(e, http.MethodPost, "/users/login",
		`{"email":"alice@example.com","password":"wrongpass1"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())
}

func TestAPI_CreateRecipeIgnoresPayloadOwner(t *testing.T) {
	e, mocks := newTestAPI(t)
	token := issueToken(t, mocks.tokenSvc, 7)

	mocks.recipeRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, recipe *entity.Recipe) error {
			require.Equal(t, int64(7), recipe.UserID)
			recipe.ID = 3
			return nil
		},
	)
	mocks.publisher.EXPECT().PublishActivityEvent(mock.Anything, mock.Anything).Return(nil)

	rec := doRequest(e, http.MethodPost, "/recipes",
		`{"title":"Pho","ingredients":"beef","instructions":"simmer","user_id":999}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(7), body["user_id"])
}

func TestAPI_RecipeOwnershipAndNotFound(t *testing.T) {
	e, mocks := newTestAPI(t)
	token := issueToken(t, mocks.tokenSvc, 8)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, repository.ErrRecipeNotFound)
	rec := doRequest(e, http.MethodGet, "/recipes/99", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Recipe not found"}`, rec.Body.String())

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).
		Return(&entity.Recipe{ID: 3, Title: "Pho", Ingredients: "beef", Instructions: "simmer", UserID: 7}, nil)
	rec = doRequest(e, http.MethodPut, "/recipes/3",
		`{"title":"Hijacked","ingredients":"x","instructions":"y"}`, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"Forbidden: You can only edit your own recipes"}`, rec.Body.String())
}

func TestAPI_DeleteRecipeReturnsNoContent(t *testing.T) {
	e, mocks := newTestAPI(t)
	token := issueToken(t, mocks.tokenSvc, 7)

	mocks.recipeRepo.EXPECT().FindByID(mock.Anything, int64(3)).
		Return(&entity.Recipe{ID: 3, Title: "Pho", UserID: 7}, nil)

	factory := mockrepository.NewMockRepositoryFactory(t)
	txCommentRepo := mockrepository.NewMockCommentRepository(t)
	txRecipeRepo := mockrepository.NewMockRecipeRepository(t)
	factory.EXPECT().CommentRepo().Return(txCommentRepo)
	factory.EXPECT().RecipeRepo().Return(txRecipeRepo)
	txCommentRepo.EXPECT().DeleteByRecipeID(mock.Anything, int64(3)).Return(nil)
	txRecipeRepo.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)
	mocks.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		},
	)

	rec := doRequest(e, http.MethodDelete, "/recipes/3", "", token)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
}

func TestAPI_SearchWithBlankQuery(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/recipes/search?q=", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_RootEndpoint(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doRequest(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Welcome!","status":"running"}`, rec.Body.String())
}
