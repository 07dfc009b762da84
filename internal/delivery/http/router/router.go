// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"plateful/config"
	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	RecipeHandler   *handler.RecipeHandler
	CommentHandler  *handler.CommentHandler
	ActivityHandler *handler.ActivityHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	userHandler     *handler.UserHandler
	recipeHandler   *handler.RecipeHandler
	commentHandler  *handler.CommentHandler
	activityHandler *handler.ActivityHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		userHandler:     params.UserHandler,
		recipeHandler:   params.RecipeHandler,
		commentHandler:  params.CommentHandler,
		activityHandler: params.ActivityHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.userHandler.Root)
	e.GET("/health", r.userHandler.HealthCheck)

	// User routes. Registration and login are public by design.
	e.GET("/users", r.userHandler.ListUsers)
	e.POST("/users", r.userHandler.RegisterUser)
	e.POST("/users/login", r.userHandler.Login)

	// Public recipe reads.
	e.GET("/recipes", r.recipeHandler.ListRecipes)
	e.GET("/recipes/search", r.recipeHandler.SearchRecipes)
	e.GET("/recipes/:id", r.recipeHandler.GetRecipe)
	e.GET("/recipes/:id/comments", r.commentHandler.ListRecipeComments)
	e.GET("/recipes/:id/share/qr", r.recipeHandler.ShareQR)
	e.GET("/users/:id/recipes", r.recipeHandler.ListUserRecipes)

	// Public comment reads.
	e.GET("/comments", r.commentHandler.ListComments)
	e.GET("/comments/:id", r.commentHandler.GetComment)
	e.GET("/users/:id/comments", r.commentHandler.ListUserComments)

	// Activity feed, written asynchronously by the worker.
	e.GET("/users/:id/activity", r.activityHandler.ListUserActivity)

	// Mutations require an authenticated identity. Echo prefers static
	// segments over ":id", so "/users/recipes" never matches the user
	// param routes above.
	authed := e.Group("", r.authMiddleware.Authenticate)
	authed.POST("/recipes", r.recipeHandler.CreateRecipe)
	authed.PUT("/recipes/:id", r.recipeHandler.UpdateRecipe)
	authed.DELETE("/recipes/:id", r.recipeHandler.DeleteRecipe)
	authed.GET("/users/recipes", r.recipeHandler.ListOwnRecipes)
	authed.GET("/users/recipes/search", r.recipeHandler.SearchOwnRecipes)
	authed.POST("/comments", r.commentHandler.CreateComment)
	authed.PUT("/comments/:id", r.commentHandler.UpdateComment)
	authed.DELETE("/comments/:id", r.commentHandler.DeleteComment)

	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		authed.GET("/protected", r.testHandler.Protected)
	}
}
