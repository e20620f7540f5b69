// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"glbiashara/internal/delivery/http/middleware"
	"glbiashara/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	NetworkHandler      *handler.NetworkHandler
	ProductHandler      *handler.ProductHandler
	PostHandler         *handler.PostHandler
	DirectoryHandler    *handler.DirectoryHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// Profile routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.PUT("/profile", r.params.UserHandler.UpdateProfile)
	}

	// Interconnectivity routes
	networkGroup := e.Group("/network")
	{
		// Public platform views
		networkGroup.GET("/stats", r.params.NetworkHandler.Stats)
		networkGroup.GET("/users/:userId/similar", r.params.NetworkHandler.SimilarUsersOf)
		networkGroup.GET("/entities/:kind/:id/businesses", r.params.NetworkHandler.ConnectedBusinesses)
		networkGroup.GET("/entities/:kind/:id/qr", r.params.DirectoryHandler.ConnectQR)

		// Views and actions scoped to the authenticated user
		authed := networkGroup.Group("")
		authed.Use(r.params.AuthMiddleware.Authenticate)
		authed.GET("/similar", r.params.NetworkHandler.SimilarUsers)
		authed.GET("/recommendations", r.params.NetworkHandler.Recommendations)
		authed.POST("/connect", r.params.NetworkHandler.Connect)
		authed.POST("/connect/qr", r.params.NetworkHandler.ConnectQR)
	}

	// Marketplace routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.Browse)
		productGroup.GET("/:id", r.params.ProductHandler.Get)

		authed := productGroup.Group("")
		authed.Use(r.params.AuthMiddleware.Authenticate)
		authed.POST("", r.params.ProductHandler.Create)
		authed.GET("/mine", r.params.ProductHandler.ListOwn)
		authed.PUT("/:id/active", r.params.ProductHandler.SetActive)
	}

	// Social feed routes
	feedGroup := e.Group("/feed")
	{
		feedGroup.GET("", r.params.PostHandler.Feed)

		authed := feedGroup.Group("")
		authed.Use(r.params.AuthMiddleware.Authenticate)
		authed.POST("/posts", r.params.PostHandler.Create)
	}

	// Entity directory routes
	directoryGroup := e.Group("/directory")
	{
		directoryGroup.GET("/providers", r.params.DirectoryHandler.ListProviders)
		directoryGroup.GET("/clubs", r.params.DirectoryHandler.ListClubs)
		directoryGroup.GET("/institutions", r.params.DirectoryHandler.ListInstitutions)
		directoryGroup.GET("/:kind/:slug", r.params.DirectoryHandler.GetPage)
	}
}
