// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wander/config"
	"wander/internal/delivery/http/middleware"
	"wander/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	UserHandler       *handler.UserHandler
	FriendHandler     *handler.FriendHandler
	SuggestionHandler *handler.SuggestionHandler
	ProximityHandler  *handler.ProximityHandler
	TripHandler       *handler.TripHandler
	RentalHandler     *handler.RentalHandler
	LocationHandler   *handler.LocationHandler
	ActivityHandler   *handler.ActivityHandler
	AuthMiddleware    *middleware.AuthMiddleware
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	authenticate := r.params.AuthMiddleware.Authenticate

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.PUT("/home-location", r.params.UserHandler.SetHomeLocation)
		userGroup.PUT("/push-token", r.params.UserHandler.UpdatePushToken)
		userGroup.GET("/activities", r.params.ActivityHandler.ListUserActivities)
	}

	// Friend graph routes
	friendGroup := e.Group("/friends")
	friendGroup.Use(authenticate)
	{
		friendGroup.GET("", r.params.FriendHandler.ListFriends)
		friendGroup.POST("/:id", r.params.FriendHandler.AddFriend)
		friendGroup.DELETE("/:id", r.params.FriendHandler.RemoveFriend)
		friendGroup.GET("/nearby", r.params.ProximityHandler.FriendsByDistance)
	}

	// Companion suggestion routes
	suggestionGroup := e.Group("/suggestions")
	suggestionGroup.Use(authenticate)
	{
		suggestionGroup.GET("", r.params.SuggestionHandler.SuggestCompanions)
	}

	// Trip planning routes
	tripGroup := e.Group("/trips")
	tripGroup.Use(authenticate)
	{
		tripGroup.POST("", r.params.TripHandler.CreateTrip)
		tripGroup.GET("", r.params.TripHandler.ListTrips)
		tripGroup.POST("/join-by-qr", r.params.TripHandler.JoinByQR)
		tripGroup.POST("/:id/join", r.params.TripHandler.JoinTrip)
		tripGroup.POST("/:id/leave", r.params.TripHandler.LeaveTrip)
		tripGroup.GET("/:id/members", r.params.TripHandler.ListMembers)
		tripGroup.GET("/:id/invite-qr", r.params.TripHandler.InviteQR)
	}

	// Review routes
	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(authenticate)
	{
		reviewGroup.POST("", r.params.TripHandler.CreateReview)
	}

	// Rental booking routes
	rentalGroup := e.Group("/rentals")
	rentalGroup.Use(authenticate)
	{
		rentalGroup.POST("", r.params.RentalHandler.CreateRental)
		rentalGroup.GET("", r.params.RentalHandler.ListOpenRentals)
		rentalGroup.GET("/mine", r.params.RentalHandler.ListOwnRentals)
		rentalGroup.GET("/requests/received", r.params.RentalHandler.ListReceivedRequests)
		rentalGroup.GET("/requests/submitted", r.params.RentalHandler.ListSubmittedRequests)
		rentalGroup.GET("/:id", r.params.RentalHandler.GetRental)
		rentalGroup.POST("/:id/requests", r.params.RentalHandler.SubmitRequest)
	}

	// Location routes
	locationGroup := e.Group("/locations")
	locationGroup.Use(authenticate)
	{
		locationGroup.POST("", r.params.LocationHandler.AddLocation)
		locationGroup.GET("", r.params.LocationHandler.ListLocations)
		locationGroup.GET("/:id", r.params.LocationHandler.GetLocation)
	}

	// Activity routes
	activityGroup := e.Group("/activities")
	activityGroup.Use(authenticate)
	{
		activityGroup.POST("", r.params.ActivityHandler.CreateActivity)
		activityGroup.POST("/join", r.params.ActivityHandler.JoinActivity)
		activityGroup.POST("/leave", r.params.ActivityHandler.LeaveActivity)
	}

	// Test routes for middleware validation, enabled per environment
	if r.params.Config.TestRoutes != nil && r.params.Config.TestRoutes.Enabled {
		testHandler := handler.NewTestHandler()
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", testHandler.TestAuthMiddleware, authenticate)
		}
	}
}
