package routes

import (
	"github.com/anirudh/campusconnect/internal/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes. The endpoints live at the
// root rather than under a version prefix because that is the path contract
// existing clients consume.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	clubController *controllers.ClubController,
	registrationController *controllers.RegistrationController,
	searchController *controllers.SearchController,
) {
	// Auth routes
	router.POST("/login", authController.Login)
	router.POST("/signup", authController.Signup)

	// Listing routes
	router.GET("/events", eventController.ListEvents)
	router.GET("/clubs", clubController.ListClubs)
	router.GET("/user-events/:userId", eventController.ListUserEvents)

	// Registration route
	router.POST("/register", registrationController.Register)

	// Search route
	router.GET("/search", searchController.Search)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
