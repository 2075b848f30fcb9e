package routes

import (
	"github.com/gin-gonic/gin"

	healthController "github.com/engraveworks/engraving-api/controllers/health"
	"github.com/engraveworks/engraving-api/store"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, s store.Store) {
	// Health + diagnostics
	r.GET("/", healthController.Home())
	r.GET("/test", healthController.TestDatabase(s))

	// Public shop routes
	SetupShopRoutes(r, s)

	// Login
	SetupAuthRoutes(r, s)

	// Orders
	SetupOrderRoutes(r, s)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, s)
}
