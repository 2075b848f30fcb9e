package routes

import (
	"github.com/gin-gonic/gin"

	shopController "github.com/engraveworks/engraving-api/controllers/shop"
	"github.com/engraveworks/engraving-api/middleware"
	"github.com/engraveworks/engraving-api/store"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, s store.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAPIKey)
	{
		adminGroup.POST("/products", shopController.CreateProduct(s))
	}
}
