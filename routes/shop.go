package routes

import (
	"github.com/gin-gonic/gin"

	seedController "github.com/engraveworks/engraving-api/controllers/seed"
	shopController "github.com/engraveworks/engraving-api/controllers/shop"
	"github.com/engraveworks/engraving-api/store"
)

// SetupShopRoutes registers the public catalog endpoints.
func SetupShopRoutes(r *gin.Engine, s store.Store) {
	r.POST("/seed", seedController.SeedData(s))

	r.GET("/categories", shopController.GetAllCategories(s))
	r.GET("/products", shopController.GetProducts(s))
	r.GET("/products/:id", shopController.GetProductByID(s))
	r.GET("/portfolio", shopController.GetPortfolio(s))
}
