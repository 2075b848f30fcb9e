package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/engraveworks/engraving-api/controllers/order"
	"github.com/engraveworks/engraving-api/store"
)

// SetupOrderRoutes registers the checkout endpoints.
func SetupOrderRoutes(r *gin.Engine, s store.Store) {
	r.POST("/order", orderControllers.CreateOrder(s))
	r.GET("/orders/:id", orderControllers.GetOrderByID(s))
}
