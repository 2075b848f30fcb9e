package routes

import (
	"github.com/gin-gonic/gin"

	authController "github.com/engraveworks/engraving-api/controllers/auth"
	"github.com/engraveworks/engraving-api/store"
)

// SetupAuthRoutes registers the email login endpoint.
func SetupAuthRoutes(r *gin.Engine, s store.Store) {
	r.POST("/login", authController.Login(s))
}
