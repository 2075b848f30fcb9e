package authController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/engraveworks/engraving-api/models"
	"github.com/engraveworks/engraving-api/store"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Login looks a user up by email and creates the account on first
// contact. When no name is supplied the local part of the email is
// used, so "a.b@example.com" becomes "a.b".
func Login(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		var existing models.User
		err := s.FindOne(ctx, models.UserCollection, store.Filter{"email": req.Email}, &existing)
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			respondStoreError(c, err)
			return
		}

		name := req.Name
		if name == "" {
			name = strings.SplitN(req.Email, "@", 2)[0]
		}

		id, err := s.Insert(ctx, models.UserCollection, models.User{Name: name, Email: req.Email})
		if err != nil {
			respondStoreError(c, err)
			return
		}

		// Re-fetch so the response carries the assigned identifier.
		oid, _ := store.ParseID(id)
		var created models.User
		if err := s.FindOne(ctx, models.UserCollection, store.Filter{"_id": oid}, &created); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
}
