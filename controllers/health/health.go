package healthController

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/engraveworks/engraving-api/store"
)

// Home returns the service banner.
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Laser Engraving Shop Backend"})
	}
}

// TestDatabase reports connectivity and configuration status for
// operators poking at a fresh deployment.
func TestDatabase(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":           "running",
			"database":          "not available",
			"database_url":      os.Getenv("DATABASE_URL") != "",
			"database_name":     os.Getenv("DATABASE_NAME") != "",
			"connection_status": "not connected",
			"collections":       []string{},
		}

		collections, err := s.Collections(c.Request.Context())
		if err == nil {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			if collections == nil {
				collections = []string{}
			}
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
			resp["collections"] = collections
		} else {
			resp["database"] = err.Error()
		}

		c.JSON(http.StatusOK, resp)
	}
}
