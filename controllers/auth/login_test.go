package authController

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engraveworks/engraving-api/models"
	"github.com/engraveworks/engraving-api/store"
)

func newLoginRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", Login(s))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) (int, models.User) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var user models.User
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	}
	return rec.Code, user
}

func TestLoginCreatesUserOnFirstContact(t *testing.T) {
	s := store.NewMemory()
	r := newLoginRouter(s)

	code, user := postLogin(t, r, `{"email": "ada@example.com", "name": "Ada"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.False(t, user.ID.IsZero(), "response must carry the assigned identifier")
}

func TestLoginDefaultsNameToEmailLocalPart(t *testing.T) {
	s := store.NewMemory()
	r := newLoginRouter(s)

	code, user := postLogin(t, r, `{"email": "a.b@example.com"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "a.b", user.Name)
}

func TestLoginIsIdempotentByEmail(t *testing.T) {
	s := store.NewMemory()
	r := newLoginRouter(s)

	code, first := postLogin(t, r, `{"email": "ada@example.com", "name": "Ada"}`)
	require.Equal(t, http.StatusOK, code)

	code, second := postLogin(t, r, `{"email": "ada@example.com"}`)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Name, second.Name)

	count, err := s.Count(context.Background(), models.UserCollection, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "second login must not create a second user")
}

func TestLoginRejectsBadPayload(t *testing.T) {
	r := newLoginRouter(store.NewMemory())

	code, _ := postLogin(t, r, `{"name": "No Email"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = postLogin(t, r, `{"email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLoginWithoutStoreFails(t *testing.T) {
	code, _ := postLogin(t, newLoginRouter(store.NewUnavailable()), `{"email": "ada@example.com"}`)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
