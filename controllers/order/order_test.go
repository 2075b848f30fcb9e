package orderControllers

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

func newOrderRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/order", CreateOrder(s))
	r.GET("/orders/:id", GetOrderByID(s))
	return r
}

func seedProduct(t *testing.T, s store.Store, title string) string {
	t.Helper()
	id, err := s.Insert(context.Background(), models.ProductCollection,
		models.Product{Title: title, Price: 39, Category: "wood-gifts", InStock: true})
	require.NoError(t, err)
	return id
}

func postOrder(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func orderCount(t *testing.T, s store.Store) int64 {
	t.Helper()
	count, err := s.Count(context.Background(), models.OrderCollection, nil)
	require.NoError(t, err)
	return count
}

func TestCreateOrder(t *testing.T) {
	s := store.NewMemory()
	productID := seedProduct(t, s, "Walnut Coaster Set")
	r := newOrderRouter(s)

	rec := postOrder(t, r, `{
		"user_email": "ada@example.com",
		"items": [{"product_id": "`+productID+`", "qty": 2}],
		"notes": "gift wrap please",
		"contact_phone": "+15550100"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.False(t, order.ID.IsZero())
	assert.Equal(t, "ada@example.com", order.UserEmail)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "gift wrap please", order.Notes)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Qty)
	assert.NotEmpty(t, order.Ref)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrderDefaultsQtyToOne(t *testing.T) {
	s := store.NewMemory()
	productID := seedProduct(t, s, "Walnut Coaster Set")
	r := newOrderRouter(s)

	rec := postOrder(t, r, `{
		"user_email": "ada@example.com",
		"items": [{"product_id": "`+productID+`"}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Qty)
}

func TestCreateOrderAllowsEmptyItems(t *testing.T) {
	s := store.NewMemory()
	r := newOrderRouter(s)

	rec := postOrder(t, r, `{"user_email": "ada@example.com", "items": []}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
}

func TestCreateOrderAbortsOnFirstMissingProduct(t *testing.T) {
	s := store.NewMemory()
	goodID := seedProduct(t, s, "Walnut Coaster Set")
	r := newOrderRouter(s)

	missingID := "ffffffffffffffffffffffff"
	rec := postOrder(t, r, `{
		"user_email": "ada@example.com",
		"items": [
			{"product_id": "`+goodID+`", "qty": 1},
			{"product_id": "`+missingID+`", "qty": 1}
		]
	}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), missingID, "error must name the missing id")
	assert.Equal(t, int64(0), orderCount(t, s), "no partial order may be written")
}

func TestCreateOrderRejectsMalformedProductID(t *testing.T) {
	s := store.NewMemory()
	seedProduct(t, s, "Walnut Coaster Set")
	r := newOrderRouter(s)

	rec := postOrder(t, r, `{
		"user_email": "ada@example.com",
		"items": [{"product_id": "not-a-hex-id", "qty": 1}]
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int64(0), orderCount(t, s))
}

func TestCreateOrderRejectsBadPayload(t *testing.T) {
	r := newOrderRouter(store.NewMemory())

	// no user_email
	rec := postOrder(t, r, `{"items": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// qty below one
	rec = postOrder(t, r, `{"user_email": "ada@example.com", "items": [{"product_id": "ffffffffffffffffffffffff", "qty": -1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderByIDRoundTrip(t *testing.T) {
	s := store.NewMemory()
	productID := seedProduct(t, s, "Walnut Coaster Set")
	r := newOrderRouter(s)

	rec := postOrder(t, r, `{
		"user_email": "ada@example.com",
		"items": [{"product_id": "`+productID+`", "qty": 3}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var placed models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/"+placed.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, placed.ID, fetched.ID)
	assert.Equal(t, placed.UserEmail, fetched.UserEmail)
	assert.Equal(t, placed.Items, fetched.Items)
	assert.Equal(t, placed.Ref, fetched.Ref)
}

func TestGetOrderByIDErrors(t *testing.T) {
	r := newOrderRouter(store.NewMemory())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/ffffffffffffffffffffffff", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderWithoutStoreFails(t *testing.T) {
	r := newOrderRouter(store.NewUnavailable())

	rec := postOrder(t, r, `{"user_email": "ada@example.com", "items": []}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
