package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/engraveworks/engraving-api/models"
	"github.com/engraveworks/engraving-api/store"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty" binding:"omitempty,min=1"` // defaults to 1
}

type CreateOrderRequest struct {
	UserEmail    string             `json:"user_email" binding:"required,email"`
	Items        []OrderItemRequest `json:"items" binding:"dive"`
	Notes        string             `json:"notes"`
	ContactPhone string             `json:"contact_phone"`
}

// -------- Helpers --------

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Handlers --------

// CreateOrder places an order. Every item's product must exist before
// anything is written; the first unresolvable product aborts the whole
// request and no order record is created.
func CreateOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			oid, err := store.ParseID(it.ProductID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id: " + it.ProductID})
				return
			}

			var product models.Product
			err = s.FindOne(ctx, models.ProductCollection, store.Filter{"_id": oid}, &product)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Product not found: " + it.ProductID})
					return
				}
				respondStoreError(c, err)
				return
			}

			qty := it.Qty
			if qty == 0 {
				qty = 1
			}
			items = append(items, models.OrderItem{ProductID: it.ProductID, Qty: qty})
		}

		order := models.Order{
			UserEmail:    req.UserEmail,
			Items:        items,
			Status:       models.OrderStatusPending,
			Notes:        req.Notes,
			ContactPhone: req.ContactPhone,
			Ref:          generateOrderRef(),
			CreatedAt:    time.Now().UTC(),
		}

		id, err := s.Insert(ctx, models.OrderCollection, order)
		if err != nil {
			respondStoreError(c, err)
			return
		}

		oid, _ := store.ParseID(id)
		var created models.Order
		if err := s.FindOne(ctx, models.OrderCollection, store.Filter{"_id": oid}, &created); err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

// GetOrderByID returns a single order.
// URL param: /orders/:id
func GetOrderByID(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := store.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		err = s.FindOne(c.Request.Context(), models.OrderCollection, store.Filter{"_id": id}, &order)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
}
