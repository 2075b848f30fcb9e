package shopController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engraveworks/engraving-api/models"
	"github.com/engraveworks/engraving-api/store"
)

// GetAllCategories returns every category.
func GetAllCategories(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := s.Find(c.Request.Context(), models.CategoryCollection, nil, &categories); err != nil {
			respondStoreError(c, err, "Failed to fetch categories")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetProducts returns products, optionally narrowed to one category.
// Query param: ?category=<slug>
func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.Filter{}
		if category := c.Query("category"); category != "" {
			filter["category"] = category
		}

		var products []models.Product
		if err := s.Find(c.Request.Context(), models.ProductCollection, filter, &products); err != nil {
			respondStoreError(c, err, "Failed to fetch products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := store.ParseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		err = s.FindOne(c.Request.Context(), models.ProductCollection, store.Filter{"_id": id}, &product)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			respondStoreError(c, err, "Failed to retrieve product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetPortfolio returns every portfolio entry.
func GetPortfolio(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Portfolio
		if err := s.Find(c.Request.Context(), models.PortfolioCollection, nil, &items); err != nil {
			respondStoreError(c, err, "Failed to fetch portfolio")
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
	InStock     *bool   `json:"in_stock"`
	ImageURL    string  `json:"image_url"`
}

// CreateProduct adds a product to the catalog. Admin only.
func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product := models.Product{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			InStock:     inStock,
			ImageURL:    req.ImageURL,
		}

		ctx := c.Request.Context()
		id, err := s.Insert(ctx, models.ProductCollection, product)
		if err != nil {
			respondStoreError(c, err, "Failed to create product")
			return
		}

		oid, _ := store.ParseID(id)
		var created models.Product
		if err := s.FindOne(ctx, models.ProductCollection, store.Filter{"_id": oid}, &created); err != nil {
			respondStoreError(c, err, "Failed to retrieve created product")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func respondStoreError(c *gin.Context, err error, msg string) {
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
