package seedController

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engraveworks/engraving-api/models"
	"github.com/engraveworks/engraving-api/store"
)

var starterCategories = []models.Category{
	{Name: "Phone Cases", Slug: "phone-cases", Description: "Precision-engraved cases"},
	{Name: "Wood Gifts", Slug: "wood-gifts", Description: "Maple, walnut, oak"},
	{Name: "Metal Cards", Slug: "metal-cards", Description: "Stainless, brass"},
}

var starterProducts = []models.Product{
	{Title: "Walnut Coaster Set", Description: "Laser-engraved logo on walnut.", Price: 39.0, Category: "wood-gifts", InStock: true, ImageURL: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800"},
	{Title: "Aluminum Business Card", Description: "Ultra-thin anodized metal.", Price: 2.5, Category: "metal-cards", InStock: true, ImageURL: "https://images.unsplash.com/photo-1581291519195-ef11498d1cf5?w=800"},
	{Title: "Matte Black Phone Case", Description: "Custom pattern engraving.", Price: 29.0, Category: "phone-cases", InStock: true, ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800"},
}

var starterPortfolio = []models.Portfolio{
	{Title: "Startup Swag", Description: "Branded coasters for offsite.", ImageURL: "https://images.unsplash.com/photo-1616628188502-521331aac402?w=1200", ClientName: "Veridian"},
	{Title: "Wedding Keepsake", Description: "Names and vows engraved on oak.", ImageURL: "https://images.unsplash.com/photo-1523419409543-8c1a8ef328d2?w=1200", ClientName: "Eden & Kai"},
}

// SeedData populates the seedable collections with starter records.
// Each collection is only touched while it is empty, so running the
// seed twice never duplicates data.
func SeedData(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		created := map[string]int{"categories": 0, "products": 0, "portfolio": 0}

		seedOne := func(collection, counter string, docs []any) bool {
			count, err := s.Count(ctx, collection, nil)
			if err != nil {
				respondStoreError(c, err)
				return false
			}
			if count > 0 {
				return true
			}
			for _, doc := range docs {
				if _, err := s.Insert(ctx, collection, doc); err != nil {
					respondStoreError(c, err)
					return false
				}
				created[counter]++
			}
			log.Printf("🌱 Seeded %d records into %s", created[counter], collection)
			return true
		}

		if !seedOne(models.CategoryCollection, "categories", asDocs(starterCategories)) {
			return
		}
		if !seedOne(models.ProductCollection, "products", asDocs(starterProducts)) {
			return
		}
		if !seedOne(models.PortfolioCollection, "portfolio", asDocs(starterPortfolio)) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "created": created})
	}
}

func asDocs[T any](records []T) []any {
	docs := make([]any, len(records))
	for i, r := range records {
		docs[i] = r
	}
	return docs
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed data"})
}
