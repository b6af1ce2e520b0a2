package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodie-backend/storage"
)

// Search filters the flattened (restaurant × menu item) relation by the
// optional query parameters. An empty result set is reported as 404, not as
// an empty 200 array.
func (h *Handler) Search(c *gin.Context) {
	filter := storage.SearchFilter{
		Text:        c.Query("q"),
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
	}

	var err error
	if filter.MinPrice, err = floatParam(c, "minPrice"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice"})
		return
	}
	if filter.MaxPrice, err = floatParam(c, "maxPrice"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
		return
	}
	if filter.MinRating, err = floatParam(c, "minRating"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minRating"})
		return
	}

	results, err := h.Restaurants.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "No items found for the search query"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// floatParam parses an optional numeric query parameter; absent means nil.
func floatParam(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
