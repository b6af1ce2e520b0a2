package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodie-backend/models"
	"foodie-backend/storage"
)

type AddProductRequest struct {
	Restaurant  string  `json:"restaurant" binding:"required"`
	ItemName    string  `json:"itemName" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	SubCategory string  `json:"subCategory"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
}

// ListRestaurants returns every restaurant with its full nested menu.
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Restaurants.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// AddProduct appends a menu item to the named restaurant. The name match is
// exact and case-sensitive; when several restaurants share a name the first
// match wins.
func (h *Handler) AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		ItemName:    req.ItemName,
		Price:       req.Price,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Image:       req.Image,
		Rating:      req.Rating,
	}
	added, pos, err := h.Restaurants.AppendMenuItem(c.Request.Context(), req.Restaurant, item)
	if err != nil {
		if errors.Is(err, storage.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":      "Product added successfully",
		"product":  added,
		"position": pos,
	})
}

// GetProductsData returns the category tree: one entry per restaurant with
// its distinct categories and their distinct sub-categories.
func (h *Handler) GetProductsData(c *gin.Context) {
	tree, err := h.Restaurants.CategoryTree(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tree)
}
