package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodie-backend/middleware"
	"foodie-backend/models"
	"foodie-backend/storage"
)

type CartItemRequest struct {
	ItemName string  `json:"itemName" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type UpdateCartRequest struct {
	CartItems           []CartItemRequest `json:"cartItems" binding:"required,min=1,dive"`
	Restaurant          string            `json:"restaurant" binding:"required"`
	SpecialInstructions string            `json:"specialInstructions"`
	DeliveryFee         *float64          `json:"deliveryFee"`
	TaxesAndCharges     *float64          `json:"taxesAndCharges"`
}

type OrderItemRequest struct {
	ItemName    string  `json:"itemName" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type PlaceOrderRequest struct {
	RestaurantName    string             `json:"restaurantName" binding:"required"`
	ItemsOrdered      []OrderItemRequest `json:"itemsOrdered" binding:"required,min=1,dive"`
	TotalAmountPaid   float64            `json:"totalAmountPaid" binding:"required,gt=0"`
	PaymentMethodUsed string             `json:"paymentMethodUsed" binding:"required"`
	OrderStatus       string             `json:"orderStatus"`
}

// GetCart returns the caller's cart, null when none exists yet.
func (h *Handler) GetCart(c *gin.Context) {
	user, err := h.Users.GetByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": user.Cart})
}

// UpdateCart replaces the caller's cart wholesale. The previous cart, if
// any, is discarded; the server stamps the update time.
func (h *Handler) UpdateCart(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := models.Cart{
		Restaurant:          req.Restaurant,
		SpecialInstructions: req.SpecialInstructions,
		CartLastUpdated:     time.Now().UTC(),
		DeliveryFee:         req.DeliveryFee,
		TaxesAndCharges:     req.TaxesAndCharges,
	}
	for _, it := range req.CartItems {
		cart.CartItems = append(cart.CartItems, models.CartItem{
			ItemName: it.ItemName,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	if err := h.Users.ReplaceCart(c.Request.Context(), middleware.GetUserID(c), &cart); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Cart updated", "cart": cart})
}

// ListOrders returns the caller's order history, oldest first.
func (h *Handler) ListOrders(c *gin.Context) {
	user, err := h.Users.GetByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": user.OrderHistory})
}

// PlaceOrder appends an immutable entry to the caller's order history. The
// server assigns the id and timestamp; status defaults to "placed".
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.OrderStatus(req.OrderStatus)
	if req.OrderStatus == "" {
		status = models.StatusPlaced
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid orderStatus"})
		return
	}
	payment := models.PaymentMethod(req.PaymentMethodUsed)
	if !payment.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paymentMethodUsed"})
		return
	}

	entry := models.OrderHistory{
		OrderID:           primitive.NewObjectID(),
		RestaurantName:    req.RestaurantName,
		OrderDateTime:     time.Now().UTC(),
		OrderStatus:       status,
		TotalAmountPaid:   req.TotalAmountPaid,
		PaymentMethodUsed: payment,
	}
	for _, it := range req.ItemsOrdered {
		entry.ItemsOrdered = append(entry.ItemsOrdered, models.OrderItem{
			ItemName:    it.ItemName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Description: it.Description,
		})
	}

	if err := h.Users.AppendOrder(c.Request.Context(), middleware.GetUserID(c), entry); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Order recorded", "order": entry})
}
