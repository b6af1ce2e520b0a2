package handlers

import (
	"time"

	"foodie-backend/storage"
)

// Handler bundles the injected dependencies every endpoint needs. Handlers
// are stateless; all state lives in the stores.
type Handler struct {
	Users       storage.UserStore
	Restaurants storage.RestaurantStore
	JWTSecret   []byte
	TokenTTL    time.Duration
}

func New(users storage.UserStore, restaurants storage.RestaurantStore, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		Users:       users,
		Restaurants: restaurants,
		JWTSecret:   jwtSecret,
		TokenTTL:    tokenTTL,
	}
}
