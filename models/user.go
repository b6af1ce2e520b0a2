package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle stage recorded on an order history entry.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusPreparing OrderStatus = "preparing"
	StatusEnRoute   OrderStatus = "en route"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusEnRoute, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is how an order was paid for.
type PaymentMethod string

const (
	PaymentCOD        PaymentMethod = "COD"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentPayPal     PaymentMethod = "PayPal"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentCreditCard, PaymentUPI, PaymentPayPal:
		return true
	}
	return false
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type Address struct {
	AddressLine1 string       `json:"addressLine1" bson:"addressLine1"`
	AddressLine2 string       `json:"addressLine2,omitempty" bson:"addressLine2,omitempty"`
	City         string       `json:"city" bson:"city"`
	State        string       `json:"state" bson:"state"`
	PostalCode   string       `json:"postalCode" bson:"postalCode"`
	Country      string       `json:"country" bson:"country"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Landmark     string       `json:"landmark,omitempty" bson:"landmark,omitempty"`
	AddressType  string       `json:"addressType" bson:"addressType"` // "Home" or "Work"
}

// UserAddresses holds the two optional saved addresses.
type UserAddresses struct {
	Home *Address `json:"home,omitempty" bson:"home,omitempty"`
	Work *Address `json:"work,omitempty" bson:"work,omitempty"`
}

type OrderItem struct {
	ItemName    string  `json:"itemName" bson:"itemName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// OrderHistory is a past order. Entries are append-only: once written they
// are never modified or removed.
type OrderHistory struct {
	OrderID           primitive.ObjectID `json:"orderId" bson:"orderId"`
	RestaurantName    string             `json:"restaurantName" bson:"restaurantName"`
	OrderDateTime     time.Time          `json:"orderDateTime" bson:"orderDateTime"`
	OrderStatus       OrderStatus        `json:"orderStatus" bson:"orderStatus"`
	TotalAmountPaid   float64            `json:"totalAmountPaid" bson:"totalAmountPaid"`
	ItemsOrdered      []OrderItem        `json:"itemsOrdered" bson:"itemsOrdered"`
	PaymentMethodUsed PaymentMethod      `json:"paymentMethodUsed" bson:"paymentMethodUsed"`
}

type CartItem struct {
	ItemName string  `json:"itemName" bson:"itemName"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

// Cart is the user's single active cart, replaced wholesale on every update.
type Cart struct {
	CartItems           []CartItem `json:"cartItems" bson:"cartItems"`
	Restaurant          string     `json:"restaurant" bson:"restaurant"`
	SpecialInstructions string     `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
	CartLastUpdated     time.Time  `json:"cartLastUpdated" bson:"cartLastUpdated"`
	DeliveryFee         *float64   `json:"deliveryFee,omitempty" bson:"deliveryFee,omitempty"`
	TaxesAndCharges     *float64   `json:"taxesAndCharges,omitempty" bson:"taxesAndCharges,omitempty"`
}

// User is the identity document. Email and phone number are unique across
// the collection (enforced by indexes created at startup). The password is
// stored bcrypt-hashed and never serialized to JSON.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName       string             `json:"fullName" bson:"fullName"`
	PhoneNumber    string             `json:"phoneNumber" bson:"phoneNumber"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	ProfilePicture string             `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	Address        UserAddresses      `json:"address" bson:"address"`
	OrderHistory   []OrderHistory     `json:"orderHistory" bson:"orderHistory"`
	Cart           *Cart              `json:"cart,omitempty" bson:"cart,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updatedAt"`
}
