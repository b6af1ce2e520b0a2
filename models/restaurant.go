package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MenuItem struct {
	ItemName    string  `json:"itemName" bson:"itemName"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	SubCategory string  `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	Image       string  `json:"image" bson:"image"`
	Rating      float64 `json:"rating" bson:"rating"`
}

// Restaurant embeds its full menu. Name is the de-facto lookup key for the
// add-product operation; it is not unique, and lookups take the first match.
type Restaurant struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Image    string             `json:"image" bson:"image"`
	Location string             `json:"location" bson:"location"`
	Menus    []MenuItem         `json:"menus" bson:"menus"`
}
