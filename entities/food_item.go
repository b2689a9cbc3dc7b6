package entities

import (
	"time"
)

type FoodItem struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Quantity         float64   `json:"quantity"`
	OriginalQuantity float64   `json:"original_quantity"`
	Unit             string    `json:"unit"`
	Category         string    `json:"category"`           // Vegetables, Fruits, Meat, Dairy, Bakery, Pantry, Condiments, Spices, Oils, Other
	Calories         *float64  `json:"calories,omitempty"` // per 100g
	ExpirationDate   time.Time `json:"expiration_date"`
	AddedDate        time.Time `json:"added_date"`
	Status           string    `json:"status"` // fresh, watch, expiring, expired
	Notes            string    `json:"notes,omitempty"`
	Barcode          string    `json:"barcode,omitempty"`
	Location         string    `json:"location"` // fresh, pantry
}
