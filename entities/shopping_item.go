package entities

import (
	"time"
)

type ShoppingItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	AddedDate time.Time `json:"added_date"`
	Notes     string    `json:"notes,omitempty"`
}
