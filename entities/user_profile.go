package entities

import (
	"time"
)

type UserProfile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar,omitempty"`
	DietPreferences []string  `json:"diet_preferences"`
	FavoriteCuisine string    `json:"favorite_cuisine,omitempty"`
	Allergies       []string  `json:"allergies"`
	CalorieGoal     float64   `json:"calorie_goal"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
