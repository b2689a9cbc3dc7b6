package domain

import (
	"errors"
)

var (
	MessageSuccessGetProfile    = "user profile retrieved successfully"
	MessageSuccessUpdateProfile = "user profile updated successfully"

	MessageFailedUpdateProfile = "failed to update user profile"

	ErrInvalidProfilePatch = errors.New("invalid user profile patch")
)

type UserProfilePatch struct {
	Name            *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Email           *string   `json:"email,omitempty" validate:"omitempty,email"`
	Avatar          *string   `json:"avatar,omitempty"`
	DietPreferences *[]string `json:"diet_preferences,omitempty"`
	FavoriteCuisine *string   `json:"favorite_cuisine,omitempty"`
	Allergies       *[]string `json:"allergies,omitempty"`
	CalorieGoal     *float64  `json:"calorie_goal,omitempty" validate:"omitempty,gte=0"`
}
