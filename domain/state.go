package domain

import (
	"errors"

	"Go-Pantry-Tracker/entities"
)

// Partition names one independently persisted slice of the store state.
type Partition string

const (
	PartitionFoodItems    Partition = "@pantry/food_items"
	PartitionRecipes      Partition = "@pantry/recipes"
	PartitionMealPlans    Partition = "@pantry/meal_plans"
	PartitionUserProfile  Partition = "@pantry/user_profile"
	PartitionShoppingList Partition = "@pantry/shopping_list"
)

// AllPartitions is the fixed set written by SaveAll and read by LoadAll.
var AllPartitions = []Partition{
	PartitionFoodItems,
	PartitionRecipes,
	PartitionMealPlans,
	PartitionUserProfile,
	PartitionShoppingList,
}

type LifecycleState string

const (
	StateUninitialized LifecycleState = "uninitialized"
	StateLoading       LifecycleState = "loading"
	StateReady         LifecycleState = "ready"
)

var (
	MessageSuccessGetState = "store state retrieved successfully"
	MessageSuccessFlush    = "pending changes persisted"
	MessageFailedFlush     = "failed to persist pending changes"

	ErrStorageRead      = errors.New("storage read failed")
	ErrStorageWrite     = errors.New("storage write failed")
	ErrPartitionMissing = errors.New("partition not found in storage")
	ErrDecode           = errors.New("stored value could not be decoded")
	ErrUnknownPartition = errors.New("unknown partition")
)

// StateBundle is the full persisted state, one field per partition.
type StateBundle struct {
	FoodItems    []entities.FoodItem     `json:"food_items"`
	Recipes      []entities.Recipe       `json:"recipes"`
	MealPlans    []entities.MealPlan     `json:"meal_plans"`
	UserProfile  entities.UserProfile    `json:"user_profile"`
	ShoppingList []entities.ShoppingItem `json:"shopping_list"`
}
