package entities

type MealPlan struct {
	ID    string `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD
	Meals Meals  `json:"meals"`
	Notes string `json:"notes,omitempty"`
}

type Meals struct {
	Breakfast *Recipe  `json:"breakfast,omitempty"`
	Lunch     *Recipe  `json:"lunch,omitempty"`
	Dinner    *Recipe  `json:"dinner,omitempty"`
	Snacks    []Recipe `json:"snacks"`
}
