package entities

type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Cuisine      string             `json:"cuisine"`
	Time         string             `json:"time"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Difficulty   string             `json:"difficulty"` // easy, medium, hard
	Servings     int                `json:"servings"`
	Calories     float64            `json:"calories"`
	Tags         []string           `json:"tags"`
	ImageURL     string             `json:"image_url,omitempty"`
}

type RecipeIngredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional,omitempty"`
}
