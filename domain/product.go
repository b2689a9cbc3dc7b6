package domain

type (
	Product struct {
		Barcode                string           `json:"barcode"`
		Name                   string           `json:"name"`
		Brand                  string           `json:"brand,omitempty"`
		CategoryGuess          string           `json:"category_guess"`
		Nutrition              NutritionPer100g `json:"nutrition"`
		ImageURL               string           `json:"image_url,omitempty"`
		Ingredients            string           `json:"ingredients,omitempty"`
		Allergens              []string         `json:"allergens,omitempty"`
		SuggestedShelfLifeDays int              `json:"suggested_shelf_life_days"`
	}

	NutritionPer100g struct {
		Calories      float64 `json:"calories"`
		Protein       float64 `json:"protein"`
		Carbohydrates float64 `json:"carbohydrates"`
		Fat           float64 `json:"fat"`
		Fiber         float64 `json:"fiber"`
		Sugar         float64 `json:"sugar"`
	}

	ProductSearchRequest struct {
		Query string `json:"query" query:"query" validate:"required,min=2"`
	}
)
