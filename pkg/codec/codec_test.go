package codec

import (
	"strings"
	"testing"
	"time"

	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBundle() domain.StateBundle {
	added := time.Date(2024, 3, 1, 8, 15, 30, 250_000_000, time.UTC)
	expires := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	calories := 42.5

	omelette := entities.Recipe{
		ID:           "r-1",
		Name:         "Spinach Omelette",
		Cuisine:      "French",
		Time:         "15 min",
		Ingredients:  []entities.RecipeIngredient{{Name: "egg", Amount: 2, Unit: "pieces"}, {Name: "spinach", Amount: 50, Unit: "g", Optional: true}},
		Instructions: []string{"Whisk the eggs", "Cook with spinach"},
		Difficulty:   domain.DifficultyEasy,
		Servings:     1,
		Calories:     320,
		Tags:         []string{"vegetarian", "breakfast"},
	}

	return domain.StateBundle{
		FoodItems: []entities.FoodItem{{
			ID:               "f-1",
			Name:             "Milk",
			Quantity:         750,
			OriginalQuantity: 1000,
			Unit:             "ml",
			Category:         domain.CategoryDairy,
			Calories:         &calories,
			ExpirationDate:   expires,
			AddedDate:        added,
			Status:           string(domain.StatusWatch),
			Location:         domain.LocationFresh,
		}},
		Recipes: []entities.Recipe{omelette},
		MealPlans: []entities.MealPlan{{
			ID:    "m-1",
			Date:  "2024-03-02",
			Meals: entities.Meals{Breakfast: &omelette, Snacks: []entities.Recipe{}},
			Notes: "light day",
		}},
		UserProfile: entities.UserProfile{
			ID:              "u-1",
			Name:            "Sam",
			Email:           "sam@example.com",
			DietPreferences: []string{"vegetarian"},
			Allergies:       []string{},
			CalorieGoal:     2000,
			CreatedAt:       added,
			UpdatedAt:       added.Add(time.Hour),
		},
		ShoppingList: []entities.ShoppingItem{{
			ID:        "s-1",
			Name:      "Bread",
			Quantity:  1,
			Unit:      "pieces",
			Category:  domain.CategoryBakery,
			AddedDate: added,
		}},
	}
}

func TestRoundTripPreservesBundle(t *testing.T) {
	bundle := sampleBundle()

	encoded, err := Encode(bundle)
	require.NoError(t, err)

	var decoded domain.StateBundle
	require.NoError(t, Decode(encoded, &decoded))

	assert.Equal(t, bundle, decoded)
}

func TestEncodeTagsDates(t *testing.T) {
	instant := time.Date(2024, 5, 6, 7, 8, 9, 10_000_000, time.UTC)

	encoded, err := Encode(map[string]any{"when": instant})
	require.NoError(t, err)

	assert.JSONEq(t, `{"when":{"__type":"Date","value":"2024-05-06T07:08:09.010Z"}}`, encoded)
}

func TestDateInstantSurvivesForeignZone(t *testing.T) {
	zone := time.FixedZone("WIB", 7*60*60)
	instant := time.Date(2024, 1, 2, 3, 4, 5, 678_000_000, zone)

	encoded, err := Encode(struct {
		At time.Time `json:"at"`
	}{At: instant})
	require.NoError(t, err)

	var out struct {
		At time.Time `json:"at"`
	}
	require.NoError(t, Decode(encoded, &out))

	assert.True(t, out.At.Equal(instant))
}

func TestEncodeTruncatesToMilliseconds(t *testing.T) {
	instant := time.Date(2024, 1, 2, 3, 4, 5, 678_912_345, time.UTC)

	encoded, err := Encode([]time.Time{instant})
	require.NoError(t, err)

	var out []time.Time
	require.NoError(t, Decode(encoded, &out))

	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(instant.Truncate(time.Millisecond)))
}

func TestDecodeValueRestoresDateLeaves(t *testing.T) {
	value, err := DecodeValue(`{"items":[{"added":{"__type":"Date","value":"2024-02-03T04:05:06.007Z"},"n":3}]}`)
	require.NoError(t, err)

	root := value.(map[string]any)
	item := root["items"].([]any)[0].(map[string]any)

	added, ok := item["added"].(time.Time)
	require.True(t, ok)
	assert.True(t, added.Equal(time.Date(2024, 2, 3, 4, 5, 6, 7_000_000, time.UTC)))
	assert.Equal(t, "3", item["n"].(interface{ String() string }).String())
}

func TestUnknownMarkerPassesThrough(t *testing.T) {
	value, err := DecodeValue(`{"__type":"Money","value":"12.00"}`)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"__type": "Money", "value": "12.00"}, value)
}

func TestDecodeRejectsCorruptInput(t *testing.T) {
	var out []entities.FoodItem

	assert.Error(t, Decode(`[{"id": "broken"`, &out))
	assert.Error(t, Decode(`{} {}`, &out))
	assert.Error(t, Decode(`{"id":"not-a-list"}`, &out))
}

func TestEncodeRejectsUnsupportedValues(t *testing.T) {
	_, err := Encode(map[string]any{"fn": func() {}})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported"))
}

func TestEqualComparesDecodedValues(t *testing.T) {
	assert.True(t, Equal(`{"a":1,"b":[true]}`, `{ "b": [true], "a": 1 }`))
	assert.False(t, Equal(`{"a":1}`, `{"a":2}`))
	assert.False(t, Equal(`{"a":1}`, `not json`))
}
