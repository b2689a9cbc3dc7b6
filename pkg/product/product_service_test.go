package product

import (
	"Go-Pantry-Tracker/domain"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/product/3017620422003.json":
			_, _ = w.Write([]byte(`{"status":1,"product":{
				"product_name":" Whole Milk ",
				"brands":"Farm Fresh, Big Dairy Co",
				"categories_tags":["en:dairies","en:milks"],
				"image_url":"https://img.example/milk.jpg",
				"ingredients_text":"milk",
				"allergens_tags":["en:milk"],
				"nutriments":{"energy-kcal_100g":64,"proteins_100g":3.3,"fat_100g":3.6,"sugars_100g":4.8}
			}}`))
		case "/api/v2/product/00000000.json":
			_, _ = w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
		case "/cgi/search.pl":
			assert.Equal(t, "olive oil", r.URL.Query().Get("search_terms"))
			assert.Equal(t, "1", r.URL.Query().Get("json"))
			_, _ = w.Write([]byte(`{"products":[
				{"code":"111","product_name":"Extra Virgin Olive Oil","categories":"Fats, Vegetable oils","nutriments":{"energy-kcal_100g":884}},
				{"code":"222","product_name":""},
				{"code":"333","product_name":"Olive Tapenade","categories":"Condiments, Sauces"}
			]}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupByBarcode(t *testing.T) {
	srv := newProductServer(t)
	svc := NewProductService(NewProductRepository(srv.URL, nil))

	p, err := svc.LookupByBarcode(context.Background(), " 3017620422003 ")
	require.NoError(t, err)

	assert.Equal(t, domain.Product{
		Barcode:       "3017620422003",
		Name:          "Whole Milk",
		Brand:         "Farm Fresh",
		CategoryGuess: domain.CategoryDairy,
		Nutrition: domain.NutritionPer100g{
			Calories: 64,
			Protein:  3.3,
			Fat:      3.6,
			Sugar:    4.8,
		},
		ImageURL:               "https://img.example/milk.jpg",
		Ingredients:            "milk",
		Allergens:              []string{"milk"},
		SuggestedShelfLifeDays: 10,
	}, p)
}

func TestLookupByBarcodeFailures(t *testing.T) {
	srv := newProductServer(t)
	svc := NewProductService(NewProductRepository(srv.URL, nil))

	_, err := svc.LookupByBarcode(context.Background(), "00000000")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.LookupByBarcode(context.Background(), "12ab")
	assert.ErrorIs(t, err, domain.ErrInvalidBarcode)

	_, err = svc.LookupByBarcode(context.Background(), "99999999")
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestLookupByName(t *testing.T) {
	srv := newProductServer(t)
	svc := NewProductService(NewProductRepository(srv.URL+"/", nil))

	products, err := svc.LookupByName(context.Background(), "olive oil")
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Extra Virgin Olive Oil", products[0].Name)
	assert.Equal(t, domain.CategoryOils, products[0].CategoryGuess)
	assert.Equal(t, 365, products[0].SuggestedShelfLifeDays)
	assert.Equal(t, domain.CategoryCondiments, products[1].CategoryGuess)
}

func TestLookupByNameFailureIsEmpty(t *testing.T) {
	svc := NewProductService(NewProductRepository("http://127.0.0.1:1", nil))

	products, err := svc.LookupByName(context.Background(), "milk")
	assert.Error(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGuessCategory(t *testing.T) {
	assert.Equal(t, domain.CategoryMeat, GuessCategory("Chicken soup", "", nil))
	assert.Equal(t, domain.CategoryBakery, GuessCategory("", "", []string{"en:cereals-and-potatoes", "en:breads"}))
	assert.Equal(t, domain.CategoryFruits, GuessCategory("Bananas", "", nil))
	assert.Equal(t, domain.CategoryPantry, GuessCategory("Basmati rice", "", nil))
	assert.Equal(t, domain.CategoryOther, GuessCategory("Mystery box", "", nil))
}

func TestDraftFromProduct(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	draft := DraftFromProduct(domain.Product{
		Barcode:                "3017620422003",
		Name:                   "Whole Milk",
		CategoryGuess:          domain.CategoryDairy,
		Nutrition:              domain.NutritionPer100g{Calories: 64},
		SuggestedShelfLifeDays: 10,
	}, now)

	require.NotNil(t, draft.Calories)
	assert.Equal(t, 64.0, *draft.Calories)
	assert.Equal(t, now.AddDate(0, 0, 10), draft.ExpirationDate)
	assert.Equal(t, domain.LocationFresh, draft.Location)
	assert.Equal(t, "3017620422003", draft.Barcode)
	assert.Equal(t, 1.0, draft.Quantity)

	draft = DraftFromProduct(domain.Product{Name: "Thing"}, now)
	assert.Nil(t, draft.Calories)
	assert.Equal(t, domain.CategoryOther, draft.Category)
	assert.Equal(t, domain.LocationPantry, draft.Location)
	assert.Equal(t, now.AddDate(0, 0, 30), draft.ExpirationDate)
}
