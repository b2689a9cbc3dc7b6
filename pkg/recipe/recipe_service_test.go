package recipe

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const omeletteDetail = `{
	"id": 101,
	"title": "Spinach Omelette",
	"image": "https://img.example/101.jpg",
	"readyInMinutes": 20,
	"servings": 2,
	"cuisines": ["French"],
	"dishTypes": ["breakfast"],
	"diets": ["vegetarian", "gluten free"],
	"analyzedInstructions": [{"steps": [{"number": 1, "step": "Whisk eggs."}, {"number": 2, "step": " Cook. "}]}],
	"extendedIngredients": [{"name": "eggs", "amount": 3, "unit": ""}, {"name": "milk", "amount": 50, "unit": "ml"}],
	"nutrition": {"nutrients": [{"name": "Fat", "amount": 12}, {"name": "Calories", "amount": 310.5}]}
}`

const stewDetail = `{
	"id": 202,
	"title": "Peanut Stew",
	"readyInMinutes": 75,
	"servings": 4,
	"cuisines": [],
	"dishTypes": ["main course", "dinner"],
	"diets": ["vegan"],
	"analyzedInstructions": [],
	"extendedIngredients": [{"name": "Peanut Butter", "amount": 2, "unit": "tbsp"}, {"name": "milk", "amount": 100, "unit": "ml"}]
}`

type fakeCatalogue struct {
	mu       sync.Mutex
	requests []*url.URL
	status   int
	server   *httptest.Server
}

func newFakeCatalogue(t *testing.T) *fakeCatalogue {
	f := &fakeCatalogue{status: http.StatusOK}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL)
		status := f.status
		f.mu.Unlock()

		if r.URL.Query().Get("apiKey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
			return
		}

		switch r.URL.Path {
		case "/recipes/findByIngredients":
			_, _ = w.Write([]byte(`[{"id":101,"title":"Spinach Omelette","image":"x"},{"id":202,"title":"Peanut Stew","image":"https://img.example/202.jpg"}]`))
		case "/recipes/101/information":
			_, _ = w.Write([]byte(omeletteDetail))
		case "/recipes/202/information":
			_, _ = w.Write([]byte(stewDetail))
		case "/recipes/complexSearch":
			_, _ = w.Write([]byte(`{"results":[` + omeletteDetail + `],"totalResults":1}`))
		case "/recipes/999/information":
			_, _ = w.Write([]byte(`{"id": "not a number"`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCatalogue) service(key string) RecipeService {
	return NewRecipeService(NewRecipeRepository(f.server.URL+"/", key, nil))
}

func (f *fakeCatalogue) paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.requests))
	for _, u := range f.requests {
		paths = append(paths, u.Path)
	}
	return paths
}

func (f *fakeCatalogue) request(path string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.requests {
		if u.Path == path {
			return u.Query()
		}
	}
	return nil
}

func TestSearchByTextNormalizesResults(t *testing.T) {
	f := newFakeCatalogue(t)

	recipes, err := f.service("test-key").SearchByText(context.Background(), "omelette", domain.RecipeSearchFilters{
		Cuisine:        "French",
		MaxTimeMinutes: 30,
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	assert.Equal(t, entities.Recipe{
		ID:      "101",
		Name:    "Spinach Omelette",
		Cuisine: "French",
		Time:    "20 mins",
		Ingredients: []entities.RecipeIngredient{
			{Name: "eggs", Amount: 3},
			{Name: "milk", Amount: 50, Unit: "ml"},
		},
		Instructions: []string{"Whisk eggs.", "Cook."},
		Difficulty:   domain.DifficultyEasy,
		Servings:     2,
		Calories:     310.5,
		Tags:         []string{"French", "breakfast", "vegetarian", "gluten free"},
		ImageURL:     "https://img.example/101.jpg",
	}, recipes[0])

	q := f.request("/recipes/complexSearch")
	assert.Equal(t, "omelette", q.Get("query"))
	assert.Equal(t, "French", q.Get("cuisine"))
	assert.Equal(t, "30", q.Get("maxReadyTime"))
	assert.Equal(t, "10", q.Get("number"))
	assert.Empty(t, q.Get("diet"))
}

func TestSearchByIngredientsFetchesEveryDetail(t *testing.T) {
	f := newFakeCatalogue(t)

	recipes, err := f.service("test-key").SearchByIngredients(context.Background(), []string{"milk", "eggs"}, domain.RankMaximizeUsed, false, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, "101", recipes[0].ID)
	assert.Equal(t, "202", recipes[1].ID)
	assert.Equal(t, defaultCuisine, recipes[1].Cuisine)
	assert.Equal(t, domain.DifficultyHard, recipes[1].Difficulty)
	assert.Equal(t, "https://img.example/202.jpg", recipes[1].ImageURL)
	assert.Equal(t, []string{}, recipes[1].Instructions)

	q := f.request("/recipes/findByIngredients")
	assert.Equal(t, "milk,eggs", q.Get("ingredients"))
	assert.Equal(t, "1", q.Get("ranking"))
	assert.Equal(t, "false", q.Get("ignorePantry"))
	assert.Equal(t, "2", q.Get("number"))
	assert.Len(t, f.paths(), 3)
}

func TestPersonalizedSuggestionsPrefersExpiringItems(t *testing.T) {
	f := newFakeCatalogue(t)
	inventory := []entities.FoodItem{
		{ID: "1", Name: "Milk", Status: string(domain.StatusExpiring)},
		{ID: "2", Name: "Spinach", Status: string(domain.StatusFresh)},
	}

	recipes, err := f.service("test-key").PersonalizedSuggestions(context.Background(), inventory, entities.UserProfile{})
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	q := f.request("/recipes/findByIngredients")
	require.NotNil(t, q)
	assert.Equal(t, "Milk", q.Get("ingredients"))
	assert.Equal(t, "2", q.Get("ranking"))
	assert.Equal(t, "true", q.Get("ignorePantry"))
	assert.Equal(t, "10", q.Get("number"))
}

func TestPersonalizedSuggestionsCapsIngredientList(t *testing.T) {
	f := newFakeCatalogue(t)
	var inventory []entities.FoodItem
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		inventory = append(inventory, entities.FoodItem{Name: name, Status: string(domain.StatusFresh)})
	}

	_, err := f.service("test-key").PersonalizedSuggestions(context.Background(), inventory, entities.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, "a,b,c,d,e", f.request("/recipes/findByIngredients").Get("ingredients"))
}

func TestPersonalizedSuggestionsFallsBackToCuisineSearch(t *testing.T) {
	f := newFakeCatalogue(t)

	_, err := f.service("test-key").PersonalizedSuggestions(context.Background(), nil, entities.UserProfile{FavoriteCuisine: "Thai"})
	require.NoError(t, err)

	q := f.request("/recipes/complexSearch")
	require.NotNil(t, q)
	assert.Equal(t, "Thai", q.Get("query"))
	assert.Equal(t, "45", q.Get("maxReadyTime"))
	assert.Equal(t, "5", q.Get("number"))
	assert.Nil(t, f.request("/recipes/findByIngredients"))

	g := newFakeCatalogue(t)
	_, err = g.service("test-key").PersonalizedSuggestions(context.Background(), []entities.FoodItem{}, entities.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, "healthy", g.request("/recipes/complexSearch").Get("query"))
}

func TestPersonalizedSuggestionsAppliesDietAndAllergies(t *testing.T) {
	f := newFakeCatalogue(t)
	inventory := []entities.FoodItem{{Name: "Milk", Status: string(domain.StatusWatch)}}

	recipes, err := f.service("test-key").PersonalizedSuggestions(context.Background(), inventory, entities.UserProfile{
		DietPreferences: []string{"VEG"},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	recipes, err = f.service("test-key").PersonalizedSuggestions(context.Background(), inventory, entities.UserProfile{
		DietPreferences: []string{"vegan"},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "202", recipes[0].ID)

	recipes, err = f.service("test-key").PersonalizedSuggestions(context.Background(), inventory, entities.UserProfile{
		Allergies: []string{"peanut"},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "101", recipes[0].ID)
}

func TestRemoteFailuresAreTyped(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, domain.ErrRemoteRateLimited},
		{"quota exhausted", http.StatusPaymentRequired, domain.ErrRemoteRateLimited},
		{"not found", http.StatusNotFound, domain.ErrRemoteNotFound},
		{"server error", http.StatusBadGateway, domain.ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeCatalogue(t)
			f.status = tt.status

			recipes, err := f.service("test-key").SearchByText(context.Background(), "soup", domain.RecipeSearchFilters{})
			assert.ErrorIs(t, err, tt.want)
			assert.NotNil(t, recipes)
			assert.Empty(t, recipes)
		})
	}
}

func TestRemoteMissingKey(t *testing.T) {
	f := newFakeCatalogue(t)

	recipes, err := f.service("").PersonalizedSuggestions(context.Background(), []entities.FoodItem{{Name: "Milk"}}, entities.UserProfile{})
	assert.ErrorIs(t, err, domain.ErrRemoteNotConfigured)
	assert.Empty(t, recipes)
	assert.Empty(t, f.paths())

	_, err = f.service("wrong-key").SearchByText(context.Background(), "soup", domain.RecipeSearchFilters{})
	assert.ErrorIs(t, err, domain.ErrRemoteNotConfigured)
}

func TestRemoteMalformedDetail(t *testing.T) {
	f := newFakeCatalogue(t)
	repo := NewRecipeRepository(f.server.URL, "test-key", nil)

	_, err := repo.GetDetail(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrRemoteMalformed)
}

func TestRemoteTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	repo := NewRecipeRepository(slow.URL, "test-key", &http.Client{Timeout: 50 * time.Millisecond})
	_, err := NewRecipeService(repo).SearchByText(context.Background(), "soup", domain.RecipeSearchFilters{})
	assert.ErrorIs(t, err, domain.ErrRemoteTimeout)
}

func TestDifficultyBuckets(t *testing.T) {
	assert.Equal(t, domain.DifficultyEasy, Difficulty(0))
	assert.Equal(t, domain.DifficultyEasy, Difficulty(30))
	assert.Equal(t, domain.DifficultyMedium, Difficulty(31))
	assert.Equal(t, domain.DifficultyMedium, Difficulty(60))
	assert.Equal(t, domain.DifficultyHard, Difficulty(61))
}

func TestSuggestionIngredients(t *testing.T) {
	assert.Equal(t, []string{"Milk", "Yogurt"}, SuggestionIngredients([]entities.FoodItem{
		{Name: "Milk", Status: string(domain.StatusExpiring)},
		{Name: "Rice", Status: string(domain.StatusFresh)},
		{Name: "Yogurt", Status: string(domain.StatusWatch)},
		{Name: "Ham", Status: string(domain.StatusExpired)},
	}))
	assert.Equal(t, []string{"Rice", "Ham"}, SuggestionIngredients([]entities.FoodItem{
		{Name: "Rice", Status: string(domain.StatusFresh)},
		{Name: "Ham", Status: string(domain.StatusExpired)},
	}))
	assert.Empty(t, SuggestionIngredients(nil))
}
