package recipe

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/pkg/remote"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultCount   = 10
	defaultCuisine = "International"
)

type (
	// RecipeRepository is the remote recipe catalogue.
	RecipeRepository interface {
		ComplexSearch(ctx context.Context, query string, filters domain.RecipeSearchFilters) ([]entities.Recipe, error)
		FindByIngredients(ctx context.Context, names []string, ranking domain.IngredientRanking, ignorePantry bool, count int) ([]PartialRecipe, error)
		GetDetail(ctx context.Context, id int) (entities.Recipe, error)
	}

	// PartialRecipe is an ingredient match that still needs GetDetail.
	PartialRecipe struct {
		ID                    int    `json:"id"`
		Title                 string `json:"title"`
		Image                 string `json:"image"`
		UsedIngredientCount   int    `json:"usedIngredientCount"`
		MissedIngredientCount int    `json:"missedIngredientCount"`
	}

	recipeRepository struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}
)

func NewRecipeRepository(baseURL, apiKey string, httpClient *http.Client) RecipeRepository {
	if httpClient == nil {
		httpClient = remote.NewHTTPClient()
	}
	return &recipeRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (r *recipeRepository) ComplexSearch(ctx context.Context, query string, filters domain.RecipeSearchFilters) ([]entities.Recipe, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(countOrDefault(filters.Count)))
	params.Set("addRecipeInformation", "true")
	params.Set("addRecipeNutrition", "true")
	params.Set("fillIngredients", "true")
	if filters.Cuisine != "" {
		params.Set("cuisine", filters.Cuisine)
	}
	if filters.Diet != "" {
		params.Set("diet", filters.Diet)
	}
	if filters.Intolerances != "" {
		params.Set("intolerances", filters.Intolerances)
	}
	if filters.MaxTimeMinutes > 0 {
		params.Set("maxReadyTime", strconv.Itoa(filters.MaxTimeMinutes))
	}

	var resp struct {
		Results      []remoteRecipe `json:"results"`
		TotalResults int            `json:"totalResults"`
	}
	if err := r.get(ctx, "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}

	recipes := make([]entities.Recipe, 0, len(resp.Results))
	for _, raw := range resp.Results {
		recipes = append(recipes, raw.toRecipe())
	}
	return recipes, nil
}

func (r *recipeRepository) FindByIngredients(ctx context.Context, names []string, ranking domain.IngredientRanking, ignorePantry bool, count int) ([]PartialRecipe, error) {
	params := url.Values{}
	params.Set("ingredients", strings.Join(names, ","))
	params.Set("number", strconv.Itoa(countOrDefault(count)))
	params.Set("ranking", strconv.Itoa(int(ranking)))
	params.Set("ignorePantry", strconv.FormatBool(ignorePantry))

	var matches []PartialRecipe
	if err := r.get(ctx, "/recipes/findByIngredients", params, &matches); err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []PartialRecipe{}
	}
	return matches, nil
}

func (r *recipeRepository) GetDetail(ctx context.Context, id int) (entities.Recipe, error) {
	params := url.Values{}
	params.Set("includeNutrition", "true")

	var raw remoteRecipe
	if err := r.get(ctx, fmt.Sprintf("/recipes/%d/information", id), params, &raw); err != nil {
		return entities.Recipe{}, err
	}
	if raw.ID == 0 {
		return entities.Recipe{}, fmt.Errorf("%w: recipe %d has no id", domain.ErrRemoteMalformed, id)
	}
	return raw.toRecipe(), nil
}

func (r *recipeRepository) get(ctx context.Context, path string, params url.Values, out any) error {
	if r.apiKey == "" {
		return domain.ErrRemoteNotConfigured
	}
	params.Set("apiKey", r.apiKey)
	return remote.GetJSON(ctx, r.httpClient, r.baseURL+path+"?"+params.Encode(), out)
}

func countOrDefault(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	return count
}
