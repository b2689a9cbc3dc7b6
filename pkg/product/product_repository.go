package product

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/pkg/remote"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const searchPageSize = 10

type (
	// ProductRepository reads an Open Food Facts style product database.
	ProductRepository interface {
		GetByBarcode(ctx context.Context, code string) (ProductRecord, bool, error)
		Search(ctx context.Context, text string) ([]ProductRecord, error)
	}

	// ProductRecord is a product as the remote database returns it.
	ProductRecord struct {
		Code         string            `json:"code"`
		ProductName  string            `json:"product_name"`
		Brands       string            `json:"brands"`
		Categories   string            `json:"categories"`
		CategoryTags []string          `json:"categories_tags"`
		ImageURL     string            `json:"image_url"`
		Ingredients  string            `json:"ingredients_text"`
		AllergenTags []string          `json:"allergens_tags"`
		Nutriments   productNutriments `json:"nutriments"`
	}

	productNutriments struct {
		EnergyKcal    float64 `json:"energy-kcal_100g"`
		Proteins      float64 `json:"proteins_100g"`
		Carbohydrates float64 `json:"carbohydrates_100g"`
		Fat           float64 `json:"fat_100g"`
		Fiber         float64 `json:"fiber_100g"`
		Sugars        float64 `json:"sugars_100g"`
	}

	productRepository struct {
		baseURL    string
		httpClient *http.Client
	}
)

func NewProductRepository(baseURL string, httpClient *http.Client) ProductRepository {
	if httpClient == nil {
		httpClient = remote.NewHTTPClient()
	}
	return &productRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (r *productRepository) GetByBarcode(ctx context.Context, code string) (ProductRecord, bool, error) {
	var resp struct {
		Status  int           `json:"status"`
		Product ProductRecord `json:"product"`
	}
	err := remote.GetJSON(ctx, r.httpClient, fmt.Sprintf("%s/api/v2/product/%s.json", r.baseURL, url.PathEscape(code)), &resp)
	if err != nil {
		return ProductRecord{}, false, err
	}
	if resp.Status != 1 {
		return ProductRecord{}, false, nil
	}
	if resp.Product.Code == "" {
		resp.Product.Code = code
	}
	return resp.Product, true, nil
}

func (r *productRepository) Search(ctx context.Context, text string) ([]ProductRecord, error) {
	params := url.Values{}
	params.Set("search_terms", text)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", strconv.Itoa(searchPageSize))

	var resp struct {
		Products []ProductRecord `json:"products"`
	}
	if err := remote.GetJSON(ctx, r.httpClient, r.baseURL+"/cgi/search.pl?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (p ProductRecord) toProduct() domain.Product {
	category := GuessCategory(p.ProductName, p.Categories, p.CategoryTags)

	allergens := make([]string, 0, len(p.AllergenTags))
	for _, tag := range p.AllergenTags {
		if _, name, ok := strings.Cut(tag, ":"); ok {
			tag = name
		}
		if tag != "" {
			allergens = append(allergens, tag)
		}
	}

	return domain.Product{
		Barcode:       p.Code,
		Name:          strings.TrimSpace(p.ProductName),
		Brand:         firstBrand(p.Brands),
		CategoryGuess: category,
		Nutrition: domain.NutritionPer100g{
			Calories:      p.Nutriments.EnergyKcal,
			Protein:       p.Nutriments.Proteins,
			Carbohydrates: p.Nutriments.Carbohydrates,
			Fat:           p.Nutriments.Fat,
			Fiber:         p.Nutriments.Fiber,
			Sugar:         p.Nutriments.Sugars,
		},
		ImageURL:               p.ImageURL,
		Ingredients:            p.Ingredients,
		Allergens:              allergens,
		SuggestedShelfLifeDays: ShelfLifeDays(category),
	}
}

func firstBrand(brands string) string {
	brand, _, _ := strings.Cut(brands, ",")
	return strings.TrimSpace(brand)
}
