package product

import (
	"Go-Pantry-Tracker/domain"
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

var barcodePattern = regexp.MustCompile(`^\d{8,14}$`)

type (
	ProductService interface {
		LookupByBarcode(ctx context.Context, code string) (domain.Product, error)
		LookupByName(ctx context.Context, text string) ([]domain.Product, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{
		productRepository: productRepository,
	}
}

// LookupByBarcode returns domain.ErrProductNotFound when the code is unknown.
func (s *productService) LookupByBarcode(ctx context.Context, code string) (domain.Product, error) {
	code = strings.TrimSpace(code)
	if !barcodePattern.MatchString(code) {
		return domain.Product{}, domain.ErrInvalidBarcode
	}

	raw, found, err := s.productRepository.GetByBarcode(ctx, code)
	if err != nil {
		log.Errorf("product: lookup barcode %s: %v", code, err)
		return domain.Product{}, err
	}
	if !found {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return raw.toProduct(), nil
}

// LookupByName returns products with a name; it is empty on failure.
func (s *productService) LookupByName(ctx context.Context, text string) ([]domain.Product, error) {
	raws, err := s.productRepository.Search(ctx, strings.TrimSpace(text))
	if err != nil {
		log.Errorf("product: search %q: %v", text, err)
		return []domain.Product{}, err
	}

	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw.ProductName) == "" {
			continue
		}
		products = append(products, raw.toProduct())
	}
	return products, nil
}

// DraftFromProduct pre-fills an inventory draft from a looked up product.
func DraftFromProduct(p domain.Product, now time.Time) domain.FoodItemDraft {
	days := p.SuggestedShelfLifeDays
	if days <= 0 {
		days = ShelfLifeDays(p.CategoryGuess)
	}

	var calories *float64
	if p.Nutrition.Calories > 0 {
		c := p.Nutrition.Calories
		calories = &c
	}

	category := p.CategoryGuess
	if category == "" {
		category = domain.CategoryOther
	}

	return domain.FoodItemDraft{
		Name:           p.Name,
		Quantity:       1,
		Unit:           "pieces",
		Category:       category,
		Calories:       calories,
		ExpirationDate: now.AddDate(0, 0, days),
		Barcode:        p.Barcode,
		Location:       DefaultLocation(category),
	}
}
