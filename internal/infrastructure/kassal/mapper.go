package kassal

import (
	"strings"

	"github.com/renvare/backend/internal/domain"
)

// searchResponse is the wire shape of the Kassalapp product search endpoint.
type searchResponse struct {
	Data []kassalProduct `json:"data"`
}

type kassalProduct struct {
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Vendor       string          `json:"vendor"`
	EAN          string          `json:"ean"`
	CurrentPrice float64         `json:"current_price"`
	Image        string          `json:"image"`
	Ingredients  string          `json:"ingredients"`
	Allergens    []kassalAllergen `json:"allergens"`
	Store        kassalStore     `json:"store"`
}

type kassalAllergen struct {
	DisplayName string `json:"display_name"`
	Contains    string `json:"contains"` // "YES", "NO" or "CAN_CONTAIN_TRACES"
}

type kassalStore struct {
	Name string `json:"name"`
}

// mapProducts converts Kassalapp payloads to domain products.
func mapProducts(items []kassalProduct) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, mapProduct(item))
	}
	return products
}

func mapProduct(item kassalProduct) domain.Product {
	brand := item.Brand
	if brand == "" {
		brand = item.Vendor
	}

	return domain.Product{
		Name:            item.Name,
		Brand:           brand,
		EAN:             item.EAN,
		Price:           item.CurrentPrice,
		ImageURL:        item.Image,
		Store:           item.Store.Name,
		IngredientsText: item.Ingredients,
		AllergenText:    declaredAllergens(item.Allergens),
	}
}

// declaredAllergens joins the names of allergens the vendor declares as
// present. This field over-declares (category-wide possible allergens), so
// downstream matching uses it only for low-stakes diet checks, never for
// allergy safety.
func declaredAllergens(allergens []kassalAllergen) string {
	var present []string
	for _, a := range allergens {
		if a.Contains == "YES" || a.Contains == "CAN_CONTAIN_TRACES" {
			present = append(present, a.DisplayName)
		}
	}
	return strings.Join(present, ", ")
}
