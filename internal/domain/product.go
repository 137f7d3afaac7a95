package domain

// Product represents one retail grocery product as returned by the product
// search collaborator (Kassalapp). IngredientsText and AllergenText are both
// free text; AllergenText over-declares category-wide possible allergens and
// must never be used for allergy safety checks.
type Product struct {
	Name            string  `json:"name"`
	Brand           string  `json:"brand,omitempty"`
	EAN             string  `json:"ean,omitempty"`
	Price           float64 `json:"currentPrice,omitempty"` // 0 means unknown
	ImageURL        string  `json:"imageUrl,omitempty"`
	Store           string  `json:"store,omitempty"`
	IngredientsText string  `json:"ingredients,omitempty"`
	AllergenText    string  `json:"allergens,omitempty"`
}

// RankedProduct pairs a product with its per-user evaluation. The combination
// is computed per request and never persisted.
type RankedProduct struct {
	Product        Product              `json:"product"`
	Match          MatchInfo            `json:"match"`
	Classification ClassificationResult `json:"classification"`
	Section        StoreSection         `json:"section"`
}

// StoreSection is a display grouping for shopping mode, ordered the way a
// typical Norwegian grocery store is laid out.
type StoreSection struct {
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	SortOrder int    `json:"sortOrder"`
}
