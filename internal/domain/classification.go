package domain

import "regexp"

// SignalKind identifies which rule table a classification rule belongs to.
type SignalKind string

const (
	// StrongSignal marks high-confidence evidence of ultra-processing
	StrongSignal SignalKind = "strong"
	// WeakSignal marks moderate evidence of industrial processing
	WeakSignal SignalKind = "weak"
	// RealFoodSignal marks evidence of minimal processing (whole foods, traditional preparation)
	RealFoodSignal SignalKind = "real_food"
)

// Rule is a single immutable classification rule. Rules are defined at process
// start, organized into ordered tables per kind, and matched against normalized
// ingredient text. IDs are globally unique across all tables.
type Rule struct {
	ID          string
	Pattern     *regexp.Regexp
	Kind        SignalKind
	Description string
}

// Signal records one rule match against an ingredient text. A rule produces at
// most one Signal per distinct matched substring.
type Signal struct {
	Kind        SignalKind `json:"kind"`
	RuleID      string     `json:"ruleId"`
	MatchedText string     `json:"matchedText"`
	Description string     `json:"description"`
}

// ProductCategory is the coarse product-type hint used for category fallback
// when no ingredient text is available.
type ProductCategory string

const (
	CategorySnacks          ProductCategory = "snacks"
	CategoryBreakfastCereal ProductCategory = "breakfast_cereal"
	CategoryBeverage        ProductCategory = "beverage"
	CategoryCookies         ProductCategory = "cookies"
	CategorySpread          ProductCategory = "spread"
	CategoryDairy           ProductCategory = "dairy"
	CategoryReadyMeal       ProductCategory = "ready_meal"
	CategoryPizza           ProductCategory = "pizza"
	CategoryChips           ProductCategory = "chips"
	CategoryCandy           ProductCategory = "candy"
	CategorySoda            ProductCategory = "soda"
	CategoryIceCream        ProductCategory = "ice_cream"
	CategorySausage         ProductCategory = "sausage"
	CategoryBacon           ProductCategory = "bacon"
	CategoryOther           ProductCategory = "other"
)

// KnownCategories lists every category value accepted at the API boundary.
var KnownCategories = map[ProductCategory]bool{
	CategorySnacks:          true,
	CategoryBreakfastCereal: true,
	CategoryBeverage:        true,
	CategoryCookies:         true,
	CategorySpread:          true,
	CategoryDairy:           true,
	CategoryReadyMeal:       true,
	CategoryPizza:           true,
	CategoryChips:           true,
	CategoryCandy:           true,
	CategorySoda:            true,
	CategoryIceCream:        true,
	CategorySausage:         true,
	CategoryBacon:           true,
	CategoryOther:           true,
}

// ClassifyInput is one classification request. IngredientsText is the raw
// Norwegian ingredient list as printed on the package; Additives may carry
// E-numbers already extracted upstream.
type ClassifyInput struct {
	IngredientsText string          `json:"ingredients_text"`
	Additives       []string        `json:"additives,omitempty"`
	ProductCategory ProductCategory `json:"product_category,omitempty"`
	Language        string          `json:"language,omitempty"`
}

// DebugCounts exposes the raw hit counts behind a classification decision.
type DebugCounts struct {
	Fragments    int `json:"fragments"`
	StrongHits   int `json:"strongHits"`
	WeakHits     int `json:"weakHits"`
	RealFoodHits int `json:"realFoodHits"`
	ENumbers     int `json:"eNumbers"`
}

// ClassificationResult is the outcome of classifying one ingredient text.
// NovaGroup is nil only when no ingredient text was supplied and the product
// category is not a known high-risk category. IsEstimated is true whenever the
// result came from category fallback rather than ingredient evidence.
type ClassificationResult struct {
	NovaGroup      *int        `json:"nova_group"`
	Confidence     float64     `json:"confidence"`
	Rationale      string      `json:"rationale"`
	Signals        []Signal    `json:"signals"`
	HasIngredients bool        `json:"has_ingredients"`
	IsEstimated    bool        `json:"is_estimated"`
	Debug          DebugCounts `json:"debug"`
}
