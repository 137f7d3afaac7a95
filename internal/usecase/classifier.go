package usecase

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/renvare/backend/internal/domain"
)

// Decision policy thresholds and confidence weights
const (
	longListFragmentCount  = 8
	shortListFragmentCount = 3

	confidenceFloor   = 0.10
	confidenceCeiling = 0.98

	estimatedConfidence = 0.15 // category fallback without ingredient evidence
)

// emptyTextHighRiskCategories trigger the NOVA 4 estimate when no ingredient
// text is available at all.
var emptyTextHighRiskCategories = map[domain.ProductCategory]bool{
	domain.CategoryPizza:     true,
	domain.CategoryReadyMeal: true,
	domain.CategoryChips:     true,
	domain.CategoryCandy:     true,
	domain.CategorySnacks:    true,
	domain.CategorySoda:      true,
	domain.CategoryCookies:   true,
	domain.CategoryIceCream:  true,
	domain.CategorySausage:   true,
	domain.CategoryBacon:     true,
}

// weakComboHighRiskCategories combine with two or more weak signals to force
// NOVA 4 even without a strong signal.
var weakComboHighRiskCategories = map[domain.ProductCategory]bool{
	domain.CategorySnacks:          true,
	domain.CategoryCookies:         true,
	domain.CategoryBreakfastCereal: true,
	domain.CategorySpread:          true,
	domain.CategoryReadyMeal:       true,
}

// ClassifierConfig holds configuration for the classifier service
type ClassifierConfig struct {
	MaxBatchSize       int
	EnableDebugLogging bool
}

// ClassifierService scores a product's degree of industrial processing (NOVA
// group 1–4) from its free-text ingredient list. All methods are pure and
// stateless per call; the service holds only configuration.
type ClassifierService struct {
	maxBatchSize       int
	enableDebugLogging bool
}

// NewClassifierService creates a classifier service with the given configuration
func NewClassifierService(config ClassifierConfig) *ClassifierService {
	maxBatch := config.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = 100
	}
	return &ClassifierService{
		maxBatchSize:       maxBatch,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// MaxBatchSize returns the configured batch bound.
func (s *ClassifierService) MaxBatchSize() int {
	return s.maxBatchSize
}

// Classify evaluates one ingredient text and returns its NOVA classification.
// It is a total function: malformed content never errors. Without ingredient
// text it falls back to category policy, never asserting a high-confidence
// classification without evidence.
func (s *ClassifierService) Classify(input domain.ClassifyInput) domain.ClassificationResult {
	if strings.TrimSpace(input.IngredientsText) == "" {
		return s.classifyWithoutIngredients(input.ProductCategory)
	}

	normalized := normalizeText(input.IngredientsText)
	fragments := splitFragments(normalized)

	eNumbers := extractENumbers(normalized, input.Additives)
	hasENumbers := len(eNumbers) > 0

	strong := matchRules(strongRules, normalized)
	weak := matchRules(weakRules, normalized)
	realFood := matchRules(realFoodRules, normalized)

	counts := domain.DebugCounts{
		Fragments:    len(fragments),
		StrongHits:   len(strong),
		WeakHits:     len(weak),
		RealFoodHits: len(realFood),
		ENumbers:     len(eNumbers),
	}

	signals := make([]domain.Signal, 0, len(strong)+len(weak)+len(realFood))
	signals = append(signals, strong...)
	signals = append(signals, weak...)
	signals = append(signals, realFood...)

	group, confidence, rationale := decide(counts, hasENumbers, input.ProductCategory, strong)

	if s.enableDebugLogging {
		log.Printf("[CLASSIFY] nova=%d conf=%.2f fragments=%d strong=%d weak=%d real=%d e=%d",
			group, confidence, counts.Fragments, counts.StrongHits, counts.WeakHits,
			counts.RealFoodHits, counts.ENumbers)
	}

	return domain.ClassificationResult{
		NovaGroup:      &group,
		Confidence:     confidence,
		Rationale:      rationale,
		Signals:        signals,
		HasIngredients: true,
		IsEstimated:    false,
		Debug:          counts,
	}
}

// ClassifyBatch classifies up to MaxBatchSize inputs independently and returns
// results in input order. There is no cross-item state.
func (s *ClassifierService) ClassifyBatch(inputs []domain.ClassifyInput) ([]domain.ClassificationResult, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if len(inputs) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d items, max %d", domain.ErrBatchTooLarge, len(inputs), s.maxBatchSize)
	}

	results := make([]domain.ClassificationResult, len(inputs))
	for i, input := range inputs {
		results[i] = s.Classify(input)
	}
	return results, nil
}

// classifyWithoutIngredients implements the empty-text fallback policy: known
// high-risk categories get a low-confidence NOVA 4 estimate, everything else
// an explicit "cannot classify" result.
func (s *ClassifierService) classifyWithoutIngredients(category domain.ProductCategory) domain.ClassificationResult {
	if emptyTextHighRiskCategories[category] {
		group := 4
		return domain.ClassificationResult{
			NovaGroup:      &group,
			Confidence:     estimatedConfidence,
			Rationale:      "Ingen ingrediensliste tilgjengelig, men produktkategorien er typisk ultraprosessert (estimat).",
			Signals:        []domain.Signal{},
			HasIngredients: false,
			IsEstimated:    true,
		}
	}

	return domain.ClassificationResult{
		NovaGroup:      nil,
		Confidence:     0,
		Rationale:      "Ingen ingrediensliste tilgjengelig; kan ikke klassifisere produktet.",
		Signals:        []domain.Signal{},
		HasIngredients: false,
		IsEstimated:    false,
	}
}

// decide applies the fixed-priority decision policy. First matching branch
// wins; branch order is part of the published contract.
func decide(counts domain.DebugCounts, hasENumbers bool, category domain.ProductCategory, strong []domain.Signal) (int, float64, string) {
	switch {
	case counts.StrongHits >= 1:
		conf := 0.7 + math.Min(float64(counts.StrongHits)*0.1, 0.25)
		return 4, clampConfidence(conf), strongRationale(counts.StrongHits, strong)

	case counts.Fragments >= longListFragmentCount && (hasENumbers || counts.WeakHits >= 2):
		conf := 0.6 + math.Min(float64(counts.WeakHits)*0.05, 0.15)
		if hasENumbers {
			conf += 0.1
		}
		return 4, clampConfidence(conf), fmt.Sprintf(
			"Lang ingrediensliste (%d ingredienser) kombinert med tilsetningsstoffer tyder på et ultraprosessert produkt.",
			counts.Fragments)

	case weakComboHighRiskCategories[category] && counts.WeakHits >= 2:
		conf := 0.55 + math.Min(float64(counts.WeakHits)*0.05, 0.2)
		return 4, clampConfidence(conf), fmt.Sprintf(
			"Produktkategorien og %d svake signaler på prosessering tyder på et ultraprosessert produkt.",
			counts.WeakHits)

	case counts.WeakHits >= 1 || hasENumbers:
		conf := 0.5 + math.Min(float64(counts.WeakHits)*0.05, 0.2)
		if hasENumbers {
			conf += 0.1
		}
		return 3, clampConfidence(conf), fmt.Sprintf(
			"Inneholder tilsetningsstoffer eller svake signaler på industriell prosessering (%d funn).",
			counts.WeakHits+counts.ENumbers)

	case counts.Fragments <= shortListFragmentCount && counts.RealFoodHits >= 1:
		conf := 0.7 + math.Min(float64(counts.RealFoodHits)*0.1, 0.25)
		return 1, clampConfidence(conf), fmt.Sprintf(
			"Kort ingrediensliste (%d ingredienser) med rene råvarer.", counts.Fragments)

	default:
		conf := 0.4 + math.Min(float64(counts.RealFoodHits)*0.05, 0.2)
		return 2, clampConfidence(conf), "Ingen tydelige signaler på ultraprosessering; trolig et bearbeidet basisprodukt."
	}
}

// strongRationale cites up to two strong-signal descriptions.
func strongRationale(strongHits int, strong []domain.Signal) string {
	cited := make([]string, 0, 2)
	for _, sig := range strong {
		cited = append(cited, sig.Description)
		if len(cited) == 2 {
			break
		}
	}
	return fmt.Sprintf("Fant %d sterke signaler på ultraprosessering: %s.",
		strongHits, strings.Join(cited, ", "))
}

// clampConfidence limits confidence to [0.10, 0.98] and rounds to 2 decimals.
func clampConfidence(c float64) float64 {
	if c < confidenceFloor {
		c = confidenceFloor
	}
	if c > confidenceCeiling {
		c = confidenceCeiling
	}
	return math.Round(c*100) / 100
}
