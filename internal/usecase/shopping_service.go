package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/renvare/backend/internal/domain"
)

var nonAlphanumericRegex = regexp.MustCompile(`[^a-zæøå0-9\s]`)

// ShoppingServiceConfig holds configuration for the shopping service
type ShoppingServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ShoppingService orchestrates the shopping-mode flow: cached product search,
// per-product classification and preference matching, preference-ordered
// ranking and store-section bucketing. Classification and matching are
// independent per product; only the ranking stage combines their outputs, and
// the combination is never stored.
type ShoppingService struct {
	cache              domain.CacheRepository
	searchClient       domain.ProductSearchClient
	classifier         *ClassifierService
	matcher            *MatcherService
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewShoppingService creates a new shopping service with dependencies
func NewShoppingService(
	cache domain.CacheRepository,
	searchClient domain.ProductSearchClient,
	classifier *ClassifierService,
	matcher *MatcherService,
	config ShoppingServiceConfig,
) *ShoppingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ShoppingService{
		cache:              cache,
		searchClient:       searchClient,
		classifier:         classifier,
		matcher:            matcher,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SearchRanked searches for products matching the query and returns them
// evaluated against the profile, best match first.
// Flow: check cache -> search Kassalapp -> classify + match each -> sort.
// Only the raw search result is cached; the ranked output depends on the
// profile and is recomputed on every call.
func (s *ShoppingService) SearchRanked(
	ctx context.Context,
	query string,
	profile *domain.UserPreferenceProfile,
) ([]domain.RankedProduct, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := s.searchWithCache(ctx, query)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedProduct, 0, len(products))
	for _, product := range products {
		classification := s.classifier.Classify(domain.ClassifyInput{
			IngredientsText: product.IngredientsText,
		})
		match := s.matcher.MatchProduct(product, profile)

		// Section is derived from the combined search text: query plus the
		// product's own name and brand.
		section := CategorizeItem(query + " " + product.Name + " " + product.Brand)

		ranked = append(ranked, domain.RankedProduct{
			Product:        product,
			Match:          match,
			Classification: classification,
			Section:        section,
		})
	}

	SortByPreference(ranked)

	if s.enableDebugLogging {
		log.Printf("[SHOPPING] query=%q products=%d", query, len(ranked))
	}

	return ranked, nil
}

// searchWithCache returns cached search results when fresh, otherwise hits
// the Kassalapp client and caches what it found.
func (s *ShoppingService) searchWithCache(ctx context.Context, query string) ([]domain.Product, error) {
	cacheKey := searchCacheKey(query)

	if value, err := s.cache.Get(ctx, cacheKey); err == nil {
		if products, ok := value.([]domain.Product); ok {
			if s.enableDebugLogging {
				log.Printf("[SHOPPING] cache hit for %q (%d products)", query, len(products))
			}
			return products, nil
		}
	}

	products, err := s.searchClient.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("product search failed: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}

	if err := s.cache.Set(ctx, cacheKey, products, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[SHOPPING] cache set failed for %q: %v", query, err)
	}

	return products, nil
}

// searchCacheKey normalizes a query into a stable cache key.
// Format: "search:{normalized_query}"
func searchCacheKey(query string) string {
	normalized := normalizeText(query)
	normalized = nonAlphanumericRegex.ReplaceAllString(normalized, "")
	normalized = multipleSpacesRegex.ReplaceAllString(normalized, " ")
	return "search:" + strings.TrimSpace(normalized)
}
