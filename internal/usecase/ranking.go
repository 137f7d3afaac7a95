package usecase

import (
	"math"
	"sort"

	"github.com/renvare/backend/internal/domain"
)

// SortByPreference orders ranked products with a stable comparator chain,
// each stage a tie-break for the previous:
//
//  1. products with any allergy warning sort strictly after products with
//     none -- a safety partition, never overridden by score
//  2. higher match score first
//  3. lower NOVA group first (cleaner product wins ties); unclassified last
//  4. lower price first; missing price sorts last
//
// Profile preferences are already folded into the match score; the sort only
// reads the precomputed results. The input slice is sorted in place and
// returned for convenience.
func SortByPreference(products []domain.RankedProduct) []domain.RankedProduct {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]

		aSafe := len(a.Match.AllergyWarnings) == 0
		bSafe := len(b.Match.AllergyWarnings) == 0
		if aSafe != bSafe {
			return aSafe
		}

		if a.Match.MatchScore != b.Match.MatchScore {
			return a.Match.MatchScore > b.Match.MatchScore
		}

		aNova := novaOrInf(a.Classification)
		bNova := novaOrInf(b.Classification)
		if aNova != bNova {
			return aNova < bNova
		}

		return priceOrInf(a.Product) < priceOrInf(b.Product)
	})

	return products
}

// novaOrInf treats an unclassified product as worse than any classified one.
func novaOrInf(c domain.ClassificationResult) float64 {
	if c.NovaGroup == nil {
		return math.Inf(1)
	}
	return float64(*c.NovaGroup)
}

// priceOrInf treats a missing price as +infinity so it sorts last.
func priceOrInf(p domain.Product) float64 {
	if p.Price <= 0 {
		return math.Inf(1)
	}
	return p.Price
}
