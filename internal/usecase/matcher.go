package usecase

import (
	"log"
	"strings"

	"github.com/renvare/backend/internal/domain"
)

// Match score adjustments. Allergen presence is the single most punishing
// factor and can drive the raw score below zero before clamping.
const (
	allergyWarningPenalty = 50
	dietWarningPenalty    = 20
	dietMatchBonus        = 10
	organicMatchBonus     = 15
	organicMissPenalty    = 10
	welfareHighBonus      = 20
	welfareMediumBonus    = 10
	welfareLowPenalty     = 15
	priorityWeightStep    = 2
)

// MatcherService evaluates products against a user's preference profile:
// allergy warnings, diet warnings/matches, organic/animal-welfare/local-food
// flags and a composite 0-100 match score. Pure and stateless per call.
type MatcherService struct {
	enableDebugLogging bool
}

// NewMatcherService creates a new preference matcher
func NewMatcherService(enableDebugLogging bool) *MatcherService {
	return &MatcherService{enableDebugLogging: enableDebugLogging}
}

// MatchProduct evaluates one product against the profile. A nil profile gives
// a neutral result: no warnings, unknown welfare, full score.
func (s *MatcherService) MatchProduct(product domain.Product, profile *domain.UserPreferenceProfile) domain.MatchInfo {
	info := domain.MatchInfo{
		AllergyWarnings:    []string{},
		DietWarnings:       []string{},
		DietMatches:        []string{},
		AnimalWelfareLevel: domain.WelfareUnknown,
		MatchScore:         100,
	}

	if profile == nil {
		return info
	}

	nameBrand := normalizeText(product.Name + " " + product.Brand)
	ingredients := normalizeText(product.IngredientsText)
	welfareText := nameBrand + " " + ingredients
	// Diet matching is lower-stakes than allergen safety, so the broader and
	// noisier allergen field text is acceptable here.
	dietText := normalizeText(product.AllergenText) + " " + ingredients + " " + normalizeText(product.Name)

	info.AllergyWarnings = checkAllergens(ingredients, profile.Allergies)
	info.DietWarnings, info.DietMatches = checkDiets(dietText, profile.Diets)
	info.OrganicMatch = containsAnyKeyword(nameBrand, organicKeywords)
	info.AnimalWelfareLevel, info.AnimalWelfareReason = checkAnimalWelfare(welfareText)
	info.LocalFoodMatch = containsAnyKeyword(nameBrand, localFoodKeywords)

	info.MatchScore = computeMatchScore(&info, profile)

	if s.enableDebugLogging {
		log.Printf("[MATCH] %q score=%d allergies=%d dietWarn=%d dietMatch=%d organic=%v welfare=%s",
			product.Name, info.MatchScore, len(info.AllergyWarnings), len(info.DietWarnings),
			len(info.DietMatches), info.OrganicMatch, info.AnimalWelfareLevel)
	}

	return info
}

// checkAllergens flags user allergies found in the ingredient text. It
// operates ONLY on the ingredient list: the upstream allergen field
// over-declares category-wide possible allergens and produces false positives.
// With no ingredient text it returns no warnings; a hazard is never claimed
// without evidence.
func checkAllergens(normalizedIngredients string, allergies []string) []string {
	warnings := []string{}
	if strings.TrimSpace(normalizedIngredients) == "" {
		return warnings
	}

	for _, allergy := range allergies {
		canonical := normalizeText(allergy)
		keywords, ok := allergenKeywords[canonical]
		if !ok {
			keywords = []string{canonical}
		}
		if containsAnyKeyword(normalizedIngredients, keywords) {
			warnings = append(warnings, allergy)
		}
	}
	return warnings
}

// checkDiets evaluates each user diet with a known rule set against the
// combined text. An explicit positive label wins over forbidden-ingredient
// inference; diets without a rule set are silently ignored.
func checkDiets(dietText string, diets []string) (warnings, matches []string) {
	warnings = []string{}
	matches = []string{}

	for _, diet := range diets {
		rule, ok := dietRules[normalizeText(diet)]
		if !ok {
			continue
		}
		if containsAnyKeyword(dietText, rule.Positive) {
			matches = append(matches, diet)
			continue
		}
		if containsAnyKeyword(dietText, rule.Forbidden) {
			warnings = append(warnings, diet)
		}
	}
	return warnings, matches
}

// checkAnimalWelfare grades animal-welfare standing with a first-match-wins
// three-tier lookup: certified brand, then welfare keyword, then generic
// animal-product keyword, else unknown.
func checkAnimalWelfare(welfareText string) (domain.WelfareLevel, string) {
	for _, brand := range highWelfareBrands {
		if strings.Contains(welfareText, brand.Keyword) {
			return domain.WelfareHigh, brand.Label
		}
	}
	for _, keyword := range mediumWelfareKeywords {
		if strings.Contains(welfareText, keyword) {
			return domain.WelfareMedium, keyword
		}
	}
	if containsAnyKeyword(welfareText, animalProductKeywords) {
		return domain.WelfareLow, ""
	}
	return domain.WelfareUnknown, ""
}

// computeMatchScore combines flat preference bonuses with priority-order
// reinforcement. Two stages on purpose: users both declare binary likes and
// rank their relative importance, without one fully overriding the other.
func computeMatchScore(info *domain.MatchInfo, profile *domain.UserPreferenceProfile) int {
	score := 100

	score -= allergyWarningPenalty * len(info.AllergyWarnings)
	score -= dietWarningPenalty * len(info.DietWarnings)
	score += dietMatchBonus * len(info.DietMatches)

	if profile.Other.Organic {
		if info.OrganicMatch {
			score += organicMatchBonus
		} else {
			score -= organicMissPenalty
		}
	}

	if profile.Other.AnimalWelfare {
		switch info.AnimalWelfareLevel {
		case domain.WelfareHigh:
			score += welfareHighBonus
		case domain.WelfareMedium:
			score += welfareMediumBonus
		case domain.WelfareLow:
			score -= welfareLowPenalty
		}
	}

	// Decaying reinforcement: earlier priority entries carry more weight.
	for i, entry := range profile.PriorityOrder {
		weight := (len(profile.PriorityOrder) - i) * priorityWeightStep
		switch entry {
		case domain.PriorityOrganic:
			if info.OrganicMatch {
				score += weight
			}
		case domain.PriorityAnimalWelfare:
			if info.AnimalWelfareLevel == domain.WelfareHigh || info.AnimalWelfareLevel == domain.WelfareMedium {
				score += weight
			}
		case domain.PriorityLocalFood:
			if info.LocalFoodMatch {
				score += weight
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// containsAnyKeyword reports whether text contains any keyword as a substring.
// Not word-boundary matching: "havre" also matches inside longer words, a
// known false-positive source.
func containsAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
