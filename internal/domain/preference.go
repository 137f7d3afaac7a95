package domain

// Preference category identifiers used in UserPreferenceProfile.PriorityOrder.
// PriorityRenvare (additive-free "clean goods") is always implicitly first and
// is not user-reorderable.
const (
	PriorityRenvare       = "renvare"
	PriorityOrganic       = "organic"
	PriorityAnimalWelfare = "animal_welfare"
	PriorityLocalFood     = "local_food"
	PriorityLowestPrice   = "lowest_price"
)

// OtherPreferences holds the binary ethical/quality preferences. Absent fields
// default to false; the profile is validated once at the boundary so readers
// never need defensive checks.
type OtherPreferences struct {
	Organic       bool `json:"organic"`
	LowestPrice   bool `json:"lowestPrice"`
	AnimalWelfare bool `json:"animalWelfare"`
	LocalFood     bool `json:"localFood"`
}

// UserPreferenceProfile is one user's active preference set. Allergies and
// Diets hold canonical lowercase names ("melk", "vegan"); PriorityOrder lists
// preference category identifiers highest priority first.
type UserPreferenceProfile struct {
	Allergies     []string         `json:"allergies"`
	Diets         []string         `json:"diets"`
	Other         OtherPreferences `json:"otherPreferences"`
	PriorityOrder []string         `json:"priorityOrder"`
}

// WelfareLevel grades a product's animal-welfare standing.
type WelfareLevel string

const (
	WelfareHigh    WelfareLevel = "high"
	WelfareMedium  WelfareLevel = "medium"
	WelfareLow     WelfareLevel = "low"
	WelfareUnknown WelfareLevel = "unknown"
)

// MatchInfo is the per-product, per-user evaluation result. It is recomputed
// on every product view and never persisted, so it always reflects the
// current profile.
type MatchInfo struct {
	AllergyWarnings     []string     `json:"allergyWarnings"`
	DietWarnings        []string     `json:"dietWarnings"`
	DietMatches         []string     `json:"dietMatches"`
	OrganicMatch        bool         `json:"organicMatch"`
	AnimalWelfareLevel  WelfareLevel `json:"animalWelfareLevel"`
	AnimalWelfareReason string       `json:"animalWelfareReason,omitempty"`
	LocalFoodMatch      bool         `json:"localFoodMatch,omitempty"`
	MatchScore          int          `json:"matchScore"`
}
