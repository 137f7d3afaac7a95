package usecase

// Allergen/diet lexicon: canonical preference names mapped to the Norwegian
// keyword sets used for substring matching. Pure data, no logic.

// allergenKeywords maps a canonical allergy name to the ingredient keywords
// that indicate its presence. Allergies without an entry fall back to matching
// the allergy name itself.
var allergenKeywords = map[string][]string{
	"melk":      {"melk", "fløte", "smør", "ost", "yoghurt", "myse", "kasein", "laktose", "kefir", "rømme"},
	"gluten":    {"gluten", "hvete", "bygg", "rug", "spelt", "malt", "couscous", "bulgur", "semule"},
	"egg":       {"egg", "eggehvite", "eggeplomme", "albumin"},
	"nøtter":    {"nøtter", "mandler", "hasselnøtt", "valnøtt", "cashew", "pistasj", "pekan", "macadamia"},
	"peanøtter": {"peanøtt", "jordnøtt"},
	"fisk":      {"fisk", "laks", "torsk", "makrell", "sild", "ansjos", "tunfisk", "sei"},
	"skalldyr":  {"skalldyr", "reker", "krabbe", "hummer", "kreps", "blåskjell", "østers", "kamskjell"},
	"soya":      {"soya", "soja", "tofu", "edamame"},
	"sesam":     {"sesam", "tahini"},
	"sennep":    {"sennep"},
	"selleri":   {"selleri"},
	"lupin":     {"lupin"},
	"sulfitt":   {"sulfitt", "svoveldioksid", "e220", "e221", "e222", "e223", "e224"},
}

// dietRule holds the keyword sets for one diet. A positive keyword (explicit
// product label) wins over any forbidden-ingredient inference.
type dietRule struct {
	Forbidden []string
	Positive  []string
}

// dietRules maps canonical diet names to their rule sets. Diets without an
// entry are silently ignored during matching.
var dietRules = map[string]dietRule{
	"vegan": {
		Forbidden: []string{"melk", "fløte", "smør", "ost", "yoghurt", "myse", "kasein", "egg",
			"kjøtt", "svin", "storfe", "kylling", "lam", "fisk", "laks", "torsk",
			"reker", "gelatin", "honning"},
		Positive: []string{"vegansk", "vegan", "plantebasert", "100 plantebasert"},
	},
	"vegetar": {
		Forbidden: []string{"kjøtt", "svin", "storfe", "kylling", "lam", "bacon", "skinke",
			"fisk", "laks", "torsk", "reker", "gelatin", "kraft av kjøtt"},
		Positive: []string{"vegetar", "vegetarisk", "vegansk", "vegan", "plantebasert"},
	},
	"pescetar": {
		Forbidden: []string{"kjøtt", "svin", "storfe", "kylling", "lam", "bacon", "skinke", "gelatin"},
		Positive:  []string{"pescetar", "vegetar", "vegansk", "fisk", "laks", "torsk"},
	},
	"halal": {
		Forbidden: []string{"svin", "svinekjøtt", "bacon", "skinke", "spekk", "gelatin", "alkohol", "vin", "øl"},
		Positive:  []string{"halal"},
	},
	"glutenfri": {
		Forbidden: []string{"hvete", "bygg", "rug", "spelt", "malt", "gluten"},
		Positive:  []string{"glutenfri"},
	},
	"laktosefri": {
		Forbidden: []string{"melk", "fløte", "laktose", "myse"},
		Positive:  []string{"laktosefri", "laktoseredusert"},
	},
}

// organicKeywords are matched against product name + brand only.
var organicKeywords = []string{"økologisk", "organic", "øko", "bio"}

// welfareBrand pairs a certified producer keyword with the label reported
// back on a match.
type welfareBrand struct {
	Keyword string
	Label   string
}

// highWelfareBrands are certified high-animal-welfare producers, matched as
// substrings in list order (first match wins, order is part of the contract).
var highWelfareBrands = []welfareBrand{
	{"stange", "Stange (frittgående, saktevoksende kylling)"},
	{"hovelsrud", "Hovelsrud (økologisk gårdsdrift)"},
	{"holte gård", "Holte Gård (frittgående and og kylling)"},
	{"grøstad", "Grøstadgris (frilandsgris)"},
	{"homlagarden", "Homlagarden (frilandsdrift)"},
	{"dyrevernmerket", "Dyrevernmerket av Dyrevernalliansen"},
}

// mediumWelfareKeywords indicate above-standard husbandry without a certified
// brand behind them.
var mediumWelfareKeywords = []string{
	"økologisk", "frittgående", "friland", "gressfôret", "gressforet", "utegris", "beitemark", "løsdrift",
}

// animalProductKeywords indicate the product contains animal products at all;
// with no welfare marker on top these grade as low welfare.
var animalProductKeywords = []string{
	"melk", "fløte", "smør", "ost", "yoghurt", "egg", "kjøtt", "kylling",
	"svin", "storfe", "lam", "bacon", "skinke", "pølse",
}

// localFoodKeywords are matched against product name + brand to flag
// Norwegian/short-traveled food.
var localFoodKeywords = []string{"norsk", "norge", "lokalmat", "kortreist", "gårdsmat", "gård"}
