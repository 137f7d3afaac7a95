package usecase

import (
	"fmt"
	"regexp"

	"github.com/renvare/backend/internal/domain"
)

// eNumberRegex extracts EU additive codes like "E471", "e 330" or "E150a"
// from normalized ingredient text.
var eNumberRegex = regexp.MustCompile(`(?i)\be\s?(\d{3}[a-d]?)\b`)

// newRule compiles a classification rule. Panics on an invalid pattern, which
// can only happen at process start since the tables below are the sole callers.
func newRule(id, pattern string, kind domain.SignalKind, description string) domain.Rule {
	return domain.Rule{
		ID:          id,
		Pattern:     regexp.MustCompile(`(?i)` + pattern),
		Kind:        kind,
		Description: description,
	}
}

// strongRules flag high-confidence markers of ultra-processing. A single hit
// forces NOVA group 4. Order matters: tables are matched top to bottom and the
// resulting signal order feeds the rationale.
var strongRules = []domain.Rule{
	newRule("strong-aroma", `aroma`, domain.StrongSignal,
		"aroma/naturlig aroma (industrielt smaksstoff)"),
	newRule("strong-msg", `natriumglutamat|monosodiumglutamat|smaksforsterker|e62\d`, domain.StrongSignal,
		"smaksforsterker (MSG/E620-serien)"),
	newRule("strong-yeast-extract", `gjærekstrakt`, domain.StrongSignal,
		"gjærekstrakt"),
	newRule("strong-sweetener", `aspartam|sukralose|acesulfam|sakkarin|steviolglykosid|søtstoff|e9[5-6]\d`, domain.StrongSignal,
		"kunstig søtstoff (E950–E969)"),
	newRule("strong-emulsifier", `emulgator`, domain.StrongSignal,
		"emulgator"),
	newRule("strong-stabilizer", `stabilisator`, domain.StrongSignal,
		"stabilisator"),
	newRule("strong-thickener", `fortykningsmiddel`, domain.StrongSignal,
		"fortykningsmiddel"),
	newRule("strong-e400-series", `e4\d{2}`, domain.StrongSignal,
		"konsistensmiddel (E400-serien)"),
	newRule("strong-gum", `xanthan|karragenan|guarkjernemel|johannesbrødkjernemel`, domain.StrongSignal,
		"industriell gummi (xanthan/karragenan)"),
	newRule("strong-syrup", `glukosesirup|fruktosesirup|invertsukker|maissirup`, domain.StrongSignal,
		"industriell sirup (glukose/fruktose)"),
	newRule("strong-maltodextrin", `maltodekstrin`, domain.StrongSignal,
		"maltodekstrin"),
	newRule("strong-modified-starch", `modifisert \w*stivelse|e14\d{2}`, domain.StrongSignal,
		"modifisert stivelse (E14xx)"),
	newRule("strong-hydrogenated-fat", `herdet fett|delvis herdet|hydrogenert`, domain.StrongSignal,
		"herdet/hydrogenert fett"),
	newRule("strong-protein-isolate", `proteinisolat|proteinkonsentrat|isolert \w*protein`, domain.StrongSignal,
		"proteinisolat/-konsentrat"),
	newRule("strong-colorant", `fargestoff|karamellfarge|e150[a-d]?|e120\b|e160b|annatto|karmin`, domain.StrongSignal,
		"fargestoff (E150/E120/E160b)"),
}

// weakRules flag moderate processing markers. They raise a product to NOVA 3
// on their own, or to NOVA 4 in combination with list length or category.
var weakRules = []domain.Rule{
	newRule("weak-preservative", `konserveringsmiddel|e2\d{2}`, domain.WeakSignal,
		"konserveringsmiddel (E2xx)"),
	newRule("weak-antioxidant", `antioksidant|e3\d{2}`, domain.WeakSignal,
		"antioksidant (E3xx)"),
	newRule("weak-humectant", `fuktighetsbevarende`, domain.WeakSignal,
		"fuktighetsbevarende middel"),
	newRule("weak-sorbitol", `sorbitol|e420`, domain.WeakSignal,
		"sorbitol (E420)"),
	newRule("weak-glycerol", `glyserol|e422`, domain.WeakSignal,
		"glyserol (E422)"),
	newRule("weak-palm-oil", `palmeolje|palmefett`, domain.WeakSignal,
		"palmeolje"),
	newRule("weak-refined-oil", `raffinert \w*olje|vegetabilsk olje|solsikkeolje`, domain.WeakSignal,
		"raffinert vegetabilsk olje"),
}

// realFoodRules flag markers of minimal processing. Note "røkt" deliberately
// does not match "røykaroma", which is covered by the aroma strong rule.
var realFoodRules = []domain.Rule{
	newRule("real-whole-grain", `fullkorn|helkorn|havregryn|hele korn`, domain.RealFoodSignal,
		"fullkorn"),
	newRule("real-nuts", `hele nøtter|nøtter|mandler|hasselnøtter`, domain.RealFoodSignal,
		"hele nøtter"),
	newRule("real-legumes", `bønner|linser|kikerter|erter`, domain.RealFoodSignal,
		"belgfrukter"),
	newRule("real-fruit", `frukt\b|eple|bær\b|banan`, domain.RealFoodSignal,
		"frukt"),
	newRule("real-vegetables", `grønnsaker|gulrot|løk\b|tomat|paprika|spinat`, domain.RealFoodSignal,
		"grønnsaker"),
	newRule("real-raw", `rå melk|råmelk|upasteurisert|kakaomasse|kakaobønner`, domain.RealFoodSignal,
		"råvare (rå melk/kakao)"),
	newRule("real-pasteurized", `pasteurisert`, domain.RealFoodSignal,
		"pasteurisert"),
	newRule("real-fermented", `fermentert|syrnet|surdeig`, domain.RealFoodSignal,
		"fermentert/syrnet"),
	newRule("real-dried", `tørket|tørkede|soltørket`, domain.RealFoodSignal,
		"tørket"),
	newRule("real-smoked", `røkt`, domain.RealFoodSignal,
		"røkt"),
}

func init() {
	// Rule IDs must be globally unique across all three tables.
	seen := make(map[string]bool)
	for _, table := range [][]domain.Rule{strongRules, weakRules, realFoodRules} {
		for _, r := range table {
			if seen[r.ID] {
				panic(fmt.Sprintf("duplicate rule ID: %s", r.ID))
			}
			seen[r.ID] = true
		}
	}
}

// matchRules runs one rule table against the full normalized text and returns
// one signal per distinct matched substring per rule, in table order.
func matchRules(table []domain.Rule, normalized string) []domain.Signal {
	var signals []domain.Signal
	for _, rule := range table {
		matches := rule.Pattern.FindAllString(normalized, -1)
		if len(matches) == 0 {
			continue
		}
		seen := make(map[string]bool, len(matches))
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			signals = append(signals, domain.Signal{
				Kind:        rule.Kind,
				RuleID:      rule.ID,
				MatchedText: m,
				Description: rule.Description,
			})
		}
	}
	return signals
}

// extractENumbers pulls deduplicated, lowercased E-number codes ("e471") out
// of the normalized text and merges them with any explicit additives list.
func extractENumbers(normalized string, additives []string) []string {
	seen := make(map[string]bool)
	var codes []string

	add := func(code string) {
		if code == "" || seen[code] {
			return
		}
		seen[code] = true
		codes = append(codes, code)
	}

	for _, m := range eNumberRegex.FindAllStringSubmatch(normalized, -1) {
		add("e" + m[1])
	}
	for _, a := range additives {
		norm := normalizeText(a)
		if sub := eNumberRegex.FindStringSubmatch(norm); sub != nil {
			add("e" + sub[1])
		} else if norm != "" {
			add(norm)
		}
	}
	return codes
}
