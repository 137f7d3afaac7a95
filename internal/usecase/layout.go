package usecase

import (
	"strings"

	"github.com/renvare/backend/internal/domain"
)

// sectionDef is one store-layout section with the keywords that route an item
// into it.
type sectionDef struct {
	Section  domain.StoreSection
	Keywords []string
}

// storeSections is the fixed walk order through a typical Norwegian grocery
// store. First-match-wins over this list: a text matching keywords from two
// sections always resolves to whichever appears first. List order is part of
// the published contract, not an implementation detail.
var storeSections = []sectionDef{
	{domain.StoreSection{Name: "Frukt og grønt", Emoji: "🥬", SortOrder: 1},
		[]string{"frukt", "grønnsak", "eple", "banan", "tomat", "agurk", "salat", "løk", "gulrot", "paprika", "potet", "bær", "sitron", "avokado", "brokkoli", "blomkål", "squash", "chili", "hvitløk", "ingefær"}},
	{domain.StoreSection{Name: "Bakeri", Emoji: "🍞", SortOrder: 2},
		[]string{"brød", "rundstykke", "baguett", "knekkebrød", "lompe", "lefse", "bolle", "croissant"}},
	{domain.StoreSection{Name: "Meieri", Emoji: "🥛", SortOrder: 3},
		[]string{"melk", "yoghurt", "fløte", "rømme", "smør", "ost", "kefir", "skyr", "egg", "margarin"}},
	{domain.StoreSection{Name: "Pålegg", Emoji: "🧀", SortOrder: 4},
		[]string{"pålegg", "leverpostei", "skinke", "salami", "servelat", "kaviar", "majones", "syltetøy", "brunost", "prim"}},
	{domain.StoreSection{Name: "Kjøtt", Emoji: "🥩", SortOrder: 5},
		[]string{"kjøtt", "kylling", "svin", "storfe", "lam", "bacon", "pølse", "karbonade", "kjøttdeig", "biff", "filet"}},
	{domain.StoreSection{Name: "Fisk og sjømat", Emoji: "🐟", SortOrder: 6},
		[]string{"fisk", "laks", "torsk", "sei", "makrell", "sild", "reker", "krabbe", "skalldyr", "fiskekake", "fiskebolle"}},
	{domain.StoreSection{Name: "Hermetikk", Emoji: "🥫", SortOrder: 7},
		[]string{"hermetikk", "hermetisk", "boks", "tomater på boks", "mais", "tunfisk på boks"}},
	{domain.StoreSection{Name: "Korn og frokost", Emoji: "🌾", SortOrder: 8},
		[]string{"ris", "pasta", "spagetti", "makaroni", "havregryn", "müsli", "musli", "kornblanding", "frokostblanding", "couscous", "quinoa", "linser", "bønner"}},
	{domain.StoreSection{Name: "Sauser og krydder", Emoji: "🧂", SortOrder: 9},
		[]string{"saus", "ketchup", "sennep", "krydder", "salt", "pepper", "buljong", "olje", "eddik", "soyasaus", "dressing"}},
	{domain.StoreSection{Name: "Bakevarer", Emoji: "🧁", SortOrder: 10},
		[]string{"mel", "sukker", "gjær", "bakepulver", "vaniljesukker", "kakao", "sjokolade til baking", "mandler"}},
	{domain.StoreSection{Name: "Snacks", Emoji: "🍿", SortOrder: 11},
		[]string{"snacks", "chips", "sjokolade", "godteri", "kjeks", "nøtter", "popcorn", "smågodt"}},
	{domain.StoreSection{Name: "Drikke", Emoji: "🥤", SortOrder: 12},
		[]string{"drikke", "juice", "brus", "saft", "vann", "kaffe", "te", "energidrikk", "mineralvann"}},
	{domain.StoreSection{Name: "Frysevarer", Emoji: "🧊", SortOrder: 13},
		[]string{"frossen", "frys", "iskrem", "is ", "pizza", "frosne"}},
}

// otherSection catches everything without a keyword match, sorted last.
var otherSection = domain.StoreSection{Name: "Annet", Emoji: "🛒", SortOrder: 99}

// CategorizeItem assigns a shopping-list item to a store section for display
// grouping. The search text is the combined query plus any known product name
// and brand; matching is case-insensitive substring over the fixed ordered
// section list.
func CategorizeItem(searchText string) domain.StoreSection {
	text := normalizeText(searchText)
	if text == "" {
		return otherSection
	}

	for _, def := range storeSections {
		for _, keyword := range def.Keywords {
			if strings.Contains(text, keyword) {
				return def.Section
			}
		}
	}
	return otherSection
}
