// Package preference turns free-text preferences into plan modifiers.
package preference

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/housewright/internal/domain"
)

// Extractor maps preference text to a modifier set. Implementations must be
// safe for concurrent use and must never fail: unmatched text yields an
// empty set.
type Extractor interface {
	Extract(text string) domain.ModifierSet
}

// Keyword is one row of the keyword table. Term is matched against whole
// words (or whole-word phrases) after lower-casing.
type Keyword struct {
	Term     string
	Modifier domain.Modifier
}

// DefaultKeywords is the built-in keyword table.
var DefaultKeywords = []Keyword{
	{"garden", domain.ModGarden},
	{"gardens", domain.ModGarden},
	{"lawn", domain.ModGarden},
	{"study", domain.ModStudy},
	{"office", domain.ModStudy},
	{"home office", domain.ModStudy},
	{"parking", domain.ModParking},
	{"garage", domain.ModParking},
	{"car", domain.ModParking},
	{"balcony", domain.ModBalcony},
	{"terrace", domain.ModBalcony},
	{"modern", domain.ModModern},
	{"contemporary", domain.ModModern},
	{"minimalist", domain.ModModern},
	{"traditional", domain.ModTraditional},
	{"classic", domain.ModTraditional},
	{"kerala style", domain.ModTraditional},
	{"luxury", domain.ModLuxury},
	{"luxurious", domain.ModLuxury},
	{"premium", domain.ModLuxury},
}

// KeywordExtractor is the default Extractor: case-insensitive whole-word
// matching over a fixed keyword table.
type KeywordExtractor struct {
	keywords []Keyword
}

// NewKeywordExtractor builds an extractor over keywords; nil means
// DefaultKeywords.
func NewKeywordExtractor(keywords []Keyword) *KeywordExtractor {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	normalized := make([]Keyword, 0, len(keywords))
	for _, k := range keywords {
		term := strings.Join(tokenize(k.Term), " ")
		if term == "" {
			continue
		}
		normalized = append(normalized, Keyword{Term: term, Modifier: k.Modifier})
	}
	return &KeywordExtractor{keywords: normalized}
}

// Extract implements Extractor.
func (e *KeywordExtractor) Extract(text string) domain.ModifierSet {
	mods := domain.NewModifierSet()
	words := tokenize(text)
	if len(words) == 0 {
		return mods
	}
	// Pad with spaces so phrase terms only match on word boundaries.
	haystack := " " + strings.Join(words, " ") + " "
	for _, k := range e.keywords {
		if strings.Contains(haystack, " "+k.Term+" ") {
			mods.Add(k.Modifier)
		}
	}
	return mods
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

var defaultExtractor = NewKeywordExtractor(nil)

// Extract runs the default keyword extractor.
func Extract(text string) domain.ModifierSet {
	return defaultExtractor.Extract(text)
}

// TierHint reports the material tier adjustment the modifiers ask for:
// +1 when LUXURY is present, 0 otherwise.
func TierHint(mods domain.ModifierSet) int {
	if mods.Has(domain.ModLuxury) {
		return 1
	}
	return 0
}

// Describe renders modifiers back to text using the first keyword of each,
// in canonical order. Extract(Describe(m)) returns m.
func Describe(mods domain.ModifierSet) string {
	parts := make([]string, 0, len(mods))
	for _, m := range mods.Sorted() {
		for _, k := range DefaultKeywords {
			if k.Modifier == m {
				parts = append(parts, k.Term)
				break
			}
		}
	}
	return strings.Join(parts, ", ")
}
