package shopping

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ligatures = strings.NewReplacer("œ", "oe", "æ", "ae")

// stripAccents removes combining marks after NFD decomposition (é -> e,
// ç -> c). Ligatures are not combining marks, so œ and æ are expanded first.
// The transform chain carries per-call buffers and must not be shared between
// goroutines, so it is built fresh on every call.
func stripAccents(s string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return out
}

var (
	parenthesized = regexp.MustCompile(`\([^)]*\)`)
	punctuation   = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// synonyms maps accent-stripped surface forms to their canonical ingredient
// family. Checked before the plural heuristic so explicit entries always win.
// New synonyms are additive data, not code changes.
var synonyms = map[string]string{
	// pasta
	"spaghetti":    "pates",
	"spaghettis":   "pates",
	"tagliatelle":  "pates",
	"tagliatelles": "pates",
	"penne":        "pates",
	"pennes":       "pates",
	"fusilli":      "pates",
	"fusillis":     "pates",
	"linguine":     "pates",
	"macaroni":     "pates",
	"macaronis":    "pates",
	"pasta":        "pates",

	// vegetables
	"tomate":          "tomates",
	"tomate cerise":   "tomates",
	"tomates cerises": "tomates",
	"oignon":          "oignons",
	"oignon rouge":    "oignons",
	"oignons rouges":  "oignons",
	"oignon blanc":    "oignons",
	"oignons blancs":  "oignons",
	"echalote":        "oignons",
	"echalotes":       "oignons",
	"pomme de terre":  "pomme de terre",
	"pommes de terre": "pomme de terre",
	"patate":          "pomme de terre",
	"patates":         "pomme de terre",

	// dairy
	"lait entier":      "lait",
	"lait demi ecreme": "lait",
	"lait ecreme":      "lait",
	"creme fraiche":    "creme",
	"creme liquide":    "creme",

	// meat
	"blanc de poulet":     "poulet",
	"blancs de poulet":    "poulet",
	"cuisse de poulet":    "poulet",
	"cuisses de poulet":   "poulet",
	"escalope de poulet":  "poulet",
	"escalopes de poulet": "poulet",
	"boeuf hache":         "boeuf",
	"steak hache":         "boeuf",
	"steaks haches":       "boeuf",

	// cheese
	"parmesan rape": "parmesan",
	"gruyere rape":  "gruyere",
	"emmental rape": "emmental",
}

// pluralExceptions lists forms whose trailing "s" is not a plural marker, or
// canonical families that are plural by name. Matched against the whole key
// and against its last word.
var pluralExceptions = map[string]struct{}{
	"pates":    {},
	"tomates":  {},
	"oignons":  {},
	"ananas":   {},
	"cassis":   {},
	"couscous": {},
	"mais":     {},
	"pois":     {},
	"radis":    {},
}

// Canonicalize reduces an ingredient name to its canonical grouping key. Two
// names denote the same ingredient iff their keys are equal. The computation
// is a pure function of the name: lowercase, strip accents, drop parenthesized
// preparation notes, strip punctuation, collapse whitespace, then resolve
// synonyms with a plural fallback.
func Canonicalize(name string) string {
	key := strings.ToLower(name)
	key = ligatures.Replace(key)
	key = stripAccents(key)
	key = parenthesized.ReplaceAllString(key, " ")
	key = punctuation.ReplaceAllString(key, " ")
	key = strings.TrimSpace(whitespace.ReplaceAllString(key, " "))

	if canonical, ok := synonyms[key]; ok {
		return canonical
	}

	key = stripPlural(key)

	// plural forms of table keys land on the same family
	if canonical, ok := synonyms[key]; ok {
		return canonical
	}

	return key
}

// stripPlural removes a trailing plural "s" unless the form is a recognized
// exception. Very short tokens are left alone.
func stripPlural(key string) string {
	if !strings.HasSuffix(key, "s") || len(key) <= 3 {
		return key
	}
	if _, ok := pluralExceptions[key]; ok {
		return key
	}
	if i := strings.LastIndex(key, " "); i >= 0 {
		if _, ok := pluralExceptions[key[i+1:]]; ok {
			return key
		}
	}
	return key[:len(key)-1]
}
