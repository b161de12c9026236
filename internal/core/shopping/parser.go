package shopping

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingQuantity matches an integer or decimal prefix; both comma and dot
// work as decimal separator.
var leadingQuantity = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*(.*)$`)

// unitSurfaces maps folded surface forms (lowercased, accent-stripped,
// dotless) to vocabulary tokens. Multi-word French kitchen measures are
// matched longest-first against this table.
var unitSurfaces = map[string]string{
	// mass
	"mg":          "mg",
	"g":           "g",
	"gr":          "g",
	"gramme":      "g",
	"grammes":     "g",
	"kg":          "kg",
	"kilo":        "kg",
	"kilos":       "kg",
	"kilogramme":  "kg",
	"kilogrammes": "kg",

	// volume
	"ml":          "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"cl":          "cl",
	"centilitre":  "cl",
	"centilitres": "cl",
	"dl":          "dl",
	"decilitre":   "dl",
	"decilitres":  "dl",
	"l":           "l",
	"litre":       "l",
	"litres":      "l",

	// kitchen measures
	"tbsp":              "tbsp",
	"cas":               "tbsp",
	"c a s":             "tbsp",
	"c a soupe":         "tbsp",
	"cuillere a soupe":  "tbsp",
	"cuilleres a soupe": "tbsp",
	"tsp":               "tsp",
	"cac":               "tsp",
	"c a c":             "tsp",
	"c a cafe":          "tsp",
	"cuillere a cafe":   "tsp",
	"cuilleres a cafe":  "tsp",
	"cup":               "cup",
	"cups":              "cup",
	"tasse":             "cup",
	"tasses":            "cup",
	"glass":             "glass",
	"glasses":           "glass",
	"verre":             "glass",
	"verres":            "glass",

	// count
	"piece":    "piece",
	"pieces":   "piece",
	"unite":    "piece",
	"unites":   "piece",
	"slice":    "slice",
	"slices":   "slice",
	"tranche":  "slice",
	"tranches": "slice",
	"clove":    "clove",
	"cloves":   "clove",
	"gousse":   "clove",
	"gousses":  "clove",
	"pinch":    "pinch",
	"pinches":  "pinch",
	"pincee":   "pinch",
	"pincees":  "pinch",
}

// maxUnitWords is the longest surface form in unitSurfaces, in words.
const maxUnitWords = 3

// Parse turns a raw ingredient into its structured form. It never fails:
// malformed text degrades to {name: trimmed text, quantity: 1, unit: piece}
// so one bad line cannot sink a whole consolidation.
func Parse(raw RawIngredient, sourceRecipe string) ParsedIngredient {
	if strings.TrimSpace(raw.Name) != "" || strings.TrimSpace(raw.Text) == "" {
		return parseStructured(raw, sourceRecipe)
	}
	return parseFreeText(raw.Text, sourceRecipe)
}

// parseStructured trusts the supplied triple after light validation.
func parseStructured(raw RawIngredient, sourceRecipe string) ParsedIngredient {
	quantity := 1.0
	if raw.Quantity != nil {
		q := *raw.Quantity
		if q >= 0 && !math.IsInf(q, 0) && !math.IsNaN(q) {
			quantity = q
		}
	}

	unit := "piece"
	if trimmed := strings.TrimSpace(raw.Unit); trimmed != "" {
		if token, ok := unitSurfaces[foldPhrase(trimmed)]; ok {
			unit = token
		} else {
			unit = UnitUnknown
		}
	}

	return ParsedIngredient{
		Name:         strings.TrimSpace(raw.Name),
		Quantity:     quantity,
		Unit:         unit,
		SourceRecipe: sourceRecipe,
	}
}

// parseFreeText applies the line grammar: optional numeric quantity, optional
// unit token from the closed vocabulary, optional de/d' connector, remainder
// is the name.
func parseFreeText(text, sourceRecipe string) ParsedIngredient {
	trimmed := strings.TrimSpace(text)
	fallback := ParsedIngredient{
		Name:         trimmed,
		Quantity:     1,
		Unit:         "piece",
		SourceRecipe: sourceRecipe,
	}

	m := leadingQuantity.FindStringSubmatch(trimmed)
	if m == nil {
		return fallback
	}

	quantity, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return fallback
	}

	tokens := strings.Fields(m[2])
	if len(tokens) == 0 {
		// a bare number is not an ingredient
		return fallback
	}

	unit := "piece"
	rest := tokens
	for n := maxUnitWords; n >= 1; n-- {
		if len(tokens) < n {
			continue
		}
		if token, ok := unitSurfaces[foldPhrase(strings.Join(tokens[:n], " "))]; ok {
			unit = token
			rest = tokens[n:]
			break
		}
	}

	name := strings.Join(stripConnector(rest), " ")
	if name == "" {
		return fallback
	}

	return ParsedIngredient{
		Name:         name,
		Quantity:     quantity,
		Unit:         unit,
		SourceRecipe: sourceRecipe,
	}
}

// stripConnector drops a leading "de" / "d'" linking the unit to the name
// ("400g de pâtes", "2 gousses d'ail").
func stripConnector(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}
	first := foldPhrase(tokens[0])
	if first == "de" || first == "du" || first == "des" {
		return tokens[1:]
	}
	for _, prefix := range []string{"d'", "d’"} {
		if strings.HasPrefix(tokens[0], prefix) && len(tokens[0]) > len(prefix) {
			rest := append([]string{strings.TrimPrefix(tokens[0], prefix)}, tokens[1:]...)
			return rest
		}
	}
	return tokens
}

// foldPhrase lowercases, strips accents and removes dots so that surface
// forms like "Cuillères à soupe" or "c. à s." line up with the table keys.
func foldPhrase(s string) string {
	folded := strings.ToLower(s)
	folded = ligatures.Replace(folded)
	folded = stripAccents(folded)
	folded = strings.ReplaceAll(folded, ".", "")
	return strings.TrimSpace(folded)
}
