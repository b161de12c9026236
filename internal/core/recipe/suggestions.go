package recipe

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Suggestion is an advisory hint attached to a shopping-list ingredient.
type Suggestion struct {
	Type       string `json:"type"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

const maxSuggestions = 5

// seasonalIngredients maps calendar month to produce in season that month.
var seasonalIngredients = map[time.Month][]string{
	time.January:   {"chou", "poireau", "carotte", "pomme", "orange", "endive"},
	time.February:  {"chou", "endive", "carotte", "pomme", "orange", "brocoli"},
	time.March:     {"épinard", "radis", "carotte", "pomme", "asperge"},
	time.April:     {"asperge", "radis", "épinard", "fraise", "petit pois"},
	time.May:       {"asperge", "radis", "épinard", "fraise", "petit pois", "artichaut"},
	time.June:      {"tomate", "courgette", "aubergine", "fraise", "cerise", "abricot"},
	time.July:      {"tomate", "courgette", "aubergine", "pêche", "abricot", "melon"},
	time.August:    {"tomate", "courgette", "aubergine", "pêche", "melon", "prune"},
	time.September: {"potiron", "champignon", "raisin", "pomme", "poire"},
	time.October:   {"potiron", "champignon", "châtaigne", "pomme", "poire"},
	time.November:  {"chou", "poireau", "carotte", "pomme", "poire", "clémentine"},
	time.December:  {"chou", "poireau", "carotte", "pomme", "orange", "mandarine"},
}

// nutritionalAlternatives maps a base ingredient to comparable substitutes.
var nutritionalAlternatives = map[string][]string{
	"pomme":   {"poire", "pêche", "abricot"},
	"tomate":  {"poivron rouge", "aubergine", "courgette"},
	"carotte": {"betterave", "panais", "navet"},
	"épinard": {"roquette", "mâche", "cresson"},
	"lait":    {"lait d'amande", "lait de soja", "lait d'avoine"},
	"beurre":  {"huile olive", "margarine", "huile coco"},
	"sucre":   {"miel", "sirop érable", "sucre coco"},
}

// Suggest returns up to five seasonal and nutritional hints for an
// ingredient name, using month to pick the seasonal table.
func Suggest(ingredientName string, month time.Month) []Suggestion {
	name := foldText(ingredientName)
	suggestions := make([]Suggestion, 0, maxSuggestions)

	for _, item := range seasonalIngredients[month] {
		folded := foldText(item)
		if strings.Contains(name, folded) || strings.Contains(folded, name) {
			suggestions = append(suggestions, Suggestion{
				Type:       "seasonal",
				Suggestion: item,
				Reason:     "Produit de saison, meilleur goût et prix",
			})
		}
	}

	// Map order varies between runs, so iterate the bases sorted to keep the
	// suggestion list stable for a given ingredient.
	bases := make([]string, 0, len(nutritionalAlternatives))
	for base := range nutritionalAlternatives {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	for _, base := range bases {
		if !strings.Contains(name, foldText(base)) {
			continue
		}
		alternatives := nutritionalAlternatives[base]
		// At most two alternatives per base ingredient.
		if len(alternatives) > 2 {
			alternatives = alternatives[:2]
		}
		for _, alt := range alternatives {
			suggestions = append(suggestions, Suggestion{
				Type:       "nutritional",
				Suggestion: alt,
				Reason:     fmt.Sprintf("Alternative nutritionnelle à %s", base),
			})
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
