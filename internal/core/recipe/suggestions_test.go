package recipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestSeasonal(t *testing.T) {
	t.Parallel()

	suggestions := Suggest("tomates cerises", time.July)

	var seasonal []Suggestion
	for _, s := range suggestions {
		if s.Type == "seasonal" {
			seasonal = append(seasonal, s)
		}
	}
	require.NotEmpty(t, seasonal)
	assert.Equal(t, "tomate", seasonal[0].Suggestion)
}

func TestSuggestOutOfSeason(t *testing.T) {
	t.Parallel()

	// tomatoes are not a January product
	for _, s := range Suggest("tomates cerises", time.January) {
		assert.NotEqual(t, "seasonal", s.Type)
	}
}

func TestSuggestNutritionalAlternatives(t *testing.T) {
	t.Parallel()

	suggestions := Suggest("lait entier", time.January)

	var alternatives []string
	for _, s := range suggestions {
		if s.Type == "nutritional" {
			alternatives = append(alternatives, s.Suggestion)
		}
	}
	// two alternatives at most per base ingredient
	assert.Equal(t, []string{"lait d'amande", "lait de soja"}, alternatives)
}

func TestSuggestStableOrder(t *testing.T) {
	t.Parallel()

	// An ingredient matching several base products must yield the same
	// suggestions in the same order on every call.
	first := Suggest("compote pomme lait", time.June)

	var alternatives []string
	for _, s := range first {
		alternatives = append(alternatives, s.Suggestion)
	}
	assert.Equal(t, []string{"lait d'amande", "lait de soja", "poire", "pêche"}, alternatives)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Suggest("compote pomme lait", time.June))
	}
}

func TestSuggestAccentInsensitive(t *testing.T) {
	t.Parallel()

	withAccents := Suggest("épinards", time.March)
	withoutAccents := Suggest("epinards", time.March)
	assert.Equal(t, withAccents, withoutAccents)
	assert.NotEmpty(t, withAccents)
}

func TestSuggestCapsAtFive(t *testing.T) {
	t.Parallel()

	assert.LessOrEqual(t, len(Suggest("tomate", time.August)), 5)
}

func TestSuggestUnknownIngredient(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Suggest("nuoc-mâm", time.June))
}
