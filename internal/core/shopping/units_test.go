package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		quantity   float64
		from       string
		to         string
		want       float64
		compatible bool
	}{
		{name: "kg to g", quantity: 1.5, from: "kg", to: "g", want: 1500, compatible: true},
		{name: "g to kg", quantity: 250, from: "g", to: "kg", want: 0.25, compatible: true},
		{name: "mg to g", quantity: 500, from: "mg", to: "g", want: 0.5, compatible: true},
		{name: "l to ml", quantity: 0.75, from: "l", to: "ml", want: 750, compatible: true},
		{name: "cl to ml", quantity: 5, from: "cl", to: "ml", want: 50, compatible: true},
		{name: "dl to ml", quantity: 2, from: "dl", to: "ml", want: 200, compatible: true},
		{name: "tbsp to ml", quantity: 2, from: "tbsp", to: "ml", want: 30, compatible: true},
		{name: "tsp to ml", quantity: 3, from: "tsp", to: "ml", want: 15, compatible: true},
		{name: "cup to ml", quantity: 1, from: "cup", to: "ml", want: 250, compatible: true},
		{name: "glass to ml", quantity: 1, from: "glass", to: "ml", want: 200, compatible: true},
		{name: "tbsp to cl", quantity: 2, from: "tbsp", to: "cl", want: 3, compatible: true},
		{name: "slice to piece", quantity: 4, from: "slice", to: "piece", want: 4, compatible: true},
		{name: "same unit", quantity: 7, from: "g", to: "g", want: 7, compatible: true},
		{name: "cross family mass to volume", quantity: 100, from: "g", to: "ml", compatible: false},
		{name: "cross family count to mass", quantity: 2, from: "piece", to: "g", compatible: false},
		{name: "pinch to volume", quantity: 1, from: "pinch", to: "ml", compatible: false},
		{name: "unknown source", quantity: 1, from: "unknown", to: "g", compatible: false},
		{name: "unknown target", quantity: 1, from: "g", to: "unknown", compatible: false},
		{name: "unknown identity", quantity: 3, from: "unknown", to: "unknown", want: 3, compatible: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Convert(tt.quantity, tt.from, tt.to)
			assert.Equal(t, tt.compatible, ok)
			if tt.compatible {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"g", "kg"}, {"mg", "g"}, {"ml", "l"}, {"cl", "dl"},
		{"tsp", "tbsp"}, {"cup", "glass"}, {"slice", "clove"},
	}
	for _, pair := range pairs {
		forward, ok := Convert(42, pair[0], pair[1])
		assert.True(t, ok)
		back, ok := Convert(forward, pair[1], pair[0])
		assert.True(t, ok)
		assert.InDelta(t, 42, back, 1e-9, "round trip %s -> %s -> %s", pair[0], pair[1], pair[0])
	}
}

func TestCanonicalUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "g", CanonicalUnit("kg"))
	assert.Equal(t, "g", CanonicalUnit("mg"))
	assert.Equal(t, "ml", CanonicalUnit("tbsp"))
	assert.Equal(t, "ml", CanonicalUnit("l"))
	assert.Equal(t, "piece", CanonicalUnit("slice"))
	assert.Equal(t, "pinch", CanonicalUnit("pinch"))
	assert.Equal(t, "unknown", CanonicalUnit("unknown"))
	assert.Equal(t, "poignee", CanonicalUnit("poignee"))
}

func TestFamily(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FamilyMass, Family("kg"))
	assert.Equal(t, FamilyVolume, Family("glass"))
	assert.Equal(t, FamilyCount, Family("clove"))
	assert.Equal(t, FamilyPinch, Family("pinch"))
	assert.Equal(t, FamilyNone, Family("unknown"))
	assert.Equal(t, FamilyNone, Family(""))
}
