package shopping

// UnitFamily identifies a measurement family. Quantities can only be summed
// within one family.
type UnitFamily string

const (
	FamilyMass   UnitFamily = "mass"
	FamilyVolume UnitFamily = "volume"
	FamilyCount  UnitFamily = "count"
	FamilyPinch  UnitFamily = "pinch"
	FamilyNone   UnitFamily = ""
)

// UnitUnknown is the unit assigned when a raw unit string is not in the
// vocabulary. It converts only to itself.
const UnitUnknown = "unknown"

type unitDef struct {
	family UnitFamily
	toBase float64 // multiplier into the family's canonical unit
}

// unitTable maps canonical unit tokens to their family and factor into the
// family base unit (g for mass, ml for volume, piece for count). Kitchen
// measures are expressed through their ml equivalents, so they fold into the
// volume family. Slices and cloves count as pieces; a pinch has no sensible
// piece equivalent and stays alone.
var unitTable = map[string]unitDef{
	// mass (base = g)
	"mg": {family: FamilyMass, toBase: 0.001},
	"g":  {family: FamilyMass, toBase: 1},
	"kg": {family: FamilyMass, toBase: 1000},

	// volume (base = ml)
	"ml": {family: FamilyVolume, toBase: 1},
	"cl": {family: FamilyVolume, toBase: 10},
	"dl": {family: FamilyVolume, toBase: 100},
	"l":  {family: FamilyVolume, toBase: 1000},

	// kitchen measures (through ml)
	"tsp":   {family: FamilyVolume, toBase: 5},
	"tbsp":  {family: FamilyVolume, toBase: 15},
	"cup":   {family: FamilyVolume, toBase: 250},
	"glass": {family: FamilyVolume, toBase: 200},

	// count (base = piece)
	"piece": {family: FamilyCount, toBase: 1},
	"slice": {family: FamilyCount, toBase: 1},
	"clove": {family: FamilyCount, toBase: 1},

	"pinch": {family: FamilyPinch, toBase: 1},
}

// canonicalUnits maps each family to its reference unit.
var canonicalUnits = map[UnitFamily]string{
	FamilyMass:   "g",
	FamilyVolume: "ml",
	FamilyCount:  "piece",
	FamilyPinch:  "pinch",
}

// Family returns the measurement family of a unit token, or FamilyNone for
// unknown units.
func Family(unit string) UnitFamily {
	if def, ok := unitTable[unit]; ok {
		return def.family
	}
	return FamilyNone
}

// CanonicalUnit returns the reference unit of the family the given unit
// belongs to. Unknown units are their own reference.
func CanonicalUnit(unit string) string {
	if def, ok := unitTable[unit]; ok {
		return canonicalUnits[def.family]
	}
	return unit
}

// Convert converts quantity from one unit to another through the family base
// unit. The second return value is false when the units belong to different
// families (or either one is unknown): such quantities must not be summed.
// No rounding happens here; rounding is a formatting concern.
func Convert(quantity float64, fromUnit, toUnit string) (float64, bool) {
	if fromUnit == toUnit {
		return quantity, true
	}

	from, ok := unitTable[fromUnit]
	if !ok {
		return 0, false
	}
	to, ok := unitTable[toUnit]
	if !ok {
		return 0, false
	}
	if from.family != to.family {
		return 0, false
	}

	base := quantity * from.toBase
	return base / to.toBase, true
}
