package length

import (
	"sort"
)

// System classifies a unit for consistency checks.
type System int

const (
	Imperial System = iota
	Metric
)

func (s System) String() string {
	switch s {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	default:
		return "unknown"
	}
}

// Unit is a length unit understood by the parser.
type Unit int

const (
	Inches Unit = iota
	Feet
	Millimetres
	Centimetres
	Metres
	// SixtyFourthOfInch is the unit of every parsed fraction and the base
	// unit for summing.
	SixtyFourthOfInch
)

func (u Unit) String() string {
	switch u {
	case Inches:
		return "inches"
	case Feet:
		return "feet"
	case Millimetres:
		return "millimetres"
	case Centimetres:
		return "centimetres"
	case Metres:
		return "metres"
	case SixtyFourthOfInch:
		return "sixty-fourth-of-inch"
	default:
		return "unknown"
	}
}

// System returns the unit system u belongs to.
func (u Unit) System() System {
	return unitSystems[u]
}

// Multiplier returns how many sixty-fourths of an inch one u is.
func (u Unit) Multiplier() float64 {
	return unitMultipliers[u]
}

var unitSystems = map[Unit]System{
	Inches:            Imperial,
	Feet:              Imperial,
	Millimetres:       Metric,
	Centimetres:       Metric,
	Metres:            Metric,
	SixtyFourthOfInch: Imperial,
}

// The millimetre factor is not Metres/1000 (2.5196864). Displays have always
// been computed with this value, so it is kept.
var unitMultipliers = map[Unit]float64{
	SixtyFourthOfInch: 1,
	Feet:              768,
	Inches:            64,
	Metres:            2_519.6864,
	Centimetres:       25.196864,
	Millimetres:       2.5196854,
}

// unitNames holds every accepted spelling. Only "centimeters" is accepted
// for centimetres, unlike millimetres and metres which take both.
var unitNames = map[string]Unit{
	`"`:           Inches,
	"in":          Inches,
	"inches":      Inches,
	"'":           Feet,
	"feet":        Feet,
	"ft":          Feet,
	"mm":          Millimetres,
	"millimetres": Millimetres,
	"millimeters": Millimetres,
	"cm":          Centimetres,
	"centimeters": Centimetres,
	"m":           Metres,
	"metres":      Metres,
	"meters":      Metres,
}

// LookupUnit resolves a lower-case unit name or symbol.
func LookupUnit(name string) (Unit, bool) {
	u, ok := unitNames[name]
	return u, ok
}

// UnitNames returns all accepted unit spellings, sorted.
func UnitNames() []string {
	names := make([]string, 0, len(unitNames))
	for name := range unitNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value is one resolved measurement component such as "2 feet" or
// "4/64 inch". Its system always matches its unit.
type Value struct {
	system System
	unit   Unit
	value  float64
}

// NewValue creates a Value, deriving the system from unit.
func NewValue(unit Unit, value float64) Value {
	return Value{system: unit.System(), unit: unit, value: value}
}

func (v Value) System() System { return v.system }
func (v Value) Unit() Unit     { return v.unit }
func (v Value) Value() float64 { return v.value }
