package freshness

import (
	"math"
	"strings"
)

type Mode int

const (
	ModeCount Mode = iota
	ModePercentage
)

const (
	PercentageStep = 0.10
	CountStep      = 1.0

	// percentage-mode quantities below this are treated as used up
	percentageZero = 0.01
)

var percentageUnits = unitSet(
	"g", "gram", "grams",
	"kg", "kilogram", "kilograms",
	"ml", "milliliter", "milliliters", "millilitre", "millilitres",
	"l", "liter", "liters", "litre", "litres",
	"lb", "lbs", "pound", "pounds",
	"oz", "ounce", "ounces",
	"cup", "cups",
	"tbsp", "tablespoon", "tablespoons",
	"tsp", "teaspoon", "teaspoons",
	"gallon", "gallons",
	"bottle", "bottles",
)

func unitSet(units ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(units))
	for _, unit := range units {
		set[unit] = struct{}{}
	}
	return set
}

func (m Mode) String() string {
	if m == ModePercentage {
		return "percentage"
	}
	return "count"
}

// ModeForUnit returns the decrement mode for a unit. Unknown units count.
func ModeForUnit(unit string) Mode {
	if _, ok := percentageUnits[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return ModePercentage
	}
	return ModeCount
}

type Decrement struct {
	Mode     Mode
	Quantity float64
	// Deleted reports that the item reached its effectively-zero threshold.
	Deleted  bool
}

// Consume applies one consumption step to quantity. Percentage units lose a
// tenth of original; everything else loses one unit. The result never drops
// below zero.
func Consume(quantity, original float64, unit string) Decrement {
	mode := ModeForUnit(unit)

	if mode == ModePercentage {
		base := original
		if base <= 0 {
			base = quantity
		}
		next := round(math.Max(0, quantity-base*PercentageStep))
		return Decrement{Mode: mode, Quantity: next, Deleted: next < percentageZero}
	}

	next := round(math.Max(0, quantity-CountStep))
	return Decrement{Mode: mode, Quantity: next, Deleted: next <= 0}
}

// round trims float noise so that 100 - 10*10 lands on zero.
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
