package domain

import (
	"fmt"
	"math"
)

// FormatPHP renders non-negative centavos as "₱1234.50".
func FormatPHP(centavos int64) string {
	return fmt.Sprintf("₱%d.%02d", centavos/100, centavos%100)
}

// HoursCost converts an hourly rate in centavos to a charge for a fractional
// number of hours, rounded to the nearest centavo.
func HoursCost(hours float64, ratePerHour int64) int64 {
	return int64(math.Round(hours * float64(ratePerHour)))
}

// FilamentCost charges grams of filament against a per-1kg-spool price,
// rounded to the nearest centavo.
func FilamentCost(weightGrams float64, spoolPrice int64) int64 {
	return int64(math.Round(weightGrams / 1000.0 * float64(spoolPrice)))
}
