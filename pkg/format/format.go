// Package format renders conversion results for terminal output.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ja7ad/unitconv/pkg/unit"
)

// epsilon is how close a value must be to an integer to print without
// decimals.
const epsilon = 0.005

const (
	// DefaultPrecision is the decimal-place count used when none is
	// configured.
	DefaultPrecision = 2

	// MaxPrecision is the largest accepted decimal-place count.
	MaxPrecision = 15
)

// Formatter renders amounts under the integer-snap display policy.
type Formatter struct {
	// Precision is the number of decimal places for non-integer
	// results, in [0, MaxPrecision].
	Precision int
}

// Amount renders one number: values within epsilon of an integer print
// as that integer, everything else with Precision decimal places.
// Non-finite values render as-is; decimal cannot represent them.
func (f Formatter) Amount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if nearest := math.Round(v); math.Abs(v-nearest) <= epsilon {
		if nearest == 0 {
			return "0"
		}
		return strconv.FormatFloat(nearest, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(f.Precision))
}

// Result renders a converted amount together with its unit.
func (f Formatter) Result(v float64, u unit.Unit) string {
	return f.Amount(v) + " " + u.String()
}
