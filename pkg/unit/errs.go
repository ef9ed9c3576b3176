package unit

import "errors"

var (
	// ErrNotEnoughArgs indicates that a mode received the wrong number
	// of arguments.
	ErrNotEnoughArgs = errors.New("unit: not enough arguments")

	// ErrAmountAndUnitRequired indicates that a token could not be split
	// into an amount and a unit (too short, no leading digits, or no
	// unit text after the digits).
	ErrAmountAndUnitRequired = errors.New("unit: amount and unit required")

	// ErrCouldNotParseAmount indicates that the amount substring is not
	// a valid floating-point literal.
	ErrCouldNotParseAmount = errors.New("unit: could not parse amount")

	// ErrUnitNotFound indicates that unit text matched no registry
	// synonym.
	ErrUnitNotFound = errors.New("unit: unit not found")

	// ErrMismatchedMetrics indicates that source and target units
	// measure different metrics.
	ErrMismatchedMetrics = errors.New("unit: mismatched metrics")

	// ErrUnknownMetric indicates that a unit's metric could not be
	// determined (the auto sentinel, or a ratio that is not data size
	// over time).
	ErrUnknownMetric = errors.New("unit: unknown metric")

	// ErrWrongUnits indicates that the solver did not receive exactly
	// one data size, one time and one bandwidth unit.
	ErrWrongUnits = errors.New("unit: wrong units for solving")

	// ErrZeroQuantity indicates that solving would divide by a
	// zero-amount quantity.
	ErrZeroQuantity = errors.New("unit: cannot solve with a zero quantity")

	// errNotComposite signals that no ratio separator was found; it only
	// triggers the basic-unit fallback in ParseUnit and never reaches
	// the caller.
	errNotComposite = errors.New("unit: not a composite unit")
)
