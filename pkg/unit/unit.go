package unit

// Unit is an immutable unit of measurement: either a single base unit
// or a ratio of two (numerator over denominator). Units are value
// types; copy and compare them directly.
type Unit struct {
	num   BaseUnit
	den   BaseUnit
	ratio bool
}

// Basic wraps a single base unit.
func Basic(b BaseUnit) Unit { return Unit{num: b} }

// Ratio builds a numerator/denominator unit such as bytes per second.
func Ratio(num, den BaseUnit) Unit { return Unit{num: num, den: den, ratio: true} }

// IsAuto reports whether u is the auto sentinel.
func (u Unit) IsAuto() bool { return !u.ratio && u.num == Auto }

// Metric returns the dimension u measures. A ratio measures bandwidth
// only when its numerator is a data size and its denominator a time;
// anything else, including the auto sentinel, is not a measurable
// quantity and yields ErrUnknownMetric.
func (u Unit) Metric() (Metric, error) {
	if !u.ratio {
		m, ok := u.num.Metric()
		if !ok {
			return 0, ErrUnknownMetric
		}
		return m, nil
	}
	nm, ok := u.num.Metric()
	if !ok {
		return 0, ErrUnknownMetric
	}
	dm, ok := u.den.Metric()
	if !ok {
		return 0, ErrUnknownMetric
	}
	if nm == DataSize && dm == Time {
		return Bandwidth, nil
	}
	return 0, ErrUnknownMetric
}

// ToSI converts an amount in u to the SI base of u's metric: bytes for
// data size, seconds for time, bytes per second for bandwidth. A ratio
// converts its numerator to SI and divides by the SI equivalent of one
// denominator unit.
func (u Unit) ToSI(amount float64) float64 {
	if !u.ratio {
		return u.num.toSI(amount)
	}
	return u.num.toSI(amount) / u.den.toSI(1)
}

// FromSI is the inverse of ToSI.
func (u Unit) FromSI(si float64) float64 {
	if !u.ratio {
		return u.num.fromSI(si)
	}
	return u.num.fromSI(si) * u.den.toSI(1)
}

// String returns the canonical rendering: the base unit's display name,
// or "<num>/<den>" for a ratio.
func (u Unit) String() string {
	if !u.ratio {
		return u.num.String()
	}
	return u.num.String() + "/" + u.den.String()
}

// AmountAndUnit pairs a parsed amount with its unit. It is the value
// one CLI token parses to.
type AmountAndUnit struct {
	Amount float64
	Unit   Unit
}
