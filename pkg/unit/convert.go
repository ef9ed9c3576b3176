package unit

import "fmt"

// Convert converts amount from src into dst. When dst is the auto
// sentinel it is resolved to the largest unit of src's metric whose
// value stays at or above one; the unit the result is expressed in is
// returned alongside the value.
func Convert(amount float64, src, dst Unit) (float64, Unit, error) {
	if dst.IsAuto() {
		return convertAuto(amount, src)
	}
	srcMetric, err := src.Metric()
	if err != nil {
		return 0, Unit{}, err
	}
	dstMetric, err := dst.Metric()
	if err != nil {
		return 0, Unit{}, err
	}
	if srcMetric != dstMetric {
		return 0, Unit{}, fmt.Errorf("%w: %s vs %s", ErrMismatchedMetrics, srcMetric, dstMetric)
	}
	return dst.FromSI(src.ToSI(amount)), dst, nil
}

// convertAuto walks candidate units of src's metric in ascending
// multiplier order, keeping the last one whose converted value is >= 1.
// Multipliers ascend, so the search stops at the first value below one.
// An amount below one in the smallest unit resolves to that smallest
// unit. Bandwidth candidates are the data-size units over one second.
func convertAuto(amount float64, src Unit) (float64, Unit, error) {
	metric, err := src.Metric()
	if err != nil {
		return 0, Unit{}, err
	}

	var candidates []Unit
	for _, r := range registry {
		switch metric {
		case Bandwidth:
			if r.metric == DataSize {
				candidates = append(candidates, Ratio(r.unit, Seconds))
			}
		default:
			if r.metric == metric {
				candidates = append(candidates, Basic(r.unit))
			}
		}
	}

	si := src.ToSI(amount)
	best := candidates[0]
	value := best.FromSI(si)
	for _, c := range candidates[1:] {
		v := c.FromSI(si)
		if v < 1 {
			break
		}
		best, value = c, v
	}
	return value, best, nil
}

// SolveMissing derives the quantity missing from {data size, time,
// bandwidth}. The two given quantities and the target unit must cover
// those three metrics exactly; the target's metric decides what is
// solved for. A zero amount in the quantity being divided by is
// rejected rather than producing a non-finite result. The result is
// expressed in the target unit.
func SolveMissing(a, b AmountAndUnit, target Unit) (float64, Unit, error) {
	aMetric, err := a.Unit.Metric()
	if err != nil {
		return 0, Unit{}, err
	}
	bMetric, err := b.Unit.Metric()
	if err != nil {
		return 0, Unit{}, err
	}
	targetMetric, err := target.Metric()
	if err != nil {
		return 0, Unit{}, err
	}

	// Three metrics exist, so pairwise-distinct means the set is
	// covered exactly.
	if aMetric == bMetric || aMetric == targetMetric || bMetric == targetMetric {
		return 0, Unit{}, fmt.Errorf("%w: got %s, %s and %s", ErrWrongUnits, aMetric, bMetric, targetMetric)
	}

	siOf := func(m Metric) float64 {
		if aMetric == m {
			return a.Unit.ToSI(a.Amount)
		}
		return b.Unit.ToSI(b.Amount)
	}

	var si float64
	switch targetMetric {
	case Bandwidth:
		timeSI := siOf(Time)
		if timeSI == 0 {
			return 0, Unit{}, fmt.Errorf("%w: time is zero", ErrZeroQuantity)
		}
		si = siOf(DataSize) / timeSI
	case Time:
		bandwidthSI := siOf(Bandwidth)
		if bandwidthSI == 0 {
			return 0, Unit{}, fmt.Errorf("%w: bandwidth is zero", ErrZeroQuantity)
		}
		si = siOf(DataSize) / bandwidthSI
	case DataSize:
		si = siOf(Bandwidth) * siOf(Time)
	}
	return target.FromSI(si), target, nil
}
