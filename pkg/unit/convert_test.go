package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		src    Unit
		dst    Unit
		want   float64
	}{
		{"bytes_to_kibibytes", 147 * 1024, Basic(Bytes), Basic(Kibibytes), 147},
		{"kibibytes_to_mebibytes", 147 * 1024, Basic(Kibibytes), Basic(Mebibytes), 147},
		{"seconds_to_days", 147 * 86400, Basic(Seconds), Basic(Days), 147},
		{"bits_to_bytes", 16, Basic(Bits), Basic(Bytes), 2},
		{"kilobytes_to_kibibytes", 1024, Basic(Kilobytes), Basic(Kibibytes), 1000},
		{"minutes_to_seconds", 2.5, Basic(Minutes), Basic(Seconds), 150},
		{"years_to_days", 1, Basic(Years), Basic(Days), 365},
		{"bytes_per_second_to_kibibytes_per_second", 147, Ratio(Bytes, Seconds), Ratio(Kibibytes, Seconds), 147.0 / 1024},
		{"mebibytes_per_second_to_mebibytes_per_minute", 1, Ratio(Mebibytes, Seconds), Ratio(Mebibytes, Minutes), 60},
		{"same_unit", 42, Basic(Gigabytes), Basic(Gigabytes), 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, resolved, err := Convert(tc.amount, tc.src, tc.dst)
			require.NoError(t, err)
			assert.Equal(t, tc.dst, resolved)
			assert.InEpsilon(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvert_MismatchedMetrics(t *testing.T) {
	_, _, err := Convert(1, Basic(Bytes), Basic(Seconds))
	assert.ErrorIs(t, err, ErrMismatchedMetrics)

	_, _, err = Convert(1, Ratio(Bytes, Seconds), Basic(Bytes))
	assert.ErrorIs(t, err, ErrMismatchedMetrics)

	_, _, err = Convert(1, Basic(Seconds), Ratio(Bytes, Seconds))
	assert.ErrorIs(t, err, ErrMismatchedMetrics)
}

func TestConvert_UndecidableMetric(t *testing.T) {
	// an auto source never has a metric
	_, _, err := Convert(1, Basic(Auto), Basic(Bytes))
	assert.ErrorIs(t, err, ErrUnknownMetric)

	_, _, err = Convert(1, Basic(Bytes), Ratio(Seconds, Seconds))
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestConvert_Auto(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		src    Unit
		want   float64
		unit   Unit
	}{
		{"bytes_to_kibibytes", 147 * 1024, Basic(Bytes), 147, Basic(Kibibytes)},
		{"small_bit_count_stays", 7, Basic(Bits), 7, Basic(Bits)},
		{"seconds_to_days", 86400, Basic(Seconds), 1, Basic(Days)},
		{"sub_one_keeps_smallest", 0.5, Basic(Bits), 0.5, Basic(Bits)},
		{"exactly_one_byte", 8, Basic(Bits), 1, Basic(Bytes)},
		{"nanoseconds_to_milliseconds", 3500000, Basic(Nanoseconds), 3.5, Basic(Milliseconds)},
		{"zero_keeps_smallest", 0, Basic(Bytes), 0, Basic(Bits)},
		{"bandwidth_resolves_numerator", 2048, Ratio(Bytes, Seconds), 2, Ratio(Kibibytes, Seconds)},
		{"bandwidth_per_minute_source", 1024 * 60, Ratio(Bytes, Minutes), 1, Ratio(Kibibytes, Seconds)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, resolved, err := Convert(tc.amount, tc.src, Basic(Auto))
			require.NoError(t, err)
			assert.Equal(t, tc.unit, resolved)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestConvert_AutoOfUnknownMetric(t *testing.T) {
	_, _, err := Convert(1, Ratio(Seconds, Bytes), Basic(Auto))
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestSolveMissing(t *testing.T) {
	sevenHundredMB := AmountAndUnit{Amount: 700, Unit: Basic(Megabytes)}
	hundredSeconds := AmountAndUnit{Amount: 100, Unit: Basic(Seconds)}
	sevenMBps := AmountAndUnit{Amount: 7, Unit: Ratio(Megabytes, Seconds)}

	t.Run("solve_time", func(t *testing.T) {
		got, resolved, err := SolveMissing(sevenHundredMB, sevenMBps, Basic(Seconds))
		require.NoError(t, err)
		assert.Equal(t, Basic(Seconds), resolved)
		assert.InEpsilon(t, 100.0, got, 1e-9)
	})

	t.Run("solve_time_in_minutes", func(t *testing.T) {
		got, _, err := SolveMissing(sevenMBps, sevenHundredMB, Basic(Minutes))
		require.NoError(t, err)
		assert.InEpsilon(t, 100.0/60, got, 1e-9)
	})

	t.Run("solve_bandwidth", func(t *testing.T) {
		got, resolved, err := SolveMissing(sevenHundredMB, hundredSeconds, Ratio(Megabytes, Seconds))
		require.NoError(t, err)
		assert.Equal(t, Ratio(Megabytes, Seconds), resolved)
		assert.InEpsilon(t, 7.0, got, 1e-9)
	})

	t.Run("solve_data_size", func(t *testing.T) {
		got, _, err := SolveMissing(sevenMBps, hundredSeconds, Basic(Megabytes))
		require.NoError(t, err)
		assert.InEpsilon(t, 700.0, got, 1e-9)
	})

	t.Run("solve_data_size_other_unit", func(t *testing.T) {
		got, _, err := SolveMissing(sevenMBps, hundredSeconds, Basic(Gigabytes))
		require.NoError(t, err)
		assert.InEpsilon(t, 0.7, got, 1e-9)
	})
}

func TestSolveMissing_WrongUnits(t *testing.T) {
	mb := AmountAndUnit{Amount: 700, Unit: Basic(Megabytes)}
	gib := AmountAndUnit{Amount: 1, Unit: Basic(Gibibytes)}
	secs := AmountAndUnit{Amount: 100, Unit: Basic(Seconds)}

	// two data sizes
	_, _, err := SolveMissing(mb, gib, Basic(Seconds))
	assert.ErrorIs(t, err, ErrWrongUnits)

	// target repeats a given metric
	_, _, err = SolveMissing(mb, secs, Basic(Hours))
	assert.ErrorIs(t, err, ErrWrongUnits)
}

// A zero amount in the divisor position must fail instead of leaking
// +Inf or NaN into the result.
func TestSolveMissing_ZeroQuantity(t *testing.T) {
	mb := AmountAndUnit{Amount: 700, Unit: Basic(Megabytes)}
	zeroMB := AmountAndUnit{Amount: 0, Unit: Basic(Megabytes)}
	secs := AmountAndUnit{Amount: 100, Unit: Basic(Seconds)}
	zeroSecs := AmountAndUnit{Amount: 0, Unit: Basic(Seconds)}
	mbps := AmountAndUnit{Amount: 7, Unit: Ratio(Megabytes, Seconds)}
	zeroMbps := AmountAndUnit{Amount: 0, Unit: Ratio(Megabytes, Seconds)}

	t.Run("zero_bandwidth_solving_time", func(t *testing.T) {
		_, _, err := SolveMissing(mb, zeroMbps, Basic(Seconds))
		assert.ErrorIs(t, err, ErrZeroQuantity)
	})

	t.Run("zero_size_and_zero_bandwidth", func(t *testing.T) {
		_, _, err := SolveMissing(zeroMB, zeroMbps, Basic(Seconds))
		assert.ErrorIs(t, err, ErrZeroQuantity)
	})

	t.Run("zero_time_solving_bandwidth", func(t *testing.T) {
		_, _, err := SolveMissing(mb, zeroSecs, Ratio(Megabytes, Seconds))
		assert.ErrorIs(t, err, ErrZeroQuantity)
	})

	// zero is only rejected where it would divide; these solve to zero
	t.Run("zero_size_solving_time", func(t *testing.T) {
		got, _, err := SolveMissing(zeroMB, mbps, Basic(Seconds))
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("zero_time_solving_size", func(t *testing.T) {
		got, _, err := SolveMissing(mbps, zeroSecs, Basic(Megabytes))
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("zero_bandwidth_solving_size", func(t *testing.T) {
		got, _, err := SolveMissing(zeroMbps, secs, Basic(Megabytes))
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestSolveMissing_UnknownMetric(t *testing.T) {
	mb := AmountAndUnit{Amount: 700, Unit: Basic(Megabytes)}
	secs := AmountAndUnit{Amount: 100, Unit: Basic(Seconds)}

	// a malformed ratio anywhere is undecidable
	bad := AmountAndUnit{Amount: 1, Unit: Ratio(Seconds, Seconds)}
	_, _, err := SolveMissing(bad, secs, Basic(Megabytes))
	assert.ErrorIs(t, err, ErrUnknownMetric)

	_, _, err = SolveMissing(mb, bad, Basic(Seconds))
	assert.ErrorIs(t, err, ErrUnknownMetric)

	// the auto sentinel carries no metric, so it cannot be solved for
	_, _, err = SolveMissing(mb, secs, Basic(Auto))
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

// Converting there and back recovers the original amount.
func TestConvert_RoundTrip(t *testing.T) {
	const amount = 3.75
	for _, r1 := range registry {
		for _, r2 := range registry {
			if r1.metric != r2.metric {
				continue
			}
			via, _, err := Convert(amount, Basic(r1.unit), Basic(r2.unit))
			require.NoError(t, err)
			back, _, err := Convert(via, Basic(r2.unit), Basic(r1.unit))
			require.NoError(t, err)
			assert.InEpsilon(t, amount, back, 1e-9, "%v <-> %v", r1.unit, r2.unit)
		}
	}
}
