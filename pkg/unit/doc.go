// Package unit models data-size, time and bandwidth quantities and
// converts between their units.
//
// Overview
//
//   - BaseUnit: an atomic unit (bits .. tebibytes, nanoseconds ..
//     years) backed by a static registry row holding its metric, its SI
//     multiplier and its synonyms. The SI pivot is bytes for data size
//     and seconds for time.
//
//   - Unit: a value type wrapping either one base unit or a ratio of
//     two. A ratio of a data size over a time measures bandwidth; any
//     other ratio has no metric and is rejected.
//
//   - Parsing: SplitAmountAndUnit cuts a token like "147KiB" into its
//     numeric and unit halves, ParseUnit resolves unit text (including
//     "B/s" and "Bps" ratio spellings, and the "auto"/"?" sentinel),
//     and ParseToken combines the two.
//
//   - Conversion: Convert pivots through the SI base of the shared
//     metric and refuses to bridge metrics. An auto target resolves to
//     the largest unit keeping the value at or above one. SolveMissing
//     derives whichever of data size, time and bandwidth the other two
//     determine.
//
// Everything in this package is a pure computation over immutable
// values; the registry is read-only and safe to share across
// goroutines.
package unit
