package unit

import "fmt"

// Metric is the dimension a unit measures.
type Metric int

const (
	DataSize Metric = iota
	Time
	Bandwidth
)

// String returns the metric name used in messages.
func (m Metric) String() string {
	switch m {
	case DataSize:
		return "data size"
	case Time:
		return "time"
	case Bandwidth:
		return "bandwidth"
	default:
		return "unknown"
	}
}

// BaseUnit is an atomic unit of measurement. Every variant except Auto
// carries a fixed metric and a fixed SI multiplier in the registry.
type BaseUnit int

const (
	Bits BaseUnit = iota
	Bytes
	Kilobytes
	Kibibytes
	Megabytes
	Mebibytes
	Gigabytes
	Gibibytes
	Terabytes
	Tebibytes
	Nanoseconds
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Years

	// Auto is a parse-only placeholder meaning "pick the unit
	// automatically". It has no metric and no multiplier.
	Auto
)

type registryRow struct {
	unit   BaseUnit
	metric Metric
	// factor converts an amount in this unit to the SI base of its
	// metric: bytes for data size, seconds for time.
	factor float64
	// synonyms are matched case-sensitively; the first entry is the
	// canonical display name.
	synonyms []string
}

// registry rows are ordered by ascending factor within each metric; the
// auto-resolution search depends on that ordering. Row index equals the
// BaseUnit value.
var registry = []registryRow{
	{Bits, DataSize, 1.0 / 8, []string{"b", "bit", "bits"}},
	{Bytes, DataSize, 1, []string{"B", "byte", "bytes"}},
	{Kilobytes, DataSize, 1e3, []string{"KB", "kB", "kilobyte", "kilobytes"}},
	{Kibibytes, DataSize, 1 << 10, []string{"KiB", "kibibyte", "kibibytes"}},
	{Megabytes, DataSize, 1e6, []string{"MB", "megabyte", "megabytes"}},
	{Mebibytes, DataSize, 1 << 20, []string{"MiB", "mebibyte", "mebibytes"}},
	{Gigabytes, DataSize, 1e9, []string{"GB", "gigabyte", "gigabytes"}},
	{Gibibytes, DataSize, 1 << 30, []string{"GiB", "gibibyte", "gibibytes"}},
	{Terabytes, DataSize, 1e12, []string{"TB", "terabyte", "terabytes"}},
	{Tebibytes, DataSize, 1 << 40, []string{"TiB", "tebibyte", "tebibytes"}},
	{Nanoseconds, Time, 1e-9, []string{"ns", "nanosecond", "nanoseconds"}},
	{Microseconds, Time, 1e-6, []string{"us", "µs", "microsecond", "microseconds"}},
	{Milliseconds, Time, 1e-3, []string{"ms", "millisecond", "milliseconds"}},
	{Seconds, Time, 1, []string{"s", "sec", "secs", "second", "seconds"}},
	{Minutes, Time, 60, []string{"min", "mins", "minute", "minutes"}},
	{Hours, Time, 3600, []string{"h", "hr", "hrs", "hour", "hours"}},
	{Days, Time, 86400, []string{"d", "day", "days"}},
	{Weeks, Time, 7 * 86400, []string{"w", "week", "weeks"}},
	// no leap-year modeling
	{Years, Time, 365 * 86400, []string{"y", "yr", "year", "years"}},
}

func (u BaseUnit) row() (registryRow, bool) {
	if int(u) < 0 || int(u) >= len(registry) {
		return registryRow{}, false
	}
	return registry[u], true
}

// Metric returns the dimension u measures. Defined for every variant
// except Auto.
func (u BaseUnit) Metric() (Metric, bool) {
	r, ok := u.row()
	return r.metric, ok
}

// Multiplier returns u's SI conversion factor. Defined for every
// variant except Auto.
func (u BaseUnit) Multiplier() (float64, bool) {
	r, ok := u.row()
	return r.factor, ok
}

// String returns the canonical display name.
func (u BaseUnit) String() string {
	if u == Auto {
		return "auto"
	}
	r, ok := u.row()
	if !ok {
		return fmt.Sprintf("BaseUnit(%d)", int(u))
	}
	return r.synonyms[0]
}

func (u BaseUnit) toSI(amount float64) float64 {
	r, _ := u.row()
	return amount * r.factor
}

func (u BaseUnit) fromSI(si float64) float64 {
	r, _ := u.row()
	return si / r.factor
}

// ParseBaseUnit resolves text against the registry synonym lists with
// an exact, case-sensitive match. "auto" and "?" resolve to the Auto
// sentinel.
func ParseBaseUnit(text string) (BaseUnit, error) {
	if text == "auto" || text == "?" {
		return Auto, nil
	}
	for _, r := range registry {
		for _, s := range r.synonyms {
			if s == text {
				return r.unit, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnitNotFound, text)
}
