package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/unitconv/pkg/config"
	"github.com/ja7ad/unitconv/pkg/format"
	"github.com/ja7ad/unitconv/pkg/logging"
	"github.com/ja7ad/unitconv/pkg/unit"
)

type opts struct {
	precision int
	solve     bool
	verbose   bool
	cfgFile   string
}

func newRootCmd() *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "unitconv <amount><unit> [<amount><unit>] <targetUnit>",
		Short: "Convert between data size, time and bandwidth units",
		Long: `unitconv converts a quantity like 147KiB or 3500ms into another unit
of the same metric. The target may be "auto" (or "?") to pick the
largest unit whose value stays at or above one. Bandwidth units are
written as a ratio, "B/s" or "Bps".

With --time, three arguments solve for the missing one of data size,
time and bandwidth: supply two measured quantities and the unit to
derive.

Examples:
  unitconv 150528B KiB
  unitconv 86400s auto
  unitconv 1536bytes ?
  unitconv -p 4 1GiB MB
  unitconv -t 700MB 7MBps s
  unitconv -t 700MB 100s MBps`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	root.Flags().IntVarP(&o.precision, "precision", "p", format.DefaultPrecision, "decimal places for non-integer results, 0-15 (default: config value)")
	root.Flags().BoolVarP(&o.solve, "time", "t", false, "solve for the missing one of data size, time and bandwidth")
	root.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&o.cfgFile, "config", "", "config file (default $HOME/.unitconv.json)")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, o opts, args []string) error {
	cfg, err := loadConfig(o.cfgFile)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if o.verbose {
		level = "debug"
	}
	logging.Init(level)

	precision := cfg.Precision
	if cmd.Flags().Changed("precision") {
		precision = o.precision
	}
	if precision < 0 || precision > format.MaxPrecision {
		return fmt.Errorf("precision must be in [0,%d], got %d", format.MaxPrecision, precision)
	}
	f := format.Formatter{Precision: precision}

	if o.solve {
		return runSolve(f, args)
	}
	return runConvert(f, args)
}

func runConvert(f format.Formatter, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <amount><unit> <targetUnit>, got %d arguments", unit.ErrNotEnoughArgs, len(args))
	}
	q, err := unit.ParseToken(args[0])
	if err != nil {
		return err
	}
	target, err := unit.ParseUnit(args[1])
	if err != nil {
		return err
	}

	logging.S.Debugw("convert", "amount", q.Amount, "from", q.Unit.String(), "to", target.String())

	value, resolved, err := unit.Convert(q.Amount, q.Unit, target)
	if err != nil {
		return err
	}
	fmt.Println(f.Result(value, resolved))
	return nil
}

func runSolve(f format.Formatter, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: expected <amount><unit> <amount><unit> <targetUnit>, got %d arguments", unit.ErrNotEnoughArgs, len(args))
	}
	a, err := unit.ParseToken(args[0])
	if err != nil {
		return err
	}
	b, err := unit.ParseToken(args[1])
	if err != nil {
		return err
	}
	target, err := unit.ParseUnit(args[2])
	if err != nil {
		return err
	}

	logging.S.Debugw("solve", "a", args[0], "b", args[1], "target", target.String())

	value, resolved, err := unit.SolveMissing(a, b, target)
	if err != nil {
		return err
	}
	fmt.Println(f.Result(value, resolved))
	return nil
}

// loadConfig reads the config file. The default path is optional; a
// path given explicitly must exist.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.Path()
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// userMessage maps a failure to the message printed on stderr. Each
// error kind has exactly one message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, unit.ErrNotEnoughArgs):
		return fmt.Sprintf("wrong number of arguments (%v); see unitconv --help", err)
	case errors.Is(err, unit.ErrAmountAndUnitRequired):
		return fmt.Sprintf("expected an amount followed by a unit, like 147KiB (%v)", err)
	case errors.Is(err, unit.ErrCouldNotParseAmount):
		return fmt.Sprintf("the amount is not a valid number (%v)", err)
	case errors.Is(err, unit.ErrUnitNotFound):
		return fmt.Sprintf("unknown unit (%v); run unitconv --help for the recognized names", err)
	case errors.Is(err, unit.ErrMismatchedMetrics):
		return fmt.Sprintf("source and target measure different things (%v)", err)
	case errors.Is(err, unit.ErrUnknownMetric):
		return fmt.Sprintf("that unit does not measure a known metric (%v)", err)
	case errors.Is(err, unit.ErrWrongUnits):
		return fmt.Sprintf("solving needs one data size, one time and one bandwidth (%v)", err)
	case errors.Is(err, unit.ErrZeroQuantity):
		return fmt.Sprintf("cannot solve when the quantity divided by is zero (%v)", err)
	default:
		return err.Error()
	}
}
