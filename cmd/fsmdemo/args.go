package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

type arguments struct {
	delay      uint
	verbose    bool
	fsmVerbose bool
}

// usageError is reported together with the usage text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func newUsageError(format string, args ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// delayValue keeps the raw -d value so it can be validated after parsing.
// Set never fails; repetitions are counted instead.
type delayValue struct {
	raw   string
	count int
}

var _ pflag.Value = &delayValue{}

func (d *delayValue) Set(s string) error {
	d.raw = s
	d.count++
	return nil
}

func (d *delayValue) Type() string {
	return "delay"
}

func (d *delayValue) String() string {
	return d.raw
}

type flagSet struct {
	fs         *pflag.FlagSet
	help       *bool
	verbose    *bool
	fsmVerbose *bool
	delay      *delayValue
}

func newFlagSet(name string) *flagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	f := &flagSet{fs: fs, delay: &delayValue{}}
	f.help = fs.BoolP("help", "h", false, "Display this help message and exit")
	f.verbose = fs.BoolP("verbose", "v", false, "Enable verbose tracing")
	f.fsmVerbose = fs.BoolP("fsm-verbose", "V", false, "Enable verbose FSM tracing")
	fs.VarP(f.delay, "delay", "d", "`delay` in seconds (required)")
	return f
}

// parseArguments turns argv (without the program name) into arguments.
// Every failure is a *usageError.
func parseArguments(f *flagSet, argv []string) (*arguments, error) {
	if err := f.fs.Parse(argv); err != nil {
		return nil, newUsageError("%s.", err.Error())
	}

	if *f.help {
		return nil, &usageError{}
	}

	if f.delay.count > 1 {
		return nil, newUsageError("Option '-d' specified more than once.")
	}

	if f.delay.count == 1 && f.delay.raw == "" {
		return nil, newUsageError("Option '-d' requires a non-empty value.")
	}

	if rest := f.fs.Args(); len(rest) > 0 {
		plural := ""
		if len(rest) > 1 {
			plural = "s"
		}
		return nil, newUsageError("Unexpected argument%s: %s", plural, strings.Join(rest, " "))
	}

	if f.delay.count == 0 {
		return nil, newUsageError("The delay is required.")
	}

	delay, err := strconv.ParseUint(f.delay.raw, 10, 32)
	if err != nil {
		return nil, newUsageError("The delay must be a non-negative integer.")
	}

	return &arguments{
		delay:      uint(delay),
		verbose:    *f.verbose,
		fsmVerbose: *f.fsmVerbose,
	}, nil
}

func printUsage(w io.Writer, name string, f *flagSet, msg string) {
	if msg != "" {
		fmt.Fprintf(w, "%s\n\n", msg)
	}
	fmt.Fprintf(w, "Usage: %s [-h] [-v] [-V] -d <delay>\n", name)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, f.fs.FlagUsages())
}
