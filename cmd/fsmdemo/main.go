// Command fsmdemo drives a three-state example machine, printing each state
// and pausing between them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrymomot/tablefsm/pkg/config"
	"github.com/dmitrymomot/tablefsm/pkg/environment"
	"github.com/dmitrymomot/tablefsm/pkg/logger"
	"github.com/dmitrymomot/tablefsm/pkg/statemachine"
	"github.com/dmitrymomot/tablefsm/svc/chain"
)

const (
	serviceName = "fsmdemo"
	envPrefix   = "FSMDEMO_"

	exitSuccess = 0
	exitFailure = 1
)

type appConfig struct {
	Env       string        `env:"APP_ENV" envDefault:"development"`
	LogFormat string        `env:"LOG_FORMAT"`
	Name      string        `env:"NAME" envDefault:"fsm"`
	DelayUnit time.Duration `env:"DELAY_UNIT" envDefault:"1s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, nil, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the program and returns its exit status. A nil environ
// means the process environment.
func run(ctx context.Context, argv []string, environ map[string]string, stdout, stderr io.Writer) int {
	name := serviceName
	if len(argv) > 0 {
		name = filepath.Base(argv[0])
		argv = argv[1:]
	}

	flags := newFlagSet(name)
	args, err := parseArguments(flags, argv)
	if err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			printUsage(stderr, name, flags, uerr.msg)
		} else {
			fmt.Fprintln(stderr, oneLine(err))
		}
		return exitFailure
	}

	opts := []config.Option{config.WithPrefix(envPrefix)}
	if environ != nil {
		opts = append(opts, config.WithEnvironment(environ))
	}

	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		fmt.Fprintln(stderr, oneLine(err))
		return exitFailure
	}

	log, err := newLogger(cfg, args.verbose, stderr)
	if err != nil {
		fmt.Fprintln(stderr, oneLine(err))
		return exitFailure
	}

	log.LogAttrs(ctx, slog.LevelDebug, "arguments parsed",
		slog.Uint64("delay", uint64(args.delay)),
		slog.Bool("fsm_verbose", args.fsmVerbose),
		slog.Duration("delay_unit", cfg.DelayUnit),
	)

	machineOpts := []statemachine.Option{
		statemachine.WithName(cfg.Name),
		statemachine.WithLogger(log),
	}
	if args.fsmVerbose {
		machineOpts = append(machineOpts, chain.Tracer(stdout, cfg.Name)...)
	}

	env := &chain.Env{
		Delay:  time.Duration(args.delay) * cfg.DelayUnit,
		Out:    stdout,
		Logger: log,
	}

	res, err := chain.Run(ctx, env, machineOpts...)
	if err != nil {
		log.LogAttrs(ctx, slog.LevelDebug, "run failed", logger.RunID(res.RunID), logger.Error(err))
		fmt.Fprintln(stderr, oneLine(err))
		return exitFailure
	}

	log.LogAttrs(ctx, slog.LevelDebug, "run complete",
		logger.RunID(res.RunID),
		logger.FromState(chain.StateName(res.From)),
		logger.ToState(chain.StateName(res.To)),
		logger.Steps(res.Steps),
	)
	return exitSuccess
}

func newLogger(cfg appConfig, verbose bool, w io.Writer) (*slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), serviceName),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id := statemachine.RunIDFromContext(ctx)
			return logger.RunID(id), id != ""
		}),
	}

	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

// oneLine flattens joined errors into a single operator-facing line.
func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
