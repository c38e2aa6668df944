package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Option adjusts how environment variables are read.
type Option func(*env.Options)

// WithPrefix only reads variables starting with prefix; tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// WithEnvironment reads from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// Load parses environment variables into the struct pointed to by v
// according to its `env` and `envDefault` field tags.
//
// Example:
//
//	type AppConfig struct {
//		LogFormat string        `env:"LOG_FORMAT" envDefault:"text"`
//		DelayUnit time.Duration `env:"DELAY_UNIT" envDefault:"1s"`
//	}
//
//	var cfg AppConfig
//	err := config.Load(&cfg, config.WithPrefix("FSMDEMO_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic("failed to load required configuration: " + err.Error())
	}
}
