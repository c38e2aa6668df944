// Package config loads application configuration from environment
// variables into typed structs.
//
// It is a thin generic wrapper around `github.com/caarlos0/env/v11`: fields
// are bound with `env` tags, defaults come from `envDefault`, and any parse
// failure is reported as ErrParsingConfig joined with the underlying error.
//
// # Usage
//
//	type AppConfig struct {
//	    Env       string        `env:"APP_ENV" envDefault:"development"`
//	    DelayUnit time.Duration `env:"DELAY_UNIT" envDefault:"1s"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg, config.WithPrefix("FSMDEMO_")); err != nil {
//	    // handle error
//	}
//
// Tests can bypass the process environment with WithEnvironment.
package config
