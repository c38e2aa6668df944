// Package environment defines the typed application environment
// (development, staging, production) and parses it from configuration.
package environment
