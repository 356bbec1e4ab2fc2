// Package config loads, normalizes, and validates sortdir configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Every knob is ambient: log destination
// and format, copy verification, the collision-probe cap, and the run
// history toggle. The category table itself is fixed and deliberately not
// configurable. sortdir runs fully on defaults when no config file exists.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
