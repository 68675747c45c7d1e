// Package config loads settings for the FoundrMate terminal client:
// defaults, then an optional JSON file (-c/-config), then flags.
package config
