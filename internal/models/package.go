package models

// Package is one reading from the tracker: a workout code and the raw values
// in the order the workout expects them.
type Package struct {
	Code   string    `toml:"code"`
	Values []float64 `toml:"values"`
}

//
// For TOML parsing only
//

type PackageImport struct {
	Packages []Package `toml:"package"`
}
