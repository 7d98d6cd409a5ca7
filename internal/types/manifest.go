package types

// PackageManifest is an operator-supplied override for the built-in
// package tables. Android sets are keyed by the release major ("16",
// "18", ...); Default applies to unrecognized releases.
type PackageManifest struct {
	Base    []string            `yaml:"base"`
	Android map[string][]string `yaml:"android"`
	Default []string            `yaml:"default"`
}
