package ports

import "android-provision/internal/types"

// ManifestPort loads a package-set manifest that overrides the built-in
// tables.
type ManifestPort interface {
	LoadManifest(path string) (types.PackageManifest, error)
}
