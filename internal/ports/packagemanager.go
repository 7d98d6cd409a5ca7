package ports

import "context"

// PackageManagerPort wraps the host package manager (apt). Every call maps
// to one blocking external command; a non-zero exit surfaces as an error.
type PackageManagerPort interface {
	Update(ctx context.Context) error
	Install(ctx context.Context, packages []string) error
	Autoremove(ctx context.Context) error
	Clean(ctx context.Context) error
}
