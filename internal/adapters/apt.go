package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"android-provision/internal/ports"
	"android-provision/internal/shared"
)

type AptAdapter struct{}

func NewAptAdapter() AptAdapter {
	return AptAdapter{}
}

func (a AptAdapter) Update(ctx context.Context) error {
	return a.run(ctx, "update")
}

func (a AptAdapter) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"install", "-y"}, packages...)
	return a.run(ctx, args...)
}

func (a AptAdapter) Autoremove(ctx context.Context) error {
	return a.run(ctx, "autoremove", "-y")
}

func (a AptAdapter) Clean(ctx context.Context) error {
	return a.run(ctx, "clean")
}

func (a AptAdapter) run(ctx context.Context, args ...string) error {
	log.Debug().Strs("args", args).Msg("apt-get")
	cmd := exec.CommandContext(ctx, "apt-get", args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("apt-get " + args[0] + " failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.PackageManagerPort = AptAdapter{}
