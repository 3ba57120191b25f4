package compose

import (
	"context"
	"strings"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/execx"
	"github.com/open-edge-insights/eii-deployment-tool-backend/pkg/logger"
)

// Engine is the container runtime the lifecycle actions delegate to. The
// command contract is fixed: build the image, bring the stack up detached,
// bring the stack down. Implementations never retry.
type Engine interface {
	Build(ctx context.Context, extraArgs ...string) error
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

// Compose implements Engine by shelling out to `docker compose` in the
// build directory, inheriting stdio so the operator sees the runtime's own
// output. A non-zero compose exit surfaces as an execx.ExitError.
type Compose struct {
	dir    string
	runner execx.Runner
}

// NewCompose returns an Engine rooted at the given build directory.
func NewCompose(dir string, runner execx.Runner) *Compose {
	return &Compose{dir: dir, runner: runner}
}

// Build runs `docker compose build`, forwarding any extra operator
// arguments (e.g. --no-cache) verbatim. The stack file is parsed first so
// a missing or empty stack fails before the runtime is invoked.
func (c *Compose) Build(ctx context.Context, extraArgs ...string) error {
	stack, err := LoadStack(c.dir)
	if err != nil {
		return err
	}
	logger.Info("Building stack", "services", strings.Join(stack.ServiceNames(), ","))

	args := append([]string{"compose", "build"}, extraArgs...)
	return c.runner.Run(ctx, c.dir, "docker", args...)
}

// Up brings the stack up detached.
func (c *Compose) Up(ctx context.Context) error {
	logger.Info("Bringing stack up")
	return c.runner.Run(ctx, c.dir, "docker", "compose", "up", "-d")
}

// Down brings the stack down. Compose treats an already-stopped stack as a
// no-op, so Down is safe to call unconditionally.
func (c *Compose) Down(ctx context.Context) error {
	logger.Info("Bringing stack down")
	return c.runner.Run(ctx, c.dir, "docker", "compose", "down")
}
