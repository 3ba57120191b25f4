// Package lifecycle holds the ordered action sequences behind each
// operator verb. Every sequence is a logical AND chain: the first failing
// step aborts the rest, nothing is retried, and nothing is rolled back —
// the runtime is left in whatever state the last successful step produced.
package lifecycle

import (
	"context"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/compose"
	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/hostprep"
	"github.com/open-edge-insights/eii-deployment-tool-backend/pkg/logger"
)

// HostPreparer runs the privilege-sensitive host checks (SSH trust,
// sudoers grant) a build depends on.
type HostPreparer interface {
	PrepareHost(ctx context.Context) error
}

// Orchestrator wires the precondition checkers and the container runtime
// into the four lifecycle actions.
type Orchestrator struct {
	Engine  compose.Engine
	Network hostprep.Check
	Certs   hostprep.Check
	Host    HostPreparer
}

// Build is the full sequence: ensure the stack network and certificate
// material exist, tear the running stack down, prepare the host, rebuild
// the image (forwarding any extra operator argument), and bring the stack
// back up. The teardown-before-rebuild order favors a clean rebuild over
// availability.
func (o *Orchestrator) Build(ctx context.Context, extraArgs ...string) error {
	logger.Info("Starting build sequence")

	if err := hostprep.Ensure(ctx, o.Network); err != nil {
		return err
	}
	if err := hostprep.Ensure(ctx, o.Certs); err != nil {
		return err
	}
	if err := o.Engine.Down(ctx); err != nil {
		return err
	}
	if err := o.Host.PrepareHost(ctx); err != nil {
		return err
	}
	if err := o.Engine.Build(ctx, extraArgs...); err != nil {
		return err
	}
	return o.Engine.Up(ctx)
}

// Restart tears the stack down and brings it back up. The host is assumed
// to have been prepared by a prior build; no precondition checks run.
func (o *Orchestrator) Restart(ctx context.Context) error {
	if err := o.Engine.Down(ctx); err != nil {
		return err
	}
	return o.Engine.Up(ctx)
}

// Up brings the stack up detached, no preconditions.
func (o *Orchestrator) Up(ctx context.Context) error {
	return o.Engine.Up(ctx)
}

// Down brings the stack down. Always attempted; the runtime treats an
// already-stopped stack as a no-op.
func (o *Orchestrator) Down(ctx context.Context) error {
	return o.Engine.Down(ctx)
}
