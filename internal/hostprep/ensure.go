// Package hostprep holds the idempotent host precondition checkers. Each
// checker is a probe plus an apply; Ensure runs the apply only when the
// probe reports the precondition missing, so repeated invocations never
// mutate an already-prepared host.
package hostprep

import (
	"context"
	"fmt"

	"github.com/open-edge-insights/eii-deployment-tool-backend/pkg/logger"
)

// Check pairs a named precondition probe with the minimal action that
// satisfies it.
type Check struct {
	Name  string
	Probe func(ctx context.Context) (bool, error)
	Apply func(ctx context.Context) error
}

// Ensure evaluates the check and applies it only if the precondition does
// not already hold.
func Ensure(ctx context.Context, c Check) error {
	ok, err := c.Probe(ctx)
	if err != nil {
		return fmt.Errorf("%s: probe failed: %w", c.Name, err)
	}
	if ok {
		logger.Debug("Precondition already satisfied", "check", c.Name)
		return nil
	}

	logger.Info("Applying precondition", "check", c.Name)
	if err := c.Apply(ctx); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}
