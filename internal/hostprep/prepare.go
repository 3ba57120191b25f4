package hostprep

import (
	"context"
	"fmt"
)

// Preparer runs the host-mutating checks a container build depends on:
// SSH trust first, then the sudoers grant. Either failure aborts
// preparation; half-applied state is safe to leave and retry.
type Preparer struct {
	checks []Check
}

// NewPreparer composes checks in the order they must run.
func NewPreparer(checks ...Check) *Preparer {
	return &Preparer{checks: checks}
}

// PrepareHost ensures every composed check, stopping at the first failure.
func (p *Preparer) PrepareHost(ctx context.Context) error {
	for _, c := range p.checks {
		if err := Ensure(ctx, c); err != nil {
			return fmt.Errorf("host preparation: %w", err)
		}
	}
	return nil
}
