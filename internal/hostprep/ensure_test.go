package hostprep

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure_SkipsApplyWhenSatisfied(t *testing.T) {
	applied := 0
	c := Check{
		Name:  "already-there",
		Probe: func(ctx context.Context) (bool, error) { return true, nil },
		Apply: func(ctx context.Context) error { applied++; return nil },
	}

	require.NoError(t, Ensure(context.Background(), c))
	assert.Zero(t, applied)
}

func TestEnsure_AppliesWhenMissing(t *testing.T) {
	applied := 0
	c := Check{
		Name:  "missing",
		Probe: func(ctx context.Context) (bool, error) { return false, nil },
		Apply: func(ctx context.Context) error { applied++; return nil },
	}

	require.NoError(t, Ensure(context.Background(), c))
	assert.Equal(t, 1, applied)
}

func TestEnsure_Idempotent(t *testing.T) {
	// Applying flips the probed state, so a second Ensure must not act.
	satisfied := false
	applied := 0
	c := Check{
		Name:  "stateful",
		Probe: func(ctx context.Context) (bool, error) { return satisfied, nil },
		Apply: func(ctx context.Context) error { applied++; satisfied = true; return nil },
	}

	require.NoError(t, Ensure(context.Background(), c))
	require.NoError(t, Ensure(context.Background(), c))
	assert.Equal(t, 1, applied)
}

func TestEnsure_ProbeError(t *testing.T) {
	applied := 0
	c := Check{
		Name:  "broken-probe",
		Probe: func(ctx context.Context) (bool, error) { return false, errors.New("stat failed") },
		Apply: func(ctx context.Context) error { applied++; return nil },
	}

	err := Ensure(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken-probe")
	assert.Zero(t, applied)
}

func TestEnsure_ApplyError(t *testing.T) {
	c := Check{
		Name:  "failing-apply",
		Probe: func(ctx context.Context) (bool, error) { return false, nil },
		Apply: func(ctx context.Context) error { return errors.New("boom") },
	}

	err := Ensure(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing-apply")
}

func TestPreparer_OrderAndShortCircuit(t *testing.T) {
	var order []string
	mk := func(name string, fail bool) Check {
		return Check{
			Name:  name,
			Probe: func(ctx context.Context) (bool, error) { return false, nil },
			Apply: func(ctx context.Context) error {
				order = append(order, name)
				if fail {
					return errors.New("apply failed")
				}
				return nil
			},
		}
	}

	p := NewPreparer(mk("ssh-trust", false), mk("sudoers-entry", false))
	require.NoError(t, p.PrepareHost(context.Background()))
	assert.Equal(t, []string{"ssh-trust", "sudoers-entry"}, order)

	order = nil
	p = NewPreparer(mk("ssh-trust", true), mk("sudoers-entry", false))
	err := p.PrepareHost(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"ssh-trust"}, order)
}
