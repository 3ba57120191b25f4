package hostprep

import (
	"context"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/network"
)

// NetworkExists checks the engine's network registry for the stack's
// reserved network and creates it as a bridge when absent.
func NetworkExists(networks *network.Manager, name string) Check {
	return Check{
		Name: "network-exists",
		Probe: func(ctx context.Context) (bool, error) {
			return networks.Exists(ctx, name)
		},
		Apply: func(ctx context.Context) error {
			return networks.Create(ctx, name)
		},
	}
}
