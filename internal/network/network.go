// Package network talks to the container engine's network registry through
// the Docker SDK.
package network

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"

	"github.com/open-edge-insights/eii-deployment-tool-backend/pkg/logger"
)

// API is the slice of the Docker client the manager needs. It is satisfied
// by *client.Client and by fakes in tests.
type API interface {
	NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
	NetworkCreate(ctx context.Context, name string, options network.CreateOptions) (network.CreateResponse, error)
}

// Manager answers existence queries and creates the stack's isolated
// bridge network. Networks are never removed by the orchestrator.
type Manager struct {
	api API
}

// NewManager connects to the local engine using the standard environment
// configuration (DOCKER_HOST et al.).
func NewManager() (*Manager, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	return &Manager{api: cli}, nil
}

// NewManagerWithAPI wires a manager over an existing client, used in tests.
func NewManagerWithAPI(api API) *Manager {
	return &Manager{api: api}
}

// Exists reports whether a network with the given name is registered.
func (m *Manager) Exists(ctx context.Context, name string) (bool, error) {
	networks, err := m.api.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to list networks: %w", err)
	}

	for _, n := range networks {
		if n.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Create registers a bridge network with the given name.
func (m *Manager) Create(ctx context.Context, name string) error {
	_, err := m.api.NetworkCreate(ctx, name, network.CreateOptions{
		Driver: "bridge",
	})
	if err != nil {
		return fmt.Errorf("failed to create network %s: %w", name, err)
	}

	logger.Info("Network created", "name", name)
	return nil
}
