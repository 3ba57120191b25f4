// Package compose describes the deployment tool's compose stack and
// delegates its build/up/down lifecycle to the compose CLI.
package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const stackFileName = "docker-compose.yml"

// Stack is the subset of the compose file the orchestrator cares about.
// The file itself is produced by the deployment tool's builder; the
// orchestrator only reads it to report what it is about to build.
type Stack struct {
	Services map[string]Service `yaml:"services"`
}

// Service is a single compose service entry.
type Service struct {
	Image         string `yaml:"image"`
	ContainerName string `yaml:"container_name"`
}

// LoadStack parses <dir>/docker-compose.yml.
func LoadStack(dir string) (*Stack, error) {
	path := filepath.Join(dir, stackFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stack file %s: %w", path, err)
	}

	var stack Stack
	if err := yaml.Unmarshal(data, &stack); err != nil {
		return nil, fmt.Errorf("failed to parse stack file %s: %w", path, err)
	}

	if len(stack.Services) == 0 {
		return nil, fmt.Errorf("stack file %s defines no services", path)
	}

	return &stack, nil
}

// ServiceNames returns the stack's service names in stable order.
func (s *Stack) ServiceNames() []string {
	names := make([]string, 0, len(s.Services))
	for name := range s.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
