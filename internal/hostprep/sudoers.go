package hostprep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/execx"
)

// SudoersDir is where per-user sudoers fragments live.
const SudoersDir = "/etc/sudoers.d"

// SudoersEntry checks the user's sudoers fragment for a NOPASSWD marker
// and, when absent, appends a passwordless-sudo grant for that user. The
// grant weakens the host's security posture, which is why this checker
// only runs from the explicit build action.
func SudoersEntry(runner execx.Runner, username, sudoersDir string) Check {
	fragment := filepath.Join(sudoersDir, username)

	return Check{
		Name: "sudoers-entry",
		Probe: func(ctx context.Context) (bool, error) {
			data, err := os.ReadFile(fragment)
			if os.IsNotExist(err) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return strings.Contains(string(data), "NOPASSWD"), nil
		},
		Apply: func(ctx context.Context) error {
			grant := fmt.Sprintf("%s ALL=(ALL) NOPASSWD:ALL\n", username)
			return runner.RunInput(ctx, grant, "sudo", "tee", "-a", fragment)
		},
	}
}
