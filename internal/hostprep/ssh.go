package hostprep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/execx"
)

// SSHTrust checks for the user's RSA public key and, when absent,
// generates a passphrase-less keypair and authorizes it for local login.
// An existing key is never regenerated.
func SSHTrust(runner execx.Runner, homeDir string) Check {
	sshDir := filepath.Join(homeDir, ".ssh")
	keyFile := filepath.Join(sshDir, "id_rsa")
	pubFile := keyFile + ".pub"

	return Check{
		Name: "ssh-trust",
		Probe: func(ctx context.Context) (bool, error) {
			_, err := os.Stat(pubFile)
			if os.IsNotExist(err) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return true, nil
		},
		Apply: func(ctx context.Context) error {
			if err := os.MkdirAll(sshDir, 0700); err != nil {
				return fmt.Errorf("failed to create %s: %w", sshDir, err)
			}

			if err := runner.Run(ctx, "", "ssh-keygen", "-q", "-t", "rsa", "-N", "", "-f", keyFile); err != nil {
				return err
			}

			return authorizeKey(sshDir, pubFile)
		},
	}
}

// authorizeKey appends the public key to authorized_keys so the generated
// key is accepted for local login as the current user.
func authorizeKey(sshDir, pubFile string) error {
	pub, err := os.ReadFile(pubFile)
	if err != nil {
		return fmt.Errorf("failed to read public key %s: %w", pubFile, err)
	}

	authorized := filepath.Join(sshDir, "authorized_keys")
	f, err := os.OpenFile(authorized, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", authorized, err)
	}
	defer f.Close()

	if _, err := f.Write(pub); err != nil {
		return fmt.Errorf("failed to authorize public key: %w", err)
	}
	return nil
}
