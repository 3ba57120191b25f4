package hostprep

import (
	"context"
	"os"
	"os/user"
	"path/filepath"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/execx"
)

const (
	certsDirName  = "Certificates"
	certGenScript = "gen_certs.sh"
)

// CertificatesExist checks for the TLS certificate directory under the
// build tree. When absent it runs the external generation script (which
// needs elevated privileges and leaves root-owned files behind) and then
// hands ownership of the directory back to the invoking user. The
// orchestrator never inspects the generated material.
func CertificatesExist(runner execx.Runner, buildDir string, owner *user.User) Check {
	certsDir := filepath.Join(buildDir, certsDirName)

	return Check{
		Name: "certificates-exist",
		Probe: func(ctx context.Context) (bool, error) {
			info, err := os.Stat(certsDir)
			if os.IsNotExist(err) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return info.IsDir(), nil
		},
		Apply: func(ctx context.Context) error {
			script := filepath.Join(buildDir, certGenScript)
			if err := runner.Run(ctx, buildDir, "sudo", script); err != nil {
				return err
			}
			return runner.Run(ctx, buildDir, "sudo", "chown", "-R", owner.Uid+":"+owner.Gid, certsDir)
		},
	}
}
