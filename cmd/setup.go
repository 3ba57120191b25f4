package cmd

import (
	"fmt"
	"os/user"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/compose"
	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/config"
	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/execx"
	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/hostprep"
	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/lifecycle"
	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/network"
	"github.com/open-edge-insights/eii-deployment-tool-backend/pkg/logger"
)

// setup loads the environment-file configuration and wires the lifecycle
// orchestrator against the local Docker engine and host.
func setup() (Lifecycle, error) {
	cfg, err := config.Load(config.DefaultBuildDir)
	if err != nil {
		return nil, err
	}

	logger.GetLogger().SetLogLevel(cfg.LogLevel)
	logger.Debug("Configuration loaded",
		"build_dir", cfg.BuildDir,
		"port", cfg.Port,
		"dev_mode", cfg.DevMode)

	networks, err := network.NewManager()
	if err != nil {
		return nil, err
	}

	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}

	runner := execx.Exec{}

	return &lifecycle.Orchestrator{
		Engine:  compose.NewCompose(cfg.BuildDir, runner),
		Network: hostprep.NetworkExists(networks, config.StackNetwork),
		Certs:   hostprep.CertificatesExist(runner, cfg.BuildDir, u),
		Host: hostprep.NewPreparer(
			hostprep.SSHTrust(runner, u.HomeDir),
			hostprep.SudoersEntry(runner, u.Username, hostprep.SudoersDir),
		),
	}, nil
}
