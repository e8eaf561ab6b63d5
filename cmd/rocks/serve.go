package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocks-diamonds/internal/platform/tui"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets players connect and play remotely.

Each session gets its own simulation. The level is the first word of the
SSH command, or the configured default when none is given.

Examples:
  rocks serve --ssh :23234
  rocks serve --ssh 0.0.0.0:2222 --host-key ./host_key

Connect with:
  ssh -t -p 23234 localhost
  ssh -t -p 23234 localhost 02-rockfall`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(_ *cobra.Command, _ []string) error {
	rocksCfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := flagLevel
	if level == "" {
		level = rocksCfg.Level.ID
	}
	if level != "" && !registry.Exists(level) {
		logger.Warn("default level not registered, falling back", "level", level, "fallback", registry.First())
		level = ""
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS
	cfg.Level = level
	cfg.Rocks = rocksCfg

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
