// Package main provides the lxfetch command-line tool for displaying Linux
// system information beside the Arch Linux logo.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"lxfetch/ascii"
	"lxfetch/config"
	"lxfetch/logging"
	"lxfetch/render"
	"lxfetch/report"
	"lxfetch/sysinfo"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lxfetch",
		Short: "Show system information beside the Arch Linux logo",
		Long: `lxfetch gathers host facts (distribution, kernel, uptime, packages,
desktop, hardware) and prints them beside the Arch Linux logo. Facts that
cannot be read on this host are left out.

Environment:
  XFETCH_DEBUG=1             log unavailable facts to stderr
  XFETCH_LOG_LEVEL           debug, info, warn (default), error
  XFETCH_CMD_TIMEOUT_MS      timeout per package manager query (default 1500)`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("lxfetch %s\n", version))
	return cmd
}

// run collects every fact, builds the readout and prints it beside the logo.
// Only a missing logo or a failed write is an error.
func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg := config.Load()
	log := logging.Setup(stderr, cfg.LogLevel)

	artStyle := lipgloss.NewRenderer(stdout).NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	logo, err := ascii.Logo(artStyle)
	if err != nil {
		return fmt.Errorf("load logo: %w", err)
	}

	collector := sysinfo.NewCollector(sysinfo.Options{
		ConfigDir:      cfg.ConfigDir,
		CommandTimeout: cfg.CommandTimeout,
		Logger:         log,
	})
	rep := report.Build(collector.GetSystemInfo(ctx))

	if err := render.New(stdout, logo).Render(rep); err != nil {
		return err
	}
	log.Debug("rendered", "rows", len(rep.Rows), "label_width", rep.LabelWidth())
	return nil
}
