// Package sysinfo gathers host facts for the readout. Every fact comes from an
// external and possibly failing source; a failed source yields an unavailable
// Fact instead of an error.
package sysinfo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// PackageCount is the number of packages one package manager reports.
type PackageCount struct {
	Manager string
	Count   int
}

// MemoryUsage is a used/total pair in bytes.
type MemoryUsage struct {
	Used  uint64
	Total uint64
}

// SystemInfo holds every fact the readout can show. Each field is queried
// exactly once per run.
type SystemInfo struct {
	// Username is the current user's login name
	Username Fact[string]

	// Hostname is the machine's network name
	Hostname Fact[string]

	// OS is the distribution name, or the generic OS name when the
	// distribution cannot be determined
	OS Fact[string]

	// Kernel is the kernel release
	Kernel Fact[string]

	// Uptime in seconds
	Uptime Fact[uint64]

	// Packages lists per-manager package counts
	Packages Fact[[]PackageCount]

	// Shell is the shell that started this process
	Shell Fact[string]

	// Resolution of the attached display(s)
	Resolution Fact[string]

	// DesktopEnvironment as advertised by the session
	DesktopEnvironment Fact[string]

	// WindowManager as reported by the compositor or probed over the display protocol
	WindowManager Fact[string]

	// Theme and Icons come from the GTK 3 settings file
	Theme Fact[string]
	Icons Fact[string]

	// Terminal is the terminal emulator hosting the shell
	Terminal Fact[string]

	// CPU model name
	CPU Fact[string]

	// GPUs lists graphics card names
	GPUs Fact[[]string]

	// Memory shows used/total RAM
	Memory Fact[MemoryUsage]
}

// Options controls how facts are collected.
type Options struct {
	// ConfigDir is the user configuration directory the GTK settings live in.
	ConfigDir string

	// CommandTimeout bounds each external command (package managers).
	CommandTimeout time.Duration

	// Runner executes external commands. Defaults to a LocalRunner.
	Runner CommandRunner

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	Logger *slog.Logger
}

// Collector queries fact sources sequentially.
type Collector struct {
	opts Options
	log  *slog.Logger
}

// NewCollector returns a Collector with defaults filled in.
func NewCollector(opts Options) *Collector {
	if opts.Runner == nil {
		opts.Runner = LocalRunner{Timeout: opts.CommandTimeout}
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Collector{opts: opts, log: opts.Logger}
}

// GetSystemInfo retrieves every fact in report order.
//
// Returns:
//   - A pointer to a populated SystemInfo struct; absent facts are unavailable,
//     never errors
func (c *Collector) GetSystemInfo(ctx context.Context) *SystemInfo {
	start := time.Now()
	info := &SystemInfo{
		Username:           logFact(c.log, "username", c.username()),
		Hostname:           logFact(c.log, "hostname", c.hostname()),
		OS:                 logFact(c.log, "os", Resolve(c.distribution(ctx), c.osName(ctx))),
		Kernel:             logFact(c.log, "kernel", Resolve(c.kernelRelease(ctx), unameRelease)),
		Uptime:             logFact(c.log, "uptime", c.uptime(ctx)),
		Packages:           logFact(c.log, "packages", CountPackages(ctx, c.opts.Runner)),
		Shell:              logFact(c.log, "shell", Resolve(c.currentShell(ctx), c.loginShell)),
		Resolution:         logFact(c.log, "resolution", Resolve(c.x11Resolution, c.drmResolution)),
		DesktopEnvironment: logFact(c.log, "de", c.desktopEnvironment()),
		WindowManager:      logFact(c.log, "wm", Resolve(c.compositorWM, c.probeWM(ctx))),
		Theme:              logFact(c.log, "theme", c.gtkSetting("gtk-theme-name")),
		Icons:              logFact(c.log, "icons", c.gtkSetting("gtk-icon-theme-name")),
		Terminal:           logFact(c.log, "terminal", c.terminal(ctx)),
		CPU:                logFact(c.log, "cpu", c.cpuModel(ctx)),
		GPUs:               logFact(c.log, "gpu", gpuList()),
		Memory:             logFact(c.log, "memory", c.memory(ctx)),
	}
	c.log.Debug("facts collected", "elapsed", time.Since(start))
	return info
}

// logFact records an unavailable fact at debug level and passes it through.
func logFact[T any](log *slog.Logger, name string, f Fact[T]) Fact[T] {
	if !f.Ok() {
		log.Debug("fact unavailable", "fact", name)
	}
	return f
}
