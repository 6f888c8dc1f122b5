package sysinfo

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

const osReleasePath = "/etc/os-release"

func (c *Collector) username() Fact[string] {
	return Resolve(
		func() Fact[string] {
			u, err := user.Current()
			if err != nil {
				return Unavailable[string]()
			}
			return NonEmpty(u.Username)
		},
		func() Fact[string] { return NonEmpty(c.opts.Getenv("USER")) },
	)
}

func (c *Collector) hostname() Fact[string] {
	name, err := os.Hostname()
	if err != nil {
		return Unavailable[string]()
	}
	return NonEmpty(StripNewline(name))
}

// distribution prefers the os-release pretty name and falls back to the
// platform gopsutil detects.
func (c *Collector) distribution(ctx context.Context) func() Fact[string] {
	return func() Fact[string] {
		return Resolve(
			func() Fact[string] { return OSReleaseName(osReleasePath) },
			func() Fact[string] {
				platform, _, version, err := host.PlatformInformationWithContext(ctx)
				if err != nil || platform == "" {
					return Unavailable[string]()
				}
				return Present(strings.TrimSpace(platform + " " + version))
			},
		)
	}
}

// osName is the generic operating system name, e.g. "Linux".
func (c *Collector) osName(ctx context.Context) func() Fact[string] {
	return func() Fact[string] {
		info, err := host.InfoWithContext(ctx)
		if err != nil || info.OS == "" {
			return Unavailable[string]()
		}
		return Present(strings.ToUpper(info.OS[:1]) + info.OS[1:])
	}
}

// OSReleaseName reads PRETTY_NAME from an os-release file.
func OSReleaseName(path string) Fact[string] {
	return Map(ScanKey(path, "PRETTY_NAME"), func(v string) string {
		return strings.Trim(v, `"'`)
	})
}

func (c *Collector) kernelRelease(ctx context.Context) func() Fact[string] {
	return func() Fact[string] {
		v, err := host.KernelVersionWithContext(ctx)
		if err != nil {
			return Unavailable[string]()
		}
		return NonEmpty(StripNewline(v))
	}
}

func (c *Collector) uptime(ctx context.Context) Fact[uint64] {
	return FromResult(host.UptimeWithContext(ctx))
}

// currentShell is the name of the process that started us.
func (c *Collector) currentShell(ctx context.Context) func() Fact[string] {
	return func() Fact[string] {
		return processName(ctx, int32(os.Getppid()))
	}
}

// loginShell is the user's default shell from $SHELL.
func (c *Collector) loginShell() Fact[string] {
	sh := c.opts.Getenv("SHELL")
	if sh == "" {
		return Unavailable[string]()
	}
	return Present(filepath.Base(sh))
}

// terminal walks one level above the shell; the shell's parent is usually
// the terminal emulator.
func (c *Collector) terminal(ctx context.Context) Fact[string] {
	return Resolve(
		func() Fact[string] {
			p, err := process.NewProcessWithContext(ctx, int32(os.Getppid()))
			if err != nil {
				return Unavailable[string]()
			}
			ppid, err := p.PpidWithContext(ctx)
			if err != nil || ppid <= 1 {
				return Unavailable[string]()
			}
			return processName(ctx, ppid)
		},
		func() Fact[string] { return NonEmpty(c.opts.Getenv("TERM_PROGRAM")) },
		func() Fact[string] { return NonEmpty(c.opts.Getenv("TERM")) },
	)
}

func (c *Collector) desktopEnvironment() Fact[string] {
	return Resolve(
		func() Fact[string] { return NonEmpty(c.opts.Getenv("XDG_CURRENT_DESKTOP")) },
		func() Fact[string] { return NonEmpty(c.opts.Getenv("DESKTOP_SESSION")) },
	)
}

func (c *Collector) cpuModel(ctx context.Context) Fact[string] {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		return Unavailable[string]()
	}
	return NonEmpty(strings.TrimSpace(infos[0].ModelName))
}

// memory needs both counters; one without the other is useless.
func (c *Collector) memory(ctx context.Context) Fact[MemoryUsage] {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil || vm.Total == 0 {
		return Unavailable[MemoryUsage]()
	}
	return Present(MemoryUsage{Used: vm.Used, Total: vm.Total})
}

func processName(ctx context.Context, pid int32) Fact[string] {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return Unavailable[string]()
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return Unavailable[string]()
	}
	return NonEmpty(filepath.Base(StripNewline(name)))
}
