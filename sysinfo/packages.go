package sysinfo

import (
	"bytes"
	"context"
)

// packageManager describes how to list installed packages, one per line.
type packageManager struct {
	name   string
	cmd    string
	args   []string
	header int // leading lines that are not packages
}

var packageManagers = []packageManager{
	{name: "pacman", cmd: "pacman", args: []string{"-Qq"}},
	{name: "dpkg", cmd: "dpkg-query", args: []string{"-f", ".\n", "-W"}},
	{name: "rpm", cmd: "rpm", args: []string{"-qa"}},
	{name: "xbps", cmd: "xbps-query", args: []string{"-l"}},
	{name: "apk", cmd: "apk", args: []string{"info"}},
	{name: "flatpak", cmd: "flatpak", args: []string{"list"}},
	{name: "snap", cmd: "snap", args: []string{"list"}, header: 1},
	{name: "brew", cmd: "brew", args: []string{"list", "-1"}},
}

// CountPackages asks every known package manager for its package count.
// Managers that are missing, fail, or report nothing are left out. The
// result is always present; an empty list means no manager answered.
func CountPackages(ctx context.Context, runner CommandRunner) Fact[[]PackageCount] {
	counts := []PackageCount{}
	for _, pm := range packageManagers {
		out, err := runner.Run(ctx, pm.cmd, pm.args...)
		if err != nil {
			continue
		}
		if n := countLines(out) - pm.header; n > 0 {
			counts = append(counts, PackageCount{Manager: pm.name, Count: n})
		}
	}
	return Present(counts)
}

func countLines(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
