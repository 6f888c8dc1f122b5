// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
)

const gib = 1024 * 1024 * 1024

// FormatUptime converts an uptime in seconds to "<H> Hours, <M> Minutes".
//
// Parameters:
//   - uptime: Uptime in whole seconds
//
// Returns:
//   - The formatted uptime, or an unavailable fact if uptime is unavailable
//
// Both components are floored: 3661 seconds is "1 Hours, 1 Minutes" and
// anything under a minute is "0 Hours, 0 Minutes".
func FormatUptime(uptime Fact[uint64]) Fact[string] {
	return Map(uptime, func(secs uint64) string {
		hours := secs / 3600
		minutes := (secs - hours*3600) / 60
		return fmt.Sprintf("%d Hours, %d Minutes", hours, minutes)
	})
}

// FormatPackages joins per-manager package counts as "900 (pacman), 12 (flatpak)".
// A host with no detected package manager has no package count at all, so an
// empty list is unavailable rather than "".
func FormatPackages(packages Fact[[]PackageCount]) Fact[string] {
	list, ok := packages.Get()
	if !ok || len(list) == 0 {
		return Unavailable[string]()
	}

	var b strings.Builder
	for _, p := range list {
		b.WriteString(strconv.Itoa(p.Count))
		b.WriteString(" (")
		b.WriteString(p.Manager)
		b.WriteString("), ")
	}
	return Present(strings.TrimSuffix(b.String(), ", "))
}

// FormatMemory renders used and total memory in GiB with two decimals.
//
// Example: 2147483648 used of 17179869184 total is "2.00GiB / 16.00GiB"
func FormatMemory(memory Fact[MemoryUsage]) Fact[string] {
	return Map(memory, func(m MemoryUsage) string {
		return fmt.Sprintf("%.2fGiB / %.2fGiB", float64(m.Used)/gib, float64(m.Total)/gib)
	})
}

// FormatList joins text items with ", ". An empty list is unavailable.
func FormatList(items Fact[[]string]) Fact[string] {
	list, ok := items.Get()
	if !ok || len(list) == 0 {
		return Unavailable[string]()
	}
	return Present(strings.Join(list, ", "))
}

// StripNewline removes exactly one trailing line terminator ("\n" or "\r\n").
func StripNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = s[:len(s)-1]
	return strings.TrimSuffix(s, "\r")
}
