package sysinfo

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// GTKSettingsPath is the GTK 3 settings file under a config directory.
func GTKSettingsPath(configDir string) string {
	return filepath.Join(configDir, "gtk-3.0", "settings.ini")
}

// gtkSetting reads one key from the user's GTK 3 settings.
func (c *Collector) gtkSetting(key string) Fact[string] {
	if c.opts.ConfigDir == "" {
		return Unavailable[string]()
	}
	return ScanKey(GTKSettingsPath(c.opts.ConfigDir), key)
}

// ScanKey returns the value of the first line in path that contains key.
//
// Parameters:
//   - path: File to scan, e.g. ~/.config/gtk-3.0/settings.ini
//   - key: Substring identifying the line, e.g. "gtk-theme-name"
//
// Returns:
//   - The trimmed text after the first "=" of the matching line
//   - Unavailable if the file cannot be read, no line matches, or the
//     matching line has no "="
func ScanKey(path, key string) Fact[string] {
	f, err := os.Open(path)
	if err != nil {
		return Unavailable[string]()
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, key) {
			continue
		}
		_, value, found := strings.Cut(line, "=")
		if !found {
			return Unavailable[string]()
		}
		return Present(strings.TrimSpace(value))
	}
	return Unavailable[string]()
}
