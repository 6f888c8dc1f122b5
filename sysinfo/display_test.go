package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func envFunc(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestCompositorWM(t *testing.T) {
	c := NewCollector(Options{Getenv: envFunc(map[string]string{
		"WAYLAND_DISPLAY": "wayland-1",
		"SWAYSOCK":        "/run/user/1000/sway-ipc.sock",
	})})
	if got, ok := c.compositorWM().Get(); !ok || got != "sway" {
		t.Fatalf("compositorWM = %q, %v", got, ok)
	}

	bare := NewCollector(Options{Getenv: envFunc(nil)})
	if bare.compositorWM().Ok() {
		t.Fatal("no compositor env should be unavailable")
	}
}

func TestProbeWM_NoDisplay(t *testing.T) {
	c := NewCollector(Options{Getenv: envFunc(nil)})
	if c.probeWM(context.Background())().Ok() {
		t.Fatal("without WAYLAND_DISPLAY or DISPLAY the probe must be unavailable")
	}
}

func TestDesktopEnvironment(t *testing.T) {
	c := NewCollector(Options{Getenv: envFunc(map[string]string{"DESKTOP_SESSION": "plasma"})})
	if got, _ := c.desktopEnvironment().Get(); got != "plasma" {
		t.Fatalf("desktopEnvironment = %q", got)
	}
	c = NewCollector(Options{Getenv: envFunc(map[string]string{
		"XDG_CURRENT_DESKTOP": "GNOME",
		"DESKTOP_SESSION":     "gnome-xorg",
	})})
	if got, _ := c.desktopEnvironment().Get(); got != "GNOME" {
		t.Fatalf("desktopEnvironment = %q", got)
	}
}

func TestLoginShell(t *testing.T) {
	c := NewCollector(Options{Getenv: envFunc(map[string]string{"SHELL": "/usr/bin/zsh"})})
	if got, _ := c.loginShell().Get(); got != "zsh" {
		t.Fatalf("loginShell = %q", got)
	}
}

func TestDRMResolution(t *testing.T) {
	root := t.TempDir()
	mk := func(name, status, modes string) {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		_ = os.WriteFile(filepath.Join(dir, "status"), []byte(status+"\n"), 0o644)
		_ = os.WriteFile(filepath.Join(dir, "modes"), []byte(modes), 0o644)
	}
	mk("card0-eDP-1", "connected", "2560x1440\n1920x1080\n")
	mk("card0-HDMI-A-1", "disconnected", "")
	mk("card1-DP-2", "connected", "1920x1080\n")

	got, ok := DRMResolution(root).Get()
	if !ok || got != "2560x1440, 1920x1080" {
		t.Fatalf("DRMResolution = %q, %v", got, ok)
	}

	if DRMResolution(t.TempDir()).Ok() {
		t.Fatal("no connectors should be unavailable")
	}
}

func TestGPUName(t *testing.T) {
	tests := []struct{ vendor, product, want string }{
		{"Advanced Micro Devices, Inc. [AMD/ATI]", "Navi 22", "Advanced Micro Devices, Inc. [AMD/ATI] Navi 22"},
		{"NVIDIA Corporation", "unknown", "NVIDIA Corporation"},
		{"", "", ""},
	}
	for _, tc := range tests {
		if got := gpuName(tc.vendor, tc.product); got != tc.want {
			t.Fatalf("gpuName(%q, %q) = %q; want %q", tc.vendor, tc.product, got, tc.want)
		}
	}
}
