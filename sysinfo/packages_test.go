package sysinfo

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner returns canned output keyed by command name.
type fakeRunner struct {
	out   map[string]string
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	out, ok := f.out[name]
	if !ok {
		return nil, errors.New("executable file not found in $PATH")
	}
	return []byte(out), nil
}

func TestCountPackages(t *testing.T) {
	runner := &fakeRunner{out: map[string]string{
		"pacman":  "base\nlinux\nvim\n",
		"flatpak": "org.mozilla.firefox\n\n",
		"snap":    "Name  Version  Rev\n",
	}}

	got, ok := CountPackages(context.Background(), runner).Get()
	if !ok {
		t.Fatal("expected present package list")
	}
	want := []PackageCount{{"pacman", 3}, {"flatpak", 1}}
	if len(got) != len(want) {
		t.Fatalf("CountPackages = %+v; want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CountPackages[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
	if len(runner.calls) != len(packageManagers) {
		t.Fatalf("expected each manager tried once, got %d calls", len(runner.calls))
	}
}

func TestCountPackages_NoneAvailable(t *testing.T) {
	f := CountPackages(context.Background(), &fakeRunner{})
	if FormatPackages(f).Ok() {
		t.Fatal("no package managers should format as unavailable")
	}
}
