package sysinfo

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	var calls []string
	src := func(name string, f Fact[string]) func() Fact[string] {
		return func() Fact[string] {
			calls = append(calls, name)
			return f
		}
	}

	got, ok := Resolve(
		src("distribution", Unavailable[string]()),
		src("os", Present("Linux")),
		src("never", Present("unused")),
	).Get()
	if !ok || got != "Linux" {
		t.Fatalf("Resolve = %q, %v; want Linux", got, ok)
	}
	if len(calls) != 2 || calls[0] != "distribution" || calls[1] != "os" {
		t.Fatalf("unexpected call order %v", calls)
	}
}

func TestResolve_AllUnavailable(t *testing.T) {
	calls := 0
	fail := func() Fact[int] { calls++; return Unavailable[int]() }
	if Resolve(fail, fail, nil, fail).Ok() {
		t.Fatal("expected unavailable")
	}
	if calls != 3 {
		t.Fatalf("each source should be tried exactly once, got %d calls", calls)
	}
	if Resolve[int]().Ok() {
		t.Fatal("no sources should be unavailable")
	}
}

func TestFromResult(t *testing.T) {
	if v, ok := FromResult(uint64(42), nil).Get(); !ok || v != 42 {
		t.Fatalf("FromResult ok = %d, %v", v, ok)
	}
	if FromResult(uint64(42), errors.New("no /proc")).Ok() {
		t.Fatal("error should be unavailable")
	}
}

func TestMapPassesAbsenceThrough(t *testing.T) {
	called := false
	f := Map(Unavailable[int](), func(int) string { called = true; return "x" })
	if f.Ok() || called {
		t.Fatal("Map must not call fn on an unavailable fact")
	}
}

func TestZeroFactIsUnavailable(t *testing.T) {
	var f Fact[string]
	if f.Ok() {
		t.Fatal("zero Fact should be unavailable")
	}
}
