//go:build !linux && !darwin

package sysinfo

func unameRelease() Fact[string] {
	return Unavailable[string]()
}
