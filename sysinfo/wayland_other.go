//go:build !linux

package sysinfo

func waylandCompositorPID(runtimeDir, display string) Fact[int32] {
	return Unavailable[int32]()
}
