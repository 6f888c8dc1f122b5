//go:build linux || darwin

package sysinfo

import "golang.org/x/sys/unix"

// unameRelease is the kernel release straight from uname(2).
func unameRelease() Fact[string] {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Unavailable[string]()
	}
	return NonEmpty(unix.ByteSliceToString(u.Release[:]))
}
