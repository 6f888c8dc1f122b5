//go:build linux

package sysinfo

import (
	"net"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// waylandCompositorPID connects to the compositor's socket and reads the
// peer credentials of the other end, which is the compositor process.
func waylandCompositorPID(runtimeDir, display string) Fact[int32] {
	if display == "" {
		return Unavailable[int32]()
	}
	path := display
	if !filepath.IsAbs(path) {
		if runtimeDir == "" {
			return Unavailable[int32]()
		}
		path = filepath.Join(runtimeDir, display)
	}

	conn, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return Unavailable[int32]()
	}
	defer func() { _ = conn.Close() }()

	raw, err := conn.SyscallConn()
	if err != nil {
		return Unavailable[int32]()
	}
	var cred *unix.Ucred
	var credErr error
	if err := raw.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	}); err != nil || credErr != nil || cred.Pid <= 0 {
		return Unavailable[int32]()
	}
	return Present(cred.Pid)
}
