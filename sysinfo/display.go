package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// compositors maps an environment variable a compositor exports to its name.
var compositors = []struct {
	env  string
	name string
}{
	{"HYPRLAND_INSTANCE_SIGNATURE", "Hyprland"},
	{"SWAYSOCK", "sway"},
	{"NIRI_SOCKET", "niri"},
	{"WAYFIRE_SOCKET", "wayfire"},
	{"RIVER_INIT", "river"},
}

// compositorWM is the window manager a Wayland compositor advertises
// through its session environment.
func (c *Collector) compositorWM() Fact[string] {
	for _, comp := range compositors {
		if c.opts.Getenv(comp.env) != "" {
			return Present(comp.name)
		}
	}
	return Unavailable[string]()
}

// probeWM asks the display server itself: first the Wayland socket's peer,
// then the X11 EWMH window manager check window.
func (c *Collector) probeWM(ctx context.Context) func() Fact[string] {
	return func() Fact[string] {
		return Resolve(
			func() Fact[string] {
				pid := waylandCompositorPID(c.opts.Getenv("XDG_RUNTIME_DIR"), c.opts.Getenv("WAYLAND_DISPLAY"))
				v, ok := pid.Get()
				if !ok {
					return Unavailable[string]()
				}
				return processName(ctx, v)
			},
			func() Fact[string] { return ProbeX11WindowManager(ctx, c.opts.Getenv("DISPLAY")) },
		)
	}
}

func (c *Collector) x11Resolution() Fact[string] {
	return X11Resolution(c.opts.Getenv("DISPLAY"))
}

func (c *Collector) drmResolution() Fact[string] {
	return DRMResolution("/sys/class/drm")
}

// withX11 connects to display and hands the connection to fn.
func withX11[T any](display string, fn func(*xgb.Conn) Fact[T]) Fact[T] {
	if display == "" {
		return Unavailable[T]()
	}
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return Unavailable[T]()
	}
	defer conn.Close()
	return fn(conn)
}

// X11Resolution lists the size of every X screen as "WxH".
func X11Resolution(display string) Fact[string] {
	return withX11(display, func(conn *xgb.Conn) Fact[string] {
		var sizes []string
		for _, screen := range xproto.Setup(conn).Roots {
			sizes = append(sizes, fmt.Sprintf("%dx%d", screen.WidthInPixels, screen.HeightInPixels))
		}
		return FormatList(Present(sizes))
	})
}

// ProbeX11WindowManager follows _NET_SUPPORTING_WM_CHECK from the root
// window to the window manager's own window and reads its name. When the
// name is not set, the owning process is looked up from _NET_WM_PID.
func ProbeX11WindowManager(ctx context.Context, display string) Fact[string] {
	return withX11(display, func(conn *xgb.Conn) Fact[string] {
		root := xproto.Setup(conn).DefaultScreen(conn).Root

		check, ok := windowProperty(conn, root, "_NET_SUPPORTING_WM_CHECK").Get()
		if !ok {
			return Unavailable[string]()
		}
		return Resolve(
			func() Fact[string] { return stringProperty(conn, check, "_NET_WM_NAME") },
			func() Fact[string] {
				pid, ok := windowProperty(conn, check, "_NET_WM_PID").Get()
				if !ok {
					return Unavailable[string]()
				}
				return processName(ctx, int32(pid))
			},
		)
	})
}

func property(conn *xgb.Conn, win xproto.Window, name string) Fact[*xproto.GetPropertyReply] {
	atom, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
	if err != nil || atom.Atom == xproto.AtomNone {
		return Unavailable[*xproto.GetPropertyReply]()
	}
	reply, err := xproto.GetProperty(conn, false, win, atom.Atom, xproto.GetPropertyTypeAny, 0, 1024).Reply()
	if err != nil || reply.ValueLen == 0 {
		return Unavailable[*xproto.GetPropertyReply]()
	}
	return Present(reply)
}

// windowProperty reads a 32-bit property (WINDOW or CARDINAL).
func windowProperty(conn *xgb.Conn, win xproto.Window, name string) Fact[xproto.Window] {
	reply, ok := property(conn, win, name).Get()
	if !ok || reply.Format != 32 || len(reply.Value) < 4 {
		return Unavailable[xproto.Window]()
	}
	return Present(xproto.Window(xgb.Get32(reply.Value)))
}

func stringProperty(conn *xgb.Conn, win xproto.Window, name string) Fact[string] {
	reply, ok := property(conn, win, name).Get()
	if !ok || reply.Format != 8 {
		return Unavailable[string]()
	}
	return NonEmpty(strings.TrimRight(string(reply.Value), "\x00"))
}

// DRMResolution reads the preferred mode of every connected connector
// under a DRM sysfs root.
func DRMResolution(root string) Fact[string] {
	connectors, err := filepath.Glob(filepath.Join(root, "card*-*"))
	if err != nil {
		return Unavailable[string]()
	}

	var modes []string
	for _, dir := range connectors {
		status, err := os.ReadFile(filepath.Join(dir, "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, "modes"))
		if err != nil {
			continue
		}
		first, _, _ := strings.Cut(string(data), "\n")
		if first = strings.TrimSpace(first); first != "" {
			modes = append(modes, first)
		}
	}
	return FormatList(Present(modes))
}
