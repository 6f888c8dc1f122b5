// Package report turns collected facts into the fixed, ordered readout.
package report

import "lxfetch/sysinfo"

// Row is one label/value line of the readout. Value is unavailable when the
// underlying fact could not be read.
type Row struct {
	Label string
	Value sysinfo.Fact[string]
}

// Greeting is the user@host header.
type Greeting struct {
	User string
	Host string
}

// String returns "user@host".
func (g Greeting) String() string { return g.User + "@" + g.Host }

// Report is the readout in display order.
type Report struct {
	// Greeting is present only when both user and host are known.
	Greeting sysinfo.Fact[Greeting]
	Rows     []Row
}

// Build formats every fact and lays the rows out in their fixed order.
func Build(info *sysinfo.SystemInfo) *Report {
	text := func(f sysinfo.Fact[string]) sysinfo.Fact[string] {
		return sysinfo.Map(f, sysinfo.StripNewline)
	}

	return &Report{
		Greeting: greeting(info.Username, info.Hostname),
		Rows: []Row{
			{"OS", text(info.OS)},
			{"Kernel", text(info.Kernel)},
			{"Uptime", sysinfo.FormatUptime(info.Uptime)},
			{"Packages", sysinfo.FormatPackages(info.Packages)},
			{"Shell", text(info.Shell)},
			{"Resolution", text(info.Resolution)},
			{"DE", text(info.DesktopEnvironment)},
			{"WM", text(info.WindowManager)},
			{"Theme", text(info.Theme)},
			{"Icons", text(info.Icons)},
			{"Terminal", text(info.Terminal)},
			{"CPU", text(info.CPU)},
			{"GPU", sysinfo.FormatList(info.GPUs)},
			{"Memory", sysinfo.FormatMemory(info.Memory)},
		},
	}
}

func greeting(user, host sysinfo.Fact[string]) sysinfo.Fact[Greeting] {
	u, okU := user.Get()
	h, okH := host.Get()
	if !okU || !okH {
		return sysinfo.Unavailable[Greeting]()
	}
	return sysinfo.Present(Greeting{User: sysinfo.StripNewline(u), Host: sysinfo.StripNewline(h)})
}

// LabelWidth is the longest label among rows that have a value.
func (r *Report) LabelWidth() int {
	width := 0
	for _, row := range r.Rows {
		if row.Value.Ok() && len(row.Label) > width {
			width = len(row.Label)
		}
	}
	return width
}
