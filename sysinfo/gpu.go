package sysinfo

import (
	"strings"

	"github.com/jaypipes/ghw"
)

// gpuList names each graphics card found on the PCI bus.
func gpuList() Fact[[]string] {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return Unavailable[[]string]()
	}

	var names []string
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var vendor, product string
		if card.DeviceInfo.Vendor != nil {
			vendor = card.DeviceInfo.Vendor.Name
		}
		if card.DeviceInfo.Product != nil {
			product = card.DeviceInfo.Product.Name
		}
		if name := gpuName(vendor, product); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return Unavailable[[]string]()
	}
	return Present(names)
}

// gpuName joins vendor and product, skipping pci.ids placeholders.
func gpuName(vendor, product string) string {
	var parts []string
	for _, s := range []string{vendor, product} {
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "unknown") {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
