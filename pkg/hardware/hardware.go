// Package hardware runs read-only inspection tools (lspci, lsusb, rfkill) and
// reads a few files under /sys and /etc/apt to decide which maintenance
// modules make sense on this machine.
//
// Detection is advisory. Every failure (missing binary, non-zero exit,
// unreadable file) counts as "no evidence" and never surfaces as an error.
package hardware

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"
)

// Fact keys usable as module requirements.
const (
	FactWiFi      = "wifi"
	FactBluetooth = "bluetooth"
	FactNVIDIA    = "nvidia"
	FactNonFree   = "nonfree"
)

// Facts is the flat result of one probe run.
type Facts struct {
	NVIDIA      bool     `json:"nvidia"`
	Bluetooth   bool     `json:"bluetooth"`
	WiFiVendors []string `json:"wifi_vendors"`
	NonFree     bool     `json:"nonfree"`
	// USBDevices is 0 when lsusb gave nothing.
	USBDevices int `json:"usb_devices"`
}

// Prober gathers Facts. Runner executes commands; FS is the filesystem
// root used for sysfs and APT sources.
type Prober struct {
	Runner Runner
	FS     fs.FS
}

// New returns a Prober for the live system.
func New(timeout time.Duration) *Prober {
	return &Prober{
		Runner: ExecRunner{Timeout: timeout},
		FS:     os.DirFS("/"),
	}
}

// Probe runs every detection once.
func (p *Prober) Probe(ctx context.Context) Facts {
	return Facts{
		NVIDIA:      p.DetectNVIDIA(ctx),
		Bluetooth:   p.DetectBluetooth(ctx),
		WiFiVendors: p.DetectWiFiVendors(ctx),
		NonFree:     p.DetectNonFree(),
		USBDevices:  p.CountUSBDevices(ctx),
	}
}

func (p *Prober) run(ctx context.Context, name string, args ...string) string {
	if p.Runner == nil {
		return ""
	}
	return output(ctx, p.Runner, name, args...)
}

// DetectNVIDIA reports whether lspci lists an NVIDIA device.
func (p *Prober) DetectNVIDIA(ctx context.Context) bool {
	return strings.Contains(p.run(ctx, "lspci", "-nn"), "nvidia")
}

// DetectBluetooth checks rfkill, lspci and lsusb in turn, then falls back
// to hci* entries in /sys/class/bluetooth.
func (p *Prober) DetectBluetooth(ctx context.Context) bool {
	sources := [][]string{
		{"rfkill", "list"},
		{"lspci"},
		{"lsusb"},
	}
	for _, src := range sources {
		if strings.Contains(p.run(ctx, src[0], src[1:]...), "bluetooth") {
			return true
		}
	}

	if p.FS == nil {
		return false
	}
	entries, err := fs.ReadDir(p.FS, "sys/class/bluetooth")
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "hci") {
			return true
		}
	}
	return false
}

// DetectWiFiVendors returns the sorted vendor names of wireless adapters
// found in lspci and lsusb output.
func (p *Prober) DetectWiFiVendors(ctx context.Context) []string {
	hw := p.run(ctx, "lspci", "-nn") + "\n" + p.run(ctx, "lsusb")
	return ClassifyWiFiVendors(hw)
}

// CountUSBDevices counts the non-empty lines of lsusb.
func (p *Prober) CountUSBDevices(ctx context.Context) int {
	count := 0
	for _, line := range strings.Split(p.run(ctx, "lsusb"), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// DetectNonFree reports whether any APT source enables the non-free component.
func (p *Prober) DetectNonFree() bool {
	if p.FS == nil {
		return false
	}

	if data, err := fs.ReadFile(p.FS, "etc/apt/sources.list"); err == nil && mentionsNonFree(data) {
		return true
	}

	found := false
	_ = fs.WalkDir(p.FS, "etc/apt/sources.list.d", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		data, readErr := fs.ReadFile(p.FS, path)
		if readErr == nil && mentionsNonFree(data) {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func mentionsNonFree(data []byte) bool {
	return strings.Contains(string(data), "non-free")
}

// Satisfies reports whether the facts meet a requirement key.
// The empty requirement is always met; unknown keys never are.
func (f Facts) Satisfies(requirement string) bool {
	switch requirement {
	case "":
		return true
	case FactWiFi:
		return len(f.WiFiVendors) > 0
	case FactBluetooth:
		return f.Bluetooth
	case FactNVIDIA:
		return f.NVIDIA
	case FactNonFree:
		return f.NonFree
	default:
		return false
	}
}

// WiFiSummary is the human text for the Wi-Fi fact.
func (f Facts) WiFiSummary() string {
	if len(f.WiFiVendors) == 0 {
		return "None detected"
	}
	vendors := append([]string(nil), f.WiFiVendors...)
	sort.Strings(vendors)
	return "Detected: " + strings.Join(vendors, ", ")
}

// BluetoothSummary is the human text for the Bluetooth fact.
func (f Facts) BluetoothSummary() string {
	return detected(f.Bluetooth)
}

// NVIDIASummary is the human text for the NVIDIA fact.
func (f Facts) NVIDIASummary() string {
	return detected(f.NVIDIA)
}

// NonFreeSummary is the human text for the repository fact.
func (f Facts) NonFreeSummary() string {
	if f.NonFree {
		return "Enabled"
	}
	return "Not enabled"
}

// USBSummary is the human text for the USB fact.
func (f Facts) USBSummary() string {
	if f.USBDevices <= 0 {
		return "USB: unknown"
	}
	return fmt.Sprintf("USB: %d device(s)", f.USBDevices)
}

// Summary lists every fact as label/value pairs in display order.
func (f Facts) Summary() [][2]string {
	return [][2]string{
		{"Wi-Fi", f.WiFiSummary()},
		{"Bluetooth", f.BluetoothSummary()},
		{"NVIDIA", f.NVIDIASummary()},
		{"Repository", f.NonFreeSummary()},
		{"USB Devices", f.USBSummary()},
	}
}

func detected(ok bool) string {
	if ok {
		return "Detected"
	}
	return "Not detected"
}
