package hardware

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

// fakeRunner answers from a table keyed by the full command line.
// Missing keys behave like a missing binary.
type fakeRunner map[string]string

func (f fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	out, ok := f[key]
	if !ok {
		return "", exec.ErrNotFound
	}
	return out, nil
}

// failingRunner fails every command.
type failingRunner struct{}

func (failingRunner) Output(context.Context, string, ...string) (string, error) {
	return "", errors.New("exit status 1")
}

const lspciLaptop = `00:02.0 VGA compatible controller [0300]: Intel Corporation UHD Graphics 620 [8086:5917] (rev 07)
01:00.0 3D controller [0302]: NVIDIA Corporation GP108M [GeForce MX150] [10de:1d12] (rev a1)
02:00.0 Network controller [0280]: Intel Corporation Wireless 8265 / 8275 [8086:24fd] (rev 78)
`

const lsusbLaptop = `Bus 002 Device 001: ID 1d6b:0003 Linux Foundation 3.0 root hub
Bus 001 Device 003: ID 8087:0a2b Intel Corp. Bluetooth wireless interface
Bus 001 Device 004: ID 0bda:8179 Realtek Semiconductor Corp. RTL8188EUS 802.11n Wireless Network Adapter
Bus 001 Device 001: ID 1d6b:0002 Linux Foundation 2.0 root hub
`

func TestProbe_Laptop(t *testing.T) {
	p := &Prober{
		Runner: fakeRunner{
			"lspci -nn":   lspciLaptop,
			"lspci":       lspciLaptop,
			"lsusb":       lsusbLaptop,
			"rfkill list": "0: phy0: Wireless LAN\n\tSoft blocked: no\n",
		},
		FS: fstest.MapFS{
			"etc/apt/sources.list": {Data: []byte("deb http://deb.debian.org/debian bookworm main contrib non-free non-free-firmware\n")},
		},
	}

	facts := p.Probe(context.Background())

	if !facts.NVIDIA {
		t.Error("NVIDIA should be detected")
	}
	if !facts.Bluetooth {
		t.Error("Bluetooth should be detected from lsusb")
	}
	if want := []string{"Intel", "Realtek"}; !reflect.DeepEqual(facts.WiFiVendors, want) {
		t.Errorf("WiFiVendors = %v, want %v", facts.WiFiVendors, want)
	}
	if !facts.NonFree {
		t.Error("non-free should be detected")
	}
	if facts.USBDevices != 4 {
		t.Errorf("USBDevices = %d, want 4", facts.USBDevices)
	}
}

func TestProbe_MissingToolsMeanNoEvidence(t *testing.T) {
	runners := map[string]Runner{
		"not found": fakeRunner{},
		"failing":   failingRunner{},
		"nil":       nil,
	}

	for name, r := range runners {
		t.Run(name, func(t *testing.T) {
			p := &Prober{Runner: r, FS: fstest.MapFS{}}
			facts := p.Probe(context.Background())

			if !reflect.DeepEqual(facts, Facts{}) {
				t.Errorf("Probe() = %+v, want zero Facts", facts)
			}
			if facts.USBSummary() != "USB: unknown" {
				t.Errorf("USBSummary() = %q", facts.USBSummary())
			}
			if facts.WiFiSummary() != "None detected" {
				t.Errorf("WiFiSummary() = %q", facts.WiFiSummary())
			}
		})
	}
}

func TestProbe_NilFS(t *testing.T) {
	p := &Prober{Runner: fakeRunner{}}
	if p.DetectNonFree() {
		t.Error("nil FS should not report non-free")
	}
	if p.DetectBluetooth(context.Background()) {
		t.Error("nil FS should not report bluetooth")
	}
}

func TestDetectBluetooth_Sources(t *testing.T) {
	tests := []struct {
		name   string
		runner fakeRunner
		fs     fstest.MapFS
		want   bool
	}{
		{
			name:   "rfkill",
			runner: fakeRunner{"rfkill list": "1: hci0: Bluetooth\n"},
			want:   true,
		},
		{
			name:   "lspci",
			runner: fakeRunner{"lspci": "03:00.0 Bluetooth: Broadcom BCM20702\n"},
			want:   true,
		},
		{
			name: "sysfs",
			fs: fstest.MapFS{
				"sys/class/bluetooth/hci0": {Mode: fs.ModeDir | 0o755},
			},
			want: true,
		},
		{
			name: "sysfs without hci",
			fs: fstest.MapFS{
				"sys/class/bluetooth/other": {Data: []byte("x")},
			},
			want: false,
		},
		{
			name:   "nothing",
			runner: fakeRunner{"rfkill list": "0: phy0: Wireless LAN\n", "lspci": "", "lsusb": ""},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := tt.fs
			if fsys == nil {
				fsys = fstest.MapFS{}
			}
			p := &Prober{Runner: tt.runner, FS: fsys}
			if got := p.DetectBluetooth(context.Background()); got != tt.want {
				t.Errorf("DetectBluetooth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectNonFree_SourcesListD(t *testing.T) {
	p := &Prober{FS: fstest.MapFS{
		"etc/apt/sources.list":                  {Data: []byte("deb http://deb.debian.org/debian bookworm main\n")},
		"etc/apt/sources.list.d/debian.sources": {Data: []byte("Types: deb\nComponents: main contrib non-free\n")},
		"etc/apt/sources.list.d/vendor/x.list":  {Data: []byte("deb http://example.org stable main\n")},
		"etc/apt/sources.list.d/vendor/y.list":  {Data: []byte("deb http://example.org stable main\n")},
	}}
	if !p.DetectNonFree() {
		t.Error("non-free in sources.list.d should be detected")
	}

	p = &Prober{FS: fstest.MapFS{
		"etc/apt/sources.list": {Data: []byte("deb http://deb.debian.org/debian bookworm main\n")},
	}}
	if p.DetectNonFree() {
		t.Error("main-only sources should not report non-free")
	}
}

func TestClassifyWiFiVendors(t *testing.T) {
	tests := []struct {
		name string
		hw   string
		want []string
	}{
		{
			name: "empty",
			hw:   "",
			want: nil,
		},
		{
			name: "intel gpu only is not wifi",
			hw:   "00:02.0 VGA compatible controller [0300]: Intel Corporation UHD Graphics [8086:5917]",
			want: nil,
		},
		{
			name: "broadcom by pci id",
			hw:   "03:00.0 Network controller [0280]: Something [14e4:43a0]",
			want: []string{"Broadcom"},
		},
		{
			name: "atheros",
			hw:   "02:00.0 Network controller [0280]: Qualcomm Atheros QCA9377 802.11ac Wireless Network Adapter [168c:0042]",
			want: []string{"Atheros/Qualcomm"},
		},
		{
			name: "mediatek usb",
			hw:   "Bus 001 Device 005: ID 0e8d:7961 MediaTek Inc. Wireless_Device",
			want: []string{"MediaTek"},
		},
		{
			name: "ralink usb",
			hw:   "Bus 001 Device 006: ID 148f:5370 Ralink Technology, Corp. RT5370 Wireless Adapter",
			want: []string{"Ralink"},
		},
		{
			// vendors only count on a line that looks like a wireless adapter
			name: "usb realtek without wireless marker on its line",
			hw: "03:00.0 Network controller [0280]: Intel Corporation Wi-Fi 6 AX201 [8086:a0f0]\n" +
				"Bus 001 Device 004: ID 0bda:b812 Realtek Semiconductor Corp. RTL88x2bu [AC1200 Techkey]",
			want: []string{"Intel"},
		},
		{
			name: "mixed case input",
			hw:   "02:00.0 NETWORK CONTROLLER [0280]: INTEL CORPORATION WI-FI 6 AX201",
			want: []string{"Intel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyWiFiVendors(tt.hw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyWiFiVendors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFacts_Satisfies(t *testing.T) {
	f := Facts{Bluetooth: true, WiFiVendors: []string{"Intel"}}

	tests := map[string]bool{
		"":            true,
		FactWiFi:      true,
		FactBluetooth: true,
		FactNVIDIA:    false,
		FactNonFree:   false,
		"gpu":         false,
	}
	for req, want := range tests {
		if got := f.Satisfies(req); got != want {
			t.Errorf("Satisfies(%q) = %v, want %v", req, got, want)
		}
	}
}

func TestFacts_Summary(t *testing.T) {
	f := Facts{
		NVIDIA:      true,
		WiFiVendors: []string{"Realtek", "Intel"},
		NonFree:     true,
		USBDevices:  7,
	}

	want := [][2]string{
		{"Wi-Fi", "Detected: Intel, Realtek"},
		{"Bluetooth", "Not detected"},
		{"NVIDIA", "Detected"},
		{"Repository", "Enabled"},
		{"USB Devices", "USB: 7 device(s)"},
	}
	if got := f.Summary(); !reflect.DeepEqual(got, want) {
		t.Errorf("Summary() = %v, want %v", got, want)
	}
	if f.WiFiVendors[0] != "Realtek" {
		t.Error("WiFiSummary must not reorder the caller's slice")
	}
}
