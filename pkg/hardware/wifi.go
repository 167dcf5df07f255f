package hardware

import (
	"sort"
	"strings"
)

// wirelessMarkers flag a device line as a wireless adapter.
var wirelessMarkers = []string{"network controller", "wireless", "wi-fi", "802.11"}

// wifiVendor maps a display name to name fragments and PCI/USB vendor ID prefixes.
type wifiVendor struct {
	Name     string
	Keywords []string
}

var wifiVendors = []wifiVendor{
	{Name: "Intel", Keywords: []string{"intel", "8086:"}},
	{Name: "Broadcom", Keywords: []string{"broadcom", "bcm", "14e4:"}},
	{Name: "Realtek", Keywords: []string{"realtek", "rtl", "10ec:", "0bda:"}},
	{Name: "Atheros/Qualcomm", Keywords: []string{"atheros", "qualcomm", "168c:", "0cf3:"}},
	{Name: "MediaTek", Keywords: []string{"mediatek", "mediatk", "mtk", "14c3:", "0e8d:"}},
	{Name: "Ralink", Keywords: []string{"ralink", "148f:"}},
}

// ClassifyWiFiVendors scans lower-cased lspci/lsusb text and returns the
// sorted set of vendors owning a line that looks like a wireless adapter.
func ClassifyWiFiVendors(hw string) []string {
	found := make(map[string]bool)

	for _, line := range strings.Split(strings.ToLower(hw), "\n") {
		if !containsAny(line, wirelessMarkers) {
			continue
		}
		for _, v := range wifiVendors {
			if containsAny(line, v.Keywords) {
				found[v.Name] = true
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	vendors := make([]string, 0, len(found))
	for name := range found {
		vendors = append(vendors, name)
	}
	sort.Strings(vendors)
	return vendors
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
