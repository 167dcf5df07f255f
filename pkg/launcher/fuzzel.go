package launcher

import "slices"

// NewFuzzel returns a fuzzel menu. --dmenu is added unless args already
// carry it.
func NewFuzzel(args []string) *Menu {
	return newMenu("fuzzel", args, func(prompt string) []string {
		var extra []string
		if !slices.Contains(args, "--dmenu") && !slices.Contains(args, "-d") {
			extra = append(extra, "--dmenu")
		}
		return append(extra, "--prompt", prompt+"> ")
	})
}
