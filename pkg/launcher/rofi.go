package launcher

// NewRofi returns a rofi menu in dmenu mode.
func NewRofi(args []string) *Menu {
	return newMenu("rofi", args, func(prompt string) []string {
		return []string{"-dmenu", "-p", prompt}
	})
}
