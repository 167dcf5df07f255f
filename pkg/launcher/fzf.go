package launcher

// NewFzf returns an fzf menu. fzf renders on the controlling terminal, so
// stderr is left attached.
func NewFzf(args []string) *Menu {
	m := newMenu("fzf", args, func(prompt string) []string {
		return []string{"--prompt", prompt + "> "}
	})
	m.ttyStderr = true
	return m
}
