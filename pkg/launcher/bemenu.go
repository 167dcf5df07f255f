package launcher

func NewBemenu(args []string) *Menu {
	return newMenu("bemenu", args, func(prompt string) []string {
		return []string{"-p", prompt}
	})
}
