package launcher

func NewDmenu(args []string) *Menu {
	return newMenu("dmenu", args, func(prompt string) []string {
		return []string{"-p", prompt}
	})
}
