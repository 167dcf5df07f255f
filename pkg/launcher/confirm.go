package launcher

const (
	answerYes = "Yes"
	answerNo  = "No"
)

// Confirm asks a Yes/No question. Dismissing the menu counts as No.
func Confirm(l Launcher, question string) (bool, error) {
	choice, err := l.Show([]string{answerYes, answerNo}, question)
	if err != nil {
		if IsCancelled(err) {
			return false, nil
		}
		return false, err
	}
	return choice == answerYes, nil
}
