// Package launcher provides an abstraction layer for different menu programs.
// It supports rofi, dmenu, fzf, bemenu and fuzzel with a unified interface.
// Options are written to the program's stdin and the chosen line is read
// back from its stdout.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Launcher shows a list of options and returns the chosen one.
type Launcher interface {
	Name() string
	Show(options []string, prompt string) (string, error)
}

// runFunc starts a menu program with stdin attached and returns its stdout.
type runFunc func(name string, args []string, stdin io.Reader, ttyStderr bool) (string, error)

// Menu is a Launcher backed by an external program.
type Menu struct {
	name   string
	args   []string
	prompt func(prompt string) []string
	// ttyStderr keeps stderr on the terminal for programs that draw there.
	ttyStderr bool

	run runFunc
}

func newMenu(name string, args []string, prompt func(string) []string) *Menu {
	return &Menu{
		name:   name,
		args:   append([]string(nil), args...),
		prompt: prompt,
		run:    execMenu,
	}
}

// Name returns the program name.
func (m *Menu) Name() string {
	return m.name
}

// Args returns the configured arguments.
func (m *Menu) Args() []string {
	return m.args
}

// Argv returns the full command line used for prompt.
func (m *Menu) Argv(prompt string) []string {
	argv := append([]string{m.name}, m.args...)
	if m.prompt != nil {
		argv = append(argv, m.prompt(prompt)...)
	}
	return argv
}

// Show runs the menu. ESC or an empty selection yields ErrCancelled.
func (m *Menu) Show(options []string, prompt string) (string, error) {
	argv := m.Argv(prompt)
	stdin := strings.NewReader(strings.Join(options, "\n"))

	out, err := m.run(argv[0], argv[1:], stdin, m.ttyStderr)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && cancelled(exitErr.ExitCode()) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("%s: %w", m.name, err)
	}

	choice, _, _ := strings.Cut(out, "\n")
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return "", ErrCancelled
	}
	return choice, nil
}

// cancelled matches the exit codes menu programs use for ESC.
// fzf exits with 130 on interrupt.
func cancelled(code int) bool {
	return code == 1 || code == 130
}

func execMenu(name string, args []string, stdin io.Reader, ttyStderr bool) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	if ttyStderr {
		cmd.Stderr = os.Stderr
	}

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
