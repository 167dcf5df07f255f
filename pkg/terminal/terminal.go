// Package terminal starts maintenance scripts inside a terminal emulator.
//
// A script path that is a directory runs its install.sh; a file runs itself.
// Either way the shell is kept open after the script ends so its output
// stays on screen. The launch is fire-and-forget.
package terminal

import (
	"path/filepath"

	"github.com/alessio/shellescape"
)

// Style is the way an emulator expects the command to run.
type Style int

const (
	// StyleExec passes the argument vector after -e.
	StyleExec Style = iota
	// StyleDoubleDash passes the argument vector after --.
	StyleDoubleDash
	// StyleCommandString passes one command string to --command.
	StyleCommandString
	// StyleExecString passes one command string to -e.
	StyleExecString
)

// Emulator is a terminal program and its invocation style.
type Emulator struct {
	Name  string
	Style Style
}

// Candidates is the detection order when no terminal is preferred.
var Candidates = []Emulator{
	{Name: "x-terminal-emulator", Style: StyleExec},
	{Name: "gnome-terminal", Style: StyleDoubleDash},
	{Name: "kgx", Style: StyleDoubleDash},
	{Name: "konsole", Style: StyleExec},
	{Name: "xfce4-terminal", Style: StyleCommandString},
	{Name: "mate-terminal", Style: StyleDoubleDash},
	{Name: "tilix", Style: StyleExecString},
	{Name: "alacritty", Style: StyleExec},
	{Name: "kitty", Style: StyleExec},
	{Name: "lxterminal", Style: StyleExec},
	{Name: "xterm", Style: StyleExec},
}

// Suggested are the emulators named in the "nothing found" hint.
var Suggested = []string{"gnome-terminal", "konsole", "xfce4-terminal", "xterm"}

// EmulatorFor returns the known emulator called name. Unknown programs get
// StyleExec, which is what most terminals accept.
func EmulatorFor(name string) Emulator {
	base := filepath.Base(name)
	for _, e := range Candidates {
		if e.Name == base {
			return Emulator{Name: name, Style: e.Style}
		}
	}
	return Emulator{Name: name, Style: StyleExec}
}

// Argv builds the full argument vector that runs shellCmd in a login bash.
func (e Emulator) Argv(shellCmd string) []string {
	switch e.Style {
	case StyleDoubleDash:
		return []string{e.Name, "--", "bash", "-lc", shellCmd}
	case StyleCommandString:
		return []string{e.Name, "--command", wrapLogin(shellCmd)}
	case StyleExecString:
		return []string{e.Name, "-e", wrapLogin(shellCmd)}
	default:
		return []string{e.Name, "-e", "bash", "-lc", shellCmd}
	}
}

// Command is the shell side of a launch.
type Command struct {
	// Dir is the directory the script runs from.
	Dir string
	// Shell is the wrapped command handed to bash -lc.
	Shell string
	// Manual is what a user can paste into a terminal by hand.
	Manual string
}

// BuildCommand wraps scriptPath so it runs from its directory and leaves an
// interactive shell behind. isDir selects the install.sh convention.
func BuildCommand(scriptPath string, isDir bool) Command {
	var dir, run string
	if isDir {
		dir = scriptPath
		run = "./install.sh"
	} else {
		dir = filepath.Dir(scriptPath)
		run = "bash ./" + shellescape.Quote(filepath.Base(scriptPath))
	}

	shell := "cd " + shellescape.Quote(dir) + " && " + run + "; exec bash"
	return Command{
		Dir:    dir,
		Shell:  shell,
		Manual: wrapLogin(shell),
	}
}

func wrapLogin(shellCmd string) string {
	return "bash -lc " + shellescape.Quote(shellCmd)
}
