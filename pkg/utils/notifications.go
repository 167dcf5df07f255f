package utils

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/bashium/pkg/config"
)

// Notifier delivers user-facing messages through dunstify, notify-send or
// the terminal, depending on NotificationConfig.
type Notifier struct {
	cfg config.NotificationConfig

	// inTerminal and hasCommand default to IsTerminal and CommandExists.
	inTerminal func() bool
	hasCommand func(string) bool
	start      func(name string, args ...string) error
	stdout     io.Writer
	stderr     io.Writer
}

// NewNotifier returns a Notifier using cfg.
func NewNotifier(cfg config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:        cfg,
		inTerminal: IsTerminal,
		hasCommand: CommandExists,
		start:      startCommand,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// Notify shows an informational message.
func (n *Notifier) Notify(title, message string) {
	if !n.cfg.Enabled {
		return
	}
	if n.cfg.ShowInTerminal && n.inTerminal() {
		fmt.Fprintf(n.stdout, "[%s] %s\n", title, message)
		return
	}
	n.send(title, message, n.cfg.Urgency)
}

// Error shows a failure. Errors always reach the user: with notifications
// disabled or no tool installed they go to stderr.
func (n *Notifier) Error(title, message string) {
	if !n.cfg.Enabled || (n.cfg.ShowInTerminal && n.inTerminal()) {
		fmt.Fprintf(n.stderr, "[ERROR] [%s] %s\n", title, message)
		return
	}
	if !n.send(title, message, "critical") {
		fmt.Fprintf(n.stderr, "[ERROR] [%s] %s\n", title, message)
	}
}

// send reports whether a notification tool accepted the message.
func (n *Notifier) send(title, message, urgency string) bool {
	tool := n.cfg.Tool
	if tool == "" || tool == "auto" {
		tool = n.detectTool()
	}
	if tool == "" || !n.hasCommand(tool) {
		return false
	}

	if urgency == "" {
		urgency = "normal"
	}
	timeout := n.cfg.Timeout
	if timeout <= 0 {
		timeout = 5000
	}

	args := []string{"-u", urgency, "-t", strconv.Itoa(timeout), title, message}
	switch tool {
	case "dunstify", "notify-send":
		return n.start(tool, args...) == nil
	default:
		return false
	}
}

func (n *Notifier) detectTool() string {
	for _, tool := range []string{"dunstify", "notify-send"} {
		if n.hasCommand(tool) {
			return tool
		}
	}
	return ""
}

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	return cmd.Start()
}
