package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
)

// ErrNoTerminal is matched by NoTerminalError through errors.Is.
var ErrNoTerminal = errors.New("no supported terminal emulator found")

// NoTerminalError is returned before anything is spawned when no emulator
// could be found. ManualCommand runs the script by hand.
type NoTerminalError struct {
	ManualCommand string
}

func (e *NoTerminalError) Error() string {
	return fmt.Sprintf("%v. Install one of: %s. You can run this manually: %s",
		ErrNoTerminal, strings.Join(Suggested, ", "), e.ManualCommand)
}

func (e *NoTerminalError) Is(target error) bool {
	return target == ErrNoTerminal
}

// SpawnError is returned when the emulator exists but could not be started.
type SpawnError struct {
	Argv []string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch terminal: %v. Command: %s", e.Err, shellescape.QuoteCommand(e.Argv))
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
