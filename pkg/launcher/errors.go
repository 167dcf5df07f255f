package launcher

import "errors"

var (
	// ErrCancelled is returned when the user closes the menu without choosing.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoLauncher is returned when no supported menu program is installed.
	ErrNoLauncher = errors.New("no launcher available - please install rofi, dmenu, fzf, bemenu, or fuzzel")

	// ErrUnknownLauncher is returned by New for unsupported program names.
	ErrUnknownLauncher = errors.New("unknown launcher")
)

// IsCancelled reports whether err comes from the user dismissing a menu.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
