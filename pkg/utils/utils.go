// Package utils provides common helpers for bashium: display server
// detection, PATH lookups, XDG directories and terminal checks.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ============================================================================
// Display Server Detection
// ============================================================================

// ServerType represents the display server type
type ServerType int

const (
	Unknown ServerType = iota
	X11
	Wayland
)

// DetectDisplayServer detects the current display server
func DetectDisplayServer() ServerType {
	return displayServerFrom(os.Getenv)
}

func displayServerFrom(getenv func(string) string) ServerType {
	if getenv("WAYLAND_DISPLAY") != "" {
		return Wayland
	}
	if getenv("DISPLAY") != "" {
		return X11
	}
	return Unknown
}

// String returns string representation of ServerType
func (s ServerType) String() string {
	switch s {
	case X11:
		return "X11"
	case Wayland:
		return "Wayland"
	default:
		return "Unknown"
	}
}

// IsGraphical reports whether a graphical session is reachable.
func (s ServerType) IsGraphical() bool {
	return s != Unknown
}

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ============================================================================
// File System Utilities
// ============================================================================

// ExpandHomeDir expands a leading ~ in paths
func ExpandHomeDir(path string) string {
	if path == "~" {
		return GetHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(GetHomeDir(), path[2:])
	}
	return path
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved. It falls back to the working directory.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	wd, _ := os.Getwd()
	return wd
}

// ============================================================================
// Environment Utilities
// ============================================================================

// GetHomeDir returns home directory
func GetHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if program is running in a terminal
func IsTerminal() bool {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	if stdinInfo.Mode()&os.ModeCharDevice == 0 {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	tty.Close()

	return true
}
