package terminal

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/lvim-tech/bashium/pkg/log"
)

// Plan is everything decided before a process is spawned.
type Plan struct {
	Emulator Emulator
	Argv     []string
	Command  Command
}

// Launcher resolves an emulator and spawns scripts in it.
// The function fields default to the real system calls and exist for tests.
type Launcher struct {
	// Preferred is tried before Candidates when set.
	Preferred string

	LookPath func(file string) (string, error)
	Stat     func(name string) (os.FileInfo, error)
	Start    func(argv []string) error

	Logger *log.Logger
}

// New returns a Launcher for the live system.
func New(preferred string, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.Nop()
	}
	return &Launcher{
		Preferred: preferred,
		LookPath:  exec.LookPath,
		Stat:      os.Stat,
		Start:     startDetached,
		Logger:    logger,
	}
}

// Resolve finds the emulator to use.
func (l *Launcher) Resolve() (Emulator, bool) {
	if l.Preferred != "" {
		if _, err := l.LookPath(l.Preferred); err == nil {
			return EmulatorFor(l.Preferred), true
		}
		l.logger().Warn("preferred terminal %q not found, trying the defaults", l.Preferred)
	}

	for _, e := range Candidates {
		if _, err := l.LookPath(e.Name); err == nil {
			return e, true
		}
	}
	return Emulator{}, false
}

// Prepare works out how scriptPath would be launched without spawning it.
func (l *Launcher) Prepare(scriptPath string) (Plan, error) {
	isDir := false
	if info, err := l.Stat(scriptPath); err == nil {
		isDir = info.IsDir()
	}
	cmd := BuildCommand(scriptPath, isDir)

	emulator, ok := l.Resolve()
	if !ok {
		return Plan{Command: cmd}, &NoTerminalError{ManualCommand: cmd.Manual}
	}

	return Plan{
		Emulator: emulator,
		Argv:     emulator.Argv(cmd.Shell),
		Command:  cmd,
	}, nil
}

// Launch spawns scriptPath in a terminal and returns without waiting.
func (l *Launcher) Launch(scriptPath string) error {
	plan, err := l.Prepare(scriptPath)
	if err != nil {
		return err
	}

	l.logger().Debug("launching %s via %s", scriptPath, plan.Emulator.Name)
	if err := l.Start(plan.Argv); err != nil {
		return &SpawnError{Argv: plan.Argv, Err: err}
	}

	l.logger().Info("started %s in %s", scriptPath, plan.Emulator.Name)
	return nil
}

func (l *Launcher) logger() *log.Logger {
	if l.Logger == nil {
		return log.Nop()
	}
	return l.Logger
}

// startDetached starts argv in its own process group and lets it go.
func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
