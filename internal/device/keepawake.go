package device

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

type process interface {
	Kill() error
	Wait() error
}

type execProcess struct{ cmd *exec.Cmd }

func (p execProcess) Kill() error { return p.cmd.Process.Kill() }

func (p execProcess) Wait() error { return p.cmd.Wait() }

// Inhibitor keeps the display awake by holding a child inhibitor process
// (systemd-inhibit on Linux, caffeinate on macOS) for as long as it is acquired.
type Inhibitor struct {
	mu    sync.Mutex
	argv  []string
	start func(argv []string) (process, error)
	proc  process
}

// NewInhibitor returns an inhibitor for the current platform.
func NewInhibitor(who string) (*Inhibitor, error) {
	argv, err := inhibitCommand(runtime.GOOS, who)
	if err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", argv[0], ErrUnsupported)
	}
	return &Inhibitor{argv: argv, start: startProcess}, nil
}

func inhibitCommand(goos, who string) ([]string, error) {
	switch goos {
	case "linux":
		return []string{
			"systemd-inhibit",
			"--what=idle:sleep",
			"--who=" + who,
			"--why=breathing session in progress",
			"--mode=block",
			"sleep", "infinity",
		}, nil
	case "darwin":
		return []string{"caffeinate", "-d", "-i"}, nil
	default:
		return nil, fmt.Errorf("keep awake on %s: %w", goos, ErrUnsupported)
	}
}

func startProcess(argv []string) (process, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return execProcess{cmd: cmd}, nil
}

// Acquire starts the inhibitor. It is a no-op when already held.
func (i *Inhibitor) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.proc != nil {
		return nil
	}
	proc, err := i.start(i.argv)
	if err != nil {
		return fmt.Errorf("acquire keep-awake: %w", err)
	}
	i.proc = proc
	return nil
}

// Release stops the inhibitor. It is a no-op when not held.
func (i *Inhibitor) Release() error {
	i.mu.Lock()
	proc := i.proc
	i.proc = nil
	i.mu.Unlock()
	if proc == nil {
		return nil
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("release keep-awake: %w", err)
	}
	// The child always exits with a signal status here.
	_ = proc.Wait()
	return nil
}

func (i *Inhibitor) Held() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.proc != nil
}

// NopKeepAwake tracks the held flag without touching the host.
type NopKeepAwake struct {
	mu   sync.Mutex
	held bool
}

func (n *NopKeepAwake) Acquire(context.Context) error {
	n.mu.Lock()
	n.held = true
	n.mu.Unlock()
	return nil
}

func (n *NopKeepAwake) Release() error {
	n.mu.Lock()
	n.held = false
	n.mu.Unlock()
	return nil
}

func (n *NopKeepAwake) Held() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.held
}
