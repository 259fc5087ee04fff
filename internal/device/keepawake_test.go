package device

import (
	"context"
	"errors"
	"testing"
)

type fakeProcess struct {
	killed bool
	waited bool
	err    error
}

func (p *fakeProcess) Kill() error {
	p.killed = true
	return p.err
}

func (p *fakeProcess) Wait() error {
	p.waited = true
	return errors.New("signal: killed")
}

func TestInhibitorAcquireRelease(t *testing.T) {
	var started int
	proc := &fakeProcess{}
	inh := &Inhibitor{
		argv: []string{"caffeinate", "-d"},
		start: func(argv []string) (process, error) {
			started++
			return proc, nil
		},
	}
	ctx := context.Background()
	if err := inh.Acquire(ctx); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := inh.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}
	if started != 1 {
		t.Fatalf("expected a single inhibitor process, got %d", started)
	}
	if !inh.Held() {
		t.Fatalf("expected inhibitor to be held")
	}
	if err := inh.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if !proc.killed || !proc.waited {
		t.Fatalf("expected process to be killed and reaped")
	}
	if inh.Held() {
		t.Fatalf("expected inhibitor to be released")
	}
	if err := inh.Release(); err != nil {
		t.Fatalf("Release on idle inhibitor should be a no-op: %v", err)
	}
}

func TestInhibitorAcquireError(t *testing.T) {
	boom := errors.New("exec failed")
	inh := &Inhibitor{
		argv:  []string{"systemd-inhibit"},
		start: func([]string) (process, error) { return nil, boom },
	}
	if err := inh.Acquire(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped start error, got %v", err)
	}
	if inh.Held() {
		t.Fatalf("failed acquire must not mark the inhibitor held")
	}
}

func TestInhibitorReleaseError(t *testing.T) {
	boom := errors.New("no such process")
	inh := &Inhibitor{
		argv:  []string{"caffeinate"},
		start: func([]string) (process, error) { return &fakeProcess{err: boom}, nil },
	}
	if err := inh.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if err := inh.Release(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped kill error, got %v", err)
	}
	if inh.Held() {
		t.Fatalf("inhibitor should be dropped even when kill fails")
	}
}

func TestInhibitCommand(t *testing.T) {
	argv, err := inhibitCommand("linux", "breathe")
	if err != nil || argv[0] != "systemd-inhibit" {
		t.Fatalf("unexpected linux command %v (%v)", argv, err)
	}
	argv, err = inhibitCommand("darwin", "breathe")
	if err != nil || argv[0] != "caffeinate" {
		t.Fatalf("unexpected darwin command %v (%v)", argv, err)
	}
	if _, err := inhibitCommand("plan9", "breathe"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestNopKeepAwake(t *testing.T) {
	var n NopKeepAwake
	if n.Held() {
		t.Fatalf("zero value should not be held")
	}
	_ = n.Acquire(context.Background())
	if !n.Held() {
		t.Fatalf("expected held after Acquire")
	}
	_ = n.Release()
	if n.Held() {
		t.Fatalf("expected released")
	}
}
