// Package device wraps the host resources the breathing session touches:
// audible cues, keeping the display awake, and network reachability.
// Every failure here is reported to the caller and is never fatal.
package device

import (
	"context"
	"errors"
)

var (
	ErrNoPlayer    = errors.New("no audio player found")
	ErrUnsupported = errors.New("not supported on this platform")
)

// CueEmitter plays a short phase-change cue.
//
//go:generate mockgen -source=device.go -destination=devicemock/mock_device.go -package=devicemock
type CueEmitter interface {
	Cue(ctx context.Context) error
}

// KeepAwake holds the display awake while a session is playing.
type KeepAwake interface {
	Acquire(ctx context.Context) error
	Release() error
	Held() bool
}

// Prober reports whether the network is reachable.
type Prober interface {
	Online(ctx context.Context) bool
}
