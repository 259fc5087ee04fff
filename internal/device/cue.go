package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// BellEmitter rings the terminal bell.
type BellEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBellEmitter(w io.Writer) *BellEmitter {
	return &BellEmitter{w: w}
}

func (b *BellEmitter) Cue(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// FallbackEmitter tries each emitter in order and stops at the first success.
type FallbackEmitter []CueEmitter

func (f FallbackEmitter) Cue(ctx context.Context) error {
	var errs []error
	for _, e := range f {
		if e == nil {
			continue
		}
		err := e.Cue(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrNoPlayer
	}
	return errors.Join(errs...)
}

// NopEmitter discards cues.
type NopEmitter struct{}

func (NopEmitter) Cue(context.Context) error { return nil }
