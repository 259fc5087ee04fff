package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/device"
	"github.com/akyairhashvil/breathe/internal/device/devicemock"
	"github.com/golang/mock/gomock"
)

func TestParseFlags(t *testing.T) {
	var errOut bytes.Buffer
	opts, err := parseFlags([]string{"-plain", "-preset", "5", "-sound"}, &errOut)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if !opts.plain || opts.preset != 5 || !opts.sound {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseFlagsRejectsNegativePreset(t *testing.T) {
	var errOut bytes.Buffer
	if _, err := parseFlags([]string{"-preset", "-1"}, &errOut); err == nil {
		t.Fatalf("expected error for negative preset")
	}
	if errOut.Len() == 0 {
		t.Fatalf("expected the error to be reported")
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	var errOut bytes.Buffer
	if _, err := parseFlags([]string{"-loud"}, &errOut); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestBuildCueWithoutPlayerOrTTY(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	cue, cleanup := buildCue(config.Runtime{}, false, &bytes.Buffer{})
	defer cleanup()
	if _, ok := cue.(device.NopEmitter); !ok {
		t.Fatalf("expected NopEmitter, got %T", cue)
	}
}

func TestBuildCueFallsBackToBell(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	var out bytes.Buffer
	cue, cleanup := buildCue(config.Runtime{}, true, &out)
	defer cleanup()
	chain, ok := cue.(device.FallbackEmitter)
	if !ok || len(chain) != 1 {
		t.Fatalf("expected a bell-only chain, got %#v", cue)
	}
}

func TestBuildKeepAwakeDisabled(t *testing.T) {
	wake := buildKeepAwake(config.Runtime{KeepAwake: false})
	if _, ok := wake.(*device.NopKeepAwake); !ok {
		t.Fatalf("expected NopKeepAwake, got %T", wake)
	}
}

func TestHoldingWakeReleasesOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	wake := devicemock.NewMockKeepAwake(ctrl)
	wake.EXPECT().Release().Return(nil).Times(1)

	code := holdingWake(wake, func() error { return errors.New("program crashed") })
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestHoldingWakeReleasesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	wake := devicemock.NewMockKeepAwake(ctrl)
	wake.EXPECT().Release().Return(nil).Times(1)

	if code := holdingWake(wake, func() error { return nil }); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestHoldingWakeReleasesHeldInhibitor(t *testing.T) {
	wake := &device.NopKeepAwake{}
	if err := wake.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	holdingWake(wake, func() error { return errors.New("boom") })
	if wake.Held() {
		t.Fatalf("expected keep-awake released after a failed run")
	}
}
