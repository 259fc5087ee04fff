package config

import "testing"

func TestConstants(t *testing.T) {
	if TickPeriod <= 0 {
		t.Fatalf("TickPeriod must be positive")
	}
	if PhaseTicks != 4 || PhaseCount != 4 {
		t.Fatalf("box breathing uses four phases of four ticks, got %d/%d", PhaseCount, PhaseTicks)
	}
	if OfflineBannerDuration <= 0 {
		t.Fatalf("OfflineBannerDuration must be positive")
	}
	if len(Presets) != 3 || Presets[0] != 2 || Presets[1] != 5 || Presets[2] != 10 {
		t.Fatalf("unexpected presets: %v", Presets)
	}
	if ToneFrequencyHz != 440 {
		t.Fatalf("unexpected tone frequency %v", ToneFrequencyHz)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
}

func TestLoadRuntimeDefaults(t *testing.T) {
	t.Setenv("BREATHE_LOG_LEVEL", "")
	cfg, err := LoadRuntime()
	if err != nil {
		t.Fatalf("LoadRuntime failed: %v", err)
	}
	if !cfg.KeepAwake {
		t.Fatalf("expected keep-awake to default to true")
	}
	if cfg.Theme != "default" {
		t.Fatalf("expected default theme, got %q", cfg.Theme)
	}
	if cfg.ProbeAddr == "" {
		t.Fatalf("expected a default probe address")
	}
}

func TestLoadRuntimeOverrides(t *testing.T) {
	t.Setenv("BREATHE_SOUND", "true")
	t.Setenv("BREATHE_THEME", "dracula")
	t.Setenv("BREATHE_KEEP_AWAKE", "false")
	t.Setenv("BREATHE_PLAYER", "paplay")
	cfg, err := LoadRuntime()
	if err != nil {
		t.Fatalf("LoadRuntime failed: %v", err)
	}
	if !cfg.Sound || cfg.KeepAwake {
		t.Fatalf("expected sound on and keep-awake off, got %+v", cfg)
	}
	if cfg.Theme != "dracula" || cfg.Player != "paplay" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadRuntimeInvalidBool(t *testing.T) {
	t.Setenv("BREATHE_SOUND", "loud")
	if _, err := LoadRuntime(); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}
