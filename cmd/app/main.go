package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/akyairhashvil/breathe/internal/device"
	"github.com/akyairhashvil/breathe/internal/session"
	"github.com/akyairhashvil/breathe/internal/tui"
	"github.com/akyairhashvil/breathe/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type options struct {
	plain  bool
	preset int
	sound  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exiting.
func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return 2
	}
	cfg, err := config.LoadRuntime()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}

	// 1. Logging goes to a file; the terminal belongs to the UI.
	logFile, err := util.OpenLogFile(util.LogPath(config.AppName, cfg.LogFile, config.LogFileName))
	var logOut io.Writer = io.Discard
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	} else {
		logOut = logFile
		defer logFile.Close()
	}
	if err := util.InitLogger(logOut, cfg.LogLevel); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}

	// 2. Collaborators
	interactive := term.IsTerminal(int(os.Stdout.Fd())) && !opts.plain
	cue, closeCue := buildCue(cfg, term.IsTerminal(int(os.Stdout.Fd())), os.Stdout)
	defer closeCue()
	wake := buildKeepAwake(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := session.New(session.WithSound(cfg.Sound || opts.sound))
	log.Info().Bool("interactive", interactive).Int("preset", opts.preset).Msg("starting")

	// 3. Run the selected front end
	return holdingWake(wake, func() error {
		if !interactive {
			runner := session.NewRunner(ctrl, cue, wake, os.Stdout)
			if _, err := runner.Run(ctx, opts.preset); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}

		var prober device.Prober
		if !cfg.ProbeDisabled {
			prober = device.NewDialProber(cfg.ProbeAddr, config.ProbeTimeout)
		}
		model := tui.NewMainModel(ctx, tui.Deps{
			Session: ctrl,
			Cue:     cue,
			Wake:    wake,
			Prober:  prober,
			Theme:   cfg.Theme,
			Preset:  opts.preset,
		})
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})
}

// holdingWake runs the front end and always releases the keep-awake lock
// before reporting an exit code.
func holdingWake(wake device.KeepAwake, fn func() error) int {
	defer func() { util.LogError("keep awake", wake.Release()) }()
	if err := fn(); err != nil {
		log.Error().Err(err).Msg("run failed")
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.BoolVar(&opts.plain, "plain", false, "print one line per second instead of the interactive UI")
	fs.IntVar(&opts.preset, "preset", 0, "start right away with a time limit in minutes")
	fs.BoolVar(&opts.sound, "sound", false, "play a tone at every phase change")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.preset < 0 {
		err := fmt.Errorf("preset must be a positive number of minutes")
		fmt.Fprintln(errOut, err)
		return options{}, err
	}
	return opts, nil
}

// buildCue prefers a synthesized tone and falls back to the terminal bell.
// The returned func removes the tone's temporary file.
func buildCue(cfg config.Runtime, tty bool, out io.Writer) (device.CueEmitter, func()) {
	var chain device.FallbackEmitter
	cleanup := func() {}
	tone := device.Tone{
		Frequency:  config.ToneFrequencyHz,
		Duration:   config.ToneDuration,
		SampleRate: config.ToneSampleRate,
		Amplitude:  config.ToneAmplitude,
	}
	if emitter, err := device.NewToneEmitter(tone, cfg.Player); err == nil {
		chain = append(chain, emitter)
		cleanup = func() { util.LogError("remove tone file", emitter.Close()) }
	} else {
		log.Warn().Err(err).Msg("tone player unavailable")
	}
	if tty {
		chain = append(chain, device.NewBellEmitter(out))
	}
	if len(chain) == 0 {
		return device.NopEmitter{}, cleanup
	}
	return chain, cleanup
}

func buildKeepAwake(cfg config.Runtime) device.KeepAwake {
	if !cfg.KeepAwake {
		return &device.NopKeepAwake{}
	}
	inh, err := device.NewInhibitor(config.AppName)
	if err != nil {
		log.Warn().Err(err).Msg("keep awake unavailable")
		return &device.NopKeepAwake{}
	}
	return inh
}
