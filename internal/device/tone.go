package device

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// playerCandidates are probed in order when no player is configured.
var playerCandidates = [][]string{
	{"paplay"},
	{"pw-play"},
	{"aplay", "-q"},
	{"afplay"},
}

// Tone describes a mono sine cue.
type Tone struct {
	Frequency  float64
	Duration   time.Duration
	SampleRate int
	Amplitude  float64
}

// Samples returns the number of PCM frames the tone spans.
func (t Tone) Samples() int {
	return int(float64(t.SampleRate) * t.Duration.Seconds())
}

// WAV renders the tone as a 16-bit little-endian PCM WAV file.
func (t Tone) WAV() []byte {
	n := t.Samples()
	dataLen := n * 2
	var buf bytes.Buffer
	buf.Grow(44 + dataLen)

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(t.SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(t.SampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))

	amp := math.Max(0, math.Min(1, t.Amplitude)) * math.MaxInt16
	for i := 0; i < n; i++ {
		v := amp * math.Sin(2*math.Pi*t.Frequency*float64(i)/float64(t.SampleRate))
		_ = binary.Write(&buf, binary.LittleEndian, int16(v))
	}
	return buf.Bytes()
}

// ToneEmitter plays a synthesized tone through an external audio player.
type ToneEmitter struct {
	tone   Tone
	player []string
	dir    string
	run    func(ctx context.Context, argv []string) error

	once sync.Once
	path string
	err  error
}

// NewToneEmitter picks the configured player, or the first known player on PATH.
func NewToneEmitter(tone Tone, player string) (*ToneEmitter, error) {
	argv := strings.Fields(player)
	if len(argv) == 0 {
		for _, cand := range playerCandidates {
			if _, err := exec.LookPath(cand[0]); err == nil {
				argv = cand
				break
			}
		}
	}
	if len(argv) == 0 {
		return nil, ErrNoPlayer
	}
	return &ToneEmitter{tone: tone, player: argv, dir: os.TempDir(), run: runCommand}, nil
}

// Player returns the command used to play the tone.
func (e *ToneEmitter) Player() []string {
	return append([]string(nil), e.player...)
}

func (e *ToneEmitter) Cue(ctx context.Context) error {
	path, err := e.file()
	if err != nil {
		return err
	}
	argv := append(e.Player(), path)
	if err := e.run(ctx, argv); err != nil {
		return fmt.Errorf("play tone with %s: %w", argv[0], err)
	}
	return nil
}

// file writes the WAV once and reuses it for every cue.
func (e *ToneEmitter) file() (string, error) {
	e.once.Do(func() {
		f, err := os.CreateTemp(e.dir, "breathe-tone-*.wav")
		if err != nil {
			e.err = fmt.Errorf("create tone file: %w", err)
			return
		}
		defer f.Close()
		if _, err := f.Write(e.tone.WAV()); err != nil {
			e.err = fmt.Errorf("write tone file: %w", err)
			return
		}
		e.path = filepath.Clean(f.Name())
	})
	return e.path, e.err
}

// Close removes the cached tone file.
func (e *ToneEmitter) Close() error {
	if e.path == "" {
		return nil
	}
	return os.Remove(e.path)
}

func runCommand(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return err
}
