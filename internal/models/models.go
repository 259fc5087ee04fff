package models

import "fmt"

// Phase is one step of the breathing box.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHold
	PhaseExhale
	PhaseWait
)

var phaseLabels = [...]string{"Inhale", "Hold", "Exhale", "Wait"}

// PhaseFromIndex maps a phase index onto the cycle, wrapping out-of-range values.
func PhaseFromIndex(i int) Phase {
	n := len(phaseLabels)
	return Phase(((i % n) + n) % n)
}

func (p Phase) String() string {
	if p < PhaseInhale || p > PhaseWait {
		return ""
	}
	return phaseLabels[p]
}

// Status enumerates the lifecycle states of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session state handed to views.
type Snapshot struct {
	Playing          bool
	Phase            Phase
	Countdown        int
	Elapsed          int // seconds
	SoundEnabled     bool
	TimeLimit        string // digits only, empty means unlimited
	TimeLimitReached bool
	Complete         bool
	SessionID        string
}

// Status derives the lifecycle state from the snapshot flags.
func (s Snapshot) Status() Status {
	switch {
	case s.Complete:
		return StatusComplete
	case s.Playing:
		return StatusRunning
	default:
		return StatusIdle
	}
}

// ElapsedClock formats the elapsed time as mm:ss. Minutes keep growing past 59.
func (s Snapshot) ElapsedClock() string {
	total := s.Elapsed
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
