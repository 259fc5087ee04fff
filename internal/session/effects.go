package session

import "github.com/akyairhashvil/breathe/internal/models"

// Effects describes the side effects a command or tick asks the caller to perform.
// The controller never performs I/O itself.
type Effects struct {
	// PhaseChanged is set when a new phase begins, including the first Inhale of a start.
	PhaseChanged bool
	Phase        models.Phase
	// Cue is PhaseChanged gated on the sound preference.
	Cue          bool
	LimitReached bool
	Completed    bool

	StartTicker bool
	StopTicker  bool
	// Generation identifies the tick source StartTicker asks for.
	Generation uint64

	AcquireWake bool
	ReleaseWake bool
}

// Empty reports whether there is nothing to do.
func (e Effects) Empty() bool {
	return e == Effects{}
}
