package config

// Layout constants.
const (
	// MinContentWidth is the narrowest width the centered layout is drawn at.
	MinContentWidth = 32

	// MaxContentWidth caps the centered column on wide terminals.
	MaxContentWidth = 60

	// TimeLimitInputWidth is the visible width of the minutes field.
	TimeLimitInputWidth = 24

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
