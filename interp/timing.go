package interp

// TimingState is the subset of host frame pacing the engine overrides.
type TimingState struct {
	// FixedStep is true when the host renders at a fixed rate tied to its
	// simulation rate.
	FixedStep bool
	// TPS is the host's simulation rate, kept so it can be restored verbatim.
	TPS   int
	Vsync bool
}

// Timing is implemented by the host to let the engine take over frame pacing.
type Timing interface {
	Current() TimingState
	Apply(TimingState)
}
