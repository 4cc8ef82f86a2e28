package interp

import "time"

// Config holds the tunables of the engine.
type Config struct {
	// Step is the duration of one simulation step.
	Step time.Duration

	// TeleportDistSq is the squared distance, in world units, above which a
	// per step jump is treated as a teleport and not blended.
	TeleportDistSq float64

	// MaxConsecutiveFailures bounds how many failing callbacks in a row are
	// tolerated before the engine resets itself to NoKeyframe.
	MaxConsecutiveFailures int

	// FailureLogInterval throttles repeated failure logs.
	FailureLogInterval time.Duration
}

// DefaultConfig returns a configuration for a 60 steps per second host with
// 16 unit wide bodies.
func DefaultConfig() Config {
	return Config{
		Step:                   time.Second / 60,
		TeleportDistSq:         64 * 64, // four body widths
		MaxConsecutiveFailures: 30,
		FailureLogInterval:     time.Second,
	}
}

// TeleportDistanceSquared converts a plain distance into TeleportDistSq.
func TeleportDistanceSquared(d float64) float64 {
	return d * d
}
