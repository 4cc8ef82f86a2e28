package config

import (
	"image/color"
	"time"

	"github.com/automoto/doomerang-interp/interp"
)

// Entity kinds known to the render interpolator. The values index every
// per-kind table, so they stay dense.
const (
	KindPlayer interp.Kind = iota
	KindCreature
	KindProjectile
	KindPickup
	KindFloatingText
	KindDust

	KindCount
)

// Extra per-kind fields, after interp.FieldX and interp.FieldY.
const (
	FieldPlayerLean = 2
	FieldPlayerArm  = 3

	FieldHeading  = 2 // creatures and projectiles
	FieldDustSpin = 2
)

// TrailLength is the number of afterimage samples a projectile keeps.
const TrailLength = 8

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// InterpConfig holds the render interpolation settings
type InterpConfig struct {
	Enabled bool

	// TeleportDistance is the per step jump, in pixels, above which an entity
	// is drawn at its real position instead of blended.
	TeleportDistance       float64
	MaxConsecutiveFailures int
	FailureLogInterval     time.Duration
}

// Engine returns the engine configuration for a simulation running at tps.
func (c InterpConfig) Engine(tps int) interp.Config {
	cfg := interp.DefaultConfig()
	if tps > 0 {
		cfg.Step = time.Second / time.Duration(tps)
	}
	cfg.TeleportDistSq = interp.TeleportDistanceSquared(c.TeleportDistance)
	cfg.MaxConsecutiveFailures = c.MaxConsecutiveFailures
	cfg.FailureLogInterval = c.FailureLogInterval
	return cfg
}

// LoopConfig contains fixed step host loop configuration
type LoopConfig struct {
	TPS              int           // Simulation steps per second
	MaxStepsPerFrame int           // Steps run per callback before the rest is left as lag
	MaxFrameTime     time.Duration // Longer frames are clamped (debugger pauses, window drags)
}

// PlayerConfig contains bot player configuration values
type PlayerConfig struct {
	Count int

	// Movement (pixels per step)
	Acceleration float64
	MaxSpeed     float64
	Friction     float64
	JumpSpeed    float64
	Gravity      float64

	// Visual
	LeanFactor float64 // Radians of lean per pixel of horizontal speed
	MaxLean    float64
	ArmSpeed   float64 // Radians per step, the arm spins through ±π

	// Behavior (steps)
	JumpInterval int
	TurnInterval int
	WarpInterval int
	FireInterval int
	DustInterval int

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// CreatureConfig contains wandering creature configuration
type CreatureConfig struct {
	Count   int
	Speed   float64
	Gravity float64
	Health  int
	Size    float64
	Respawn int // Steps before a killed creature is replaced
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	Speed   float64
	Life    int // steps
	Bounces int
	Size    float64
	Damage  int
}

// PickupConfig contains pickup configuration
type PickupConfig struct {
	Size    float64
	Gravity float64
	Life    int // steps
}

// EffectsConfig contains decoration configuration
type EffectsConfig struct {
	DustLife        int     // steps
	DustSize        float64
	DustSpinRate    float64 // Radians per step
	LinkedDustRatio float64 // Fraction of player dust that follows its parent
	FreeDustBurst   int     // Dust spawned when a projectile dies

	FloatTextRise     float64 // pixels
	FloatTextDuration float32 // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw Begin/End ghosts and skip markers
	Seed    int64
}

// Global configuration instances
var C *Config
var Interp InterpConfig
var Loop LoopConfig
var Player PlayerConfig
var Creature CreatureConfig
var Projectile ProjectileConfig
var Pickup PickupConfig
var Effects EffectsConfig
var Debug DebugConfig

// Kinds describes every interpolated entity kind, indexed by kind.
var Kinds []interp.KindSpec

// LevelPath is the embedded arena map.
var LevelPath = "levels/arena.tmx"

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Background   = color.RGBA{R: 20, G: 22, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	// Debug ghosts
	GhostBegin = color.RGBA{R: 0, G: 255, B: 255, A: 120}
	GhostEnd   = color.RGBA{R: 255, G: 0, B: 255, A: 120}
	SkipMarker = color.RGBA{R: 255, G: 255, B: 0, A: 200}

	// PlayerColors tints bots by index
	PlayerColors = []color.RGBA{LightBlue, LightRed, BrightGreen, Yellow}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "doomerang interp sandbox",
	}

	Interp = InterpConfig{
		Enabled:                true,
		TeleportDistance:       64, // four body widths
		MaxConsecutiveFailures: 30,
		FailureLogInterval:     time.Second,
	}

	Loop = LoopConfig{
		TPS:              60,
		MaxStepsPerFrame: 5,
		MaxFrameTime:     250 * time.Millisecond,
	}

	Player = PlayerConfig{
		Count:        4,
		Acceleration: 0.5,
		MaxSpeed:     4.0,
		Friction:     0.3,
		JumpSpeed:    11.0,
		Gravity:      0.6,

		LeanFactor: 0.06,
		MaxLean:    0.35,
		ArmSpeed:   0.09,

		JumpInterval: 70,
		TurnInterval: 150,
		WarpInterval: 420, // ~7 seconds
		FireInterval: 24,
		DustInterval: 4,

		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	Creature = CreatureConfig{
		Count:   24,
		Speed:   1.2,
		Gravity: 0.5,
		Health:  3,
		Size:    12,
		Respawn: 90,
	}

	Projectile = ProjectileConfig{
		Speed:   7.0,
		Life:    150,
		Bounces: 3,
		Size:    4,
		Damage:  1,
	}

	Pickup = PickupConfig{
		Size:    8,
		Gravity: 0.4,
		Life:    600,
	}

	Effects = EffectsConfig{
		DustLife:        40,
		DustSize:        2,
		DustSpinRate:    0.2,
		LinkedDustRatio: 0.5,
		FreeDustBurst:   6,

		FloatTextRise:     24,
		FloatTextDuration: 0.8,
	}

	Debug = DebugConfig{
		Overlay: false,
		Seed:    1,
	}

	Kinds = []interp.KindSpec{
		KindPlayer: {
			Kind:     KindPlayer,
			Name:     "player",
			Max:      16,
			Fields:   interp.PositionFields(angular("lean"), angular("arm")),
			Teleport: interp.TeleportVelocity,
		},
		KindCreature: {
			Kind:     KindCreature,
			Name:     "creature",
			Max:      200,
			Fields:   interp.PositionFields(angular("heading")),
			Teleport: interp.TeleportDisplacement,
		},
		KindProjectile: {
			Kind:     KindProjectile,
			Name:     "projectile",
			Max:      1000,
			Fields:   interp.PositionFields(angular("heading")),
			Teleport: interp.TeleportDisplacement,
		},
		KindPickup: {
			Kind:     KindPickup,
			Name:     "pickup",
			Max:      400,
			Fields:   interp.PositionFields(),
			Teleport: interp.TeleportDisplacement,
		},
		KindFloatingText: {
			Kind:     KindFloatingText,
			Name:     "floating-text",
			Max:      100,
			Fields:   interp.PositionFields(),
			Teleport: interp.TeleportNone,
		},
		KindDust: {
			Kind:     KindDust,
			Name:     "dust",
			Max:      4000,
			Fields:   interp.PositionFields(angular("spin")),
			Teleport: interp.TeleportNone,
		},
	}
}

func angular(name string) interp.Field {
	return interp.Field{Name: name, Mode: interp.Angular}
}
