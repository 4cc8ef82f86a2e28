package interp

// Accessor projects the host's storage for one entity kind onto slot indexed
// float fields. Implementations hold no state of their own and are only used
// from the render thread. Callers guard every Get/Set with IsAlive.
type Accessor interface {
	// Count returns the number of slots worth scanning, at most the kind's Max.
	Count() int
	IsAlive(i int) bool
	Get(i, field int) float64
	Set(i, field int, v float64)
}

// VelocityAccessor exposes the per step velocity used for teleport prediction.
type VelocityAccessor interface {
	Velocity(i int) (vx, vy float64)
}

// TrailAccessor exposes a short afterimage trail of recent positions.
type TrailAccessor interface {
	MaxTrail() int
	TrailLen(i int) int
	TrailAt(i, j int) (x, y float64)
	SetTrailAt(i, j int, x, y float64)
}

// OldPositionAccessor exposes a "last known position" the host keeps apart
// from the live transform and uses for its own motion calculations.
type OldPositionAccessor interface {
	OldPosition(i int) (x, y float64)
	SetOldPosition(i int, x, y float64)
}

// ParentLinker is implemented by kinds whose visuals ride on another entity.
type ParentLinker interface {
	Parent(i int) (kind Kind, index int, ok bool)
}

// FieldBinder reports whether a declared field is actually wired to host
// storage. Accessors that do not implement it are assumed fully bound.
type FieldBinder interface {
	Bound(field int) bool
}

// GenerationAccessor identifies the occupant of a slot. A slot whose
// generation changed between two captures holds a different entity and is
// drawn at its real position for one step, whatever the kind's teleport mode.
type GenerationAccessor interface {
	Generation(i int) uint64
}
