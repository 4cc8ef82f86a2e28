package interp

// Kind identifies a category of renderable entity. Kinds index every per-kind
// buffer, so they must be dense and start at zero.
type Kind int

// FieldMode selects how a tracked field is blended.
type FieldMode uint8

const (
	// Linear fields are blended with a plain lerp.
	Linear FieldMode = iota
	// Angular fields are blended along the shorter arc, in radians.
	Angular
)

// Field describes one tracked float component of a kind.
type Field struct {
	Name string
	Mode FieldMode
}

// Field indices shared by every kind. Fields past FieldY are kind specific.
const (
	FieldX = 0
	FieldY = 1
)

// TeleportMode selects how captureEnd decides that a slot jumped instead of
// moving continuously.
type TeleportMode uint8

const (
	TeleportNone TeleportMode = iota
	// TeleportDisplacement compares End against Begin directly.
	TeleportDisplacement
	// TeleportVelocity compares End against Begin projected by the velocity
	// captured at Begin.
	TeleportVelocity
)

func (m TeleportMode) String() string {
	switch m {
	case TeleportDisplacement:
		return "displacement"
	case TeleportVelocity:
		return "velocity"
	}
	return "none"
}

// KindSpec is the static description of one entity kind.
type KindSpec struct {
	Kind     Kind
	Name     string
	Max      int
	Fields   []Field
	Teleport TeleportMode
}

// Stride is the number of float components stored per slot.
func (s KindSpec) Stride() int {
	return len(s.Fields)
}

// PositionFields returns the X/Y fields every kind starts with.
func PositionFields(extra ...Field) []Field {
	fields := make([]Field, 0, 2+len(extra))
	fields = append(fields, Field{Name: "x"}, Field{Name: "y"})
	return append(fields, extra...)
}
