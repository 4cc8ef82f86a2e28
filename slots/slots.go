// Package slots maps the fixed-capacity index space of each entity kind onto
// donburi entities. Interpolation buffers are indexed by slot, so every entity
// the renderer blends must hold one for its whole lifetime.
package slots

import "github.com/yohamta/donburi"

// Table is a fixed-capacity slot array for one entity kind.
type Table struct {
	entities []donburi.Entity
	used     []bool
	live     int
	// hi is one past the highest slot ever handed out since the last Reset.
	hi int
}

// New returns a table holding at most max entities.
func New(max int) *Table {
	return &Table{
		entities: make([]donburi.Entity, max),
		used:     make([]bool, max),
	}
}

// Acquire stores e in the lowest free slot. It reports false when the table is
// full.
func (t *Table) Acquire(e donburi.Entity) (int, bool) {
	for i, u := range t.used {
		if u {
			continue
		}
		t.used[i] = true
		t.entities[i] = e
		t.live++
		if i >= t.hi {
			t.hi = i + 1
		}
		return i, true
	}
	return -1, false
}

// Release frees slot i. Releasing a free or out of range slot does nothing.
func (t *Table) Release(i int) {
	if i < 0 || i >= len(t.used) || !t.used[i] {
		return
	}
	t.used[i] = false
	t.entities[i] = donburi.Null
	t.live--
	for t.hi > 0 && !t.used[t.hi-1] {
		t.hi--
	}
}

// Entity returns the entity in slot i.
func (t *Table) Entity(i int) (donburi.Entity, bool) {
	if i < 0 || i >= len(t.used) || !t.used[i] {
		return donburi.Null, false
	}
	return t.entities[i], true
}

// Used reports whether slot i holds an entity.
func (t *Table) Used(i int) bool {
	return i >= 0 && i < len(t.used) && t.used[i]
}

// Count is one past the highest occupied slot, the range the interpolator
// has to scan.
func (t *Table) Count() int { return t.hi }

// Live is the number of occupied slots.
func (t *Table) Live() int { return t.live }

// Cap is the table capacity.
func (t *Table) Cap() int { return len(t.used) }

// Reset frees every slot.
func (t *Table) Reset() {
	clear(t.used)
	for i := range t.entities {
		t.entities[i] = donburi.Null
	}
	t.live = 0
	t.hi = 0
}
