package interp

import (
	"errors"
	"fmt"
)

// kindScratch holds one frame's worth of saved real values for a kind. It is
// written by ApplyAll, consumed by RestoreAll and stale afterwards.
type kindScratch struct {
	saved   []float64
	applied Bitset

	deltaX, deltaY []float64

	maxTrail   int
	trailSaved []float64
	trailLen   []uint16

	oldSaved   []float64
	oldApplied Bitset

	linkSaved []float64
	linked    Bitset

	// hi is one past the highest slot touched since the last restore.
	hi int
}

// Interpolator writes blended transforms into live entities for one render
// pass and puts the real values back afterwards.
type Interpolator struct {
	store *Store
	binds *Bindings

	kinds []kindScratch

	// linkedKinds lists kinds whose accessor implements ParentLinker.
	linkedKinds []int

	pending bool
	applied int
	skipped int
}

// NewInterpolator returns an interpolator over store. Its scratch buffers are
// sized on the first ApplyAll after the store is allocated.
func NewInterpolator(store *Store) *Interpolator {
	return &Interpolator{store: store, binds: store.binds}
}

func (in *Interpolator) allocate() {
	in.kinds = make([]kindScratch, len(in.store.specs))
	for k, spec := range in.store.specs {
		n := spec.Max
		ks := kindScratch{
			saved:      make([]float64, n*spec.Stride()),
			applied:    NewBitset(n),
			deltaX:     make([]float64, n),
			deltaY:     make([]float64, n),
			oldSaved:   make([]float64, n*2),
			oldApplied: NewBitset(n),
			linkSaved:  make([]float64, n*2),
			linked:     NewBitset(n),
		}
		if bd := in.binds.binds[k]; bd != nil && bd.trail != nil {
			ks.maxTrail = bd.trail.MaxTrail()
			ks.trailSaved = make([]float64, n*ks.maxTrail*2)
			ks.trailLen = make([]uint16, n)
		}
		in.kinds[k] = ks
	}
	in.refreshLinked()
}

func (in *Interpolator) refreshLinked() {
	in.linkedKinds = in.linkedKinds[:0]
	for k, bd := range in.binds.binds {
		if bd != nil && bd.parent != nil {
			in.linkedKinds = append(in.linkedKinds, k)
		}
	}
}

// Rebind must be called after accessors change so capability dependent
// buffers are resized. Any pending application is discarded.
func (in *Interpolator) Rebind() {
	if in.kinds != nil {
		in.allocate()
	}
	in.pending = false
}

// Pending reports whether values are currently applied and await restore.
func (in *Interpolator) Pending() bool {
	return in.pending
}

// Counts returns how many slots the last ApplyAll blended and how many live
// slots it left at their real position.
func (in *Interpolator) Counts() (applied, skipped int) {
	return in.applied, in.skipped
}

// Delta returns the interpolated minus real position of slot i for the
// current render pass, or zero when nothing is applied.
func (in *Interpolator) Delta(k Kind, i int) (dx, dy float64) {
	if in.kinds == nil || int(k) < 0 || int(k) >= len(in.kinds) {
		return 0, 0
	}
	ks := &in.kinds[k]
	if i < 0 || i >= len(ks.deltaX) {
		return 0, 0
	}
	return ks.deltaX[i], ks.deltaY[i]
}

// ApplyAll blends every eligible slot at fraction t. Whatever was written
// before a failure is still recorded, so RestoreAll undoes it.
func (in *Interpolator) ApplyAll(t float64) (err error) {
	if !in.store.allocated {
		return ErrNotAllocated
	}
	if in.kinds == nil {
		in.allocate()
	}
	if in.pending {
		// Never snapshot over values that are still blended.
		if err := in.RestoreAll(); err != nil {
			return err
		}
	}
	in.applied, in.skipped = 0, 0

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrApplyPanic, r)
		}
	}()

	t = Clamp01(t)
	for k := range in.kinds {
		bd := in.binds.get(k)
		if bd == nil {
			continue
		}
		in.applyKind(k, bd, t)
	}
	for _, k := range in.linkedKinds {
		if bd := in.binds.get(k); bd != nil {
			in.applyLinked(k, bd)
		}
	}
	return nil
}

func (in *Interpolator) applyKind(k int, bd *binding, t float64) {
	kf := &in.store.kinds[k]
	ks := &in.kinds[k]
	stride := kf.stride
	fields := kf.spec.Fields
	acc := bd.acc

	n := min(acc.Count(), kf.spec.Max)
	for i := 0; i < n; i++ {
		if !kf.aliveEnd.Has(i) || !acc.IsAlive(i) {
			continue
		}
		if !kf.aliveBegin.Has(i) || kf.skip.Has(i) {
			in.skipped++
			continue
		}
		if bd.parent != nil {
			if _, _, ok := bd.parent.Parent(i); ok {
				// Rides on its parent's delta in the linked pass.
				continue
			}
		}

		base := i * stride
		for f, ok := range bd.bound {
			if ok {
				ks.saved[base+f] = acc.Get(i, f)
			}
		}
		ks.applied.Set(i)
		if i >= ks.hi {
			ks.hi = i + 1
		}
		in.pending = true

		for f, ok := range bd.bound {
			if ok {
				acc.Set(i, f, blendField(fields[f].Mode, kf.begin[base+f], kf.end[base+f], t))
			}
		}

		dx := Lerp(kf.begin[base+FieldX], kf.end[base+FieldX], t) - ks.saved[base+FieldX]
		dy := Lerp(kf.begin[base+FieldY], kf.end[base+FieldY], t) - ks.saved[base+FieldY]
		ks.deltaX[i], ks.deltaY[i] = dx, dy
		in.applied++

		if dx == 0 && dy == 0 {
			continue
		}
		if bd.trail != nil && ks.maxTrail > 0 {
			in.offsetTrail(bd.trail, ks, i, dx, dy)
		}
		if bd.old != nil {
			ox, oy := bd.old.OldPosition(i)
			ks.oldSaved[i*2], ks.oldSaved[i*2+1] = ox, oy
			ks.oldApplied.Set(i)
			bd.old.SetOldPosition(i, ox+dx, oy+dy)
		}
	}
}

func (in *Interpolator) offsetTrail(tr TrailAccessor, ks *kindScratch, i int, dx, dy float64) {
	n := min(tr.TrailLen(i), ks.maxTrail)
	base := i * ks.maxTrail * 2
	for j := 0; j < n; j++ {
		ks.trailSaved[base+j*2], ks.trailSaved[base+j*2+1] = tr.TrailAt(i, j)
	}
	ks.trailLen[i] = uint16(n)
	for j := 0; j < n; j++ {
		tr.SetTrailAt(i, j, ks.trailSaved[base+j*2]+dx, ks.trailSaved[base+j*2+1]+dy)
	}
}

func (in *Interpolator) applyLinked(k int, bd *binding) {
	ks := &in.kinds[k]
	acc := bd.acc
	n := min(acc.Count(), in.store.specs[k].Max)
	for i := 0; i < n; i++ {
		if !acc.IsAlive(i) {
			continue
		}
		pk, pi, ok := bd.parent.Parent(i)
		if !ok || int(pk) < 0 || int(pk) >= len(in.kinds) {
			continue
		}
		parent := &in.kinds[pk]
		if pi < 0 || pi >= len(parent.deltaX) {
			continue
		}
		dx, dy := parent.deltaX[pi], parent.deltaY[pi]
		if dx == 0 && dy == 0 {
			continue
		}

		x, y := acc.Get(i, FieldX), acc.Get(i, FieldY)
		ks.linkSaved[i*2], ks.linkSaved[i*2+1] = x, y
		ks.linked.Set(i)
		if i >= ks.hi {
			ks.hi = i + 1
		}
		in.pending = true
		acc.Set(i, FieldX, x+dx)
		acc.Set(i, FieldY, y+dy)
		ks.deltaX[i], ks.deltaY[i] = dx, dy
		in.applied++
	}
}

// RestoreAll writes the saved real values back, linked offsets first and then
// primary kinds in reverse order. It is a no-op when nothing is applied. A
// panicking accessor costs only the slot it panicked on.
func (in *Interpolator) RestoreAll() error {
	if !in.pending {
		return nil
	}
	var errs []error
	for idx := len(in.kinds) - 1; idx >= 0; idx-- {
		if err := in.restoreKind(idx, true); err != nil {
			errs = append(errs, err)
		}
	}
	for idx := len(in.kinds) - 1; idx >= 0; idx-- {
		if err := in.restoreKind(idx, false); err != nil {
			errs = append(errs, err)
		}
	}
	in.pending = false
	return errors.Join(errs...)
}

func (in *Interpolator) restoreKind(k int, linked bool) error {
	ks := &in.kinds[k]
	bd := in.binds.binds[k]
	if bd == nil {
		in.discardKind(ks)
		return nil
	}

	var errs []error
	for i := 0; i < ks.hi; i++ {
		if err := in.restoreSlot(k, ks, bd, i, linked); err != nil {
			errs = append(errs, err)
		}
	}
	if !linked {
		ks.hi = 0
	}
	return errors.Join(errs...)
}

// restoreSlot puts slot i back. Its flags are cleared before anything is
// written, so a panicking slot is given up alone and the rest of the kind is
// still restored.
func (in *Interpolator) restoreSlot(k int, ks *kindScratch, bd *binding, i int, linked bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s slot %d: %v", ErrRestorePanic, in.store.specs[k].Name, i, r)
		}
	}()

	acc := bd.acc
	if linked {
		if !ks.linked.Has(i) {
			return nil
		}
		ks.linked.Unset(i)
		ks.deltaX[i], ks.deltaY[i] = 0, 0
		if acc.IsAlive(i) {
			acc.Set(i, FieldX, ks.linkSaved[i*2])
			acc.Set(i, FieldY, ks.linkSaved[i*2+1])
		}
		return nil
	}

	if !ks.applied.Has(i) {
		return nil
	}
	ks.applied.Unset(i)
	ks.deltaX[i], ks.deltaY[i] = 0, 0
	restoreOld := ks.oldApplied.Has(i)
	ks.oldApplied.Unset(i)
	trailLen := 0
	if ks.trailLen != nil {
		trailLen = int(ks.trailLen[i])
		ks.trailLen[i] = 0
	}
	if !acc.IsAlive(i) {
		return nil
	}

	base := i * in.store.kinds[k].stride
	for f, ok := range bd.bound {
		if ok {
			acc.Set(i, f, ks.saved[base+f])
		}
	}
	tb := i * ks.maxTrail * 2
	for j := 0; j < trailLen; j++ {
		bd.trail.SetTrailAt(i, j, ks.trailSaved[tb+j*2], ks.trailSaved[tb+j*2+1])
	}
	if restoreOld {
		bd.old.SetOldPosition(i, ks.oldSaved[i*2], ks.oldSaved[i*2+1])
	}
	return nil
}

// discardKind forgets saved values without writing them back.
func (in *Interpolator) discardKind(ks *kindScratch) {
	ks.applied.Reset()
	ks.linked.Reset()
	ks.oldApplied.Reset()
	clear(ks.deltaX)
	clear(ks.deltaY)
	if ks.trailLen != nil {
		clear(ks.trailLen)
	}
	ks.hi = 0
}

// Discard forgets everything pending without restoring. Used when the engine
// gives up on the current state after repeated failures.
func (in *Interpolator) Discard() {
	for k := range in.kinds {
		in.discardKind(&in.kinds[k])
	}
	in.pending = false
}
