package interp

// kindFrames holds the double buffered keyframes of one kind.
type kindFrames struct {
	spec   KindSpec
	stride int

	begin []float64
	end   []float64

	aliveBegin Bitset
	aliveEnd   Bitset
	skip       Bitset

	velBeginX, velBeginY []float64
	velEndX, velEndY     []float64

	genBegin, genEnd []uint64

	// count is the number of slots scanned by the last capture.
	count int
}

// Store owns the Begin/End keyframes of every kind. It is touched only by the
// scheduler and the interpolator, on the render thread.
type Store struct {
	specs  []KindSpec
	binds  *Bindings
	distSq float64

	kinds     []kindFrames
	allocated bool
}

// NewStore returns an unallocated store. Call Allocate before use.
func NewStore(binds *Bindings, teleportDistSq float64) *Store {
	return &Store{
		specs:  binds.specs,
		binds:  binds,
		distSq: teleportDistSq,
	}
}

// Allocate sizes every buffer to the kind's maximum population. Calling it
// again is a no-op.
func (s *Store) Allocate() {
	if s.allocated {
		return
	}
	s.kinds = make([]kindFrames, len(s.specs))
	for k, spec := range s.specs {
		n, stride := spec.Max, spec.Stride()
		s.kinds[k] = kindFrames{
			spec:       spec,
			stride:     stride,
			begin:      make([]float64, n*stride),
			end:        make([]float64, n*stride),
			aliveBegin: NewBitset(n),
			aliveEnd:   NewBitset(n),
			skip:       NewBitset(n),
			velBeginX:  make([]float64, n),
			velBeginY:  make([]float64, n),
			velEndX:    make([]float64, n),
			velEndY:    make([]float64, n),
			genBegin:   make([]uint64, n),
			genEnd:     make([]uint64, n),
		}
	}
	s.allocated = true
}

// Allocated reports whether Allocate has run.
func (s *Store) Allocated() bool {
	return s.allocated
}

// SetTeleportDistSq changes the teleport threshold for subsequent captures.
func (s *Store) SetTeleportDistSq(d float64) {
	s.distSq = d
}

// Clear zeroes every buffer so nothing is blended across unrelated sessions.
func (s *Store) Clear() {
	for k := range s.kinds {
		kf := &s.kinds[k]
		clear(kf.begin)
		clear(kf.end)
		kf.aliveBegin.Reset()
		kf.aliveEnd.Reset()
		kf.skip.Reset()
		clear(kf.velBeginX)
		clear(kf.velBeginY)
		clear(kf.velEndX)
		clear(kf.velEndY)
		clear(kf.genBegin)
		clear(kf.genEnd)
		kf.count = 0
	}
}

// CaptureEnd records the current transform of every live slot into End,
// refreshes AliveEnd and recomputes Skip for the step that just completed.
func (s *Store) CaptureEnd() {
	for k := range s.kinds {
		kf := &s.kinds[k]
		bd := s.binds.get(k)
		if bd == nil {
			kf.aliveEnd.Reset()
			kf.skip.Reset()
			kf.count = 0
			continue
		}
		n := min(bd.acc.Count(), kf.spec.Max)
		for i := 0; i < n; i++ {
			s.captureSlot(kf, bd, i)
		}
		for i := n; i < kf.count; i++ {
			kf.aliveEnd.Unset(i)
			kf.skip.Unset(i)
		}
		kf.count = n
	}
}

func (s *Store) captureSlot(kf *kindFrames, bd *binding, i int) {
	alive := bd.acc.IsAlive(i)
	kf.aliveEnd.Put(i, alive)
	if !alive {
		kf.skip.Unset(i)
		return
	}

	base := i * kf.stride
	for f, ok := range bd.bound {
		if ok {
			kf.end[base+f] = bd.acc.Get(i, f)
		}
	}
	if bd.vel != nil {
		kf.velEndX[i], kf.velEndY[i] = bd.vel.Velocity(i)
	}
	if bd.gen != nil {
		kf.genEnd[i] = bd.gen.Generation(i)
	}

	// A slot that was empty at Begin just spawned. One whose occupant changed
	// between the captures was recycled, possibly within a single callback.
	skip := !kf.aliveBegin.Has(i)
	if !skip && bd.gen != nil {
		skip = kf.genBegin[i] != kf.genEnd[i]
	}
	if !skip {
		skip = s.teleported(kf, bd.teleport, i, base)
	}
	kf.skip.Put(i, skip)
}

func (s *Store) teleported(kf *kindFrames, mode TeleportMode, i, base int) bool {
	var dx, dy float64
	switch mode {
	case TeleportVelocity:
		dx = kf.end[base+FieldX] - (kf.begin[base+FieldX] + kf.velBeginX[i])
		dy = kf.end[base+FieldY] - (kf.begin[base+FieldY] + kf.velBeginY[i])
	case TeleportDisplacement:
		dx = kf.end[base+FieldX] - kf.begin[base+FieldX]
		dy = kf.end[base+FieldY] - kf.begin[base+FieldY]
	default:
		return false
	}
	return dx*dx+dy*dy > s.distSq
}

// ShiftToBegin makes the last captured End the new Begin.
func (s *Store) ShiftToBegin() {
	s.CopyEndToBegin()
}

// CopyEndToBegin copies End over Begin, transforms and liveness alike. It is
// used on its own the first time a step is captured, when no earlier state
// exists to blend from.
func (s *Store) CopyEndToBegin() {
	for k := range s.kinds {
		kf := &s.kinds[k]
		copy(kf.begin, kf.end)
		kf.aliveBegin.CopyFrom(kf.aliveEnd)
		copy(kf.velBeginX, kf.velEndX)
		copy(kf.velBeginY, kf.velEndY)
		copy(kf.genBegin, kf.genEnd)
	}
}

// Begin returns a Begin component. Intended for diagnostics.
func (s *Store) Begin(k Kind, i, field int) float64 {
	kf := &s.kinds[k]
	return kf.begin[i*kf.stride+field]
}

// End returns an End component. Intended for diagnostics.
func (s *Store) End(k Kind, i, field int) float64 {
	kf := &s.kinds[k]
	return kf.end[i*kf.stride+field]
}

// AliveBegin reports whether slot i was live at the Begin capture.
func (s *Store) AliveBegin(k Kind, i int) bool {
	return s.kinds[k].aliveBegin.Has(i)
}

// AliveEnd reports whether slot i was live at the End capture.
func (s *Store) AliveEnd(k Kind, i int) bool {
	return s.kinds[k].aliveEnd.Has(i)
}

// Skipped reports whether slot i renders unblended for the current step.
func (s *Store) Skipped(k Kind, i int) bool {
	return s.kinds[k].skip.Has(i)
}

// Captured returns the number of slots scanned by the last capture of k.
func (s *Store) Captured(k Kind) int {
	return s.kinds[k].count
}
