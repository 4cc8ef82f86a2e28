package interp

import (
	"fmt"
	"log"
)

// binding is an Accessor with its optional capabilities resolved once, so the
// per frame loops never repeat type assertions.
type binding struct {
	acc    Accessor
	vel    VelocityAccessor
	trail  TrailAccessor
	old    OldPositionAccessor
	parent ParentLinker
	gen    GenerationAccessor

	bound    []bool
	posBound bool
	teleport TeleportMode
}

// Bindings maps every kind to its accessor.
type Bindings struct {
	specs   []KindSpec
	binds   []*binding
	missing []bool
	warned  map[string]struct{}
}

// NewBindings returns an empty binding table for specs. specs[i].Kind must be i.
func NewBindings(specs []KindSpec) *Bindings {
	for i, s := range specs {
		if int(s.Kind) != i {
			panic(fmt.Sprintf("interp: kind %q declared at index %d has id %d", s.Name, i, s.Kind))
		}
	}
	return &Bindings{
		specs:   specs,
		binds:   make([]*binding, len(specs)),
		missing: make([]bool, len(specs)),
		warned:  make(map[string]struct{}),
	}
}

// Bind attaches acc to kind k, replacing any previous binding. Missing
// capabilities are reported once and the affected field or feature skipped.
func (b *Bindings) Bind(k Kind, acc Accessor) {
	if int(k) < 0 || int(k) >= len(b.specs) {
		b.warnOnce(fmt.Sprintf("bind/%d", k), "bind to unknown kind %d ignored", k)
		return
	}
	spec := b.specs[k]
	if acc == nil {
		b.binds[k] = nil
		return
	}

	bd := &binding{
		acc:      acc,
		bound:    make([]bool, spec.Stride()),
		teleport: spec.Teleport,
	}
	bd.vel, _ = acc.(VelocityAccessor)
	bd.trail, _ = acc.(TrailAccessor)
	bd.old, _ = acc.(OldPositionAccessor)
	bd.parent, _ = acc.(ParentLinker)
	bd.gen, _ = acc.(GenerationAccessor)

	fb, partial := acc.(FieldBinder)
	for f := range bd.bound {
		bd.bound[f] = !partial || fb.Bound(f)
		if !bd.bound[f] {
			b.warnOnce(fmt.Sprintf("field/%s/%d", spec.Name, f),
				"%s: field %q has no accessor binding, not interpolated", spec.Name, spec.Fields[f].Name)
		}
	}
	bd.posBound = len(bd.bound) >= 2 && bd.bound[FieldX] && bd.bound[FieldY]
	if !bd.posBound {
		b.warnOnce("pos/"+spec.Name, "%s: position is not bound, kind skipped", spec.Name)
	}
	if spec.Teleport == TeleportVelocity && bd.vel == nil {
		b.warnOnce("vel/"+spec.Name, "%s: no velocity accessor, teleport detection falls back to displacement", spec.Name)
		bd.teleport = TeleportDisplacement
	}
	b.binds[k] = bd
}

// get returns the usable binding for k, or nil when the kind must be skipped.
func (b *Bindings) get(k int) *binding {
	bd := b.binds[k]
	if bd == nil {
		if !b.missing[k] {
			b.missing[k] = true
			log.Printf("[interp] %s: no accessor bound, kind skipped", b.specs[k].Name)
		}
		return nil
	}
	if !bd.posBound {
		return nil
	}
	return bd
}

func (b *Bindings) warnOnce(key, format string, args ...any) {
	if _, seen := b.warned[key]; seen {
		return
	}
	b.warned[key] = struct{}{}
	log.Printf("[interp] "+format, args...)
}
