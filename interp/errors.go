package interp

import "errors"

var (
	// ErrNotAllocated is returned when a hook runs before Allocate.
	ErrNotAllocated = errors.New("interp: buffers not allocated")
	// ErrApplyPanic wraps a panic raised by an accessor while applying.
	ErrApplyPanic = errors.New("interp: panic during apply")
	// ErrRestorePanic wraps a panic raised by an accessor while restoring.
	ErrRestorePanic = errors.New("interp: panic during restore")
	// ErrRenderPanic wraps a panic raised by the render pass.
	ErrRenderPanic = errors.New("interp: panic during render")
)
