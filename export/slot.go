package export

import (
	exportbridge "github.com/wippyai/export-bridge"
)

// Slot is one indirection slot: a mutable function-pointer location whose
// own address stays stable for the surface's lifetime. The exported function
// for the symbol calls through the slot, so redirecting the target changes
// observable behavior without moving the slot.
//
// Redirect is written at most once by an external patcher. The slot does not
// synchronize that write; the patcher must make it happen-before any call
// through the slot.
type Slot struct {
	name     string
	target   exportbridge.Func
	deferred bool
}

// Name returns the logical symbol name the slot was declared under.
func (s *Slot) Name() string {
	return s.name
}

// Target returns the current call target. Nil for a deferred slot that no
// collaborator has populated yet.
func (s *Slot) Target() exportbridge.Func {
	return s.target
}

// Deferred reports whether the slot was declared without an implicit
// initializer, leaving population to an external collaborator.
func (s *Slot) Deferred() bool {
	return s.deferred
}

// Redirect overwrites the call target. The slot's own address is unaffected;
// references captured before the redirect stay valid.
func (s *Slot) Redirect(fn exportbridge.Func) {
	s.target = fn
}

// Call invokes the current target. Calling a slot before it is populated is
// a contract violation by the collaborator that owns the deferred slot; it
// panics with the slot name rather than failing silently.
func (s *Slot) Call() {
	if s.target == nil {
		panic("export: call through unpopulated slot " + s.name)
	}
	s.target()
}
