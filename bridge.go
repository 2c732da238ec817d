package exportbridge

import "unsafe"

// Func is the shape of every function routed through an indirection slot.
// The real signature is erased at the boundary; callers that need arguments
// close over them.
type Func func()

// ImplSource supplies implementation addresses for curated symbol names.
// It is the only contract between the surface builder and the internal
// implementation library: "provide an address for symbol X".
type ImplSource interface {
	// Func returns the implementation for a function symbol.
	Func(name string) (Func, bool)
	// DataPointer returns the address for an opaque data-pointer symbol.
	DataPointer(name string) (unsafe.Pointer, bool)
	// Data returns the value cell for a typed data symbol. The returned
	// value must be a pointer to the variable so the address is shared
	// across the boundary.
	Data(name string) (any, bool)
}

// MapSource is a map-backed ImplSource.
type MapSource struct {
	Funcs    map[string]Func
	Pointers map[string]unsafe.Pointer
	Values   map[string]any
}

// Func implements ImplSource.
func (m MapSource) Func(name string) (Func, bool) {
	fn, ok := m.Funcs[name]
	return fn, ok
}

// DataPointer implements ImplSource.
func (m MapSource) DataPointer(name string) (unsafe.Pointer, bool) {
	p, ok := m.Pointers[name]
	return p, ok
}

// Data implements ImplSource.
func (m MapSource) Data(name string) (any, bool) {
	v, ok := m.Values[name]
	return v, ok
}
