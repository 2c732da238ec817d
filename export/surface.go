package export

import (
	"reflect"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	exportbridge "github.com/wippyai/export-bridge"
	"github.com/wippyai/export-bridge/errors"
	"github.com/wippyai/export-bridge/symbol"
)

// ImplSuffix is appended to every codegen-exported name in the codegen
// registry: the code generator emits implementations under the mangled
// name, while consumers call the undecorated one.
const ImplSuffix = "_impl"

// Options configures surface construction.
type Options struct {
	// Platform selects which curated symbol set is emitted.
	// symbol.PlatformWindows appends the Windows extension lists and
	// consults the Windows override table.
	Platform symbol.Platform
}

// DefaultOptions returns options targeting the compiling platform.
func DefaultOptions() Options {
	return Options{Platform: defaultPlatform}
}

// Surface is the public symbol boundary built from the curated lists.
// Build populates it once; afterwards it is read-only and safe for
// concurrent reads. The one mutable quantity, a slot's target, is written
// through the slot by a patcher, never through the surface.
type Surface struct {
	funcs map[string]exportbridge.Func
	ptrs  map[string]unsafe.Pointer
	data  map[string]any
	slots map[string]*Slot

	runtime *Registry
	codegen *Registry

	stackGuard    any
	guardFallback bool
}

// Build constructs the export surface: declarations for every curated name,
// one hidden indirection slot per runtime-exported function, and the two
// name/address registries. It is the module's single initialization point;
// nothing happens at package load time.
//
// A curated name with no matching implementation symbol fails the build.
// No partial surface is returned.
func Build(lists symbol.Lists, src exportbridge.ImplSource, opts Options) (*Surface, error) {
	windows := opts.Platform == symbol.PlatformWindows

	dataPtrs := lists.DataPointers
	dataSyms := lists.DataSymbols
	runtimeFuncs := lists.RuntimeFuncs
	if windows {
		dataPtrs = dataPtrs.Concat(lists.DataPointersWindows)
		dataSyms = dataSyms.Concat(lists.DataSymbolsWindows)
		runtimeFuncs = runtimeFuncs.Concat(lists.RuntimeFuncsWindows)
	}
	overrides := overridesFor(opts.Platform)

	s := &Surface{
		funcs: make(map[string]exportbridge.Func),
		ptrs:  make(map[string]unsafe.Pointer, dataPtrs.Len()),
		data:  make(map[string]any, dataSyms.Len()),
		slots: make(map[string]*Slot),
	}

	seen := make(map[string]bool, lists.Total())
	declare := func(category, name string) error {
		if seen[name] {
			return errors.DuplicateSymbol(category, name)
		}
		seen[name] = true
		return nil
	}

	// Exported opaque pointer data.
	for _, d := range dataPtrs.Entries() {
		mustCategory(d, symbol.DataPointer)
		if err := declare("data-pointer", d.Name); err != nil {
			return nil, err
		}
		p, ok := src.DataPointer(d.Name)
		if !ok {
			return nil, errors.MissingImpl("data-pointer", d.Name)
		}
		s.ptrs[d.Name] = p
	}

	// Exported typed data. The cell is the pointer the internal library
	// supplied, so the address is identical on both sides of the boundary.
	for _, d := range dataSyms.Entries() {
		mustCategory(d, symbol.DataSymbol)
		if err := declare("data-symbol", d.Name); err != nil {
			return nil, err
		}
		v, ok := src.Data(d.Name)
		if !ok {
			return nil, errors.MissingImpl("data-symbol", d.Name)
		}
		actual, isPtr := cellTypeName(v)
		if !isPtr || !typeMatches(d.Type, actual) {
			return nil, errors.TypeMismatch(d.Name, d.Type, actual)
		}
		s.data[d.Name] = v
	}

	// Runtime-exported functions: hidden slot initialized to the internal
	// implementation, exported function calling through it.
	rt := newRegistry(runtimeFuncs.Len() + len(overrides) + lists.RuntimeFuncAddrs.Len())
	for _, d := range runtimeFuncs.Entries() {
		mustCategory(d, symbol.RuntimeFunc)
		if err := declare("runtime-func", d.Name); err != nil {
			return nil, err
		}
		fn, ok := src.Func(d.Name)
		if !ok {
			return nil, errors.MissingImpl("runtime-func", d.Name)
		}
		slot := &Slot{name: d.Name, target: fn}
		s.slots[d.Name] = slot
		s.funcs[d.Name] = slot.Call
		rt.add(d.Name, slot)
	}

	// Platform exceptions, after the platform list and before the deferred
	// slots, mirroring the curated table layout.
	for _, ov := range overrides {
		if err := declare("override", ov.Name); err != nil {
			return nil, err
		}
		slot := &Slot{name: ov.Name, deferred: ov.Deferred}
		if !ov.Deferred {
			fn, ok := src.Func(ov.Name)
			if !ok {
				return nil, errors.MissingImpl("override", ov.Name)
			}
			slot.target = fn
		}
		s.slots[ov.Name] = slot
		s.funcs[ov.Name] = slot.Call
		rt.add(ov.RegistryName(), slot)
	}

	// Pre-declared slots with no implementation yet. Exported directly,
	// no initializer; population is the collaborator's responsibility.
	for _, d := range lists.RuntimeFuncAddrs.Entries() {
		mustCategory(d, symbol.RuntimeFuncAddrSlot)
		if err := declare("runtime-func-addr", d.Name); err != nil {
			return nil, err
		}
		slot := &Slot{name: d.Name, deferred: true}
		s.slots[d.Name] = slot
		rt.add(d.Name, slot)
	}
	rt.seal()
	s.runtime = rt

	// Codegen-exported functions: slot starts at the internal
	// implementation; the registry publishes the mangled name the code
	// generator emits under.
	cg := newRegistry(lists.CodegenFuncs.Len())
	for _, d := range lists.CodegenFuncs.Entries() {
		mustCategory(d, symbol.CodegenFunc)
		if err := declare("codegen-func", d.Name); err != nil {
			return nil, err
		}
		fn, ok := src.Func(d.Name)
		if !ok {
			return nil, errors.MissingImpl("codegen-func", d.Name)
		}
		slot := &Slot{name: d.Name, target: fn}
		s.slots[d.Name] = slot
		s.funcs[d.Name] = slot.Call
		cg.add(d.Name+ImplSuffix, slot)
	}
	cg.seal()
	s.codegen = cg

	// Stack-protection guard: pass through the host-supplied cell, or
	// define an internal fallback so the build keeps linking.
	if v, ok := src.Data(StackGuardName); ok {
		s.stackGuard = v
	} else {
		s.stackGuard = new(uint64)
		s.guardFallback = true
	}

	Logger().Debug("export surface built",
		zap.Int("runtime_entries", s.runtime.Len()),
		zap.Int("codegen_entries", s.codegen.Len()),
		zap.Int("data_pointers", len(s.ptrs)),
		zap.Int("data_symbols", len(s.data)),
		zap.Bool("windows", windows),
		zap.Bool("stack_guard_fallback", s.guardFallback),
	)

	return s, nil
}

// Func returns the exported function for a curated name, or nil if the
// name is not a runtime- or codegen-exported function.
func (s *Surface) Func(name string) exportbridge.Func {
	return s.funcs[name]
}

// DataPointer returns the exported opaque pointer for a curated name.
func (s *Surface) DataPointer(name string) (unsafe.Pointer, bool) {
	p, ok := s.ptrs[name]
	return p, ok
}

// Data returns the exported typed data cell for a curated name.
func (s *Surface) Data(name string) (any, bool) {
	v, ok := s.data[name]
	return v, ok
}

// Slot returns the indirection slot declared under a logical name.
// The slot address is stable for the surface's lifetime.
func (s *Surface) Slot(name string) *Slot {
	return s.slots[name]
}

// Runtime returns the runtime-exported function registry.
func (s *Surface) Runtime() *Registry {
	return s.runtime
}

// Codegen returns the codegen-exported function registry.
func (s *Surface) Codegen() *Registry {
	return s.codegen
}

// StackGuard returns the stack-protection guard cell and whether it is the
// internally defined fallback rather than a host-supplied symbol.
func (s *Surface) StackGuard() (any, bool) {
	return s.stackGuard, s.guardFallback
}

// mustCategory enforces the list/category contract. A descriptor in the
// wrong list is a programming error in the build description, not a
// recoverable condition.
func mustCategory(d symbol.Descriptor, want symbol.Category) {
	if d.Category != want {
		panic("export: descriptor " + d.Name + " declared as " + d.Category.String() +
			" inside the " + want.String() + " list")
	}
}

// cellTypeName reports the pointed-to type of a data cell. Data cells must
// be pointers so the address crosses the boundary.
func cellTypeName(v any) (string, bool) {
	rt := reflect.TypeOf(v)
	if rt == nil || rt.Kind() != reflect.Pointer {
		return "non-pointer", false
	}
	return rt.Elem().String(), true
}

// typeMatches compares a declared type against the implementation's,
// accepting the package-qualified spelling of the same name.
func typeMatches(declared, actual string) bool {
	if declared == "" || declared == actual {
		return true
	}
	return strings.HasSuffix(actual, "."+declared)
}
