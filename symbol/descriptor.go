package symbol

// Category partitions the curated symbol lists.
type Category int

const (
	// DataPointer is plain data exported as an opaque, untyped pointer.
	DataPointer Category = iota
	// DataSymbol is plain data exported under its declared type.
	DataSymbol
	// RuntimeFunc is a function routed through a hidden indirection slot
	// initialized to the internal implementation.
	RuntimeFunc
	// RuntimeFuncAddrSlot is a pre-declared, exported slot with no
	// implementation yet; an external collaborator populates it later.
	RuntimeFuncAddrSlot
	// CodegenFunc is a function whose implementation the code generator
	// emits under the name with an "_impl" suffix appended.
	CodegenFunc
)

// String returns the category's list-file section name.
func (c Category) String() string {
	switch c {
	case DataPointer:
		return "data-pointer"
	case DataSymbol:
		return "data-symbol"
	case RuntimeFunc:
		return "runtime-func"
	case RuntimeFuncAddrSlot:
		return "runtime-func-addr"
	case CodegenFunc:
		return "codegen-func"
	default:
		return "unknown"
	}
}

// Platform restricts a descriptor to a build target.
type Platform int

const (
	// PlatformAny marks a symbol present on every target.
	PlatformAny Platform = iota
	// PlatformWindows marks a symbol present only on Windows targets.
	PlatformWindows
)

// String returns the platform name.
func (p Platform) String() string {
	switch p {
	case PlatformAny:
		return "any"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Descriptor is one entry of a curated symbol list. Immutable once declared;
// the full set is fixed at build time.
type Descriptor struct {
	Name     string
	Type     string // declared type, data symbols only
	Category Category
	Platform Platform
}

// Ptr returns a DataPointer descriptor.
func Ptr(name string) Descriptor {
	return Descriptor{Name: name, Category: DataPointer}
}

// Var returns a DataSymbol descriptor with its declared type.
func Var(name, typ string) Descriptor {
	return Descriptor{Name: name, Type: typ, Category: DataSymbol}
}

// Func returns a RuntimeFunc descriptor.
func Func(name string) Descriptor {
	return Descriptor{Name: name, Category: RuntimeFunc}
}

// AddrSlot returns a RuntimeFuncAddrSlot descriptor.
func AddrSlot(name string) Descriptor {
	return Descriptor{Name: name, Category: RuntimeFuncAddrSlot}
}

// Codegen returns a CodegenFunc descriptor.
func Codegen(name string) Descriptor {
	return Descriptor{Name: name, Category: CodegenFunc}
}

// OnWindows returns a copy of the descriptor restricted to Windows targets.
func (d Descriptor) OnWindows() Descriptor {
	d.Platform = PlatformWindows
	return d
}
