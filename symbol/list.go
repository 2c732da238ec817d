package symbol

// List is an order-preserving curated symbol list. Registry entry order
// follows declaration order verbatim, so List never sorts or deduplicates.
type List struct {
	entries []Descriptor
}

// NewList creates a list from descriptors in declaration order.
func NewList(entries ...Descriptor) List {
	return List{entries: append([]Descriptor(nil), entries...)}
}

// Len returns the number of entries.
func (l List) Len() int {
	return len(l.entries)
}

// At returns the i-th descriptor in declaration order.
func (l List) At(i int) Descriptor {
	return l.entries[i]
}

// Entries returns a copy of the entries in declaration order.
func (l List) Entries() []Descriptor {
	return append([]Descriptor(nil), l.entries...)
}

// Append adds a descriptor at the end of the list.
func (l *List) Append(d Descriptor) {
	l.entries = append(l.entries, d)
}

// Concat returns a new list with other's entries appended after l's,
// both in their original order.
func (l List) Concat(other List) List {
	out := List{entries: make([]Descriptor, 0, len(l.entries)+len(other.entries))}
	out.entries = append(out.entries, l.entries...)
	out.entries = append(out.entries, other.entries...)
	return out
}

// Lists holds the full curated input: one list per category plus the
// Windows-only extension lists. The extension lists are concatenated after
// the primary list by the platform adapter, never interleaved.
//
// RuntimeFuncAddrs and CodegenFuncs carry no Windows variant, matching the
// build description's input contract.
type Lists struct {
	DataPointers        List
	DataPointersWindows List
	DataSymbols         List
	DataSymbolsWindows  List
	RuntimeFuncs        List
	RuntimeFuncsWindows List
	RuntimeFuncAddrs    List
	CodegenFuncs        List
}

// Merge appends other's entries to each of l's lists, preserving order
// within both operands. Used when the curated input spans several files.
func (l Lists) Merge(other Lists) Lists {
	return Lists{
		DataPointers:        l.DataPointers.Concat(other.DataPointers),
		DataPointersWindows: l.DataPointersWindows.Concat(other.DataPointersWindows),
		DataSymbols:         l.DataSymbols.Concat(other.DataSymbols),
		DataSymbolsWindows:  l.DataSymbolsWindows.Concat(other.DataSymbolsWindows),
		RuntimeFuncs:        l.RuntimeFuncs.Concat(other.RuntimeFuncs),
		RuntimeFuncsWindows: l.RuntimeFuncsWindows.Concat(other.RuntimeFuncsWindows),
		RuntimeFuncAddrs:    l.RuntimeFuncAddrs.Concat(other.RuntimeFuncAddrs),
		CodegenFuncs:        l.CodegenFuncs.Concat(other.CodegenFuncs),
	}
}

// Total returns the entry count across all lists.
func (l Lists) Total() int {
	return l.DataPointers.Len() + l.DataPointersWindows.Len() +
		l.DataSymbols.Len() + l.DataSymbolsWindows.Len() +
		l.RuntimeFuncs.Len() + l.RuntimeFuncsWindows.Len() +
		l.RuntimeFuncAddrs.Len() + l.CodegenFuncs.Len()
}
