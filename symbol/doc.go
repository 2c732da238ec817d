// Package symbol models the curated symbol lists the build description
// supplies: which names the public library exports, in which category, and
// on which platform.
//
// # Main Types
//
//   - Descriptor: one curated symbol (name, category, declared type, platform)
//   - List: an order-preserving enumeration of descriptors
//   - Lists: the full curated input, one List per category plus Windows extensions
//
// Lists are pure data, fixed at build time. Declaration order is
// load-bearing: the export surface's registries reproduce it verbatim.
//
// # List Files
//
// Parse reads the .syms format used by exportgen and symtool:
//
//	# gc entry points
//	[runtime-funcs]
//	vm_gc_collect
//	vm_gc_enable
//
//	[data-symbols]
//	vm_page_size uint64
package symbol
