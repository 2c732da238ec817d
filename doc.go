// Package exportbridge maintains a stable symbol boundary between an
// internal implementation library and the public surface consumers see.
//
// A curated set of symbol names is turned into a public export surface:
// data symbols keep the address the internal library supplied, functions
// are routed through mutable indirection slots, and two null-terminated
// name/address registries let a runtime patcher redirect any slot by name
// without relinking.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	exportbridge/        Root package with the ImplSource contract
//	├── symbol/          Curated symbol lists: descriptors, categories, list files
//	├── export/          Surface builder: declarations, slots, registries, platform adapter
//	├── patch/           Runtime patcher; wazero-backed implementation source
//	├── errors/          Structured error types for build and patch failures
//	└── cmd/             exportgen (list-to-code generator) and symtool (inspector)
//
// # Quick Start
//
// Build a surface from curated lists and an implementation source:
//
//	src := exportbridge.MapSource{Funcs: impls}
//	surface, err := export.Build(lists, src, export.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	surface.Func("vm_gc_collect")()        // calls through the slot
//	reg := surface.Runtime()               // name/address registry
//
// A patcher redirects slots after the fact:
//
//	p := patch.New(surface)
//	p.Redirect("vm_gc_collect", fasterCollect)
package exportbridge
