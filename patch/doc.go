// Package patch redirects indirection slots of a built export surface.
//
// # Main Types
//
//   - Patcher: name-based slot redirection over both registries
//   - ModuleSource: wasm module exports as an implementation source
//
// The registries exist precisely for this package's consumers: a code
// generator that emits implementations under mangled names and re-points
// the slots at them, or an introspector resolving "name to current
// address" without static linkage.
//
// # Synchronization
//
// A slot is redirected at most once, before any thread calls through it.
// The patcher does plain writes and leaves that ordering to the caller,
// typically by completing all patching before the surface is handed out.
package patch
