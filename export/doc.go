// Package export builds the public symbol surface from the curated lists.
//
// # Main Types
//
//   - Surface: the built boundary of exported functions, data cells, and slots
//   - Slot: one mutable indirection slot with a stable address
//   - Registry: sentinel-terminated parallel name/address tables
//   - Options: platform selection for the build
//
// # Initialization
//
// Build is the single initialization point, run once at process or library
// startup. There are no package-level side effects; two Build calls produce
// two independent surfaces.
//
// # Thread Safety
//
// A built Surface and its registries are read-only and safe for concurrent
// reads. Slot.Redirect is the one external write; the patcher performing it
// must order the write before any call through the slot.
//
// # Platform Exceptions
//
// The Windows symbol set is appended after the primary lists, never
// interleaved. The two irregular cases (the exception-personality routine
// with its hard-coded decorated name, and the stack-protection guard
// fallback) live in an explicit override table (see Override) rather than
// inside the general mechanism.
package export
