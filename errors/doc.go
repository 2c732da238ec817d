// Package errors provides structured error types for the export-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending symbol name, its curated
// category, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBuild, errors.KindMissingImpl).
//		Symbol("vm_gc_collect").
//		Category("runtime-func").
//		Detail("no implementation supplied").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingImpl("runtime-func", "vm_gc_collect")
//	err := errors.TypeMismatch("vm_page_size", "uint64", "uint32")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
