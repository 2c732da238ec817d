package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // curated list parsing
	PhaseBuild    Phase = "build"    // surface construction
	PhasePatch    Phase = "patch"    // slot redirection
	PhaseLookup   Phase = "lookup"   // registry resolution
	PhaseGenerate Phase = "generate" // list-to-code generation
)

// Kind categorizes the error
type Kind string

const (
	KindMissingImpl     Kind = "missing_impl"
	KindTypeMismatch    Kind = "type_mismatch"
	KindDuplicateSymbol Kind = "duplicate_symbol"
	KindNotFound        Kind = "not_found"
	KindInvalidData     Kind = "invalid_data"
	KindUnsupported     Kind = "unsupported"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Symbol   string
	Category string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(": symbol ")
		fmt.Fprintf(&b, "%q", e.Symbol)
		if e.Category != "" {
			b.WriteString(" (")
			b.WriteString(e.Category)
			b.WriteByte(')')
		}
	}

	if e.Detail != "" {
		if e.Symbol != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Symbol sets the offending symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Category sets the symbol's category name
func (b *Builder) Category(c string) *Builder {
	b.err.Category = c
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingImpl reports a curated name with no matching implementation symbol.
// The build must fail on it; a surface is never produced with a silently
// null slot.
func MissingImpl(category, name string) *Error {
	return &Error{
		Phase:    PhaseBuild,
		Kind:     KindMissingImpl,
		Symbol:   name,
		Category: category,
		Detail:   "no implementation supplied for curated symbol",
	}
}

// TypeMismatch reports a declared/actual type disagreement for a data symbol
func TypeMismatch(name, declared, actual string) *Error {
	return &Error{
		Phase:    PhaseBuild,
		Kind:     KindTypeMismatch,
		Symbol:   name,
		Category: "data-symbol",
		Detail:   fmt.Sprintf("declared type %s, implementation supplied %s", declared, actual),
	}
}

// DuplicateSymbol reports a name declared more than once across the curated lists
func DuplicateSymbol(category, name string) *Error {
	return &Error{
		Phase:    PhaseBuild,
		Kind:     KindDuplicateSymbol,
		Symbol:   name,
		Category: category,
		Detail:   "symbol already declared",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Symbol: name,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// ParseFailed creates a list-file parsing error
func ParseFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// UnresolvedExportsError is returned when strict patching fails because the
// implementation module does not export every registry name
type UnresolvedExportsError struct {
	Names []string
}

// NewUnresolvedExportsError creates an error from the list of unmatched
// mangled registry names
func NewUnresolvedExportsError(names []string) *UnresolvedExportsError {
	return &UnresolvedExportsError{Names: names}
}

func (e *UnresolvedExportsError) Error() string {
	if len(e.Names) == 0 {
		return "[patch] not_found: no unresolved names specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("missing %d implementation export(s):\n", len(e.Names)))
	for _, name := range e.Names {
		b.WriteString("  - ")
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *UnresolvedExportsError) Is(target error) bool {
	_, ok := target.(*UnresolvedExportsError)
	return ok
}
