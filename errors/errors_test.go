package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseBuild,
				Kind:     KindMissingImpl,
				Symbol:   "vm_gc_collect",
				Category: "runtime-func",
				Detail:   "no implementation supplied",
			},
			contains: []string{"[build]", "missing_impl", `"vm_gc_collect"`, "runtime-func", "no implementation supplied"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLookup,
				Kind:  KindNotFound,
			},
			contains: []string{"[lookup]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Detail: "bad section header",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "invalid_data", "bad section header", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, missing %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	a := MissingImpl("runtime-func", "vm_gc_collect")
	b := MissingImpl("codegen-func", "vm_box_int64")
	c := TypeMismatch("vm_page_size", "uint64", "uint32")

	if !errors.Is(a, b) {
		t.Error("errors with same phase/kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different kind should not match")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("io failure")
	err := ParseFailed("read list file", cause)

	if !errors.Is(err, cause) {
		t.Error("Unwrap chain should reach the cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseBuild, KindDuplicateSymbol).
		Symbol("vm_throw").
		Category("runtime-func").
		Detail("declared in list %d", 2).
		Build()

	if err.Symbol != "vm_throw" {
		t.Errorf("Symbol = %q, want %q", err.Symbol, "vm_throw")
	}
	if err.Detail != "declared in list 2" {
		t.Errorf("Detail = %q, want formatted message", err.Detail)
	}
	if err.Phase != PhaseBuild || err.Kind != KindDuplicateSymbol {
		t.Errorf("Phase/Kind = %v/%v", err.Phase, err.Kind)
	}
}

func TestUnresolvedExportsError(t *testing.T) {
	err := NewUnresolvedExportsError([]string{"vm_box_int64_impl", "vm_unbox_int64_impl"})

	msg := err.Error()
	for _, s := range []string{"missing 2", "vm_box_int64_impl", "vm_unbox_int64_impl"} {
		if !strings.Contains(msg, s) {
			t.Errorf("Error() = %q, missing %q", msg, s)
		}
	}

	if !errors.Is(err, &UnresolvedExportsError{}) {
		t.Error("Is should match any UnresolvedExportsError")
	}
}
