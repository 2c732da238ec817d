package main

import (
	"testing"

	exportbridge "github.com/wippyai/export-bridge"
	"github.com/wippyai/export-bridge/export"
	"github.com/wippyai/export-bridge/symbol"
)

func TestFallbackSourcePrefersPrimary(t *testing.T) {
	primaryCalls, stubCalls := 0, 0
	primary := exportbridge.MapSource{
		Funcs: map[string]exportbridge.Func{
			"vm_gc_collect": func() { primaryCalls++ },
		},
	}
	lists := symbol.Lists{
		RuntimeFuncs: symbol.NewList(symbol.Func("vm_gc_collect"), symbol.Func("vm_gc_enable")),
	}
	stub := stubSource(lists)
	stub.Funcs["vm_gc_collect"] = func() { stubCalls++ }
	stub.Funcs["vm_gc_enable"] = func() { stubCalls++ }

	src := fallbackSource{primary: primary, fallback: stub}

	s, err := export.Build(lists, src, export.Options{Platform: symbol.PlatformAny})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Supplied by the primary source, not the stub.
	s.Func("vm_gc_collect")()
	if primaryCalls != 1 || stubCalls != 0 {
		t.Errorf("calls = primary %d / stub %d, want 1/0", primaryCalls, stubCalls)
	}

	// Not in the primary source, so the stub covers it.
	s.Func("vm_gc_enable")()
	if stubCalls != 1 {
		t.Errorf("stub fallback not used: stub calls = %d", stubCalls)
	}
}

func TestStubSourceCoversAllCategories(t *testing.T) {
	lists := symbol.Lists{
		DataPointers: symbol.NewList(symbol.Ptr("vm_main_module")),
		DataSymbols:  symbol.NewList(symbol.Var("vm_page_size", "uint64")),
		RuntimeFuncs: symbol.NewList(symbol.Func("vm_gc_collect")),
		CodegenFuncs: symbol.NewList(symbol.Codegen("vm_box_int64")),
	}

	if _, err := export.Build(lists, stubSource(lists), export.Options{Platform: symbol.PlatformAny}); err != nil {
		t.Fatalf("stub source left a curated name unsatisfied: %v", err)
	}
}
