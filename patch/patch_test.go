package patch

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	exportbridge "github.com/wippyai/export-bridge"
	"github.com/wippyai/export-bridge/errors"
	"github.com/wippyai/export-bridge/export"
	"github.com/wippyai/export-bridge/symbol"
)

type calls struct {
	gc, box, unbox int
}

func buildSurface(t *testing.T) (*export.Surface, *calls) {
	t.Helper()

	c := &calls{}
	src := exportbridge.MapSource{
		Funcs: map[string]exportbridge.Func{
			"vm_gc_collect":  func() { c.gc++ },
			"vm_box_int64":   func() { c.box++ },
			"vm_unbox_int64": func() { c.unbox++ },
		},
	}
	lists := symbol.Lists{
		RuntimeFuncs: symbol.NewList(symbol.Func("vm_gc_collect")),
		CodegenFuncs: symbol.NewList(symbol.Codegen("vm_box_int64"), symbol.Codegen("vm_unbox_int64")),
	}

	s, err := export.Build(lists, src, export.Options{Platform: symbol.PlatformAny})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s, c
}

func TestRedirect(t *testing.T) {
	s, c := buildSurface(t)
	p := New(s)

	patched := 0
	if err := p.Redirect("vm_gc_collect", func() { patched++ }); err != nil {
		t.Fatalf("Redirect: %v", err)
	}

	s.Func("vm_gc_collect")()
	if patched != 1 || c.gc != 0 {
		t.Errorf("calls after redirect: patched=%d original=%d", patched, c.gc)
	}

	err := p.Redirect("vm_missing", func() {})
	if err == nil {
		t.Fatal("Redirect accepted an unknown name")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhasePatch, Kind: errors.KindNotFound}) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRedirectCodegen(t *testing.T) {
	s, c := buildSurface(t)
	p := New(s)

	patched := 0
	if err := p.RedirectCodegen("vm_box_int64"+export.ImplSuffix, func() { patched++ }); err != nil {
		t.Fatalf("RedirectCodegen: %v", err)
	}

	s.Func("vm_box_int64")()
	if patched != 1 || c.box != 0 {
		t.Errorf("calls after redirect: patched=%d original=%d", patched, c.box)
	}

	// Codegen slots resolve only under the mangled name.
	if err := p.RedirectCodegen("vm_box_int64", func() {}); err == nil {
		t.Error("RedirectCodegen accepted an unmangled name")
	}
}

// hostModule instantiates a host module exporting the given functions, the
// stand-in for a code generator's emitted implementations.
func hostModule(t *testing.T, ctx context.Context, funcs map[string]func(context.Context)) api.Module {
	t.Helper()

	// Host-module exports are only directly callable through the
	// interpreter engine; the compiler engines have no trampoline for them.
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	t.Cleanup(func() { r.Close(ctx) })

	b := r.NewHostModuleBuilder("codegen")
	for name, fn := range funcs {
		b = b.NewFunctionBuilder().WithFunc(fn).Export(name)
	}
	mod, err := b.Instantiate(ctx)
	if err != nil {
		t.Fatalf("instantiate host module: %v", err)
	}
	return mod
}

func TestFromModule(t *testing.T) {
	ctx := context.Background()
	s, c := buildSurface(t)

	boxed := 0
	mod := hostModule(t, ctx, map[string]func(context.Context){
		"vm_box_int64_impl": func(context.Context) { boxed++ },
	})

	patched := New(s).FromModule(ctx, mod)
	if len(patched) != 1 || patched[0] != "vm_box_int64_impl" {
		t.Fatalf("patched = %v", patched)
	}

	s.Func("vm_box_int64")()
	if boxed != 1 || c.box != 0 {
		t.Errorf("patched slot: module=%d original=%d", boxed, c.box)
	}

	// The unmatched slot keeps its internal implementation.
	s.Func("vm_unbox_int64")()
	if c.unbox != 1 {
		t.Error("unmatched slot lost its original target")
	}
}

func TestBindAllStrict(t *testing.T) {
	ctx := context.Background()
	s, c := buildSurface(t)
	p := New(s)

	partial := hostModule(t, ctx, map[string]func(context.Context){
		"vm_box_int64_impl": func(context.Context) {},
	})

	err := p.BindAll(ctx, partial)
	if err == nil {
		t.Fatal("BindAll succeeded with a missing export")
	}
	var unresolved *errors.UnresolvedExportsError
	if !stderrors.As(err, &unresolved) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if len(unresolved.Names) != 1 || unresolved.Names[0] != "vm_unbox_int64_impl" {
		t.Errorf("unresolved = %v", unresolved.Names)
	}

	// Failed strict bind must not have touched any slot.
	s.Func("vm_box_int64")()
	if c.box != 1 {
		t.Error("BindAll patched a slot despite failing")
	}
}

func TestBindAllComplete(t *testing.T) {
	ctx := context.Background()
	s, c := buildSurface(t)

	boxed, unboxed := 0, 0
	mod := hostModule(t, ctx, map[string]func(context.Context){
		"vm_box_int64_impl":   func(context.Context) { boxed++ },
		"vm_unbox_int64_impl": func(context.Context) { unboxed++ },
	})

	if err := New(s).BindAll(ctx, mod); err != nil {
		t.Fatalf("BindAll: %v", err)
	}

	s.Func("vm_box_int64")()
	s.Func("vm_unbox_int64")()
	if boxed != 1 || unboxed != 1 {
		t.Errorf("module calls = %d/%d, want 1/1", boxed, unboxed)
	}
	if c.box != 0 || c.unbox != 0 {
		t.Error("original impls still reachable after complete bind")
	}
}

func TestModuleSource(t *testing.T) {
	ctx := context.Background()

	collected := 0
	mod := hostModule(t, ctx, map[string]func(context.Context){
		"vm_gc_collect": func(context.Context) { collected++ },
	})

	src := NewModuleSource(ctx, mod)
	lists := symbol.Lists{
		RuntimeFuncs: symbol.NewList(symbol.Func("vm_gc_collect")),
	}

	s, err := export.Build(lists, src, export.Options{Platform: symbol.PlatformAny})
	if err != nil {
		t.Fatalf("Build over ModuleSource: %v", err)
	}
	s.Func("vm_gc_collect")()
	if collected != 1 {
		t.Error("surface func did not reach the module export")
	}

	if _, ok := src.Func("vm_absent"); ok {
		t.Error("ModuleSource resolved an absent export")
	}
	if _, ok := src.DataPointer("vm_main_module"); ok {
		t.Error("ModuleSource must not resolve data pointers")
	}
	if _, ok := src.Data("vm_page_size"); ok {
		t.Error("ModuleSource must not resolve data symbols")
	}
}
