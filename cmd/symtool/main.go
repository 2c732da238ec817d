// Command symtool inspects and exercises an export surface built from
// curated .syms lists: print the registries, call an exported function, or
// browse interactively. A wasm module may stand in for the code generator,
// patching codegen slots through the registry.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	exportbridge "github.com/wippyai/export-bridge"
	"github.com/wippyai/export-bridge/export"
	"github.com/wippyai/export-bridge/patch"
	"github.com/wippyai/export-bridge/symbol"
)

func main() {
	var (
		listFiles   = flag.String("lists", "", "Comma-separated .syms list files")
		implFile    = flag.String("impl", "", "Wasm module supplying codegen implementations")
		windows     = flag.Bool("windows", false, "Target the Windows symbol set")
		list        = flag.Bool("list", false, "Print both registries and exit")
		callName    = flag.String("call", "", "Call an exported function by name")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *listFiles == "" {
		fmt.Fprintln(os.Stderr, "Usage: symtool -lists <a.syms[,b.syms]> [-impl mod.wasm] [-windows] [-list | -call name | -i]")
		os.Exit(1)
	}

	if err := run(*listFiles, *implFile, *windows, *list, *callName, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(listFiles, implFile string, windows, list bool, callName string, interactive bool) error {
	ctx := context.Background()

	lists, err := symbol.ParseFiles(strings.Split(listFiles, ",")...)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	if windows {
		opts.Platform = symbol.PlatformWindows
	}

	// Stubs satisfy every curated name; with -impl the module's exports
	// take precedence and the stubs only cover what it doesn't provide.
	src := exportbridge.ImplSource(stubSource(lists))

	var mod api.Module
	if implFile != "" {
		data, err := os.ReadFile(implFile)
		if err != nil {
			return fmt.Errorf("read impl module: %w", err)
		}
		rt := wazero.NewRuntime(ctx)
		defer rt.Close(ctx)

		mod, err = rt.Instantiate(ctx, data)
		if err != nil {
			return fmt.Errorf("instantiate impl module: %w", err)
		}
		src = fallbackSource{primary: patch.NewModuleSource(ctx, mod), fallback: src}
	}

	surface, err := export.Build(lists, src, opts)
	if err != nil {
		return err
	}

	if mod != nil {
		patched := patch.New(surface).FromModule(ctx, mod)
		fmt.Printf("patched %d codegen slot(s) from %s\n", len(patched), implFile)
	}

	if interactive {
		return runInteractive(surface)
	}

	if list {
		printRegistry("runtime", surface.Runtime())
		printRegistry("codegen", surface.Codegen())
		return nil
	}

	if callName != "" {
		fn := surface.Func(callName)
		if fn == nil {
			return fmt.Errorf("no exported function %q", callName)
		}
		fn()
		return nil
	}

	fmt.Printf("surface: %d runtime entries, %d codegen entries\n",
		surface.Runtime().Len(), surface.Codegen().Len())
	return nil
}

func printRegistry(label string, reg *export.Registry) {
	fmt.Printf("[%s]\n", label)
	names, slots := reg.Names(), reg.Slots()
	for i := range names {
		if slots[i] == nil {
			fmt.Printf("  <nil>\t<nil>\n")
			continue
		}
		state := "populated"
		if slots[i].Target() == nil {
			state = "deferred"
		}
		fmt.Printf("  %s\t%p\t%s\n", names[i], slots[i], state)
	}
}

// fallbackSource resolves against the primary source first and falls back
// for anything it misses.
type fallbackSource struct {
	primary  exportbridge.ImplSource
	fallback exportbridge.ImplSource
}

// Func implements exportbridge.ImplSource.
func (s fallbackSource) Func(name string) (exportbridge.Func, bool) {
	if fn, ok := s.primary.Func(name); ok {
		return fn, true
	}
	return s.fallback.Func(name)
}

// DataPointer implements exportbridge.ImplSource.
func (s fallbackSource) DataPointer(name string) (unsafe.Pointer, bool) {
	if p, ok := s.primary.DataPointer(name); ok {
		return p, true
	}
	return s.fallback.DataPointer(name)
}

// Data implements exportbridge.ImplSource.
func (s fallbackSource) Data(name string) (any, bool) {
	if v, ok := s.primary.Data(name); ok {
		return v, true
	}
	return s.fallback.Data(name)
}

// stubSource satisfies every curated name with an inert implementation, so
// a surface can be inspected without the internal library present. Data
// symbols with declared types outside the scalar set still fail the build's
// type check; those lists need the real implementation library.
func stubSource(lists symbol.Lists) exportbridge.MapSource {
	src := exportbridge.MapSource{
		Funcs:    make(map[string]exportbridge.Func),
		Pointers: make(map[string]unsafe.Pointer),
		Values:   make(map[string]any),
	}

	stub := func(d symbol.Descriptor) {
		name := d.Name
		switch d.Category {
		case symbol.RuntimeFunc, symbol.CodegenFunc:
			src.Funcs[name] = func() { fmt.Printf("stub %s called\n", name) }
		case symbol.DataPointer:
			src.Pointers[name] = unsafe.Pointer(new(uint64))
		case symbol.DataSymbol:
			src.Values[name] = stubCell(d.Type)
		}
	}

	for _, l := range []symbol.List{
		lists.DataPointers, lists.DataPointersWindows,
		lists.DataSymbols, lists.DataSymbolsWindows,
		lists.RuntimeFuncs, lists.RuntimeFuncsWindows,
		lists.CodegenFuncs,
	} {
		for _, d := range l.Entries() {
			stub(d)
		}
	}
	return src
}

// stubCell fabricates a cell matching the declared types the stub source
// can represent; anything unrecognized falls back to uint64.
func stubCell(typ string) any {
	switch typ {
	case "uint32":
		return new(uint32)
	case "int32":
		return new(int32)
	case "int64":
		return new(int64)
	case "string":
		return new(string)
	default:
		return new(uint64)
	}
}
