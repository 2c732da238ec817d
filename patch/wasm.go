package patch

import (
	"context"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	exportbridge "github.com/wippyai/export-bridge"
	"github.com/wippyai/export-bridge/errors"
)

// FromModule re-points every codegen-exported slot whose mangled registry
// name matches a function the module exports. Unmatched names are skipped:
// the code generator may emit implementations incrementally. Returns the
// registry names that were patched, in registry order.
func (p *Patcher) FromModule(ctx context.Context, mod api.Module) []string {
	var patched []string
	for _, e := range p.surface.Codegen().Entries() {
		fn := mod.ExportedFunction(e.Name)
		if fn == nil {
			continue
		}
		e.Slot.Redirect(wrapExport(ctx, fn))
		patched = append(patched, e.Name)
	}
	Logger().Debug("codegen slots patched from module",
		zap.String("module", mod.Name()),
		zap.Int("patched", len(patched)),
		zap.Int("total", p.surface.Codegen().Len()),
	)
	return patched
}

// BindAll is the strict variant of FromModule: every codegen registry name
// must resolve to a module export, or the patch fails without touching any
// slot.
func (p *Patcher) BindAll(ctx context.Context, mod api.Module) error {
	entries := p.surface.Codegen().Entries()

	var missing []string
	for _, e := range entries {
		if mod.ExportedFunction(e.Name) == nil {
			missing = append(missing, e.Name)
		}
	}
	if len(missing) > 0 {
		return errors.NewUnresolvedExportsError(missing)
	}

	for _, e := range entries {
		e.Slot.Redirect(wrapExport(ctx, mod.ExportedFunction(e.Name)))
	}
	return nil
}

// wrapExport erases a wasm export down to the boundary's zero-argument
// shape. A trap surfaces in the log; the boundary itself has no runtime
// error path.
func wrapExport(ctx context.Context, fn api.Function) exportbridge.Func {
	return func() {
		if _, err := fn.Call(ctx); err != nil {
			Logger().Error("patched slot target trapped",
				zap.String("export", fn.Definition().Name()),
				zap.Error(err),
			)
		}
	}
}

// ModuleSource adapts a wasm module's exports into an ImplSource, letting a
// surface be built directly over module-provided implementations. Only
// function symbols resolve; data lives on the host side of the boundary.
type ModuleSource struct {
	ctx context.Context
	mod api.Module
}

// NewModuleSource creates a source over a module. The context is captured
// for the calls made through the returned functions.
func NewModuleSource(ctx context.Context, mod api.Module) *ModuleSource {
	return &ModuleSource{ctx: ctx, mod: mod}
}

// Func implements exportbridge.ImplSource.
func (m *ModuleSource) Func(name string) (exportbridge.Func, bool) {
	fn := m.mod.ExportedFunction(name)
	if fn == nil {
		return nil, false
	}
	return wrapExport(m.ctx, fn), true
}

// DataPointer implements exportbridge.ImplSource. Always misses.
func (m *ModuleSource) DataPointer(string) (unsafe.Pointer, bool) {
	return nil, false
}

// Data implements exportbridge.ImplSource. Always misses.
func (m *ModuleSource) Data(string) (any, bool) {
	return nil, false
}
