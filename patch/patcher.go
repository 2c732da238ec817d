package patch

import (
	"go.uber.org/zap"

	exportbridge "github.com/wippyai/export-bridge"
	"github.com/wippyai/export-bridge/errors"
	"github.com/wippyai/export-bridge/export"
)

// Patcher redirects indirection slots of a built surface by registry name.
// It is the runtime collaborator the registries exist for: no static
// linkage, just "symbol name to current address".
//
// The patcher performs plain writes. Per the boundary's contract a slot is
// redirected at most once, before any thread can call through it; ordering
// is the caller's responsibility.
type Patcher struct {
	surface *export.Surface
}

// New creates a patcher over a built surface.
func New(s *export.Surface) *Patcher {
	return &Patcher{surface: s}
}

// Redirect points a runtime-exported slot at a new target. The name is the
// runtime registry name, decorated form included for the platform
// exceptions.
func (p *Patcher) Redirect(name string, fn exportbridge.Func) error {
	slot, ok := p.surface.Runtime().Lookup(name)
	if !ok {
		return errors.NotFound(errors.PhasePatch, "runtime registry name", name)
	}
	slot.Redirect(fn)
	Logger().Debug("slot redirected", zap.String("name", name))
	return nil
}

// RedirectCodegen points a codegen-exported slot at a new target. The name
// is the mangled registry form, impl suffix included.
func (p *Patcher) RedirectCodegen(name string, fn exportbridge.Func) error {
	slot, ok := p.surface.Codegen().Lookup(name)
	if !ok {
		return errors.NotFound(errors.PhasePatch, "codegen registry name", name)
	}
	slot.Redirect(fn)
	Logger().Debug("codegen slot redirected", zap.String("name", name))
	return nil
}
