package export

import "github.com/wippyai/export-bridge/symbol"

// Override is an explicit exception to the generic export rule. The
// exception set is a visible table rather than inline special cases so it
// can be tested independently of the general mechanism.
type Override struct {
	// Name is the logical symbol name.
	Name string
	// Decorated is the registry name when platform calling-convention
	// decoration does not follow the generic rule. Empty means Name.
	Decorated string
	// Deferred leaves the slot unpopulated; the implementation source is
	// not consulted and a later collaborator supplies the target.
	Deferred bool
}

// RegistryName returns the name the override publishes in the registry.
func (o Override) RegistryName() string {
	if o.Decorated != "" {
		return o.Decorated
	}
	return o.Name
}

// PersonalityName is the exception-personality routine declared on Windows
// targets. Its decorated form is hard-coded: stdcall decoration for this one
// routine does not match the suffix rule used elsewhere.
const (
	PersonalityName      = "__vm_personality"
	PersonalityDecorated = "__vm_personality@16"
)

// StackGuardName is the stack-protection guard symbol. When the
// implementation source does not supply it, Build defines an internal
// fallback cell so the rest of the build keeps linking.
const StackGuardName = "__stack_chk_guard"

// overridesFor returns the override table for a target platform. Only
// Windows carries exceptions today.
func overridesFor(platform symbol.Platform) []Override {
	if platform != symbol.PlatformWindows {
		return nil
	}
	return []Override{
		{Name: PersonalityName, Decorated: PersonalityDecorated, Deferred: true},
	}
}
