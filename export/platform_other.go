//go:build !windows

package export

import "github.com/wippyai/export-bridge/symbol"

// defaultPlatform excludes the Windows symbol set at compile time.
const defaultPlatform = symbol.PlatformAny
