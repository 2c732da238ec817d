//go:build windows

package export

import "github.com/wippyai/export-bridge/symbol"

// defaultPlatform selects the Windows symbol set at compile time.
const defaultPlatform = symbol.PlatformWindows
