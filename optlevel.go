package webcompile

import (
	. "github.com/tinywasm/fmt"
)

// WasmOptLevel selects how aggressively the post-link wasm-opt step runs
// over the produced module. The zero value is WasmOptFull.
type WasmOptLevel int

const (
	// WasmOptFull runs wasm-opt with full optimizations and strips the
	// name section from the output.
	WasmOptFull WasmOptLevel = iota

	// WasmOptDebug runs wasm-opt but keeps names and skips minification
	// so stack traces stay readable.
	WasmOptDebug

	// WasmOptNone skips optimization entirely.
	WasmOptNone
)

// String returns the stable lowercase token for the level. The token is
// used verbatim in build keys, analytics values and CLI surfaces.
func (l WasmOptLevel) String() string {
	switch l {
	case WasmOptFull:
		return "full"
	case WasmOptDebug:
		return "debug"
	case WasmOptNone:
		return "none"
	default:
		return "unknown"
	}
}

// HelpText returns the description shown next to the level on help
// surfaces.
func (l WasmOptLevel) HelpText() string {
	switch l {
	case WasmOptFull:
		return "Optimize the module fully and strip the name section"
	case WasmOptDebug:
		return "Optimize the module but keep names and skip minification"
	case WasmOptNone:
		return "Skip the wasm-opt step entirely"
	default:
		return "unknown wasm-opt level"
	}
}

// ParseWasmOptLevel resolves a name token back to its level. Unknown
// tokens report an error and return the default level.
func ParseWasmOptLevel(s string) (WasmOptLevel, error) {
	switch s {
	case "full":
		return WasmOptFull, nil
	case "debug":
		return WasmOptDebug, nil
	case "none":
		return WasmOptNone, nil
	}
	return WasmOptFull, Err(D.Invalid, "wasm-opt", D.Mode, ":", s)
}

// WasmOptLevels lists every level in declaration order, for help and
// enum surfaces.
func WasmOptLevels() []WasmOptLevel {
	return []WasmOptLevel{WasmOptFull, WasmOptDebug, WasmOptNone}
}
