package webcompile

import (
	"encoding/json"
	"strconv"
)

// WasmCompilerConfig holds the options of a WebAssembly-emitting build.
// Instances are immutable values, like JSCompilerConfig.
type WasmCompilerConfig struct {
	// OmitTypeChecks compiles without runtime type checks, which lifts
	// the base optimization tier from -O2 to -O4.
	OmitTypeChecks bool

	// WasmOpt selects the post-link wasm-opt treatment. Defaults to
	// WasmOptFull.
	WasmOpt WasmOptLevel

	// Renderer is the same opaque loader hint carried by JS builds.
	Renderer RendererMode
}

// NewWasmCompilerConfig returns the standalone defaults for a Wasm build.
func NewWasmCompilerConfig() WasmCompilerConfig {
	return WasmCompilerConfig{
		WasmOpt:  WasmOptFull,
		Renderer: RendererAuto,
	}
}

func (c WasmCompilerConfig) CompileTarget() CompileTarget { return TargetWasm }

// CommandOptions returns the compile argument list. The base tier is
// -O2, or -O4 when type checks are omitted. WasmOptNone discards the
// tier and compiles at -O0: no optimization always wins over the tier
// implied by the type-check toggle.
func (c WasmCompilerConfig) CommandOptions() []string {
	tier := "-O2"
	if c.OmitTypeChecks {
		tier = "-O4"
	}
	switch c.WasmOpt {
	case WasmOptNone:
		return []string{"-O0"}
	case WasmOptDebug:
		return []string{tier, "--no-minify"}
	default:
		return []string{tier, "--no-name-section"}
	}
}

// BuildKey returns the canonical JSON identity of the configuration.
// WasmOpt is serialized by its name token; Renderer is excluded. The
// field set shares no names with the JS key, so keys never collide
// across targets.
func (c WasmCompilerConfig) BuildKey() string {
	key := struct {
		OmitTypeChecks bool   `json:"omitTypeChecks"`
		WasmOpt        string `json:"wasmOpt"`
	}{
		OmitTypeChecks: c.OmitTypeChecks,
		WasmOpt:        c.WasmOpt.String(),
	}
	data, _ := json.Marshal(key)
	return string(data)
}

// BuildEventAnalyticsValues layers the Wasm-specific entries on the
// base view.
func (c WasmCompilerConfig) BuildEventAnalyticsValues() map[string]string {
	values := baseBuildEventAnalyticsValues()
	values["WasmOmitTypeChecks"] = strconv.FormatBool(c.OmitTypeChecks)
	values["RunWasmOpt"] = c.WasmOpt.String()
	return values
}
