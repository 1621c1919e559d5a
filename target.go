package webcompile

// CompileTarget identifies which artifact kind a compiler configuration
// produces. Each concrete configuration is bound to exactly one target.
type CompileTarget string

const (
	TargetJS   CompileTarget = "js"
	TargetWasm CompileTarget = "wasm"
)

func (t CompileTarget) String() string { return string(t) }

// Extension returns the artifact file extension for the target.
func (t CompileTarget) Extension() string {
	if t == TargetWasm {
		return ".wasm"
	}
	return ".js"
}

// ContentType returns the MIME type used when serving the artifact.
func (t CompileTarget) ContentType() string {
	if t == TargetWasm {
		return "application/wasm"
	}
	return "text/javascript"
}

// RendererMode selects the rendering backend hint carried by a compiler
// configuration. The configurations store it untouched; it never reaches
// compiler arguments, build keys or analytics values. Only the loader
// surfaces it to the page.
type RendererMode string

const (
	RendererAuto   RendererMode = "auto"
	RendererDOM    RendererMode = "dom"
	RendererCanvas RendererMode = "canvas"
)

// CompilerConfig is the contract every target configuration satisfies.
// Implementations are immutable value types: all methods are pure and
// total, and none of them touch the filesystem or the network.
type CompilerConfig interface {
	// CompileTarget returns the fixed target tag of the configuration.
	CompileTarget() CompileTarget

	// CommandOptions returns the ordered argument list handed to the
	// external compiler process for this configuration.
	CommandOptions() []string

	// BuildKey returns a canonical JSON identity for the configuration.
	// Two configurations produce the same key exactly when every field
	// that influences the artifact is equal. Orchestrators compare keys
	// to decide whether an existing artifact can be reused.
	BuildKey() string

	// BuildEventAnalyticsValues returns the normalized key/value view of
	// the configuration reported on build telemetry events.
	BuildEventAnalyticsValues() map[string]string
}

// baseBuildEventAnalyticsValues is the starting point every configuration
// layers its own entries on. The base contributes nothing.
func baseBuildEventAnalyticsValues() map[string]string {
	return map[string]string{}
}

// rendererOf extracts the renderer hint from a configuration without
// widening the CompilerConfig contract.
func rendererOf(c CompilerConfig) RendererMode {
	switch v := c.(type) {
	case JSCompilerConfig:
		return v.Renderer
	case WasmCompilerConfig:
		return v.Renderer
	}
	return RendererAuto
}
