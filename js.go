package webcompile

import "encoding/json"

// JSCompilerConfig holds the options of a JavaScript-emitting build.
// Instances are immutable values: constructors return copies and every
// method uses a value receiver.
type JSCompilerConfig struct {
	// CSP disables dynamic code generation in the emitted bundle so it
	// can run under a Content-Security-Policy without 'unsafe-eval'.
	CSP bool

	// DumpInfo asks the compiler to emit its diagnostic info dump
	// alongside the bundle.
	DumpInfo bool

	// NativeNullAssertions enables runtime null checks on values
	// crossing the native interop boundary.
	NativeNullAssertions bool

	// NoFrequencyBasedMinification disables the frequency-ranked
	// identifier minifier.
	NoFrequencyBasedMinification bool

	// OptimizationLevel is the tier token appended to the argument list
	// as "-<tier>", e.g. "O4". The value is passed through verbatim;
	// out-of-range tiers reach the compiler process unchanged and fail
	// there, not here.
	OptimizationLevel string

	// SourceMaps controls source map emission. Enabled by default;
	// disabling it adds --no-source-maps.
	SourceMaps bool

	// Renderer is an opaque rendering hint for the loader. It does not
	// participate in CommandOptions, BuildKey or analytics.
	Renderer RendererMode
}

// NewJSCompilerConfig returns the standalone defaults for a JS build.
func NewJSCompilerConfig() JSCompilerConfig {
	return JSCompilerConfig{
		OptimizationLevel: "O4",
		SourceMaps:        true,
		Renderer:          RendererAuto,
	}
}

// NewJSRunConfig returns the configuration used by the lighter "run"
// workflow, which only exposes the null-assertion toggle and the
// renderer hint. Every other field keeps its standalone default.
func NewJSRunConfig(nativeNullAssertions bool, renderer RendererMode) JSCompilerConfig {
	c := NewJSCompilerConfig()
	c.NativeNullAssertions = nativeNullAssertions
	if renderer != "" {
		c.Renderer = renderer
	}
	return c
}

func (c JSCompilerConfig) CompileTarget() CompileTarget { return TargetJS }

// SharedCommandOptions returns the arguments common to every JS
// compilation workflow, in fixed order: the null-assertion flag, then
// the source-map suppression flag.
func (c JSCompilerConfig) SharedCommandOptions() []string {
	var args []string
	if c.NativeNullAssertions {
		args = append(args, "--native-null-assertions")
	}
	if !c.SourceMaps {
		args = append(args, "--no-source-maps")
	}
	return args
}

// CommandOptions returns the full compile argument list: the shared
// options, the optimization tier, then the dump-info, minification and
// CSP flags. The order is part of the contract.
func (c JSCompilerConfig) CommandOptions() []string {
	args := c.SharedCommandOptions()
	args = append(args, "-"+c.OptimizationLevel)
	if c.DumpInfo {
		args = append(args, "--dump-info")
	}
	if c.NoFrequencyBasedMinification {
		args = append(args, "--no-frequency-based-minification")
	}
	if c.CSP {
		args = append(args, "--csp")
	}
	return args
}

// BuildKey returns the canonical JSON identity of the configuration.
// Field order is fixed by the struct below; Renderer is excluded since
// it never changes the artifact.
func (c JSCompilerConfig) BuildKey() string {
	key := struct {
		CSP                          bool   `json:"csp"`
		DumpInfo                     bool   `json:"dumpInfo"`
		NativeNullAssertions         bool   `json:"nativeNullAssertions"`
		NoFrequencyBasedMinification bool   `json:"noFrequencyBasedMinification"`
		OptimizationLevel            string `json:"optimizationLevel"`
		SourceMaps                   bool   `json:"sourceMaps"`
	}{
		CSP:                          c.CSP,
		DumpInfo:                     c.DumpInfo,
		NativeNullAssertions:         c.NativeNullAssertions,
		NoFrequencyBasedMinification: c.NoFrequencyBasedMinification,
		OptimizationLevel:            c.OptimizationLevel,
		SourceMaps:                   c.SourceMaps,
	}
	data, _ := json.Marshal(key)
	return string(data)
}

// BuildEventAnalyticsValues returns the base analytics view unchanged;
// JS builds contribute no extra entries.
func (c JSCompilerConfig) BuildEventAnalyticsValues() map[string]string {
	return baseBuildEventAnalyticsValues()
}
