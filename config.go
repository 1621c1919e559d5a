package webcompile

// Config holds the driver configuration shared by every build preset.
type Config struct {

	// AppRootDir specifies the application root directory (absolute).
	// e.g., "/home/user/project". If empty, defaults to ".".
	AppRootDir string

	// SourceDir specifies the directory containing the web client source
	// (relative to AppRootDir). e.g., "web"
	SourceDir string

	// OutputDir specifies the directory for compiled artifacts and
	// related assets (relative to AppRootDir). e.g., "web/public"
	OutputDir string

	// AssetsURLPrefix is an optional URL prefix/folder for serving the
	// compiled artifact.
	// e.g. "assets" -> serves at "/assets/client.js"
	// default: "" -> serves at "/client.js"
	AssetsURLPrefix string

	LoaderJsOutputDir string // output dir for the loader.js bootstrap (relative) eg: "web/js", "theme/js"
	MainInputFile     string // main client source file (default: "client.web")
	OutputName        string // output name for the artifact (default: "client")

	// JSCommand and WasmCommand name the external compiler executables
	// invoked per target. They must be reachable through PATH.
	JSCommand   string // default: "webjsc"
	WasmCommand string // default: "webwasmc"

	Logger func(message ...any)

	BuildJSShortcut        string // "J" compile to a JavaScript bundle
	BuildWasmShortcut      string // "W" compile to WebAssembly, wasm-opt full
	BuildWasmDebugShortcut string // "D" compile to WebAssembly, wasm-opt debug

	// gobuild integration fields
	Callback           func(error)     // Optional callback for async compilation
	CompilingArguments func() []string // Extra compiler arguments appended after the preset-derived ones

	// DisableLoaderJsOutput prevents automatic creation of the loader.js
	// bootstrap file. Useful when embedding the loader inline.
	DisableLoaderJsOutput bool

	// lastOpID tracks the last operation ID for progress reporting
	lastOpID string

	Store          Store  // Key-Value store for state persistence (preset + build keys)
	OnLoaderChange func() // Callback for loader.js changes

	// OnBuildEvent receives one call per completed build with the
	// normalized analytics view of the active configuration. Transport
	// stays with the caller.
	OnBuildEvent func(event string, values map[string]string)
}

// NewConfig creates a WebCompiler Config with sensible defaults
func NewConfig() *Config {
	return &Config{
		AppRootDir:             ".",
		SourceDir:              "web",
		OutputDir:              "web/public",
		LoaderJsOutputDir:      "web/js",
		MainInputFile:          "client.web",
		OutputName:             "client",
		JSCommand:              "webjsc",
		WasmCommand:            "webwasmc",
		BuildJSShortcut:        "J",
		BuildWasmShortcut:      "W",
		BuildWasmDebugShortcut: "D",
		Logger: func(message ...any) {
			// silent until the host injects a logger
		},
	}
}
