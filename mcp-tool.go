package webcompile

// ToolExecutor runs one tool invocation, streaming progress messages to
// the host's channel.
type ToolExecutor func(args map[string]any, progress chan<- any)

// ToolMetadata describes one MCP tool so a host server can register it.
// The package stays free of any MCP server dependency; hosts bridge
// these records to whatever server implementation they run.
type ToolMetadata struct {
	Name        string
	Description string
	Parameters  []ParameterMetadata
	Execute     ToolExecutor
}

// ParameterMetadata describes one parameter of a tool's input schema.
type ParameterMetadata struct {
	Name        string
	Description string
	Required    bool
	Type        string
	EnumValues  []string
	Default     any
}

// GetMCPToolsMetadata returns metadata for all WebCompiler MCP tools
func (w *WebCompiler) GetMCPToolsMetadata() []ToolMetadata {
	return []ToolMetadata{
		{
			Name: "web_set_compile_mode",
			Description: "Change the build preset of the web client compiler. " +
				"J=JS bundle (" + w.JSCommand + "), " +
				"W=Wasm optimized (" + w.WasmCommand + ", wasm-opt full), " +
				"D=Wasm debug (" + w.WasmCommand + ", wasm-opt debug). " +
				"Use single letter shortcuts: J, W, or D.",
			Parameters: []ParameterMetadata{
				{
					Name:        "mode",
					Description: "Build preset: J (js), W (wasm), or D (wasm debug)",
					Required:    true,
					Type:        "string",
					EnumValues:  []string{"J", "W", "D"},
				},
			},
			Execute: func(args map[string]any, progress chan<- any) {
				modeValue, ok := args["mode"]
				if !ok {
					progress <- "missing required parameter 'mode'. Use J, W, or D"
					return
				}

				mode, ok := modeValue.(string)
				if !ok {
					progress <- "parameter 'mode' must be a string (J, W, or D)"
					return
				}

				// Change expects a string channel; bridge it to the
				// host's any channel.
				relay := make(chan string, 10)
				drained := make(chan bool)

				go func() {
					for msg := range relay {
						progress <- msg
					}
					drained <- true
				}()

				w.Change(mode, relay)
				close(relay)
				<-drained
			},
		},
		{
			Name: "web_build_key",
			Description: "Report the canonical build key of the active configuration. " +
				"Orchestrators compare this key against the one stored for the last " +
				"build to decide whether the artifact can be reused.",
			Parameters: []ParameterMetadata{},
			Execute: func(args map[string]any, progress chan<- any) {
				progress <- "target=" + string(w.compilerConfig.CompileTarget()) +
					" key=" + w.compilerConfig.BuildKey()
			},
		},
	}
}
