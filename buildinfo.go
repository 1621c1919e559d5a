package webcompile

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// buildInfo is the metadata written next to the compiled artifact. Build
// tooling and deploy scripts read it to learn how the artifact was
// produced without re-deriving the configuration.
type buildInfo struct {
	Target         CompileTarget     `json:"target"`
	Preset         string            `json:"preset"`
	BuildKey       json.RawMessage   `json:"buildKey"`
	CommandOptions []string          `json:"commandOptions"`
	Renderer       RendererMode      `json:"renderer"`
	Analytics      map[string]string `json:"analytics"`
}

// BuildInfoPath returns the path of the build info file for the active
// target.
func (w *WebCompiler) BuildInfoPath() string {
	return filepath.Join(w.AppRootDir, w.Config.OutputDir, w.Config.OutputName+".buildinfo.json")
}

// writeBuildInfo refreshes the build info file after a compile. Errors
// are logged and treated as non-fatal: the artifact itself is already in
// place.
func (w *WebCompiler) writeBuildInfo() {
	info := buildInfo{
		Target:         w.compilerConfig.CompileTarget(),
		Preset:         w.currentPreset,
		BuildKey:       json.RawMessage(w.compilerConfig.BuildKey()),
		CommandOptions: w.compilerConfig.CommandOptions(),
		Renderer:       rendererOf(w.compilerConfig),
		Analytics:      w.compilerConfig.BuildEventAnalyticsValues(),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		w.Logger("Warning: marshaling build info:", err)
		return
	}

	infoPath := w.BuildInfoPath()
	if err := os.MkdirAll(filepath.Dir(infoPath), 0755); err != nil {
		w.Logger("Warning: creating build info directory:", err)
		return
	}

	if err := os.WriteFile(infoPath, data, 0644); err != nil {
		w.Logger("Warning: writing build info:", err)
		return
	}
}
