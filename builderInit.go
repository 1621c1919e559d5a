package webcompile

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinywasm/gobuild"
)

// builderInit configures one builder per artifact target. Both builders
// read their arguments from the active configuration at compile time, so
// preset switches never require rebuilding them.
func (w *WebCompiler) builderInit() {
	sourceDir := path.Join(w.AppRootDir, w.Config.SourceDir)
	outputDir := path.Join(w.AppRootDir, w.Config.OutputDir)
	mainInputFileRelativePath := path.Join(sourceDir, w.Config.MainInputFile)

	// Base configuration shared by both builders
	baseConfig := gobuild.Config{
		MainInputFileRelativePath: mainInputFileRelativePath,
		OutName:                   w.Config.OutputName,
		OutFolderRelativePath:     outputDir,
		Logger:                    w.Logger,
		Timeout:                   60 * time.Second,
		Callback:                  w.Callback,
		CompilingArguments: func() []string {
			return w.ActiveCommandOptions()
		},
	}

	jsConfig := baseConfig
	jsConfig.Command = w.Config.JSCommand
	jsConfig.Extension = ".js"
	w.builderJS = gobuild.New(&jsConfig)

	wasmConfig := baseConfig
	wasmConfig.Command = w.Config.WasmCommand
	wasmConfig.Extension = ".wasm"
	w.builderWasm = gobuild.New(&wasmConfig)

	// Default to the JS builder until a preset is applied
	w.activeBuilder = w.builderJS
}

// updateCurrentBuilder swaps the active builder to the preset's target,
// cancelling whatever the previous builder had in flight.
func (w *WebCompiler) updateCurrentBuilder(preset string) {
	if w.activeBuilder != nil {
		w.activeBuilder.Cancel()
	}

	w.currentPreset = preset

	switch w.targetForPreset(preset) {
	case TargetWasm:
		w.activeBuilder = w.builderWasm
	default:
		w.activeBuilder = w.builderJS
	}
}

// OutputRelativePath returns the artifact path relative to AppRootDir,
// e.g. "web/public/client.wasm", always with forward slashes. File
// watchers use it to exclude the compiler output from observation.
func (w *WebCompiler) OutputRelativePath() string {
	fullPath := w.activeBuilder.FinalOutputPath()

	// FinalOutputPath is absolute; strip the root prefix and any leading
	// separator left behind.
	if strings.HasPrefix(fullPath, w.Config.AppRootDir) {
		relPath := strings.TrimPrefix(fullPath, w.Config.AppRootDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		relPath = strings.TrimPrefix(relPath, "/")
		relPath = strings.TrimPrefix(relPath, "\\")
		return strings.ReplaceAll(relPath, "\\", "/")
	}

	// Config paths are already relative, reassemble from them.
	result := filepath.Join(w.Config.OutputDir, w.artifactFileName())
	return strings.ReplaceAll(result, "\\", "/")
}
