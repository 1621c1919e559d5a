package webcompile

import (
	"path/filepath"

	. "github.com/tinywasm/fmt"
)

// sourceExtension returns the watched client source extension, derived
// from the configured main input file (e.g. ".web").
func (w *WebCompiler) sourceExtension() string {
	return filepath.Ext(w.Config.MainInputFile)
}

func (w *WebCompiler) SupportedExtensions() []string {
	return []string{w.sourceExtension()}
}

// NewFileEvent reacts to one watcher notification. Write and create
// events on client sources recompile through the active storage;
// everything else is ignored.
func (w *WebCompiler) NewFileEvent(fileName, extension, filePath, event string) error {
	const e = "NewFileEvent WebCompiler"

	if filePath == "" {
		return Err(e, "file path is empty")
	}

	w.Logger(event, extension, filePath)

	if extension != w.sourceExtension() {
		return nil
	}

	if event != "write" && event != "create" {
		return nil
	}

	// The watcher already routed this file to us, so the source changed
	// and the artifact is stale regardless of the stored build key.
	storage := w.currentStorage()
	if storage == nil {
		return Err("storage not initialized")
	}

	w.Logger("Compiling client due to", filePath, "change...")

	if err := storage.Compile(); err != nil {
		return Err("compiling web client error: ", err)
	}

	w.Logger("✓ client compilation successful")

	w.finishBuild("build")

	if w.OnLoaderChange != nil {
		w.OnLoaderChange()
	}

	return nil
}

// ShouldRecompile reports whether a change to the named file makes the
// artifact stale. The main input and any client source qualify.
func (w *WebCompiler) ShouldRecompile(fileName, filePath string) bool {
	if fileName == w.Config.MainInputFile {
		return true
	}
	return HasSuffix(fileName, w.sourceExtension())
}

// MainInputFileRelativePath returns the relative path to the main client source (e.g. "web/client.web").
func (w *WebCompiler) MainInputFileRelativePath() string {
	return PathJoin(w.Config.SourceDir, w.Config.MainInputFile).String()
}

// MainOutputFileAbsolutePath returns the absolute path to the compiled artifact (e.g. "web/public/client.js").
func (w *WebCompiler) MainOutputFileAbsolutePath() string {
	// The artifact is created in OutputDir which is:
	// AppRootDir/OutputDir/{OutputName}{.js|.wasm}
	return PathJoin(w.AppRootDir, w.Config.OutputDir, w.artifactFileName()).String()
}

// UnobservedFiles returns files that should not be watched for changes e.g: client.wasm
func (w *WebCompiler) UnobservedFiles() []string {
	return w.activeBuilder.UnobservedFiles()
}
