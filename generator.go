package webcompile

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/tinywasm/devflow"
)

//go:embed templates/*
var embeddedFS embed.FS

// CreateDefaultClientFileIfNotExist scaffolds a starter client source
// file from the embedded markdown template and performs the initial
// disk compilation. An existing source file is never overwritten.
// Returns the WebCompiler for chaining.
func (w *WebCompiler) CreateDefaultClientFileIfNotExist() *WebCompiler {
	targetPath := filepath.Join(w.AppRootDir, w.Config.SourceDir, w.Config.MainInputFile)

	if _, err := os.Stat(targetPath); err == nil {
		w.Logger("Client source file already exists at", targetPath, ", skipping generation")
		w.webProject = true
	} else if err := w.extractClientTemplate(); err != nil {
		w.Logger("Error generating client source file:", err)
		return w
	} else {
		w.Logger("Generated client source file at", targetPath)
		w.webProject = true
	}

	if !w.Config.DisableLoaderJsOutput {
		w.writeOrReplaceLoaderJsOutput()
	}

	// Scaffolded projects compile to disk so the artifact survives
	// restarts.
	w.setStorage(&diskStorage{client: w})

	if err := w.RecompileMain(); err != nil {
		w.Logger("Initial compilation failed:", err)
	}

	return w
}

// extractClientTemplate pulls the starter source out of the embedded
// markdown template via devflow.
func (w *WebCompiler) extractClientTemplate() error {
	raw, err := embeddedFS.ReadFile("templates/basic_web_client.md")
	if err != nil {
		return err
	}

	writer := func(name string, data []byte) error {
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			return err
		}
		return os.WriteFile(name, data, 0o644)
	}

	destDir := filepath.Join(w.AppRootDir, w.Config.SourceDir)

	m := devflow.NewMarkDown(w.AppRootDir, destDir, writer).InputByte(raw)
	if w.Logger != nil {
		m.SetLog(w.Logger)
	}

	return m.Extract(w.Config.MainInputFile)
}
