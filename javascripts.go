package webcompile

import (
	_ "embed"
	"os"
	"path"
	"path/filepath"
	"strings"

	. "github.com/tinywasm/fmt"
)

//go:embed assets/loader_js.js
var embeddedLoaderJS []byte

//go:embed assets/loader_wasm.js
var embeddedLoaderWasm []byte

// LoaderJsOutputPath returns the output path for the loader.js bootstrap
func (w *WebCompiler) LoaderJsOutputPath() string {
	return path.Join(w.AppRootDir, w.LoaderJsOutputDir, "loader.js")
}

// loaderContent returns the raw bootstrap content for the given target.
// The content comes from embedded assets without headers or caching;
// composition belongs to GetClientInitJS.
func (w *WebCompiler) loaderContent(target CompileTarget) ([]byte, error) {
	if !w.webProject {
		return nil, Errf("not a web client project")
	}

	if target == TargetWasm {
		return embeddedLoaderWasm, nil
	}
	return embeddedLoaderJS, nil
}

// GetClientInitJS returns the JavaScript bootstrap that loads and starts the
// compiled client in the page. Optional customizations replace the default
// framing: the first string overrides the header (a comment carrying the
// renderer hint), the second overrides the footer (a webcompile.load call
// naming the artifact file).
func (w *WebCompiler) GetClientInitJS(customizations ...string) (js string, err error) {
	preset := w.Value()
	if !w.webProject {
		return "", nil // Not a web client project
	}

	target := w.targetForPreset(preset)
	loaderJs, err := w.loaderContent(target)
	if err != nil {
		return "", err
	}

	stringLoaderJs := string(loaderJs)

	var header string
	if len(customizations) > 0 {
		header = customizations[0]
	} else {
		header = "// webcompile renderer=" + string(rendererOf(w.compilerConfig)) + "\n"
	}

	stringLoaderJs = header + stringLoaderJs

	if w.activeBuilder == nil {
		return "", Errf("activeBuilder not initialized")
	}

	var footer string
	if len(customizations) > 1 {
		footer = customizations[1]
	} else {
		footer = `
webcompile.load("` + w.activeBuilder.MainOutputFileNameWithExtension() + `");
`
	}
	stringLoaderJs += footer

	// Cached and regenerated loaders must compare equal byte for byte.
	normalized := normalizeJs(stringLoaderJs)

	w.loaderJsCache[preset] = normalized

	return normalized, nil
}

// normalizeJs rewrites line endings to LF and strips trailing spaces and tabs
// from every line, so a cached loader compares equal to a regenerated one.
func normalizeJs(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

// ClearJavaScriptCache drops the cached loader strings so the next
// GetClientInitJS call regenerates them.
func (w *WebCompiler) ClearJavaScriptCache() {
	w.loaderJsCache = make(map[string]string)
}

// writeOrReplaceLoaderJsOutput writes (or overwrites) the loader.js
// bootstrap into the configured output folder. Filesystem or generation
// errors are logged via w.Logger and treated as non-fatal so callers can
// continue their workflow.
func (w *WebCompiler) writeOrReplaceLoaderJsOutput() {
	outputPath := w.LoaderJsOutputPath()

	// LoaderJsOutputDir may not exist yet on a fresh checkout.
	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		w.Logger("Failed to create loader output directory:", err)
		return
	}

	jsContent, err := w.GetClientInitJS()
	if err != nil {
		w.Logger("Failed to generate loader bootstrap code:", err)
		return
	}

	if err := os.WriteFile(outputPath, []byte(jsContent), 0644); err != nil {
		w.Logger("Failed to write loader bootstrap file:", err)
		return
	}
}
