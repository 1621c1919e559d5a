package webcompile

import (
	"os"
	"path"
	"path/filepath"

	. "github.com/tinywasm/fmt"
)

func (w *WebCompiler) Shortcuts() []map[string]string {
	return []map[string]string{
		{w.BuildJSShortcut: Translate(D.Mode, "JavaScript", w.JSCommand).String()},
		{w.BuildWasmShortcut: Translate(D.Mode, "Wasm", w.WasmCommand).String()},
		{w.BuildWasmDebugShortcut: Translate(D.Mode, "Wasm", "debug").String()},
	}
}

// Change switches the build preset and reports progress on the provided
// channel. It satisfies the devtui HandlerEdit contract; the channel is
// never closed here because the caller owns it.
func (w *WebCompiler) Change(newValue string, progress chan<- string) {
	newValue = Convert(newValue).ToUpper().String()

	if err := w.validatePreset(newValue); err != nil {
		progress <- err.Error()
		return
	}

	// Verify the external compiler behind the preset is installed before
	// switching to it
	w.verifyCompilerInstallationStatus(newValue)
	if !w.compilerInstalled {
		progress <- w.handleCompilerMissing(newValue).Error()
		return
	}

	// Replace the active configuration and builder. The configuration is
	// a fresh immutable value with the preset's defaults.
	w.compilerConfig = w.configForPreset(newValue)
	w.updateCurrentBuilder(newValue)

	// Save preset to store if available
	if w.Store != nil {
		w.Store.Set(StoreKeyCompileMode, newValue)
	}

	// No source file means nothing to compile; the preset switch alone
	// succeeds.
	sourceDir := path.Join(w.AppRootDir, w.Config.SourceDir)
	mainInputPath := path.Join(sourceDir, w.Config.MainInputFile)
	if _, err := os.Stat(mainInputPath); err != nil {
		progress <- w.successMessage(newValue)
		return
	}

	if err := w.RecompileMain(); err != nil {
		warningMsg := Translate("Warning:", "recompilation", "failed:", err).String()
		if warningMsg == "" {
			warningMsg = "Warning: recompilation failed: " + err.Error()
		}
		progress <- warningMsg
		return
	}

	// The loader names the artifact file, so it tracks the new target.
	if !w.Config.DisableLoaderJsOutput {
		w.writeOrReplaceLoaderJsOutput()
	}

	if w.OnLoaderChange != nil {
		w.OnLoaderChange()
	}

	progress <- w.successMessage(newValue)
}

// RecompileMain recompiles the main client source if it exists. When the
// stored build key matches the active configuration and the artifact is
// still on disk, the compile is skipped and the artifact reused.
func (w *WebCompiler) RecompileMain() error {
	if w.activeBuilder == nil {
		return Err("builder not initialized")
	}
	sourceDir := path.Join(w.AppRootDir, w.Config.SourceDir)
	mainInputPath := path.Join(sourceDir, w.Config.MainInputFile)

	if _, err := os.Stat(mainInputPath); err != nil {
		return Err("main client source not found:", mainInputPath)
	}

	if w.artifactUpToDate() {
		w.Logger("Build key unchanged, reusing", w.OutputRelativePath())
		return nil
	}

	storage := w.currentStorage()
	if storage == nil {
		return Err("storage not initialized")
	}
	if err := storage.Compile(); err != nil {
		return err
	}

	w.finishBuild("build")
	return nil
}

// artifactUpToDate reports whether the last persisted build key matches
// the active configuration and the on-disk artifact is still present.
// Only the disk backend can reuse artifacts; the in-memory backend keeps
// nothing between runs.
func (w *WebCompiler) artifactUpToDate() bool {
	if w.Store == nil {
		return false
	}
	if _, disk := w.currentStorage().(*diskStorage); !disk {
		return false
	}
	stored, err := w.Store.Get(w.buildKeyStoreKey())
	if err != nil || stored == "" {
		return false
	}
	if stored != w.compilerConfig.BuildKey() {
		return false
	}
	out := filepath.Join(w.AppRootDir, w.Config.OutputDir, w.artifactFileName())
	_, err = os.Stat(out)
	return err == nil
}

// buildKeyStoreKey returns the store entry name holding the last build
// key for the active target.
func (w *WebCompiler) buildKeyStoreKey() string {
	return StoreKeyBuildPrefix + string(w.compilerConfig.CompileTarget())
}

// finishBuild persists the build key, refreshes the build info file and
// reports the analytics values after a successful compile.
func (w *WebCompiler) finishBuild(event string) {
	if w.Store != nil {
		w.Store.Set(w.buildKeyStoreKey(), w.compilerConfig.BuildKey())
	}
	w.writeBuildInfo()
	if w.OnBuildEvent != nil {
		w.OnBuildEvent(event, w.compilerConfig.BuildEventAnalyticsValues())
	}
}

// RunJS switches to the JS preset using the lighter run configuration
// (only the null-assertion toggle and the renderer hint) and recompiles.
func (w *WebCompiler) RunJS(nativeNullAssertions bool, renderer RendererMode) error {
	w.verifyCompilerInstallationStatus(w.BuildJSShortcut)
	if !w.compilerInstalled {
		return w.handleCompilerMissing(w.BuildJSShortcut)
	}

	w.compilerConfig = NewJSRunConfig(nativeNullAssertions, renderer)
	w.updateCurrentBuilder(w.BuildJSShortcut)

	if w.Store != nil {
		w.Store.Set(StoreKeyCompileMode, w.BuildJSShortcut)
	}

	if w.activeBuilder == nil {
		return Err("builder not initialized")
	}
	if w.artifactUpToDate() {
		w.Logger("Build key unchanged, reusing", w.OutputRelativePath())
		return nil
	}
	storage := w.currentStorage()
	if storage == nil {
		return Err("storage not initialized")
	}
	if err := storage.Compile(); err != nil {
		return err
	}
	w.finishBuild("run")
	return nil
}

// validatePreset reports an error when the shortcut is not one of the
// configured presets.
func (w *WebCompiler) validatePreset(preset string) error {
	// Configured shortcuts are uppercase; normalize before comparing.
	preset = Convert(preset).ToUpper().String()

	validPresets := []string{
		Convert(w.Config.BuildJSShortcut).ToUpper().String(),
		Convert(w.Config.BuildWasmShortcut).ToUpper().String(),
		Convert(w.Config.BuildWasmDebugShortcut).ToUpper().String(),
	}

	for _, valid := range validPresets {
		if preset == valid {
			return nil
		}
	}

	return Err(D.Mode, ":", preset, D.Invalid, D.Valid, ":", validPresets)
}

// successMessage returns the appropriate success message for the preset
func (w *WebCompiler) successMessage(preset string) string {

	switch preset {
	case w.Config.BuildJSShortcut:
		return Translate(D.Changed, D.To, D.Mode, "JavaScript").String()
	case w.Config.BuildWasmShortcut:
		return Translate(D.Changed, D.To, D.Mode, "Wasm").String()
	case w.Config.BuildWasmDebugShortcut:
		return Translate(D.Changed, D.To, D.Mode, "Wasm", "debug").String()
	default:
		return Translate(D.Mode, ":", preset, D.Invalid).String()
	}

}

func (w *WebCompiler) GetLastOperationID() string   { return w.lastOpID }
func (w *WebCompiler) SetLastOperationID(id string) { w.lastOpID = id }
