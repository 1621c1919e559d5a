package webcompile

import (
	"os"
	"path/filepath"
	"sync"

	. "github.com/tinywasm/fmt"
	"github.com/tinywasm/gobuild"
)

// WebCompiler drives the external web compilers behind the three build
// presets: JS bundle, Wasm optimized and Wasm debug.
type WebCompiler struct {
	*Config

	// One builder per artifact target; presets sharing a target share
	// the builder and differ only in the active configuration.
	builderJS     *gobuild.GoBuild
	builderWasm   *gobuild.GoBuild
	activeBuilder *gobuild.GoBuild

	// compilerConfig is the immutable configuration value behind the
	// active preset. Preset switches replace it, never mutate it.
	compilerConfig CompilerConfig

	currentPreset string // active preset shortcut ("J", "W", "D")

	webProject        bool // Automatically detected based on file structure
	compilerInstalled bool // Cached installation status of the active compiler

	loaderJsCache map[string]string // generated loader.js content per preset

	storage   BuildStorage // compilation and serving backend (In-Memory vs Disk)
	storageMu sync.RWMutex
}

// New creates a new WebCompiler instance with the provided configuration.
// Zero-value fields are filled from NewConfig defaults, so a partial
// config is enough.
func New(c *Config) *WebCompiler {
	if c == nil {
		c = NewConfig()
	}
	if c.AppRootDir == "" {
		c.AppRootDir = "."
	}

	if c.Logger == nil {
		c.Logger = func(message ...any) {
			// silent until the host injects a logger
		}
	}

	// Use NewConfig() as the authoritative source of defaults and copy
	// any missing values from it.
	defaults := NewConfig()
	if c.SourceDir == "" {
		c.SourceDir = defaults.SourceDir
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if c.LoaderJsOutputDir == "" {
		c.LoaderJsOutputDir = defaults.LoaderJsOutputDir
	}
	if c.MainInputFile == "" {
		c.MainInputFile = defaults.MainInputFile
	}
	if c.OutputName == "" {
		c.OutputName = defaults.OutputName
	}
	if c.JSCommand == "" {
		c.JSCommand = defaults.JSCommand
	}
	if c.WasmCommand == "" {
		c.WasmCommand = defaults.WasmCommand
	}
	if c.BuildJSShortcut == "" {
		c.BuildJSShortcut = defaults.BuildJSShortcut
	}
	if c.BuildWasmShortcut == "" {
		c.BuildWasmShortcut = defaults.BuildWasmShortcut
	}
	if c.BuildWasmDebugShortcut == "" {
		c.BuildWasmDebugShortcut = defaults.BuildWasmDebugShortcut
	}

	w := &WebCompiler{
		Config:        c,
		loaderJsCache: make(map[string]string),
	}

	// Restore the preset from the store when available; fall back to
	// the JS preset otherwise.
	preset := c.BuildJSShortcut
	if w.Store != nil {
		if val, err := w.Store.Get(StoreKeyCompileMode); err == nil && val != "" {
			val = Convert(val).ToUpper().String()
			if w.validatePreset(val) == nil {
				preset = val
			}
		}
	}
	w.compilerConfig = w.configForPreset(preset)

	// Initialize one gobuild instance per target, then point the active
	// builder at the restored preset.
	w.builderInit()
	w.updateCurrentBuilder(preset)

	// Determine initial storage.
	// If the artifact already exists on disk, keep writing to disk.
	// Otherwise, default to the in-memory backend.
	outputFile := filepath.Join(w.Config.OutputDir, w.artifactFileName())
	absOutputFile := filepath.Join(w.Config.AppRootDir, outputFile)

	if _, err := os.Stat(absOutputFile); err == nil {
		w.storage = &diskStorage{client: w}
	} else {
		w.storage = &memoryStorage{client: w}
	}

	// Detection runs last: the loader write path it may trigger needs
	// builders and storage in place.
	w.detectProjectConfiguration()

	return w
}

// CompilerConfig returns the immutable configuration value behind the
// active preset.
func (w *WebCompiler) CompilerConfig() CompilerConfig {
	return w.compilerConfig
}

// ActiveCommandOptions returns the compiler arguments of the active
// configuration followed by any user-supplied extra arguments.
func (w *WebCompiler) ActiveCommandOptions() []string {
	args := w.compilerConfig.CommandOptions()
	if w.CompilingArguments != nil {
		args = append(args, w.CompilingArguments()...)
	}
	return args
}

// configForPreset maps a preset shortcut to a fresh configuration value
// with that preset's defaults.
func (w *WebCompiler) configForPreset(preset string) CompilerConfig {
	switch preset {
	case w.Config.BuildWasmShortcut:
		return NewWasmCompilerConfig()
	case w.Config.BuildWasmDebugShortcut:
		cfg := NewWasmCompilerConfig()
		cfg.WasmOpt = WasmOptDebug
		return cfg
	default:
		return NewJSCompilerConfig()
	}
}

// targetForPreset maps a preset shortcut to its artifact target.
func (w *WebCompiler) targetForPreset(preset string) CompileTarget {
	switch preset {
	case w.Config.BuildWasmShortcut, w.Config.BuildWasmDebugShortcut:
		return TargetWasm
	default:
		return TargetJS
	}
}

// artifactFileName returns the output file name of the active target,
// e.g. "client.js" or "client.wasm".
func (w *WebCompiler) artifactFileName() string {
	return w.Config.OutputName + w.compilerConfig.CompileTarget().Extension()
}

// artifactRoutePath calculates the URL path the artifact is served at.
func (w *WebCompiler) artifactRoutePath() string {
	prefix := w.Config.AssetsURLPrefix
	if prefix != "" {
		if prefix[0] == '/' {
			prefix = prefix[1:]
		}
		if prefix[len(prefix)-1] == '/' {
			prefix = prefix[:len(prefix)-1]
		}
		return "/" + prefix + "/" + w.artifactFileName()
	}
	return "/" + w.artifactFileName()
}

// currentStorage returns the active storage backend under the lock.
func (w *WebCompiler) currentStorage() BuildStorage {
	w.storageMu.RLock()
	defer w.storageMu.RUnlock()
	return w.storage
}

// setStorage swaps the storage backend.
func (w *WebCompiler) setStorage(s BuildStorage) {
	w.storageMu.Lock()
	w.storage = s
	w.storageMu.Unlock()
}

// IsWebProject reports whether a web client project was detected.
func (w *WebCompiler) IsWebProject() bool {
	return w.webProject
}

// devtui FieldHandler surface.

// Name returns the handler name
func (w *WebCompiler) Name() string {
	return "WebCompiler"
}

// Label is the field caption shown next to the preset value.
func (w *WebCompiler) Label() string {
	return "Compiler Mode"
}

// Value returns the current preset shortcut (J, W, or D). The store is
// consulted on every call so external changes are picked up without
// reinitializing the client.
func (w *WebCompiler) Value() string {
	if w.Store != nil {
		if val, err := w.Store.Get(StoreKeyCompileMode); err == nil && val != "" {
			val = Convert(val).ToUpper().String()
			if w.validatePreset(val) == nil {
				return val
			}
		}
	}
	if w.currentPreset == "" {
		return w.Config.BuildJSShortcut
	}
	return w.currentPreset
}

// detectProjectConfiguration decides once, at construction, whether the
// workspace holds a web client project.
func (w *WebCompiler) detectProjectConfiguration() {
	// Priority 1: Check for an existing loader.js (definitive source)
	if w.detectFromExistingLoaderJs() {
		return
	}

	// Priority 2: Check for client source files
	if w.detectFromSourceFiles() {
		w.webProject = true
		// A source tree without a loader means we should create one.
		if !w.Config.DisableLoaderJsOutput {
			w.writeOrReplaceLoaderJsOutput()
		}
		return
	}

	w.Logger("No web client project detected")
}

// detectFromExistingLoaderJs checks whether a loader bootstrap is
// already present in the configured output location.
func (w *WebCompiler) detectFromExistingLoaderJs() bool {
	if _, err := os.Stat(w.LoaderJsOutputPath()); err == nil {
		w.webProject = true
		return true
	}
	return false
}

// detectFromSourceFiles walks the project for client sources to confirm
// a web project.
func (w *WebCompiler) detectFromSourceFiles() bool {
	sourceFilesFound := false

	err := filepath.Walk(w.Config.AppRootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}

		if info.IsDir() {
			return nil
		}

		// Both candidates below are workspace-relative.
		relPath, err := filepath.Rel(w.Config.AppRootDir, path)
		if err != nil {
			relPath = path
		}

		// Check for the main input file in the source directory (strong indicator)
		expectedPath := filepath.Join(w.Config.SourceDir, w.Config.MainInputFile)
		if relPath == expectedPath {
			sourceFilesFound = true
			return filepath.SkipAll
		}

		// Any file with the client source extension also confirms the project
		if HasSuffix(info.Name(), w.sourceExtension()) {
			sourceFilesFound = true
			return filepath.SkipAll
		}

		return nil
	})

	if err != nil {
		w.Logger("Error walking directory for client source detection:", err)
		return false
	}

	return sourceFilesFound
}
