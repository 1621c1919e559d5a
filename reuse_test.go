package webcompile

import (
	"os"
	"path/filepath"
	"testing"
)

// seedArtifact writes a fake compiled artifact into the configured
// output directory.
func seedArtifact(t *testing.T, w *WebCompiler) string {
	t.Helper()
	outDir := filepath.Join(w.AppRootDir, w.Config.OutputDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatalf("failed to create output dir: %v", err)
	}
	artifact := filepath.Join(outDir, w.artifactFileName())
	if err := os.WriteFile(artifact, []byte("artifact"), 0644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return artifact
}

func TestArtifactUpToDate(t *testing.T) {
	t.Run("no store means no reuse", func(t *testing.T) {
		w := New(&Config{AppRootDir: t.TempDir()})
		w.setStorage(&diskStorage{client: w})
		seedArtifact(t, w)

		if w.artifactUpToDate() {
			t.Error("reuse requires a store")
		}
	})

	t.Run("memory storage never reuses", func(t *testing.T) {
		store := newTestStore()
		w := New(&Config{AppRootDir: t.TempDir(), Store: store})
		w.setStorage(&memoryStorage{client: w})
		seedArtifact(t, w)
		store.Set(w.buildKeyStoreKey(), w.compilerConfig.BuildKey())

		if w.artifactUpToDate() {
			t.Error("in-memory storage holds no durable artifact to reuse")
		}
	})

	t.Run("matching key with artifact reuses", func(t *testing.T) {
		store := newTestStore()
		w := New(&Config{AppRootDir: t.TempDir(), Store: store})
		w.setStorage(&diskStorage{client: w})
		seedArtifact(t, w)
		store.Set(w.buildKeyStoreKey(), w.compilerConfig.BuildKey())

		if !w.artifactUpToDate() {
			t.Error("matching key and existing artifact should reuse")
		}
	})

	t.Run("missing artifact forces recompile", func(t *testing.T) {
		store := newTestStore()
		w := New(&Config{AppRootDir: t.TempDir(), Store: store})
		w.setStorage(&diskStorage{client: w})
		store.Set(w.buildKeyStoreKey(), w.compilerConfig.BuildKey())

		if w.artifactUpToDate() {
			t.Error("missing artifact cannot be reused")
		}
	})

	t.Run("changed configuration forces recompile", func(t *testing.T) {
		store := newTestStore()
		w := New(&Config{AppRootDir: t.TempDir(), Store: store})
		w.setStorage(&diskStorage{client: w})
		seedArtifact(t, w)

		stale := NewJSCompilerConfig()
		stale.CSP = true
		store.Set(w.buildKeyStoreKey(), stale.BuildKey())

		if w.artifactUpToDate() {
			t.Error("stored key from a different configuration must not reuse")
		}
	})

	t.Run("keys are tracked per target", func(t *testing.T) {
		store := newTestStore()
		w := New(&Config{AppRootDir: t.TempDir(), Store: store})
		w.setStorage(&diskStorage{client: w})
		store.Set(w.buildKeyStoreKey(), w.compilerConfig.BuildKey())
		seedArtifact(t, w)

		// Switching to the wasm preset looks up a different entry.
		w.compilerConfig = w.configForPreset("W")
		w.updateCurrentBuilder("W")

		if w.artifactUpToDate() {
			t.Error("wasm preset must not reuse the js build key")
		}
	})
}

func TestFinishBuildPersistsKeyAndReportsAnalytics(t *testing.T) {
	store := newTestStore()

	var gotEvent string
	var gotValues map[string]string

	cfg := NewConfig()
	cfg.AppRootDir = t.TempDir()
	cfg.Store = store
	cfg.OnBuildEvent = func(event string, values map[string]string) {
		gotEvent = event
		gotValues = values
	}
	w := New(cfg)

	w.compilerConfig = w.configForPreset("W")
	w.updateCurrentBuilder("W")

	w.finishBuild("build")

	wantKey := NewWasmCompilerConfig().BuildKey()
	if store.data[StoreKeyBuildPrefix+"wasm"] != wantKey {
		t.Errorf("stored key = %q, want %q", store.data[StoreKeyBuildPrefix+"wasm"], wantKey)
	}
	if gotEvent != "build" {
		t.Errorf("event = %q, want %q", gotEvent, "build")
	}
	if gotValues["WasmOmitTypeChecks"] != "false" || gotValues["RunWasmOpt"] != "full" {
		t.Errorf("analytics values = %v", gotValues)
	}

	// The build info file is refreshed as part of the same step.
	if _, err := os.Stat(w.BuildInfoPath()); err != nil {
		t.Errorf("build info missing after finishBuild: %v", err)
	}
}

func TestRecompileMainRequiresSource(t *testing.T) {
	w := New(&Config{AppRootDir: t.TempDir()})

	if err := w.RecompileMain(); err == nil {
		t.Fatal("missing main input file should produce an error")
	}
}

func TestRecompileMainSkipsWhenUpToDate(t *testing.T) {
	tmp := t.TempDir()
	webDir := filepath.Join(tmp, "web")
	if err := os.MkdirAll(webDir, 0755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(webDir, "client.web"), []byte("main() {}"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	store := newTestStore()
	var logs []string

	cfg := NewConfig()
	cfg.AppRootDir = tmp
	cfg.Store = store
	// A missing binary guarantees the test fails loudly if the reuse
	// check is bypassed and a real compile is attempted.
	cfg.JSCommand = "webcompile-test-missing-binary"
	cfg.Logger = func(message ...any) {
		s := ""
		for _, m := range message {
			if str, ok := m.(string); ok {
				s += str + " "
			}
		}
		logs = append(logs, s)
	}

	w := New(cfg)
	w.setStorage(&diskStorage{client: w})
	seedArtifact(t, w)
	store.Set(w.buildKeyStoreKey(), w.compilerConfig.BuildKey())

	if err := w.RecompileMain(); err != nil {
		t.Fatalf("up-to-date artifact should skip compilation, got error: %v", err)
	}
}
