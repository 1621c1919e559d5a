package webcompile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDefaultClientFileDoesNotOverwrite(t *testing.T) {
	w := newWebProjectCompiler(t, nil)

	target := filepath.Join(w.AppRootDir, w.Config.SourceDir, w.Config.MainInputFile)
	existing := "// hand-written client, keep intact"
	if err := os.WriteFile(target, []byte(existing), 0644); err != nil {
		t.Fatalf("replacing client source: %v", err)
	}

	if got := w.CreateDefaultClientFileIfNotExist(); got == nil {
		t.Fatal("CreateDefaultClientFileIfNotExist returned nil")
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading client source after scaffolding: %v", err)
	}
	if string(content) != existing {
		t.Fatal("existing client source was overwritten")
	}
}

func TestCreateDefaultClientFileSwitchesToDiskStorage(t *testing.T) {
	w := newWebProjectCompiler(t, nil)

	if got := w.currentStorage().Name(); got != "In-Memory" {
		t.Fatalf("fresh project storage = %q, want In-Memory", got)
	}

	w.CreateDefaultClientFileIfNotExist()

	if got := w.currentStorage().Name(); got != "Disk" {
		t.Errorf("storage after scaffolding = %q, want Disk", got)
	}
	if !w.IsWebProject() {
		t.Error("scaffolded project should report as web project")
	}
}

func TestCreateDefaultClientFileWritesLoader(t *testing.T) {
	w := newWebProjectCompiler(t, nil)

	w.CreateDefaultClientFileIfNotExist()

	if _, err := os.Stat(w.LoaderJsOutputPath()); err != nil {
		t.Errorf("loader.js missing after scaffolding: %v", err)
	}
}

func TestCreateDefaultClientFileRespectsLoaderOptOut(t *testing.T) {
	w := newWebProjectCompiler(t, func(c *Config) {
		c.DisableLoaderJsOutput = true
	})

	w.CreateDefaultClientFileIfNotExist()

	if _, err := os.Stat(w.LoaderJsOutputPath()); err == nil {
		t.Error("loader.js written despite DisableLoaderJsOutput")
	}
}
