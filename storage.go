package webcompile

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BuildStorage abstracts where the compiled artifact lives between builds.
// The in-memory strategy keeps the bundle in RAM for fast iteration while
// the source is still being sketched out; the disk strategy persists it so
// scaffolded projects survive restarts.
type BuildStorage interface {
	Compile() error
	RegisterRoutes(mux *http.ServeMux)
	Name() string
}

// memoryStorage holds the last compiled bundle in RAM and serves it from there.
type memoryStorage struct {
	client *WebCompiler

	mu          sync.RWMutex
	content     []byte
	lastCompile time.Time
}

func (s *memoryStorage) Name() string {
	return "In-Memory"
}

func (s *memoryStorage) Compile() error {
	s.client.Logger("Compiling web client (In-Memory)...")

	content, err := s.client.activeBuilder.CompileToMemory()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.content = content
	s.lastCompile = time.Now()
	s.mu.Unlock()

	return nil
}

// diskStorage compiles straight into OutputDir and serves the static file.
type diskStorage struct {
	client *WebCompiler
}

func (s *diskStorage) Name() string {
	return "Disk"
}

func (s *diskStorage) Compile() error {
	s.client.Logger("Compiling web client (Disk)...")

	outDir := filepath.Join(s.client.AppRootDir, s.client.Config.OutputDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	return s.client.activeBuilder.CompileProgram()
}
