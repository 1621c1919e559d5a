package webcompile

import (
	"bytes"
	"net/http"
	"path/filepath"
)

// RegisterRoutes registers the compiled artifact route on the provided mux
// through whichever storage strategy is active.
func (w *WebCompiler) RegisterRoutes(mux *http.ServeMux) {
	w.currentStorage().RegisterRoutes(mux)
}

func (s *memoryStorage) RegisterRoutes(mux *http.ServeMux) {
	routePath := s.client.artifactRoutePath()
	contentType := s.client.compilerConfig.CompileTarget().ContentType()

	mux.HandleFunc(routePath, func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		content := s.content
		lastMod := s.lastCompile
		s.mu.RUnlock()

		if len(content) == 0 {
			// Nothing compiled yet; report unavailable rather than block.
			http.Error(w, "client compiling...", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", contentType)
		http.ServeContent(w, r, s.client.artifactFileName(), lastMod, bytes.NewReader(content))
	})
	s.client.Logger("Serving artifact from memory at:", routePath)
}

func (s *diskStorage) RegisterRoutes(mux *http.ServeMux) {
	routePath := s.client.artifactRoutePath()
	contentType := s.client.compilerConfig.CompileTarget().ContentType()
	fsPath := filepath.Join(s.client.Config.OutputDir, s.client.artifactFileName())
	// Note: Config.OutputDir is relative to AppRootDir, but ServeFile needs an OS path.
	absPath := filepath.Join(s.client.AppRootDir, fsPath)

	mux.HandleFunc(routePath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeFile(w, r, absPath)
	})
	s.client.Logger("Serving artifact from disk at:", routePath, "->", absPath)
}
