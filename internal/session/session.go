// Package session holds the in-memory state of the currently loaded document.
package session

import "sync"

// DocumentSession records the extracted text of the document under analysis
// and the model selected for follow-up questions. It starts empty and is
// loaded by a successful analysis or by restoring a saved view with full
// text. It is safe for concurrent use by the web UI handlers.
type DocumentSession struct {
	mu       sync.RWMutex
	fullText string
	model    string
	loaded   bool
}

// New returns an empty session with the given initial model selection.
func New(model string) *DocumentSession {
	return &DocumentSession{model: model}
}

// Reset clears the document text and marks the session unloaded. The model
// selection is kept.
func (s *DocumentSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullText = ""
	s.loaded = false
}

// Load stores the document's full text and marks the session loaded.
func (s *DocumentSession) Load(fullText, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullText = fullText
	s.model = model
	s.loaded = true
}

// SetModel updates the model selection without touching the loaded state.
func (s *DocumentSession) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

// IsLoaded reports whether a document is available for Q&A.
func (s *DocumentSession) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// FullText returns the loaded document text, or "" if unloaded.
func (s *DocumentSession) FullText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fullText
}

// Model returns the current model selection.
func (s *DocumentSession) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}
