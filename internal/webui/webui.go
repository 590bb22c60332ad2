// Package webui serves the browser client: upload form, highlighted summary,
// chat panel, and the saved-analysis restore path.
package webui

import (
	"github.com/go-chi/chi/v5"

	"github.com/Krish2786/LegalMind-AI/internal/app"
)

// WebUI wires the client flows to browser-facing routes.
type WebUI struct {
	app *app.App
}

// New creates the web UI over the given app.
func New(a *app.App) *WebUI {
	return &WebUI{app: a}
}

// RegisterRoutes mounts all UI routes onto the given router.
func (u *WebUI) RegisterRoutes(r chi.Router) {
	r.Get("/", u.ServeIndex)
	r.Post("/api/simplify", u.handleSimplify)
	r.Get("/api/view", u.handleView)
	r.Post("/api/save", u.handleSave)
	r.Get("/api/history", u.handleHistory)
	r.Get("/ws/chat", u.handleChat)
}
