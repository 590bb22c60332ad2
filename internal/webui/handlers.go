package webui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Krish2786/LegalMind-AI/internal/app"
	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
	"github.com/Krish2786/LegalMind-AI/internal/store"
)

// maxUploadBytes bounds the in-memory part of a multipart upload.
const maxUploadBytes = 32 << 20

func (u *WebUI) handleSimplify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Could not read the upload. Please try again.")
		return
	}

	file, header, err := r.FormFile("pdfFile")
	if err != nil {
		// Missing file: rejected here, no request reaches the service.
		writeError(w, http.StatusBadRequest, "No file selected. Please choose a PDF to analyze.")
		return
	}
	defer file.Close()

	view, err := u.app.Analyze(r.Context(),
		header.Filename, file,
		r.FormValue("prompt"), r.FormValue("model"),
	)
	if err != nil {
		writeFlowError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (u *WebUI) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := u.app.RestoreSaved(r.Context())
	if err != nil {
		writeFlowError(w, err)
		return
	}
	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (u *WebUI) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := u.app.SaveCurrent(r.Context()); err != nil {
		writeFlowError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (u *WebUI) handleHistory(w http.ResponseWriter, r *http.Request) {
	events, err := u.app.History(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not load history.")
		return
	}
	if events == nil {
		events = []store.HistoryEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}

// writeFlowError maps flow errors to HTTP statuses: validation failures are
// the caller's fault, remote failures keep the service's status, everything
// else is a bad gateway.
func writeFlowError(w http.ResponseWriter, err error) {
	var vErr *legalmind.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Reason)
		return
	}
	if errors.Is(err, app.ErrAnalyzePending) {
		writeError(w, http.StatusConflict, "An analysis is already in progress.")
		return
	}
	var rErr *legalmind.RemoteError
	if errors.As(err, &rErr) {
		writeError(w, rErr.StatusCode, legalmind.UserMessage(err))
		return
	}
	writeError(w, http.StatusBadGateway, legalmind.UserMessage(err))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
