// Package app orchestrates the client flows: analyze a document, answer
// follow-up questions, and save or restore an analysis. The CLI commands,
// the web UI, and the MCP tools all run through the same App.
package app

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/Krish2786/LegalMind-AI/internal/chat"
	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
	"github.com/Krish2786/LegalMind-AI/internal/render"
	"github.com/Krish2786/LegalMind-AI/internal/session"
	"github.com/Krish2786/LegalMind-AI/internal/store"
)

// ErrAnalyzePending is returned when an analysis is requested while another
// upload is still in flight.
var ErrAnalyzePending = errors.New("an analysis is already in progress")

// AnalysisView is what the UI layers display after an analyze or restore
// flow completes.
type AnalysisView struct {
	Filename    string `json:"filename"`
	SummaryHTML string `json:"summary_html"`
	ChatEnabled bool   `json:"chat_enabled"`
	Notice      string `json:"notice,omitempty"`
}

// App ties the remote client, the document session, the transcript, and the
// local store together.
type App struct {
	client     *legalmind.Client
	store      *store.Store
	session    *session.DocumentSession
	transcript *chat.Transcript

	mu         sync.Mutex
	analyzing  bool
	lastResult *legalmind.AnalysisResult
}

// New creates an App with an empty session on the default model.
func New(client *legalmind.Client, st *store.Store) *App {
	return &App{
		client:     client,
		store:      st,
		session:    session.New(legalmind.DefaultModel),
		transcript: chat.NewTranscript(),
	}
}

// Session exposes the document session for the UI layers.
func (a *App) Session() *session.DocumentSession { return a.session }

// Transcript exposes the chat transcript for the UI layers.
func (a *App) Transcript() *chat.Transcript { return a.transcript }

// beginAnalyze acquires the single analyze slot.
func (a *App) beginAnalyze() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.analyzing {
		return ErrAnalyzePending
	}
	a.analyzing = true
	return nil
}

// endAnalyze releases the analyze slot. Deferred by Analyze so the busy
// state is released on every exit path.
func (a *App) endAnalyze() {
	a.mu.Lock()
	a.analyzing = false
	a.mu.Unlock()
}

// Analyze uploads a document for analysis. On success the session is loaded,
// the highlighted summary is returned, and chat becomes available. On
// failure the session is left exactly as it was.
func (a *App) Analyze(ctx context.Context, filename string, file io.Reader, prompt, model string) (*AnalysisView, error) {
	if err := a.beginAnalyze(); err != nil {
		return nil, err
	}
	defer a.endAnalyze()

	model = legalmind.NormalizeModel(model)
	res, err := a.client.Simplify(ctx, legalmind.SimplifyRequest{
		Filename: filename,
		File:     file,
		Prompt:   prompt,
		Model:    model,
	})
	if err != nil {
		return nil, err
	}

	summaryHTML, err := render.Summary(res.Summary)
	if err != nil {
		return nil, err
	}

	a.session.Load(res.FullText, model)
	a.setLastResult(res)
	a.logEvent(ctx, store.EventAnalyzed, res.Filename)

	return &AnalysisView{
		Filename:    res.Filename,
		SummaryHTML: summaryHTML,
		ChatEnabled: true,
	}, nil
}

// Ask runs one chat turn: the question and a pending placeholder are
// appended to the transcript, the remote service is asked, and the
// placeholder is resolved with the answer or an error message. Blank
// questions and an unloaded session are rejected before the transcript is
// touched.
func (a *App) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", &legalmind.ValidationError{Reason: "Please enter a question."}
	}
	if !a.session.IsLoaded() {
		return "", &legalmind.ValidationError{Reason: "No document is loaded. Analyze a document first."}
	}

	if err := a.transcript.Begin(question); err != nil {
		return "", err
	}

	answer, err := a.client.Ask(ctx, legalmind.AskRequest{
		DocumentText: a.session.FullText(),
		Question:     question,
		Model:        a.session.Model(),
	})
	if err != nil {
		a.transcript.Fail(legalmind.UserMessage(err))
		return "", err
	}

	a.transcript.Resolve(answer)
	a.logEvent(ctx, store.EventQuestionAsked, a.lastFilename())
	return answer, nil
}

// RestoreSaved consumes the saved-view slot. It returns (nil, nil) when the
// slot is empty. A saved view without full text renders the summary but
// leaves chat disabled with an explanatory notice.
func (a *App) RestoreSaved(ctx context.Context) (*AnalysisView, error) {
	res, err := a.store.TakeView(ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}

	summaryHTML, err := render.Summary(res.Summary)
	if err != nil {
		return nil, err
	}

	view := &AnalysisView{
		Filename:    res.Filename,
		SummaryHTML: summaryHTML,
	}
	if res.FullText != "" {
		a.session.Load(res.FullText, a.session.Model())
		view.ChatEnabled = true
	} else {
		view.Notice = "Q&A is unavailable for this saved analysis: the document text was not saved with it."
	}

	a.setLastResult(res)
	a.logEvent(ctx, store.EventViewed, res.Filename)
	return view, nil
}

// SaveCurrent writes the most recent analysis into the saved-view slot.
func (a *App) SaveCurrent(ctx context.Context) error {
	a.mu.Lock()
	res := a.lastResult
	a.mu.Unlock()

	if res == nil {
		return &legalmind.ValidationError{Reason: "No analysis to save. Analyze a document first."}
	}
	if err := a.store.SaveView(ctx, *res); err != nil {
		return err
	}
	a.logEvent(ctx, store.EventSaved, res.Filename)
	return nil
}

// History returns the most recent history events.
func (a *App) History(ctx context.Context, limit int) ([]store.HistoryEvent, error) {
	return a.store.History(ctx, limit)
}

// LastResult returns a copy of the most recent analysis result, or nil.
func (a *App) LastResult() *legalmind.AnalysisResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.lastResult == nil {
		return nil
	}
	res := *a.lastResult
	return &res
}

func (a *App) setLastResult(res *legalmind.AnalysisResult) {
	a.mu.Lock()
	a.lastResult = res
	a.mu.Unlock()
}

func (a *App) lastFilename() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.lastResult == nil {
		return "document"
	}
	return a.lastResult.Filename
}

// logEvent records a history event; failures are logged, never surfaced.
func (a *App) logEvent(ctx context.Context, eventType, documentName string) {
	if err := a.store.LogEvent(ctx, eventType, documentName); err != nil {
		log.Printf("app: recording history event: %v", err)
	}
}
