package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Krish2786/LegalMind-AI/internal/chat"
	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
	"github.com/Krish2786/LegalMind-AI/internal/store"
)

// fakeService is a stand-in for the remote analysis service.
type fakeService struct {
	simplifyStatus int
	simplifyBody   map[string]string
	askStatus      int
	askBody        map[string]string
	lastAskPayload map[string]string
	simplifyCalls  int
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/simplify", func(w http.ResponseWriter, r *http.Request) {
		f.simplifyCalls++
		status := f.simplifyStatus
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(f.simplifyBody)
	})
	mux.HandleFunc("/ask", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&f.lastAskPayload)
		status := f.askStatus
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(f.askBody)
	})
	return mux
}

func setupApp(t *testing.T, svc *fakeService) *App {
	t.Helper()

	srv := httptest.NewServer(svc.handler())
	t.Cleanup(srv.Close)

	database, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	client := legalmind.NewClient(srv.URL, 5*time.Second)
	return New(client, store.NewStore(database))
}

func TestAnalyzeSuccessEnablesChat(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "**bold**"},
		askBody:      map[string]string{"answer": "yes"},
	}
	a := setupApp(t, svc)
	ctx := context.Background()

	view, err := a.Analyze(ctx, "lease.pdf", strings.NewReader("pdf"), "", legalmind.ModelFlash)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.Contains(view.SummaryHTML, "<strong>bold</strong>") {
		t.Errorf("summary not rendered: %q", view.SummaryHTML)
	}
	if !view.ChatEnabled {
		t.Error("chat not enabled after successful analysis")
	}
	if !a.Session().IsLoaded() {
		t.Error("session not loaded")
	}

	// A follow-up question carries the extracted document text.
	if _, err := a.Ask(ctx, "is it safe?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if svc.lastAskPayload["document_text"] != "T" {
		t.Errorf("ask payload document_text = %q, want T", svc.lastAskPayload["document_text"])
	}
}

func TestAnalyzeSummaryIsHighlighted(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "a **penalty** clause"},
	}
	a := setupApp(t, svc)

	view, err := a.Analyze(context.Background(), "a.pdf", strings.NewReader("pdf"), "", "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.Contains(view.SummaryHTML, `severity-critical">penalty</span>`) {
		t.Errorf("summary shown without highlighting: %q", view.SummaryHTML)
	}
}

func TestAnalyzeFailureLeavesSessionUntouched(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "FIRST", "summary": "ok"},
	}
	a := setupApp(t, svc)
	ctx := context.Background()

	if _, err := a.Analyze(ctx, "first.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	svc.simplifyStatus = http.StatusInternalServerError
	svc.simplifyBody = map[string]string{"error": "bad pdf"}

	_, err := a.Analyze(ctx, "second.pdf", strings.NewReader("pdf"), "", "")
	var rErr *legalmind.RemoteError
	if !errors.As(err, &rErr) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if legalmind.UserMessage(err) != "bad pdf" {
		t.Errorf("UserMessage = %q", legalmind.UserMessage(err))
	}

	// The earlier session survives the failed attempt.
	if !a.Session().IsLoaded() || a.Session().FullText() != "FIRST" {
		t.Errorf("failed analyze disturbed the session: loaded=%v text=%q",
			a.Session().IsLoaded(), a.Session().FullText())
	}

	// The busy gate was released: a retry goes through.
	svc.simplifyStatus = 0
	svc.simplifyBody = map[string]string{"document_text": "SECOND", "summary": "ok"}
	if _, err := a.Analyze(ctx, "second.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestAskWithoutDocument(t *testing.T) {
	svc := &fakeService{}
	a := setupApp(t, svc)

	_, err := a.Ask(context.Background(), "anything?")
	var vErr *legalmind.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(a.Transcript().Messages()) != 0 {
		t.Error("rejected ask touched the transcript")
	}
}

func TestAskBlankQuestionIsNoOp(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "s"},
	}
	a := setupApp(t, svc)
	ctx := context.Background()
	if _, err := a.Analyze(ctx, "a.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	_, err := a.Ask(ctx, "   \n")
	var vErr *legalmind.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(a.Transcript().Messages()) != 0 {
		t.Error("blank question touched the transcript")
	}
}

func TestAskFailureResolvesPlaceholderWithError(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "s"},
		askStatus:    http.StatusBadGateway,
		askBody:      map[string]string{"error": "model overloaded"},
	}
	a := setupApp(t, svc)
	ctx := context.Background()
	if _, err := a.Analyze(ctx, "a.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if _, err := a.Ask(ctx, "q"); err == nil {
		t.Fatal("Ask succeeded against failing service")
	}

	msgs := a.Transcript().Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	if msgs[1].Pending {
		t.Error("placeholder still pending after failure")
	}
	if msgs[1].Text != "model overloaded" {
		t.Errorf("placeholder text = %q, want server message", msgs[1].Text)
	}
	if a.Transcript().HasPending() {
		t.Error("in-flight gate not released after failure")
	}
}

func TestAskRejectedWhilePending(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "s"},
	}
	a := setupApp(t, svc)
	if _, err := a.Analyze(context.Background(), "a.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Simulate an unresolved in-flight question directly on the transcript.
	if err := a.Transcript().Begin("first"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	_, err := a.Ask(context.Background(), "second")
	if !errors.Is(err, chat.ErrAskPending) {
		t.Fatalf("err = %v, want ErrAskPending", err)
	}
}

func TestSaveAndRestoreRoundTrip(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "hi **penalty**"},
	}
	a := setupApp(t, svc)
	ctx := context.Background()

	if _, err := a.Analyze(ctx, "a.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := a.SaveCurrent(ctx); err != nil {
		t.Fatalf("SaveCurrent: %v", err)
	}

	// A fresh app plays the part of the next page load.
	b := New(legalmind.NewClient("http://unused.invalid", time.Second), a.store)

	view, err := b.RestoreSaved(ctx)
	if err != nil {
		t.Fatalf("RestoreSaved: %v", err)
	}
	if view == nil {
		t.Fatal("RestoreSaved returned nil for occupied slot")
	}
	if view.Filename != "a.pdf" {
		t.Errorf("Filename = %q", view.Filename)
	}
	if !strings.Contains(view.SummaryHTML, `severity-critical">penalty</span>`) {
		t.Errorf("restored summary not highlighted: %q", view.SummaryHTML)
	}
	if !view.ChatEnabled || !b.Session().IsLoaded() {
		t.Error("restore with full text did not enable chat")
	}

	// Single use: the next load sees nothing.
	again, err := b.RestoreSaved(ctx)
	if err != nil {
		t.Fatalf("second RestoreSaved: %v", err)
	}
	if again != nil {
		t.Errorf("saved view replayed: %+v", again)
	}
}

func TestRestoreWithoutFullTextDisablesChat(t *testing.T) {
	svc := &fakeService{}
	a := setupApp(t, svc)
	ctx := context.Background()

	err := a.store.SaveView(ctx, legalmind.AnalysisResult{Filename: "a.pdf", Summary: "hi"})
	if err != nil {
		t.Fatalf("SaveView: %v", err)
	}

	view, err := a.RestoreSaved(ctx)
	if err != nil {
		t.Fatalf("RestoreSaved: %v", err)
	}
	if view.ChatEnabled {
		t.Error("chat enabled without document text")
	}
	if view.Notice == "" {
		t.Error("missing Q&A-unavailable notice")
	}
	if a.Session().IsLoaded() {
		t.Error("session loaded without document text")
	}
}

func TestSaveCurrentWithoutAnalysis(t *testing.T) {
	svc := &fakeService{}
	a := setupApp(t, svc)

	err := a.SaveCurrent(context.Background())
	var vErr *legalmind.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestHistoryRecordsFlowEvents(t *testing.T) {
	svc := &fakeService{
		simplifyBody: map[string]string{"document_text": "T", "summary": "s"},
		askBody:      map[string]string{"answer": "a"},
	}
	a := setupApp(t, svc)
	ctx := context.Background()

	if _, err := a.Analyze(ctx, "a.pdf", strings.NewReader("pdf"), "", ""); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, err := a.Ask(ctx, "q"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	events, err := a.History(ctx, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].EventType != store.EventQuestionAsked || events[1].EventType != store.EventAnalyzed {
		t.Errorf("event order = %q, %q", events[0].EventType, events[1].EventType)
	}
	if events[0].DocumentName != "a.pdf" {
		t.Errorf("DocumentName = %q", events[0].DocumentName)
	}
}
