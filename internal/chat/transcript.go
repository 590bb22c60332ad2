// Package chat keeps the question-and-answer transcript for the loaded
// document.
package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a transcript message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ErrAskPending is returned when a question is submitted while the previous
// one is still awaiting its answer.
var ErrAskPending = errors.New("a question is already awaiting its answer")

// Message is one transcript entry. Messages are append-only; the only
// mutation ever applied is resolving the single pending AI placeholder.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Pending   bool      `json:"pending"`
	CreatedAt time.Time `json:"created_at"`
}

// Transcript is the ordered chat history with explicit in-flight tracking:
// at most one AI placeholder is pending at a time, and new questions are
// rejected until it resolves.
type Transcript struct {
	mu        sync.Mutex
	messages  []Message
	pendingID string
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Begin appends the user's question and a pending AI placeholder. It fails
// with ErrAskPending if a previous question has not resolved yet.
func (t *Transcript) Begin(question string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pendingID != "" {
		return ErrAskPending
	}

	now := time.Now()
	t.messages = append(t.messages, Message{
		ID:        uuid.New().String(),
		Sender:    SenderUser,
		Text:      question,
		CreatedAt: now,
	})

	placeholder := Message{
		ID:        uuid.New().String(),
		Sender:    SenderAI,
		Pending:   true,
		CreatedAt: now,
	}
	t.messages = append(t.messages, placeholder)
	t.pendingID = placeholder.ID
	return nil
}

// Resolve fills the pending placeholder with the answer.
func (t *Transcript) Resolve(answer string) {
	t.resolve(answer)
}

// Fail fills the pending placeholder with an error message.
func (t *Transcript) Fail(message string) {
	t.resolve(message)
}

func (t *Transcript) resolve(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pendingID == "" {
		return
	}
	for i := range t.messages {
		if t.messages[i].ID == t.pendingID {
			t.messages[i].Text = text
			t.messages[i].Pending = false
			break
		}
	}
	t.pendingID = ""
}

// HasPending reports whether a question is awaiting its answer.
func (t *Transcript) HasPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pendingID != ""
}

// Messages returns a copy of the transcript in submission order.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
