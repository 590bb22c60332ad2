package chat

import (
	"errors"
	"testing"
)

func TestBeginAppendsUserAndPlaceholder(t *testing.T) {
	tr := NewTranscript()

	if err := tr.Begin("what is the notice period?"); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	msgs := tr.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
	if msgs[0].Sender != SenderUser || msgs[0].Text != "what is the notice period?" {
		t.Errorf("user message = %+v", msgs[0])
	}
	if msgs[0].Pending {
		t.Error("user message marked pending")
	}
	if msgs[1].Sender != SenderAI || !msgs[1].Pending || msgs[1].Text != "" {
		t.Errorf("placeholder = %+v", msgs[1])
	}
	if !tr.HasPending() {
		t.Error("HasPending = false after Begin")
	}
}

func TestSecondAskRejectedWhilePending(t *testing.T) {
	tr := NewTranscript()

	if err := tr.Begin("first"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := tr.Begin("second"); !errors.Is(err, ErrAskPending) {
		t.Fatalf("second Begin err = %v, want ErrAskPending", err)
	}
	if len(tr.Messages()) != 2 {
		t.Errorf("rejected ask still appended messages: %d", len(tr.Messages()))
	}

	tr.Resolve("answer")
	if err := tr.Begin("second"); err != nil {
		t.Fatalf("Begin after resolve: %v", err)
	}
}

func TestResolveFillsOnlyThePlaceholder(t *testing.T) {
	tr := NewTranscript()
	tr.Begin("q1")
	tr.Resolve("a1")
	tr.Begin("q2")
	tr.Resolve("a2")

	msgs := tr.Messages()
	if len(msgs) != 4 {
		t.Fatalf("len(msgs) = %d, want 4", len(msgs))
	}
	want := []struct {
		sender Sender
		text   string
	}{
		{SenderUser, "q1"},
		{SenderAI, "a1"},
		{SenderUser, "q2"},
		{SenderAI, "a2"},
	}
	for i, w := range want {
		if msgs[i].Sender != w.sender || msgs[i].Text != w.text {
			t.Errorf("msgs[%d] = %+v, want %v %q", i, msgs[i], w.sender, w.text)
		}
		if msgs[i].Pending {
			t.Errorf("msgs[%d] still pending", i)
		}
	}
}

func TestFailSetsErrorText(t *testing.T) {
	tr := NewTranscript()
	tr.Begin("q")
	tr.Fail("The analysis service could not be reached. Please try again.")

	msgs := tr.Messages()
	if msgs[1].Pending {
		t.Error("placeholder still pending after Fail")
	}
	if msgs[1].Text == "" {
		t.Error("placeholder has no error text")
	}
	if tr.HasPending() {
		t.Error("HasPending = true after Fail")
	}
}

func TestResolveWithoutPendingIsNoOp(t *testing.T) {
	tr := NewTranscript()
	tr.Resolve("stray answer")
	if len(tr.Messages()) != 0 {
		t.Errorf("Resolve on empty transcript appended messages")
	}

	tr.Begin("q")
	tr.Resolve("a")
	tr.Resolve("late duplicate")
	msgs := tr.Messages()
	if msgs[1].Text != "a" {
		t.Errorf("resolved message mutated twice: %q", msgs[1].Text)
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Begin("q")

	msgs := tr.Messages()
	msgs[0].Text = "mutated"

	if tr.Messages()[0].Text != "q" {
		t.Error("Messages exposed internal state")
	}
}
