package command

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type doneMsg struct{ err error }

func TestExecuteRunsRequestLazily(t *testing.T) {
	bus := New(context.Background(), 0)
	ran := false
	cmd := bus.Execute(Request{ID: "detail", Label: "story", Run: func(context.Context) tea.Msg {
		ran = true
		return doneMsg{}
	}})
	if ran {
		t.Fatalf("expected request to run only when the command executes")
	}
	if _, ok := cmd().(doneMsg); !ok || !ran {
		t.Fatalf("expected doneMsg after execution")
	}
}

func TestExecuteAppliesTimeout(t *testing.T) {
	bus := New(context.Background(), 10*time.Millisecond)
	cmd := bus.Execute(Request{ID: "slow", Run: func(ctx context.Context) tea.Msg {
		<-ctx.Done()
		return doneMsg{err: ctx.Err()}
	}})
	msg, ok := cmd().(doneMsg)
	if !ok || msg.err == nil {
		t.Fatalf("expected deadline error, got %#v", msg)
	}
}

func TestExecuteWithoutRunReturnsNil(t *testing.T) {
	bus := New(nil, 0)
	if msg := bus.Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}

func TestRequestsWithoutIDGetOne(t *testing.T) {
	if got := withID(Request{ID: "list"}).ID; got != "list" {
		t.Fatalf("expected explicit ID to be kept, got %q", got)
	}
	first, second := withID(Request{}).ID, withID(Request{}).ID
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected a uuid, got %q: %v", first, err)
	}
	if first == second {
		t.Fatalf("expected distinct IDs, got %q twice", first)
	}
}
