package event

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type recorder struct {
	calls []string
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keys(k ...string) key.Binding {
	return key.NewBinding(key.WithKeys(k...))
}

func record(name string, res Result) Handler[*recorder] {
	return func(r *recorder, _ tea.KeyMsg) Result {
		r.calls = append(r.calls, name)
		return res
	}
}

func innerRecorder(r *recorder, res Result) func(tea.KeyMsg) Result {
	return func(tea.KeyMsg) Result {
		r.calls = append(r.calls, "inner")
		return res
	}
}

func TestFirstRegisteredBindingWins(t *testing.T) {
	rec := &recorder{}
	chain := New[*recorder]().
		Pre(keys("x"), record("first", Handled())).
		Pre(keys("x"), record("second", Handled()))

	res := chain.Dispatch(rec, runeKey('x'), innerRecorder(rec, Handled()))
	if !res.IsConsumed() {
		t.Fatalf("expected key to be consumed")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "first" {
		t.Fatalf("expected only first binding, got %v", rec.calls)
	}
}

func TestNotHandledFallsThroughToNextBindingThenInner(t *testing.T) {
	rec := &recorder{}
	chain := New[*recorder]().
		Pre(keys("x"), record("first", Ignored())).
		Pre(keys("x"), record("second", Ignored()))

	res := chain.Dispatch(rec, runeKey('x'), innerRecorder(rec, Handled()))
	if !res.IsConsumed() {
		t.Fatalf("expected inner handling to consume")
	}
	want := []string{"first", "second", "inner"}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, rec.calls)
		}
	}
}

func TestSecondBindingHandlesWhenFirstDeclines(t *testing.T) {
	rec := &recorder{}
	chain := New[*recorder]().
		Pre(keys("x"), record("first", Ignored())).
		Pre(keys("x"), record("second", HandledWith("effect")))

	res := chain.Dispatch(rec, runeKey('x'), innerRecorder(rec, Handled()))
	if res.Effect != "effect" {
		t.Fatalf("expected effect from second binding, got %v", res.Effect)
	}
	if len(rec.calls) != 2 || rec.calls[1] != "second" {
		t.Fatalf("expected inner to be skipped, got %v", rec.calls)
	}
}

func TestPostBindingsRunOnlyWhenInnerIgnores(t *testing.T) {
	rec := &recorder{}
	chain := New[*recorder]().Post(keys("q"), record("post", HandledWith("quit")))

	res := chain.Dispatch(rec, runeKey('q'), innerRecorder(rec, Handled()))
	if res.Effect != nil {
		t.Fatalf("expected inner to win, got effect %v", res.Effect)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "inner" {
		t.Fatalf("expected only inner, got %v", rec.calls)
	}

	rec.calls = nil
	res = chain.Dispatch(rec, runeKey('q'), innerRecorder(rec, Ignored()))
	if res.Effect != "quit" {
		t.Fatalf("expected post binding effect, got %v", res.Effect)
	}
	if len(rec.calls) != 2 || rec.calls[1] != "post" {
		t.Fatalf("expected inner then post, got %v", rec.calls)
	}
}

func TestUnrecognisedKeyFallsThroughUntouched(t *testing.T) {
	rec := &recorder{}
	chain := New[*recorder]().
		Pre(keys("x"), record("pre", Handled())).
		Post(keys("y"), record("post", Handled()))

	res := chain.Dispatch(rec, runeKey('z'), nil)
	if res.IsConsumed() || res.Effect != nil {
		t.Fatalf("expected untouched result, got %#v", res)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no handler calls, got %v", rec.calls)
	}
}

func TestWithDoesNotMutateBase(t *testing.T) {
	base := New[*recorder]().Pre(keys("x"), record("base", Ignored()))
	extended := base.With(Binding[*recorder]{Key: keys("y"), Phase: Pre, Handle: record("ext", Handled())})
	if base.Len() != 1 || extended.Len() != 2 {
		t.Fatalf("expected base 1 and extended 2 bindings, got %d and %d", base.Len(), extended.Len())
	}

	rec := &recorder{}
	if base.Dispatch(rec, runeKey('y'), nil).IsConsumed() {
		t.Fatalf("expected base chain to ignore y")
	}
	if !extended.Dispatch(rec, runeKey('y'), nil).IsConsumed() {
		t.Fatalf("expected extended chain to handle y")
	}
}

func TestDisabledBindingsAreSkipped(t *testing.T) {
	k := keys("x")
	k.SetEnabled(false)
	chain := New[*recorder]().Pre(k, record("disabled", Handled()))
	rec := &recorder{}
	if chain.Dispatch(rec, runeKey('x'), nil).IsConsumed() {
		t.Fatalf("expected disabled binding to be skipped")
	}
	if len(chain.Keys()) != 0 {
		t.Fatalf("expected disabled binding to be hidden from help")
	}
}

func TestSpecialAndAltKeysMatch(t *testing.T) {
	chain := New[*recorder]().
		Pre(keys("enter"), record("enter", Handled())).
		Pre(keys("alt+s"), record("search", Handled()))
	rec := &recorder{}
	if !chain.Dispatch(rec, tea.KeyMsg{Type: tea.KeyEnter}, nil).IsConsumed() {
		t.Fatalf("expected enter to match")
	}
	if !chain.Dispatch(rec, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}, Alt: true}, nil).IsConsumed() {
		t.Fatalf("expected alt+s to match")
	}
}
