// Package event implements the key interception chain layered over a view.
//
// A Chain is an ordered, immutable list of bindings. Pre bindings run before
// the view's own key handling, post bindings only when the view ignored the
// key. The first binding that consumes a key stops the chain. Handlers never
// mutate the layer stack directly; they return an Effect which the caller
// applies once dispatch has finished.
package event

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Phase selects when a binding is consulted relative to default handling.
type Phase int

const (
	Pre Phase = iota
	Post
)

// Outcome reports whether a key was consumed.
type Outcome int

const (
	NotHandled Outcome = iota
	Consumed
)

// Effect is a deferred UI mutation, applied after dispatch completes.
type Effect = tea.Msg

// Result is what a handler or a whole dispatch returns.
type Result struct {
	Outcome Outcome
	Effect  Effect
}

// Ignored lets the chain continue.
func Ignored() Result {
	return Result{}
}

// Handled consumes the key without a follow-up effect.
func Handled() Result {
	return Result{Outcome: Consumed}
}

// HandledWith consumes the key and schedules effect.
func HandledWith(effect Effect) Result {
	return Result{Outcome: Consumed, Effect: effect}
}

// IsConsumed reports whether dispatch should stop.
func (r Result) IsConsumed() bool {
	return r.Outcome == Consumed
}

// Handler reacts to a key on behalf of state S.
type Handler[S any] func(s S, msg tea.KeyMsg) Result

// Binding attaches a handler to a key trigger and phase.
type Binding[S any] struct {
	Key    key.Binding
	Phase  Phase
	Handle Handler[S]
}

// Chain is an ordered list of bindings. The zero value is an empty chain.
type Chain[S any] struct {
	bindings []Binding[S]
}

// New builds a chain from bindings in registration order.
func New[S any](bindings ...Binding[S]) Chain[S] {
	dup := make([]Binding[S], len(bindings))
	copy(dup, bindings)
	return Chain[S]{bindings: dup}
}

// With returns a new chain with b appended; the receiver is left untouched so
// several views can extend one base chain.
func (c Chain[S]) With(b Binding[S]) Chain[S] {
	next := make([]Binding[S], len(c.bindings), len(c.bindings)+1)
	copy(next, c.bindings)
	return Chain[S]{bindings: append(next, b)}
}

// Pre appends a pre-event binding.
func (c Chain[S]) Pre(k key.Binding, h Handler[S]) Chain[S] {
	return c.With(Binding[S]{Key: k, Phase: Pre, Handle: h})
}

// Post appends a post-event binding.
func (c Chain[S]) Post(k key.Binding, h Handler[S]) Chain[S] {
	return c.With(Binding[S]{Key: k, Phase: Post, Handle: h})
}

// Len returns the number of bindings.
func (c Chain[S]) Len() int {
	return len(c.bindings)
}

// Keys returns the enabled key bindings in registration order, for help output.
func (c Chain[S]) Keys() []key.Binding {
	keys := make([]key.Binding, 0, len(c.bindings))
	for _, b := range c.bindings {
		if b.Key.Enabled() {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// Dispatch runs msg through the chain: pre bindings, then inner (when no pre
// binding consumed the key), then post bindings when inner did not consume it
// either. inner may be nil.
func (c Chain[S]) Dispatch(s S, msg tea.KeyMsg, inner func(tea.KeyMsg) Result) Result {
	if res := c.run(Pre, s, msg); res.IsConsumed() {
		return res
	}
	if inner != nil {
		if res := inner(msg); res.IsConsumed() {
			return res
		}
	}
	return c.run(Post, s, msg)
}

func (c Chain[S]) run(phase Phase, s S, msg tea.KeyMsg) Result {
	for _, b := range c.bindings {
		if b.Phase != phase || b.Handle == nil {
			continue
		}
		if !key.Matches(msg, b.Key) {
			continue
		}
		if res := b.Handle(s, msg); res.IsConsumed() {
			return res
		}
	}
	return Ignored()
}
