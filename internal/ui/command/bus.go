package command

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/hn-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Request encapsulates work that must run off the UI loop. An empty ID is
// replaced with a random one so queue and result traces can be correlated.
type Request struct {
	ID    string
	Label string
	Run   func(ctx context.Context) tea.Msg
}

// Bus runs requests as Bubble Tea commands. Results come back to Update as
// messages; requests never touch view state themselves.
type Bus struct {
	ctx     context.Context
	timeout time.Duration
}

// New initialises a command bus bound to ctx. A positive timeout bounds each request.
func New(ctx context.Context, timeout time.Duration) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx, timeout: timeout}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	req = withID(req)
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		ctx := b.ctx
		if b.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, b.timeout)
			defer cancel()
		}
		msg := req.Run(ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

func withID(req Request) Request {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	return req
}
