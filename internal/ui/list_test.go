package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/hn-tui/internal/logging"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	tea "github.com/charmbracelet/bubbletea"
)

func TestGotoStoryFocusesNumberedItem(t *testing.T) {
	env := newTestEnv(t, makeItems(15))
	env.keys("1", "2")
	if !strings.Contains(env.h.View(), ":12") {
		t.Fatalf("expected pending digits in the status line:\n%s", env.h.View())
	}
	env.keys("g")
	sl := env.storyLayer(t)
	if sl.list.FocusIndex() != 11 {
		t.Fatalf("expected focus 11, got %d", sl.list.FocusIndex())
	}
	if !sl.raw.Empty() {
		t.Fatalf("expected raw buffer cleared, got %q", sl.raw.String())
	}
}

func TestGotoZeroCancels(t *testing.T) {
	env := newTestEnv(t, makeItems(15))
	env.keys("j", "j", "0", "g")
	sl := env.storyLayer(t)
	if sl.list.FocusIndex() != 2 {
		t.Fatalf("expected focus unchanged at 2, got %d", sl.list.FocusIndex())
	}
	if !sl.raw.Empty() {
		t.Fatalf("expected raw buffer cleared after cancel")
	}
}

func TestGotoOutOfRangeLeavesFocus(t *testing.T) {
	env := newTestEnv(t, makeItems(15))
	env.keys("j", "9", "9", "g")
	sl := env.storyLayer(t)
	if sl.list.FocusIndex() != 1 {
		t.Fatalf("expected focus unchanged at 1, got %d", sl.list.FocusIndex())
	}
	if !sl.raw.Empty() {
		t.Fatalf("expected raw buffer cleared after out of range goto")
	}
}

func TestGotoWithoutDigitsIsNotHandled(t *testing.T) {
	s := newListState("test", makeItems(3), 1, nil)
	res := s.handleKey(listChain(), keyMsg("g"))
	if res.IsConsumed() {
		t.Fatalf("expected g without digits to fall through")
	}
	if s.list.FocusIndex() != 1 {
		t.Fatalf("expected focus unchanged, got %d", s.list.FocusIndex())
	}
}

func TestNonDigitKeyClearsRawBuffer(t *testing.T) {
	s := newListState("test", makeItems(5), 0, nil)
	chain := listChain()
	s.handleKey(chain, keyMsg("3"))
	s.handleKey(chain, keyMsg("j"))
	if !s.raw.Empty() {
		t.Fatalf("expected raw buffer cleared by j, got %q", s.raw.String())
	}
	if s.list.FocusIndex() != 1 {
		t.Fatalf("expected j to move focus to 1, got %d", s.list.FocusIndex())
	}
	s.handleKey(chain, keyMsg("2"))
	s.handleKey(chain, keyMsg("x"))
	if !s.raw.Empty() {
		t.Fatalf("expected an unhandled key to clear the buffer too")
	}
}

func TestEnterProducesDrillDownEffect(t *testing.T) {
	s := newListState("test", makeItems(3), 2, nil)
	res := s.handleKey(listChain(), keyMsg("enter"))
	drill, ok := res.Effect.(drillDownMsg)
	if !res.IsConsumed() || !ok {
		t.Fatalf("expected consumed drill-down, got %#v", res)
	}
	if drill.item.ID != 102 {
		t.Fatalf("expected focused item 102, got %d", drill.item.ID)
	}

	empty := newListState("empty", nil, 0, nil)
	if res := empty.handleKey(listChain(), keyMsg("enter")); res.IsConsumed() {
		t.Fatalf("expected enter on an empty list to fall through")
	}
}

func TestOpenLinkWithoutURLConsumesWithoutLaunch(t *testing.T) {
	items := makeItems(2)
	items[0].URL = ""
	env := newTestEnv(t, items)
	env.keys("O")
	if len(env.opened) != 0 {
		t.Fatalf("expected no launch, got %v", env.opened)
	}
	if env.h.Quit() {
		t.Fatalf("unexpected quit")
	}

	s := newListState("test", items, 0, nil)
	res := s.handleKey(listChain(), keyMsg("O"))
	if !res.IsConsumed() || res.Effect != nil {
		t.Fatalf("expected O on a text post to be consumed without effect, got %#v", res)
	}
}

func TestOpenLinkLaunchesBrowser(t *testing.T) {
	env := newTestEnv(t, makeItems(2))
	env.keys("j", "O")
	if len(env.opened) != 1 || env.opened[0] != "https://example.com/2" {
		t.Fatalf("expected launch of story 2 link, got %v", env.opened)
	}
}

func TestOpenLinkFailureIsOnlyLogged(t *testing.T) {
	env := newTestEnv(t, makeItems(2))
	path := filepath.Join(t.TempDir(), "warn.log")
	logging.Configure(path)
	env.openErr = errors.New("no browser")
	before := env.storyLayer(t)
	env.keys("O")
	if env.storyLayer(t) != before {
		t.Fatalf("expected the story list to stay on top")
	}
	logging.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "no browser") {
		t.Fatalf("expected launch failure to be logged, got %q", data)
	}
}

func TestCopyLinkUsesDiscussionPageForTextPosts(t *testing.T) {
	items := makeItems(1)
	items[0].URL = ""
	env := newTestEnv(t, items)
	env.keys("y")
	want := "https://news.ycombinator.com/item?id=100"
	if len(env.copied) != 1 || env.copied[0] != want {
		t.Fatalf("expected %s copied, got %v", want, env.copied)
	}
	if !strings.Contains(env.h.View(), "Copied "+want) {
		t.Fatalf("expected copy confirmation in view")
	}
}

func TestListChainExtensionLeavesBaseUntouched(t *testing.T) {
	base := listChain()
	extended := base.Pre(listKeys.Up, func(*listState, tea.KeyMsg) event.Result {
		return event.HandledWith(quitMsg{reason: "intercepted"})
	})
	if extended.Len() != base.Len()+1 {
		t.Fatalf("expected one extra binding, got %d vs %d", extended.Len(), base.Len())
	}
	s := newListState("test", makeItems(3), 1, nil)
	if res := s.handleKey(extended, keyMsg("up")); res.Effect == nil {
		t.Fatalf("expected pre binding to intercept up")
	}
	if s.list.FocusIndex() != 1 {
		t.Fatalf("expected pre binding to stop default movement")
	}
	s.handleKey(base, keyMsg("up"))
	if s.list.FocusIndex() != 0 {
		t.Fatalf("expected base chain to keep default movement, got %d", s.list.FocusIndex())
	}
}

func TestListViewKeepsFocusVisible(t *testing.T) {
	s := newListState("test", makeItems(20), 0, nil)
	s.now = func() time.Time { return testNow }
	s.handleKey(listChain(), keyMsg("end"))
	out := s.view(12)
	if !strings.Contains(out, "20. Story 20") {
		t.Fatalf("expected last story rendered:\n%s", out)
	}
	if strings.Contains(out, "1. Story 1\n") {
		t.Fatalf("expected first story scrolled out:\n%s", out)
	}
}
