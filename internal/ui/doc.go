// Package ui contains the Bubble Tea program that browses Hacker News. The
// Model type focuses on message orchestration, while layers own their input
// handling and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function. Messages without a handler are offered to the visible layers
//     (spinner ticks, for example).
//   - Key presses go through the global event chain first. Its alt bindings
//     and ctrl+c run before the layer; q runs after it. The top layer's own
//     chain then runs pre bindings, its default handling and post bindings.
//   - Key handlers never touch the layer stack. They return an effect message
//     (drillDownMsg, openLinkMsg, showSearchMsg, ...) which the model applies
//     through the same registry once dispatch has returned.
//
// Layer stack:
//   - internal/ui/layer.Stack holds the views; the top entry receives input.
//     Navigation replaces the top layer in one step, so the stack is never
//     observed empty.
//   - Drilling into a story swaps the list for a loading placeholder and runs
//     the fetch on the command bus. The completion carries the placeholder's
//     identity and replaces exactly that layer; when the user has moved on in
//     the meantime the result is traced as stale and dropped.
//
// State ownership:
//   - List focus and the numeric goto prefix live in internal/ui/state.
//   - Fetched lists are cached per category in internal/state.StoryStore so
//     back navigation restores focus without refetching and search can filter
//     them locally.
//   - Fetches run off the UI loop through internal/ui/command; the Source they
//     call is handed to NewModel explicitly.
package ui
