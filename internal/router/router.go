// Package router switches between wizard screens. Steps advance with
// ReplaceScreenMsg rather than a push, so a completed step is gone from
// the stack and no key can navigate back to it; once the question set
// is fetched the contact form is not reachable again without starting
// over.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/giftolexia/screenterm/internal/screen"
)

// ReplaceScreenMsg swaps the active screen for the next wizard step.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PushScreenMsg lays an overlay screen over the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg removes the top overlay. Ignored at depth 1.
type PopScreenMsg struct{}

// Router holds the screen stack.
type Router struct {
	stack []screen.Screen
}

// New creates a Router showing initial.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Active returns the screen on top, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the stack depth.
func (r *Router) Depth() int { return len(r.stack) }

// Replace swaps the top screen and initializes the replacement.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		r.stack = []screen.Screen{s}
	} else {
		r.stack[len(r.stack)-1] = s
	}
	return s.Init()
}

// Push adds an overlay and initializes it.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top overlay. The base screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Update routes navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen's content area.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
