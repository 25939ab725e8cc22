package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/giftolexia/screenterm/internal/screen"
)

type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd { s.inited = true; return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.name }
func (s *stubScreen) Title() string        { return s.name }
func (s *stubScreen) StepIndex() int       { return 0 }

func TestReplaceSwapsWithoutGrowingStack(t *testing.T) {
	first := &stubScreen{name: "contact"}
	second := &stubScreen{name: "questionnaire"}
	r := New(first)

	r.Update(ReplaceScreenMsg{Screen: second})

	if r.Depth() != 1 {
		t.Errorf("replace must not grow the stack, depth %d", r.Depth())
	}
	if r.Active() != second {
		t.Error("replacement should be active")
	}
	if !second.inited {
		t.Error("replacement should be initialized")
	}

	// The replaced screen is gone: popping cannot bring it back.
	r.Update(PopScreenMsg{})
	if r.Active() != second {
		t.Error("the base screen is never popped")
	}
}

func TestPushAndPop(t *testing.T) {
	base := &stubScreen{name: "base"}
	overlay := &stubScreen{name: "overlay"}
	r := New(base)

	r.Update(PushScreenMsg{Screen: overlay})
	if r.Depth() != 2 || r.Active() != overlay {
		t.Fatal("overlay should be on top")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != base {
		t.Error("pop should return to the base screen")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{name: "contact"})
	if got := r.View(80, 24); got != "contact" {
		t.Errorf("unexpected view %q", got)
	}
}
