package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	flex "github.com/grindlemire/go-flex"
)

func TestModel_StructuralKeyRebuilds(t *testing.T) {
	m := attachedModel(t)

	m = update(t, m, keyMsg("a"))
	if m.state.Params.Axis != flex.Vertical {
		t.Errorf("expected axis to toggle to vertical, got %v", m.state.Params.Axis)
	}
	if m.rebuilds != 1 {
		t.Errorf("expected 1 rebuild after axis change, got %d", m.rebuilds)
	}

	// Every structural key should rebuild the demo subtree exactly once.
	for i, k := range []string{"c", "m", "f", "s", "+", "-", "x", "X", "d"} {
		m = update(t, m, keyMsg(k))
		if m.rebuilds != i+2 {
			t.Errorf("key %q: expected %d rebuilds, got %d", k, i+2, m.rebuilds)
		}
	}
}

func TestModel_DataKeysDoNotRebuild(t *testing.T) {
	m := attachedModel(t)

	m = update(t, m, keyMsg("up"))
	m = update(t, m, keyMsg("up"))
	m = update(t, m, keyMsg("e"))

	if m.rebuilds != 0 {
		t.Errorf("data keys should not rebuild, got %d rebuilds", m.rebuilds)
	}
	if got := m.state.Demo.Volume; got < 0.59 || got > 0.61 {
		t.Errorf("expected volume near 0.6, got %v", got)
	}
	if !m.state.Demo.Enabled {
		t.Error("expected demo to be enabled after e")
	}
}

func TestModel_UnboundKeyIsIgnored(t *testing.T) {
	m := attachedModel(t)
	before := m.state

	m = update(t, m, keyMsg("z"))
	if m.state != before {
		t.Error("unbound key should not change state")
	}
	if m.rebuilds != 0 {
		t.Errorf("unbound key should not rebuild, got %d", m.rebuilds)
	}
}

func TestModel_VolumeClamps(t *testing.T) {
	m := attachedModel(t)

	for i := 0; i < 20; i++ {
		m = update(t, m, keyMsg("up"))
	}
	if m.state.Demo.Volume > 1 {
		t.Errorf("volume should clamp at 1, got %v", m.state.Demo.Volume)
	}

	for i := 0; i < 40; i++ {
		m = update(t, m, keyMsg("down"))
	}
	if m.state.Demo.Volume < 0 {
		t.Errorf("volume should clamp at 0, got %v", m.state.Demo.Volume)
	}
}

func TestModel_SpacerSizeFloorsAtZero(t *testing.T) {
	m := attachedModel(t)

	for i := 0; i < 10; i++ {
		m = update(t, m, keyMsg("-"))
	}
	if m.state.Params.SpacerSize != 0 {
		t.Errorf("spacer size should floor at 0, got %v", m.state.Params.SpacerSize)
	}

	// A zero-length spacer is still a valid item, so the next view must
	// not panic.
	_ = m.View()
}

func TestModel_KeyBeforeAttachOnlyUpdatesState(t *testing.T) {
	m := newModel()

	mm, _ := m.Update(keyMsg("a"))
	m = mm.(model)

	if m.state.Params.Axis != flex.Vertical {
		t.Errorf("expected axis toggle before attach, got %v", m.state.Params.Axis)
	}
	if m.rebuilds != 0 {
		t.Errorf("no tree exists yet, got %d rebuilds", m.rebuilds)
	}
}

func TestModel_ViewShowsRebuildCount(t *testing.T) {
	m := attachedModel(t)
	m = update(t, m, keyMsg("a"))

	view := m.View()
	if !strings.Contains(view, "rebuilds: 1") {
		t.Errorf("expected rebuild count in view, got:\n%s", view)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := attachedModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %v", msg)
	}
}

func attachedModel(t *testing.T) model {
	t.Helper()
	m := newModel()
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(model)
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	mm, _ := m.Update(msg)
	return mm.(model)
}

// keyMsg creates a tea.KeyMsg for testing. Named keys map to their
// KeyType; everything else is typed as runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
