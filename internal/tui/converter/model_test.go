package converter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/galleon/internal/measure/service"
	"github.com/msto63/galleon/pkg/core/config"
	"github.com/msto63/galleon/pkg/core/logging"
	"github.com/msto63/galleon/pkg/length"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	svc, err := service.NewService(service.Config{Logger: logging.Discard()})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return NewModel(context.Background(), svc, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// submit presses enter and feeds the resulting conversion back
func submit(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return m
	}
	m, _ = update(t, m, cmd())
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t, Options{})

	if m.input.Prompt != "Input: " {
		t.Errorf("Prompt = %q, want %q", m.input.Prompt, "Input: ")
	}
	if m.historySize != defaultHistorySize {
		t.Errorf("historySize = %d, want %d", m.historySize, defaultHistorySize)
	}
	if len(m.fields) != 3 {
		t.Errorf("fields = %v, want all three", m.fields)
	}
	if !m.input.Focused() {
		t.Error("input should be focused")
	}
	if m.View() != "Lade..." {
		t.Errorf("View() before sizing = %q", m.View())
	}
}

func TestModel_LivePreview(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(t, m, "1 ft 6 in")

	if m.preview == nil {
		t.Fatal("preview not set while typing")
	}
	if m.preview.Imperial != `1' 6"` {
		t.Errorf("preview Imperial = %q", m.preview.Imperial)
	}
	if len(m.History()) != 0 {
		t.Errorf("history = %d entries before enter", len(m.History()))
	}
}

func TestModel_EnterAppendsHistory(t *testing.T) {
	m := newTestModel(t, Options{})

	m = typeText(t, m, "1 m")
	m = submit(t, m)

	history := m.History()
	if len(history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(history))
	}
	if history[0].Input != "1 m" || history[0].Meters != "1.000m" {
		t.Errorf("history[0] = %+v", history[0])
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}
	if m.preview != nil {
		t.Error("preview not cleared after enter")
	}
}

func TestModel_EnterOnBlankInput(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(t, m, "   ")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on blank input should not convert")
	}
	if len(m.History()) != 0 {
		t.Errorf("history = %d entries, want 0", len(m.History()))
	}
}

func TestModel_InvalidInputIsKept(t *testing.T) {
	m := newTestModel(t, Options{})

	m = typeText(t, m, "2 ft 3")
	if m.preview == nil || m.preview.Valid() {
		t.Fatal("preview should show the uneven token error")
	}

	m = submit(t, m)
	history := m.History()
	if len(history) != 1 || history[0].Valid() {
		t.Fatalf("history = %+v", history)
	}
	if history[0].Errors[0] != length.MsgUnevenTokens {
		t.Errorf("Errors = %q", history[0].Errors)
	}
}

func TestModel_HistoryIsBounded(t *testing.T) {
	m := newTestModel(t, Options{HistorySize: 2})

	for _, input := range []string{"1 ft", "2 ft", "3 ft"} {
		m = typeText(t, m, input)
		m = submit(t, m)
	}

	history := m.History()
	if len(history) != 2 {
		t.Fatalf("history = %d entries, want 2", len(history))
	}
	if history[0].Input != "2 ft" || history[1].Input != "3 ft" {
		t.Errorf("history = [%q %q], want oldest dropped", history[0].Input, history[1].Input)
	}
}

func TestModel_ClearHistory(t *testing.T) {
	m := newTestModel(t, Options{})
	m = typeText(t, m, "1 ft")
	m = submit(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if len(m.History()) != 0 {
		t.Errorf("history = %d entries after ctrl+l", len(m.History()))
	}
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, Options{})
			_, cmd := update(t, m, tt.key)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command returned %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestModel_TypingDoesNotScrollHistory(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 14})

	for i := 1; i <= 10; i++ {
		m = typeText(t, m, fmt.Sprintf("%d ft", i))
		m = submit(t, m)
	}
	bottom := m.viewport.YOffset
	if bottom == 0 {
		t.Fatal("history should overflow the viewport")
	}

	for _, text := range []string{"k", "j", "b", "f", "u", "d", "h", "l"} {
		m = typeText(t, m, text)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if m.viewport.YOffset != bottom {
		t.Errorf("YOffset = %d after typing, want %d", m.viewport.YOffset, bottom)
	}
	if m.input.Value() != "kjbfudhl " {
		t.Errorf("input = %q", m.input.Value())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.viewport.YOffset != bottom-1 {
		t.Errorf("YOffset = %d after up, want %d", m.viewport.YOffset, bottom-1)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.viewport.YOffset != bottom {
		t.Errorf("YOffset = %d after pgdown, want %d", m.viewport.YOffset, bottom)
	}
}

func TestModel_ConversionError(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m, _ = update(t, m, conversionMsg{err: errors.New("boom")})
	if m.err == nil {
		t.Fatal("err not recorded")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("View() does not show the error")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, Options{Fields: []string{config.FieldImperial}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	m = typeText(t, m, "2 ft 1/7")
	m = submit(t, m)

	view := m.View()
	for _, want := range []string{"galleon", "> 2 ft 1/7", "Imperial:", "2'", "1/7"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Meters:") {
		t.Errorf("View() shows unselected field:\n%s", view)
	}
}
