// ============================================================================
// galleon - Längenangaben parsen und umrechnen
// ============================================================================
//
// Package:     converter
// Description: Interactive length converter with live preview and history
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package converter

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/galleon/internal/measure/service"
	"github.com/msto63/galleon/pkg/core/config"
)

const defaultHistorySize = 50

// Options configure the model
type Options struct {
	Prompt      string
	HistorySize int
	// Fields selects the displays shown per conversion
	Fields []string
}

// Model is the converter TUI model
type Model struct {
	ctx context.Context
	svc *service.Service

	// State
	width  int
	height int
	ready  bool
	err    error

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Conversions
	history     []*service.Conversion
	historySize int
	preview     *service.Conversion
	lastValue   string
	fields      []string
}

// NewModel creates a new converter model
func NewModel(ctx context.Context, svc *service.Service, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = opts.Prompt
	if ti.Prompt == "" {
		ti.Prompt = "Input: "
	}
	ti.Placeholder = `z.B. 5' 7 1/4" oder 1.70 m`
	ti.CharLimit = 256
	ti.Focus()

	historySize := opts.HistorySize
	if historySize <= 0 {
		historySize = defaultHistorySize
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = []string{config.FieldMeters, config.FieldMillimeters, config.FieldImperial}
	}

	return Model{
		ctx:         ctx,
		svc:         svc,
		input:       ti,
		history:     []*service.Conversion{},
		historySize: historySize,
		fields:      fields,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}
			m.input.Reset()
			m.preview = nil
			m.lastValue = ""
			return m, m.convert(input)

		case "ctrl+l":
			m.history = []*service.Conversion{}
			m.err = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.viewportHeight())
			m.viewport.KeyMap = historyKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.viewportHeight()
		}
		m.input.Width = msg.Width - 6
		m.updateContent()

	case conversionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.history = append(m.history, msg.conv)
		if len(m.history) > m.historySize {
			m.history = m.history[len(m.history)-m.historySize:]
		}
		m.updateContent()
		m.viewport.GotoBottom()
		return m, nil
	}

	// Update components
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if value := m.input.Value(); value != m.lastValue {
		m.lastValue = value
		m.updatePreview(value)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// History returns the recorded conversions, oldest first
func (m Model) History() []*service.Conversion {
	return m.history
}

// historyKeyMap scrolls the history with keys the input line does not use.
// Letters, space and the ctrl+u/ctrl+d pair belong to the input.
func historyKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

func (m Model) viewportHeight() int {
	// header, preview, input box and help
	h := m.height - 9
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) convert(input string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		conv, err := svc.Convert(ctx, input)
		return conversionMsg{conv: conv, err: err}
	}
}

func (m *Model) updatePreview(value string) {
	if strings.TrimSpace(value) == "" {
		m.preview = nil
		return
	}
	conv, err := m.svc.Convert(m.ctx, value)
	if err != nil {
		m.preview = nil
		return
	}
	m.preview = conv
}

func (m *Model) updateContent() {
	if len(m.history) == 0 {
		m.viewport.SetContent(SubtitleStyle.Render("Noch keine Umrechnungen. Längenangabe eingeben und Enter drücken."))
		return
	}

	blocks := make([]string, 0, len(m.history))
	for _, conv := range m.history {
		blocks = append(blocks, m.renderConversion(conv))
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m Model) renderConversion(conv *service.Conversion) string {
	var s strings.Builder

	s.WriteString(InputEchoStyle.Render("> " + conv.Input))

	if !conv.Valid() {
		for _, e := range conv.Errors {
			s.WriteString("\n")
			s.WriteString(ErrorMessageStyle.Render(e))
		}
		return s.String()
	}

	for _, f := range m.fields {
		label, value := fieldDisplay(conv, f)
		if label == "" {
			continue
		}
		s.WriteString("\n")
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label+":"), ValueStyle.Render(value)))
	}

	if len(conv.Dropped) > 0 {
		s.WriteString("\n")
		s.WriteString(DroppedStyle.Render("ignoriert: " + strings.Join(conv.Dropped, ", ")))
	}

	return s.String()
}

func fieldDisplay(conv *service.Conversion, field string) (label, value string) {
	switch field {
	case config.FieldMeters:
		return "Meters", conv.Meters
	case config.FieldMillimeters:
		return "Millimeters", conv.Millimeters
	case config.FieldImperial:
		return "Imperial", conv.Imperial
	default:
		return "", ""
	}
}

func (m Model) renderPreview() string {
	if m.preview == nil {
		return ""
	}
	if !m.preview.Valid() {
		return ErrorMessageStyle.Render(strings.Join(m.preview.Errors, "; "))
	}
	return PreviewStyle.Render(fmt.Sprintf("= %s | %s | %s", m.preview.Meters, m.preview.Millimeters, m.preview.Imperial))
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	// Header
	s.WriteString(TitleStyle.Render("galleon"))
	s.WriteString(" ")
	s.WriteString(SubtitleStyle.Render("Längenangaben umrechnen"))
	s.WriteString("\n\n")

	// History
	s.WriteString(m.viewport.View())
	s.WriteString("\n\n")

	// Preview or error
	if m.err != nil {
		s.WriteString(RenderError(m.err.Error()))
	} else {
		s.WriteString(m.renderPreview())
	}
	s.WriteString("\n")

	// Input
	s.WriteString(FocusedInputStyle.Render(m.input.View()))

	// Footer
	s.WriteString("\n")
	s.WriteString(RenderHelp("Enter: umrechnen • ↑/↓: blättern • Ctrl+L: Verlauf leeren • Esc: beenden"))

	return s.String()
}
