package currencyfield

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-currencyinput/pkg/binding"
	"github.com/goliatone/go-currencyinput/pkg/field"
)

// SubmittedMsg reports the outcome of the submit action started on Enter.
type SubmittedMsg struct {
	Value float64
	Err   error
}

// Model is the Bubble Tea currency field. Use New to construct one; the
// zero value is not usable.
type Model struct {
	opts       Options
	controller *binding.Controller
	buf        *buffer
	spin       spinner.Model

	focused    bool
	submitting bool
	submitErr  error
}

// New builds the widget and seeds it from the provider's current value.
func New(fns ...OptionFn) (Model, error) {
	opts := NewOptions(fns...)
	if opts.Field.ID == "" {
		return Model{}, field.ErrIDRequired
	}

	buf := &buffer{}
	controller, err := binding.New(opts.Field, buf, opts.Provider)
	if err != nil {
		return Model{}, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		opts:       opts,
		controller: controller,
		buf:        buf,
		spin:       s,
		focused:    true,
	}, nil
}

// Value returns the parsed number currently held by the provider.
func (m Model) Value() float64 { return m.controller.Value() }

// DisplayValue returns the canonical formatted text for the current value.
func (m Model) DisplayValue() string { return m.opts.Field.DisplayValue(m.Value()) }

// Submitting reports whether a submit action is in flight.
func (m Model) Submitting() bool { return m.submitting }

// Focus marks the widget focused so keystrokes are accepted.
func (m *Model) Focus() { m.focused = true }

// Blur drops focus and marks the field touched so validation feedback shows.
func (m *Model) Blur() {
	m.focused = false
	m.controller.HandleBlur()
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles one message. Keystrokes are ignored while a submit action
// is in flight so the value cannot change under it.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case SubmittedMsg:
		m.submitting = false
		m.submitErr = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.submitErr = nil

	switch msg.Type {
	case tea.KeyRunes:
		m.buf.insert(msg.Runes)
		m.controller.HandleInput()

	case tea.KeySpace:
		// Spaces never survive the keystroke filter; swallow them so the
		// caret does not jump.

	case tea.KeyBackspace:
		if m.buf.deleteBefore() {
			m.controller.HandleInput()
		}

	case tea.KeyDelete:
		if m.buf.deleteAt() {
			m.controller.HandleInput()
		}

	case tea.KeyLeft:
		m.buf.moveLeft()
	case tea.KeyRight:
		m.buf.moveRight()
	case tea.KeyHome, tea.KeyCtrlA:
		m.buf.moveHome()
	case tea.KeyEnd, tea.KeyCtrlE:
		m.buf.moveEnd()

	case tea.KeyEnter:
		return m.submit()
	}

	return m, nil
}

// submit marks the field touched, re-runs validation, and starts the submit
// action when the value is valid.
func (m Model) submit() (Model, tea.Cmd) {
	m.controller.HandleBlur()
	if m.controller.State().Invalid {
		return m, nil
	}
	if m.opts.OnSubmit == nil {
		return m, nil
	}
	m.submitting = true
	return m, tea.Batch(m.spin.Tick, submitCmd(m.opts.OnSubmit, m.Value()))
}

// View renders the label, the boxed input with an inline caret, and the
// current feedback line.
func (m Model) View() string {
	st := m.opts.Styles
	state := m.controller.State()

	var sb strings.Builder
	sb.WriteString(st.Label.Render(m.opts.Field.DisplayLabel()))
	sb.WriteString("\n")
	sb.WriteString(m.renderBox(state.Touched && state.Invalid))

	switch {
	case m.submitting:
		sb.WriteString("\n")
		sb.WriteString(m.spin.View())
		sb.WriteString(" submitting")
	case state.Touched && state.Invalid:
		sb.WriteString("\n")
		sb.WriteString(st.Error.Render(state.Message))
	case m.submitErr != nil:
		sb.WriteString("\n")
		sb.WriteString(st.Error.Render(m.submitErr.Error()))
	case m.opts.Field.Description != "":
		sb.WriteString("\n")
		sb.WriteString(st.Help.Render(m.opts.Field.Description))
	}
	return sb.String()
}

func (m Model) renderBox(invalid bool) string {
	st := m.opts.Styles
	box := st.Box
	switch {
	case invalid:
		box = st.Invalid
	case m.focused:
		box = st.BoxFocus
	}

	line := m.renderText()
	if glyph := m.opts.Field.Config.Currency; glyph != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, st.Currency.Render(glyph+" "), line)
	}
	return box.Width(m.opts.Width).Render(line)
}

// renderText paints the buffer with the caret as a reversed cell. The caret
// can sit one past the last rune, shown as a reversed space.
func (m Model) renderText() string {
	runes := []rune(m.buf.Text())
	caret := m.buf.Caret()
	if !m.focused {
		return string(runes)
	}
	if caret >= len(runes) {
		return string(runes) + m.opts.Styles.Caret.Render(" ")
	}
	return string(runes[:caret]) +
		m.opts.Styles.Caret.Render(string(runes[caret])) +
		string(runes[caret+1:])
}
