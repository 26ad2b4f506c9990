package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"trio/internal/console"
	"trio/internal/logging"
	"trio/internal/menu"
	"trio/internal/tasks"
)

type screen int

const (
	screenMenu screen = iota
	screenInput
	screenResult
)

// Options configures a Model.
type Options struct {
	A         tasks.Matrix2x3
	B         tasks.Matrix3x4
	MaxLength int
	Styles    Styles
}

// Model is the bubbletea model for the menu. It moves between the menu,
// an input screen for the word and digit tasks, and a result screen.
type Model struct {
	opts   Options
	styles Styles

	screen screen
	cursor int
	choice menu.Choice
	input  textinput.Model

	result  string
	failed  bool
	product *tasks.Matrix2x4

	quitting bool
}

// NewModel creates the model on the menu screen.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 60

	return Model{
		opts:   opts,
		styles: opts.Styles,
		input:  ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(key)
	case screenInput:
		return m.updateInput(key)
	default:
		return m.updateResult(key)
	}
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menu.Items)-1 {
			m.cursor++
		}
	case "enter":
		return m.selectChoice(menu.Items[m.cursor].Choice)
	default:
		if choice, err := menu.ParseChoice(key.String()); err == nil {
			return m.selectChoice(choice)
		}
	}
	return m, nil
}

func (m Model) selectChoice(choice menu.Choice) (tea.Model, tea.Cmd) {
	logging.Get(logging.CategoryUI).Debug("task selected", zap.Stringer("choice", choice))
	m.choice = choice
	for i, it := range menu.Items {
		if it.Choice == choice {
			m.cursor = i
		}
	}

	switch choice {
	case menu.ChoiceWord:
		m.input.Reset()
		m.input.Placeholder = "type a sentence"
		m.input.CharLimit = m.opts.MaxLength
		m.screen = screenInput
		cmd := m.input.Focus()
		return m, cmd
	case menu.ChoiceDigits:
		m.input.Reset()
		m.input.Placeholder = "1234"
		m.input.CharLimit = 12
		m.screen = screenInput
		cmd := m.input.Focus()
		return m, cmd
	}

	done := logging.AuditTimer(choice.String())
	product := tasks.Multiply(m.opts.A, m.opts.B)
	done(menu.OutcomeComputed, product.String())
	m.product = &product
	m.result = menu.FormatMatrix(product)
	m.failed = false
	m.screen = screenResult
	return m, nil
}

func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		m.input.Blur()
		m.submit(m.input.Value())
		m.screen = screenResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// submit runs the selected task on value and stores the rendered result.
func (m *Model) submit(value string) {
	m.product = nil
	done := logging.AuditTimer(m.choice.String())

	switch m.choice {
	case menu.ChoiceWord:
		word, ok := tasks.LongestEvenWord(value)
		done(menu.WordOutcome(word, ok))
		m.result = menu.FormatWord(word, ok)
		m.failed = !ok
	case menu.ChoiceDigits:
		err := tasks.ErrOutOfRange
		if n, perr := console.ParseLeadingInt(value); perr == nil {
			err = tasks.ValidateUniqueDigits(n)
		}
		done(menu.DigitsOutcome(err))
		m.result = menu.FormatDigits(err)
		m.failed = err != nil
	}
}

func (m Model) updateResult(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	m.screen = screenMenu
	m.result = ""
	m.product = nil
	return m, nil
}

// Result returns the last rendered result message, empty when none.
func (m Model) Result() string {
	return m.result
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("trio"))
	sb.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		sb.WriteString(m.viewMenu())
	case screenInput:
		sb.WriteString(m.viewInput())
	default:
		sb.WriteString(m.viewResult())
	}
	return sb.String()
}

func (m Model) viewMenu() string {
	var sb strings.Builder
	for i, it := range menu.Items {
		line := fmt.Sprintf("%d. %s", int(it.Choice), it.Title)
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString(m.styles.Body.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Footer.Render("↑/↓ or 1-3 to choose • enter to run • q to quit"))
	return sb.String()
}

func (m Model) viewInput() string {
	it, _ := menu.Lookup(m.choice)
	prompt := menu.SentencePrompt
	if m.choice == menu.ChoiceDigits {
		prompt = menu.NumberPrompt
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(it.Title))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Prompt.Render(strings.TrimSpace(prompt)))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("enter to submit • esc to go back"))
	return sb.String()
}

func (m Model) viewResult() string {
	var sb strings.Builder
	if m.product != nil {
		sb.WriteString(NewMatrixTable(menu.MatrixHeader, m.product.Rows()).View(m.styles))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(m.product.String()))
	} else if m.failed {
		sb.WriteString(m.styles.Error.Render(m.result))
	} else {
		sb.WriteString(m.styles.Success.Render(m.result))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("any key for the menu • q to quit"))
	return sb.String()
}
