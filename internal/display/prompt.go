package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/holdem-cli/internal/game"
)

// ErrQuit is returned when the player asks to leave the table
var ErrQuit = errors.New("player quit")

// ParseDecision turns typed input into a decision for the given view.
//
//	f, fold            fold
//	k, check           check
//	c, call            call
//	r 120, raise 120   raise to 120 (bet 120 when nothing to call)
//	a, allin           raise all-in
func ParseDecision(input string, view game.View) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return game.Decision{}, errors.New("enter an action")
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return game.Decision{}, ErrQuit
	case "a", "all", "allin", "all-in", "shove":
		return game.Decision{Action: game.Raise, Amount: view.MaxRaiseTo}, nil
	}

	action, err := game.ParseAction(fields[0])
	if err != nil {
		return game.Decision{}, err
	}
	if action != game.Raise {
		return game.Decision{Action: action}, nil
	}

	target := view.MinRaiseTo
	if len(fields) > 1 {
		amount := strings.TrimPrefix(fields[len(fields)-1], "$")
		target, err = strconv.Atoi(amount)
		if err != nil {
			return game.Decision{}, fmt.Errorf("invalid raise amount %q", amount)
		}
	}
	if target < view.MinRaiseTo && target < view.MaxRaiseTo {
		return game.Decision{}, fmt.Errorf("minimum raise is to %s", money(view.MinRaiseTo))
	}
	target = min(target, view.MaxRaiseTo)
	return game.Decision{Action: game.Raise, Amount: target}, nil
}

// actionModel is the bubbletea model collecting one decision
type actionModel struct {
	view     game.View
	input    textinput.Model
	styles   *Styles
	decision game.Decision
	err      error
	problem  string
	done     bool
}

func newActionModel(view game.View, styles *Styles) actionModel {
	ti := textinput.New()
	ti.Placeholder = "call, check, fold, raise 120, allin"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	return actionModel{view: view, input: ti, styles: styles}
}

func (m actionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m actionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrQuit
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			d, err := ParseDecision(m.input.Value(), m.view)
			if errors.Is(err, ErrQuit) {
				m.err = err
				m.done = true
				return m, tea.Quit
			}
			if err == nil {
				err = m.view.Validate(d)
			}
			if err != nil {
				m.problem = err.Error()
				m.input.SetValue("")
				return m, nil
			}
			m.decision = d
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m actionModel) View() string {
	if m.done {
		return ""
	}
	v := m.view
	var b strings.Builder
	summary := fmt.Sprintf("Your turn: stack %s, pot %s", money(v.Stack), money(v.Pot))
	if v.CanCheck() {
		summary += ", nothing to call"
	} else {
		summary += fmt.Sprintf(", %s to call", money(v.ToCall))
	}
	if v.CanRaise() {
		summary += fmt.Sprintf(", raise to %s-%s", money(v.MinRaiseTo), money(v.MaxRaiseTo))
	}
	b.WriteString(m.styles.Info.Render(summary))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.problem != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.problem))
	}
	b.WriteString("\n")
	return b.String()
}

// confirmModel asks a yes/no question
type confirmModel struct {
	question string
	styles   *Styles
	answer   bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "y", "Y", " ":
		m.answer = true
	case "n", "N", "q", "esc", "ctrl+c":
		m.answer = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return m.styles.Prompt.Render(m.question) + "\n"
}

// Prompt reads the human seat's decisions from the terminal
type Prompt struct {
	in     io.Reader
	out    io.Writer
	styles *Styles
}

// NewPrompt creates a prompt reading from in and drawing to out
func NewPrompt(in io.Reader, out io.Writer, styles *Styles) *Prompt {
	return &Prompt{in: in, out: out, styles: styles}
}

func (p *Prompt) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

// NextAction implements game.HumanProvider
func (p *Prompt) NextAction(ctx context.Context, view game.View) (game.Decision, error) {
	final, err := p.run(ctx, newActionModel(view, p.styles))
	if err != nil {
		return game.Decision{}, err
	}
	m := final.(actionModel)
	if m.err != nil {
		return game.Decision{}, m.err
	}
	return m.decision, nil
}

// Confirm asks a yes/no question; Enter means yes
func (p *Prompt) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := p.run(ctx, confirmModel{question: question, styles: p.styles})
	if err != nil {
		return false, err
	}
	return final.(confirmModel).answer, nil
}
