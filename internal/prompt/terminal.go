package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TerminalPrompter is the choice-list menu, rendered with bubbletea
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalPrompter constructs a choice-list menu over a terminal
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

// SelectBranch shows the branches followed by a separator and a Quit entry
func (p *TerminalPrompter) SelectBranch(branches []string) (Selection, error) {
	final, err := p.run(newMenuModel(branches))
	if err != nil {
		return Selection{}, err
	}
	return final.(menuModel).selection(), nil
}

// Confirm asks a yes/no question, defaulting to no
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	final, err := p.run(newConfirmModel(question))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	fmt.Fprintf(p.out, "%s %s\n", question, answerLabel(m.confirmed))
	return m.confirmed, nil
}

// Close releases the input stream
func (p *TerminalPrompter) Close() error {
	return closeInput(p.in)
}

func (p *TerminalPrompter) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run menu: %w", err)
	}
	return final, nil
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
	Yes    key.Binding
	No     key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "ctrl+c")),
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	quitStyle     = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("1"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const separator = "──────────────"

// menuModel is a cursor over the branches plus a trailing Quit entry.
// cursor == len(branches) means Quit is highlighted.
type menuModel struct {
	branches []string
	cursor   int
	chosen   bool
	quit     bool
}

func newMenuModel(branches []string) menuModel {
	return menuModel{branches: branches}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.branches)
	switch {
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < last {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Top):
		m.cursor = 0
	case key.Matches(keyMsg, keys.Bottom):
		m.cursor = last
	case key.Matches(keyMsg, keys.Select):
		if m.cursor == last {
			m.quit = true
		} else {
			m.chosen = true
		}
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Quit):
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.chosen || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Which branch do you want to delete?") + "\n")
	for i, branch := range m.branches {
		b.WriteString(m.renderItem(i, branch, itemStyle) + "\n")
	}
	b.WriteString(itemStyle.Render(dimStyle.Render(separator)) + "\n")
	b.WriteString(m.renderItem(len(m.branches), "Quit", quitStyle) + "\n")
	b.WriteString(dimStyle.Render("↑/↓ move • enter select • q quit") + "\n")
	return b.String()
}

func (m menuModel) renderItem(index int, label string, style lipgloss.Style) string {
	if index == m.cursor {
		return selectedStyle.Render("❯ " + label)
	}
	return style.Render(label)
}

func (m menuModel) selection() Selection {
	if m.chosen && m.cursor < len(m.branches) {
		return Selection{Branch: m.branches[m.cursor]}
	}
	return QuitSelection
}

type confirmModel struct {
	question  string
	confirmed bool
	answered  bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		m.confirmed, m.answered = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.No):
		m.confirmed, m.answered = false, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	return fmt.Sprintf("%s %s ", titleStyle.Render(m.question), dimStyle.Render("[y/N]"))
}

func answerLabel(confirmed bool) string {
	if confirmed {
		return "yes"
	}
	return "no"
}
