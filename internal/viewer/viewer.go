// Package viewer is the interactive flashcard navigator: a bubbletea shell
// around a pure command grammar and state machine, so the navigation rules
// stay testable without a terminal.
package viewer

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/studydeck/internal/study"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const legend = "Commands: [f]lip  [n]ext  [p]rev  [r]andom  [j]ump <num>  [q]uit"

type Model struct {
	deck      study.Deck
	state     State
	input     textinput.Model
	randIndex func(int) int
}

func New(deck study.Deck) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		deck:      deck,
		input:     ti,
		randIndex: rand.IntN,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")

			var quit bool
			m.state, quit = m.state.Apply(ParseCommand(line), len(m.deck), m.randIndex)
			if quit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	card := m.deck[m.state.Index]

	answer := hiddenStyle.Render("A: [hidden] (press 'f' to flip)")
	if m.state.ShowAnswer {
		answer = answerStyle.Render("A: " + card.Answer)
	}

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n\n%s\n\n%s\n",
		titleStyle.Render(fmt.Sprintf("Flashcard %d/%d", m.state.Index+1, len(m.deck))),
		"-------------------------",
		questionStyle.Render("Q: "+card.Question),
		answer,
		legendStyle.Render(legend),
		m.input.View(),
	)
}

// Run shows the deck until the user quits. Empty decks are a no-op: the
// navigator never starts without at least one card.
func Run(deck study.Deck) error {
	if len(deck) == 0 {
		fmt.Println("No flashcards to view.")
		return nil
	}

	p := tea.NewProgram(New(deck), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("flashcard viewer failed: %w", err)
	}
	return nil
}
