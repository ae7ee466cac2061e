package dialogs

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DismissedMsg is sent to the parent when the user dismisses the
// completion banner. Dismissal is purely visual; the countdown stays
// completed until reset.
type DismissedMsg struct{}

// Complete is the banner shown once the countdown reaches zero. It
// stays up until explicitly dismissed.
type Complete struct {
	visible bool
	started string // the duration the countdown began from, preformatted
}

// NewCompleteDialog creates the banner for a countdown that began from
// the given (already formatted) duration.
func NewCompleteDialog(started string) *Complete {
	return &Complete{
		visible: true,
		started: started,
	}
}

func (d Complete) Init() tea.Cmd { return nil }

func (d *Complete) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc":
			log.Println("CompleteDialog: dismissed")
			d.visible = false
			return d, func() tea.Msg { return DismissedMsg{} }
		}
	}
	return d, nil
}

func (d Complete) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Padding(1, 3).
		Align(lipgloss.Center)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208")).
		Render("TIME'S UP")

	body := fmt.Sprintf("%s has elapsed", d.started)

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to dismiss")

	return box.Render(title + "\n\n" + body + "\n\n" + hint)
}

func (d *Complete) Show() {
	d.visible = true
}

func (d *Complete) Hide() {
	d.visible = false
}

func (d Complete) IsVisible() bool { return d.visible }
