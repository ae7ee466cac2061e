package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help lists the key bindings passed in by the parent.
type Help struct {
	visible  bool
	bindings []key.Binding
}

// NewHelpDialog creates a help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?":
			d.visible = false
			return d, nil
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		Padding(1, 2).
		Width(44)

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-10s %s", h.Key, h.Desc))
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	return box.Render(strings.Join(lines, "\n") + "\n\n" + hint)
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d Help) IsVisible() bool { return d.visible }
