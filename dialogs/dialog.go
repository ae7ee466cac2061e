// Package dialogs holds the modal overlays (completion banner, help).
package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface the overlays implement. A visible
// dialog owns the keyboard until it hides itself.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsVisible() bool
	Show()
	Hide()
}
