package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case "info":
		icon = "ℹ"
	case "success":
		icon = "✓"
	case "warn":
		icon = "!"
	case "error":
		icon = "×"
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

// startNotice shows a transient footer message. The sequence bump
// invalidates clear timers from earlier notices.
func (m *model) startNotice(msg, msgType string, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = msgType

	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
