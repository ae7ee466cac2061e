package main

import (
	"github.com/andareed/tickdown/countdown"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	if !m.ui.ready {
		return "loading..."
	}

	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.timeView(),
		m.statusView(),
		m.inputView(),
	))

	if m.dialog != nil && m.dialog.IsVisible() {
		panel = lipgloss.JoinVertical(lipgloss.Center, panel, m.dialog.View())
	}

	footer := m.footerView()
	bodyHeight := m.ui.height - lipgloss.Height(footer) - 2
	body := lipgloss.Place(m.ui.width-4, bodyHeight, lipgloss.Center, lipgloss.Center, panel)

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m *model) timeView() string {
	style := timeStyle
	switch m.engine.Status() {
	case countdown.Running:
		style = timeRunningStyle
	case countdown.Completed:
		style = timeCompletedStyle
	}
	return style.Render(m.engine.Remaining().String())
}

func (m *model) statusView() string {
	return statusStyle.Render(m.engine.Status().String())
}

func (m *model) inputView() string {
	if m.ui.mode != modeInput {
		return ""
	}
	return inputStyle.Render(m.input.View())
}

func (m *model) footerView() string {
	st := FooterState{
		Status:     m.engine.Status(),
		Notice:     m.ui.noticeMsg,
		NoticeType: m.ui.noticeType,
		Legend:     m.legendLine(),
	}
	return RenderFooter(m.ui.width-4, st, DefaultFooterStyles())
}

func (m *model) legendLine() string {
	if m.ui.mode == modeInput {
		return "enter/esc: done"
	}
	switch m.engine.Status() {
	case countdown.Running:
		return "(s)pause  (r)eset  (y)copy  (q)uit"
	case countdown.Completed:
		return "(r)eset  (y)copy  (q)uit"
	}
	return "(s)tart  (i)nput  (1-6)presets  (r)eset  (?)help  (q)uit"
}
