package main

import (
	"github.com/andareed/tickdown/countdown"
	"github.com/charmbracelet/lipgloss"
)

type FooterState struct {
	Status     countdown.Status
	Notice     string
	NoticeType string
	Legend     string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	IdlePillBG lipgloss.Color
	RunPillBG  lipgloss.Color
	DonePillBG lipgloss.Color
	PillFG     lipgloss.Color
	TextFG     lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		IdlePillBG: lipgloss.Color("#5f5f5f"),
		RunPillBG:  lipgloss.Color("#2e8b57"),
		DonePillBG: lipgloss.Color("#ff9f1c"),
		PillFG:     lipgloss.Color("#000000"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

// RenderFooter draws the single-line status bar: status pill, transient
// notice, and the key legend right-aligned into whatever space is left.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}

	pillBG := styles.IdlePillBG
	switch st.Status {
	case countdown.Running:
		pillBG = styles.RunPillBG
	case countdown.Completed:
		pillBG = styles.DonePillBG
	}
	pill := lipgloss.NewStyle().
		Background(pillBG).
		Foreground(styles.PillFG).
		Padding(0, 1).
		Render(st.Status.String())

	notice := noticeView(st.Notice, st.NoticeType)
	legend := lipgloss.NewStyle().Foreground(styles.LegendFG).Render(st.Legend)

	left := pill
	if notice != "" {
		left = lipgloss.JoinHorizontal(lipgloss.Top, pill, " ", notice)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(legend)
	if gap < 1 {
		// legend loses when the terminal is too narrow
		legend = ""
		gap = max(1, width-lipgloss.Width(left))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), legend)
	return lipgloss.NewStyle().
		Background(styles.BarBG).
		Foreground(styles.TextFG).
		Width(width).
		Render(bar)
}

func noticeView(msg, kind string) string {
	text := noticeText(msg, kind)
	if text == "" {
		return ""
	}
	switch kind {
	case "success":
		return noticeSuccessStyle.Render(text)
	case "warn":
		return noticeWarnStyle.Render(text)
	case "error":
		return noticeErrorStyle.Render(text)
	default:
		return noticeInfoStyle.Render(text)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
