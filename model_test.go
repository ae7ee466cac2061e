package main

import (
	"testing"

	"github.com/andareed/tickdown/alert"
	"github.com/andareed/tickdown/countdown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(initial countdown.Duration) *model {
	return newModel(initial, alert.Nop{})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press runs a key through Update and returns the same model.
func press(t *testing.T, m *model, s string) tea.Cmd {
	t.Helper()
	updated, cmd := m.Update(keyMsg(s))
	require.Same(t, m, updated)
	return cmd
}

func TestStartSchedulesTicks(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 1})

	cmd := press(t, m, "s")

	require.NotNil(t, cmd)
	assert.Equal(t, countdown.Running, m.engine.Status())

	m.Update(tickMsg{seq: m.ui.tickSeq})
	assert.Equal(t, countdown.Duration{Seconds: 59}, m.engine.Remaining())
}

func TestStartOnZeroDurationShowsNotice(t *testing.T) {
	m := testModel(countdown.Duration{})

	press(t, m, "s")

	assert.Equal(t, countdown.Idle, m.engine.Status())
	assert.Equal(t, "Nothing to count down", m.ui.noticeMsg)
}

func TestPauseInvalidatesOutstandingTick(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 1})
	press(t, m, "s")
	staleSeq := m.ui.tickSeq

	press(t, m, "p")
	require.Equal(t, countdown.Idle, m.engine.Status())

	m.Update(tickMsg{seq: staleSeq})
	assert.Equal(t, countdown.Duration{Minutes: 1}, m.engine.Remaining())
}

func TestPauseWhileIdleIsNoOp(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 1})

	press(t, m, "p")

	assert.Equal(t, countdown.Idle, m.engine.Status())
	assert.Equal(t, countdown.Duration{Minutes: 1}, m.engine.Remaining())
}

func TestCompletionRaisesBannerOnce(t *testing.T) {
	m := testModel(countdown.Duration{Seconds: 1})
	press(t, m, "s")

	m.Update(tickMsg{seq: m.ui.tickSeq})
	require.Equal(t, countdown.Running, m.engine.Status())
	require.Nil(t, m.dialog)

	m.Update(tickMsg{seq: m.ui.tickSeq})
	assert.Equal(t, countdown.Completed, m.engine.Status())
	require.NotNil(t, m.dialog)
	assert.True(t, m.dialog.IsVisible())
}

func TestDismissKeepsCompleted(t *testing.T) {
	m := testModel(countdown.Duration{Seconds: 1})
	press(t, m, "s")
	m.Update(tickMsg{seq: m.ui.tickSeq})
	m.Update(tickMsg{seq: m.ui.tickSeq})
	require.NotNil(t, m.dialog)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.dialog)
	assert.Equal(t, countdown.Completed, m.engine.Status())
	assert.Equal(t, countdown.Duration{}, m.engine.Remaining())
}

func TestPresetWhileRunningRejected(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 1})
	press(t, m, "s")

	press(t, m, "3")

	assert.Equal(t, countdown.Running, m.engine.Status())
	assert.Equal(t, countdown.Duration{Minutes: 1}, m.engine.Remaining())
	assert.Equal(t, "Preset ignored while running", m.ui.noticeMsg)
}

func TestPresetWhileIdleReplacesDurationAndText(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 1})

	press(t, m, "4")

	assert.Equal(t, countdown.Duration{Minutes: 15}, m.engine.Remaining())
	assert.Equal(t, "15:00", m.input.Value())
}

func TestResetRederivesFromInputText(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 5})
	press(t, m, "s")
	m.Update(tickMsg{seq: m.ui.tickSeq})
	require.Equal(t, countdown.Duration{Minutes: 4, Seconds: 59}, m.engine.Remaining())

	press(t, m, "r")

	assert.Equal(t, countdown.Idle, m.engine.Status())
	assert.Equal(t, countdown.Duration{Minutes: 5}, m.engine.Remaining())
}

func TestEditWhileRunningRefused(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 1})
	press(t, m, "s")

	press(t, m, "i")

	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, "Pause before editing", m.ui.noticeMsg)
}

func TestInputModeParsesOnChange(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 5})
	press(t, m, "i")
	require.Equal(t, modeInput, m.ui.mode)

	// wipe the seeded text, then type a new duration
	m.input.SetValue("")
	for _, r := range "1:02:03" {
		press(t, m, string(r))
	}

	assert.Equal(t, countdown.Duration{Hours: 1, Minutes: 2, Seconds: 3}, m.engine.Remaining())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeView, m.ui.mode)
}

func TestStaleNoticeClearIgnored(t *testing.T) {
	m := testModel(countdown.Duration{})
	press(t, m, "s") // raises a notice
	first := m.ui.noticeSeq
	press(t, m, "s") // raises another, bumping the sequence

	m.Update(clearNoticeMsg{id: first})
	assert.Equal(t, "Nothing to count down", m.ui.noticeMsg)

	m.Update(clearNoticeMsg{id: m.ui.noticeSeq})
	assert.Equal(t, "", m.ui.noticeMsg)
}

func TestViewShowsRemainingTime(t *testing.T) {
	m := testModel(countdown.Duration{Minutes: 5})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Contains(t, m.View(), "05:00")
}
