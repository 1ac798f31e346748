package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	catalogadapter "github.com/restartfu/bottleneck/internal/adapters/catalog"
	"github.com/restartfu/bottleneck/internal/app"
	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
)

func newTestModel(opts ...Option) Model {
	reader := catalogadapter.NewReader(catalog.Default())
	service := app.NewService(reader, reader, nil)
	return New(context.Background(), service, zerolog.Nop(), opts...)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestWelcomeToCalculator(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, screenWelcome, m.screen)
	assert.Contains(t, m.View(), "Welcome")

	m = press(t, m, keyEnter)
	assert.Equal(t, screenCalculator, m.screen)
	assert.Contains(t, m.View(), "Select CPU")

	m = press(t, m, keyEsc)
	assert.Equal(t, screenWelcome, m.screen)
}

func TestCalculateIncomplete(t *testing.T) {
	m := newTestModel()
	m = press(t, m, keyEnter, keyUp)
	require.Equal(t, fieldCalculate, m.focus)

	m = press(t, m, keyEnter)
	assert.Equal(t, bottleneck.AdvisoryIncomplete, m.Result())
	assert.True(t, m.warning)
}

func TestPickAndCalculate(t *testing.T) {
	m := newTestModel()
	m = press(t, m, keyEnter)

	// CPU picker opens on the first model.
	m = press(t, m, keyEnter)
	require.Equal(t, screenPicker, m.screen)
	assert.Equal(t, catalog.CPUs, m.pickerClass)
	m = press(t, m, keyEnter)
	assert.Equal(t, screenCalculator, m.screen)
	assert.Equal(t, "Intel i3-8100", m.Selection().CPU)

	// GPU picker, third model.
	m = press(t, m, keyDown, keyEnter, keyDown, keyDown, keyEnter)
	assert.Equal(t, "GTX 1660 Super", m.Selection().GPU)

	m = press(t, m, keyDown, keyEnter)
	assert.Equal(t,
		"Bottleneck of 33.55% (CPU limiting)\nbottleneck too high, combination not recommended",
		m.Result())
	assert.Contains(t, m.View(), "33.55%")
}

func TestPickerEscapeKeepsSelection(t *testing.T) {
	m := newTestModel(WithSelection(bottleneck.Selection{CPU: "AMD Ryzen 5 3600"}))
	m = press(t, m, keyEnter, keyEnter)
	require.Equal(t, screenPicker, m.screen)

	// Cursor starts on the current selection.
	item, ok := m.picker.SelectedItem().(modelItem)
	require.True(t, ok)
	assert.Equal(t, "AMD Ryzen 5 3600", item.name)

	m = press(t, m, keyDown, keyEsc)
	assert.Equal(t, screenCalculator, m.screen)
	assert.Equal(t, "AMD Ryzen 5 3600", m.Selection().CPU)
}

func TestPreselectedPairing(t *testing.T) {
	m := newTestModel(WithSelection(bottleneck.Selection{CPU: "Intel i9-13900K", GPU: "RTX 4090"}))
	m = press(t, m, keyEnter, keyUp, keyEnter)

	assert.Equal(t,
		"Bottleneck of 14.72% (GPU limiting)\ncombination balanced, good performance expected",
		m.Result())
	assert.False(t, m.warning)
}

func TestReset(t *testing.T) {
	m := newTestModel(WithSelection(bottleneck.Selection{CPU: "Intel i9-13900K", GPU: "RTX 4090"}))
	m = press(t, m, keyEnter, keyR)
	assert.Equal(t, bottleneck.Selection{}, m.Selection())
}

func TestResetClearsWarning(t *testing.T) {
	m := newTestModel()
	m = press(t, m, keyEnter, keyUp, keyEnter)
	require.True(t, m.warning)

	m = press(t, m, keyR)
	assert.False(t, m.warning)
	assert.Empty(t, m.Result())
	assert.NoError(t, m.err)
}

func TestUnknownPreselectionReportsError(t *testing.T) {
	m := newTestModel(WithSelection(bottleneck.Selection{CPU: "Pentium", GPU: "RTX 4090"}))
	m = press(t, m, keyEnter, keyUp, keyEnter)

	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, catalog.ErrNotFound)
	assert.Contains(t, m.View(), "Pentium")
}

func TestQuit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPickerIgnoresQuitKey(t *testing.T) {
	m := newTestModel()
	m = press(t, m, keyEnter, keyEnter)
	require.Equal(t, screenPicker, m.screen)

	next, cmd := m.Update(keyQ)
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
	m, ok := next.(Model)
	require.True(t, ok)
	assert.Equal(t, screenPicker, m.screen)

	m = press(t, m, keyEsc)
	assert.Equal(t, screenCalculator, m.screen)
}

func TestCalculatorQuitKey(t *testing.T) {
	m := press(t, newTestModel(), keyEnter)

	_, cmd := m.Update(keyQ)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}
