// Package tui is the interactive terminal front end: a welcome screen and a
// calculator screen where a CPU and a GPU are picked from the catalog.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/restartfu/bottleneck/internal/app"
	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/restartfu/bottleneck/internal/report"
	"github.com/rs/zerolog"
)

type screen int

const (
	screenWelcome screen = iota
	screenCalculator
	screenPicker
)

type field int

const (
	fieldCPU field = iota
	fieldGPU
	fieldCalculate
	fieldCount
)

const (
	defaultWidth  = 60
	defaultHeight = 20
)

type modelItem struct {
	name  string
	score float64
}

func (i modelItem) Title() string       { return i.name }
func (i modelItem) Description() string { return fmt.Sprintf("score %.0f", i.score) }
func (i modelItem) FilterValue() string { return i.name }

// Model is the bubbletea model of the application. The selection it holds
// lives only as long as the program runs.
type Model struct {
	ctx     context.Context
	service *app.Service
	logger  zerolog.Logger

	screen      screen
	focus       field
	selection   bottleneck.Selection
	picker      list.Model
	pickerClass catalog.Class

	result  string
	warning bool
	err     error
	width   int
	height  int
	keys    keyMap
	help    help.Model
	styles  styles
}

type Option func(*Model)

// WithSelection starts the calculator with a preselected pairing.
func WithSelection(sel bottleneck.Selection) Option {
	return func(m *Model) {
		m.selection = sel
	}
}

func New(ctx context.Context, service *app.Service, logger zerolog.Logger, opts ...Option) Model {
	m := Model{
		ctx:     ctx,
		service: service,
		logger:  logger,
		screen:  screenWelcome,
		result:  "Result will appear here",
		width:   defaultWidth,
		height:  defaultHeight,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}

func (m Model) Selection() bottleneck.Selection {
	return m.selection
}

func (m Model) Result() string {
	return m.result
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.screen == screenPicker {
			m.picker.SetSize(msg.Width, msg.Height-1)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenCalculator:
		return m.updateCalculator(msg)
	case screenPicker:
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Select):
		m.screen = screenCalculator
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateCalculator(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	case key.Matches(keyMsg, m.keys.Down):
		m.focus = (m.focus + 1) % fieldCount
	case key.Matches(keyMsg, m.keys.Reset):
		m.selection.Reset()
		m.result = ""
		m.warning = false
		m.err = nil
	case key.Matches(keyMsg, m.keys.Back):
		m.screen = screenWelcome
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Select):
		switch m.focus {
		case fieldCPU:
			return m.openPicker(catalog.CPUs, m.selection.CPU)
		case fieldGPU:
			return m.openPicker(catalog.GPUs, m.selection.GPU)
		case fieldCalculate:
			return m.calculate(), nil
		}
	}
	return m, nil
}

func (m Model) openPicker(class catalog.Class, current string) (tea.Model, tea.Cmd) {
	cat, err := m.service.Catalog(m.ctx, string(class))
	if err != nil {
		m.logger.Error().Err(err).Str("class", string(class)).Msg("list models")
		m.err = err
		return m, nil
	}

	items := make([]list.Item, len(cat.Components))
	selected := 0
	for i, component := range cat.Components {
		items[i] = modelItem{name: component.Name, score: component.Score}
		if component.Name == current {
			selected = i
		}
	}

	picker := list.New(items, list.NewDefaultDelegate(), m.width, m.height-1)
	picker.Title = "Select " + strings.TrimSuffix(string(class), "s")
	picker.SetShowHelp(false)
	// Only esc leaves the picker; q must not end the program.
	picker.KeyMap.Quit.SetEnabled(false)
	picker.Select(selected)

	m.picker = picker
	m.pickerClass = class
	m.screen = screenPicker
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.picker.FilterState() != list.Filtering {
		switch {
		case key.Matches(keyMsg, m.keys.Select):
			if item, ok := m.picker.SelectedItem().(modelItem); ok {
				switch m.pickerClass {
				case catalog.CPUs:
					m.selection.CPU = item.name
				case catalog.GPUs:
					m.selection.GPU = item.name
				}
				m.logger.Debug().Str("class", string(m.pickerClass)).Str("model", item.name).Msg("model selected")
			}
			m.screen = screenCalculator
			return m, nil
		case key.Matches(keyMsg, m.keys.Back) && m.picker.FilterState() == list.Unfiltered:
			m.screen = screenCalculator
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) calculate() Model {
	result, err := m.service.Bottleneck(m.ctx, m.selection.CPU, m.selection.GPU)
	if err != nil {
		m.logger.Error().Err(err).
			Str("cpu", m.selection.CPU).
			Str("gpu", m.selection.GPU).
			Msg("compute bottleneck")
		m.err = err
		m.result = ""
		return m
	}
	m.err = nil
	m.result = report.Text(result)
	m.warning = !result.Complete || result.Advisory == bottleneck.AdvisoryNotRecommended
	return m
}

func (m Model) View() string {
	switch m.screen {
	case screenWelcome:
		return m.viewWelcome()
	case screenPicker:
		return m.picker.View()
	default:
		return m.viewCalculator()
	}
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to the CPU/GPU Bottleneck Calculator"))
	b.WriteString("\n")
	b.WriteString(m.styles.Pressed.Render("Open calculator"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter: continue • q: quit"))
	return b.String()
}

func (m Model) viewCalculator() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Bottleneck Calculator"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Select a CPU and a GPU to calculate the bottleneck"))
	b.WriteString("\n")

	b.WriteString(m.renderField(fieldCPU, "Select CPU", m.selection.CPU))
	b.WriteString("\n")
	b.WriteString(m.renderField(fieldGPU, "Select GPU", m.selection.GPU))
	b.WriteString("\n\n")

	button := m.styles.Button
	if m.focus == fieldCalculate {
		button = m.styles.Pressed
	}
	b.WriteString(button.Render("Calculate bottleneck"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	case m.warning:
		b.WriteString(m.styles.Warning.Render(m.result))
	default:
		b.WriteString(m.styles.Result.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderField(f field, hint, value string) string {
	style := m.styles.Field
	if m.focus == f {
		style = m.styles.Focused
	}
	if value == "" {
		return style.Render(m.styles.Muted.Render(hint))
	}
	return style.Render(value)
}
