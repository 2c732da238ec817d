package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/export-bridge/export"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entryInfo struct {
	name     string
	registry string // "runtime" or "codegen"
	slot     *export.Slot
}

type browserState int

const (
	stateBrowse browserState = iota
	stateFilter
	stateResult
)

type browserModel struct {
	surface  *export.Surface
	entries  []entryInfo
	visible  []entryInfo
	filter   textinput.Model
	selected int
	state    browserState
	result   string
	resultOK bool
}

func newBrowserModel(surface *export.Surface) *browserModel {
	var entries []entryInfo
	for _, e := range surface.Runtime().Entries() {
		entries = append(entries, entryInfo{name: e.Name, registry: "runtime", slot: e.Slot})
	}
	for _, e := range surface.Codegen().Entries() {
		entries = append(entries, entryInfo{name: e.Name, registry: "codegen", slot: e.Slot})
	}

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/ "
	filter.Width = 40

	return &browserModel{
		surface: surface,
		entries: entries,
		visible: entries,
		filter:  filter,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateFilter {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				m.callSelected()
				m.state = stateResult
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
			case stateResult:
				m.state = stateBrowse
				m.result = ""
			}

		case "esc":
			switch m.state {
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			case stateResult:
				m.state = stateBrowse
				m.result = ""
			}
		}
	}

	if m.state == stateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *browserModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	if query == "" {
		m.visible = m.entries
	} else {
		m.visible = nil
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.name), query) {
				m.visible = append(m.visible, e)
			}
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browserModel) callSelected() {
	if len(m.visible) == 0 {
		m.result = "nothing to call"
		m.resultOK = false
		return
	}
	e := m.visible[m.selected]

	// Deferred slots have no target yet; calling one panics by contract,
	// so report instead of crashing the browser.
	if e.slot.Target() == nil {
		m.result = fmt.Sprintf("%s is deferred: no collaborator has populated the slot", e.name)
		m.resultOK = false
		return
	}

	e.slot.Call()
	m.result = fmt.Sprintf("%s returned (slot %p)", e.name, e.slot)
	m.resultOK = true
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Export Surface"))
	fmt.Fprintf(&b, " %d runtime / %d codegen entries\n\n",
		m.surface.Runtime().Len(), m.surface.Codegen().Len())

	switch m.state {
	case stateResult:
		if m.resultOK {
			b.WriteString(resultStyle.Render(m.result))
		} else {
			b.WriteString(errorStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))

	default:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		for i, e := range m.visible {
			line := m.formatEntry(e)
			if i == m.selected && m.state == stateBrowse {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter call • / filter • q quit"))
		}
	}

	return b.String()
}

func (m *browserModel) formatEntry(e entryInfo) string {
	state := "populated"
	if e.slot.Target() == nil {
		state = "deferred"
	}
	return nameStyle.Render(e.name) + " " +
		kindStyle.Render("["+e.registry+"]") + " " +
		fmt.Sprintf("%p %s", e.slot, state)
}

func runInteractive(surface *export.Surface) error {
	p := tea.NewProgram(newBrowserModel(surface), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
