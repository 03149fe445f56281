// Package tui is the interactive terminal front end for the task API.
package tui

import (
	"context"
	"strings"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/viewstate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeTitle
	modeDescription
	modeConfirmDelete
)

// eventMsg carries a confirmed outcome back into the update loop.
type eventMsg struct {
	event viewstate.Event
}

type Model struct {
	ctx    context.Context
	client viewstate.Client

	state  viewstate.State
	cursor int
	mode   mode

	// pendingDelete is the id the delete prompt was opened for.
	pendingDelete string

	titleInput textinput.Model
	descInput  textinput.Model

	width    int
	quitting bool
}

func New(ctx context.Context, client viewstate.Client) Model {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 255
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.Width = 50

	return Model{
		ctx:        ctx,
		client:     client,
		state:      viewstate.New(),
		titleInput: title,
		descInput:  desc,
	}
}

// State exposes the current mirror, mainly for tests.
func (m Model) State() viewstate.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) fetch() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return eventMsg{event: viewstate.FetchCmd(ctx, client)}
	}
}

func (m Model) create(title, description string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return eventMsg{event: viewstate.CreateCmd(ctx, client, title, description)}
	}
}

func (m Model) updateStatus(id string, status domain.TaskStatus) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return eventMsg{event: viewstate.UpdateStatusCmd(ctx, client, id, string(status))}
	}
}

func (m Model) remove(id string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return eventMsg{event: viewstate.DeleteCmd(ctx, client, id)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case eventMsg:
		m.state = viewstate.Reduce(m.state, msg.event)
		m.clampCursor()
		if m.mode == modeConfirmDelete {
			if _, ok := m.state.Find(m.pendingDelete); !ok {
				m.mode = modeBrowse
				m.pendingDelete = ""
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeTitle, modeDescription:
			return m.handleInputKeypress(msg)
		case modeConfirmDelete:
			return m.handleConfirmKeypress(msg)
		}
		return m.handleBrowseKeypress(msg)
	}

	return m, nil
}

func (m Model) handleBrowseKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(viewstate.Visible(m.state))-1 {
			m.cursor++
		}

	case "a", "n":
		m.mode = modeTitle
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		m.descInput.Blur()
		return m, m.titleInput.Focus()

	case "enter", " ", "t":
		if task, ok := m.selected(); ok {
			return m, m.updateStatus(task.ID, domain.TaskStatus(task.Status).Toggle())
		}

	case "p":
		return m, m.setSelectedStatus(domain.TaskStatusPending)
	case "i":
		return m, m.setSelectedStatus(domain.TaskStatusInProgress)
	case "c":
		return m, m.setSelectedStatus(domain.TaskStatusCompleted)

	case "d", "x":
		if task, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
			m.pendingDelete = task.ID
		}

	case "f", "tab":
		m.state = viewstate.Reduce(m.state, viewstate.FilterChanged{Filter: nextFilter(m.state.Filter)})
		m.clampCursor()

	case "r":
		return m, m.fetch()
	}

	return m, nil
}

func (m Model) handleInputKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.titleInput.Blur()
		m.descInput.Blur()
		return m, nil

	case "enter":
		if m.mode == modeTitle {
			if strings.TrimSpace(m.titleInput.Value()) == "" {
				return m, nil
			}
			m.mode = modeDescription
			m.titleInput.Blur()
			return m, m.descInput.Focus()
		}

		title, description := m.titleInput.Value(), m.descInput.Value()
		m.mode = modeBrowse
		m.descInput.Blur()
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		return m, m.create(title, description)
	}

	var cmd tea.Cmd
	if m.mode == modeTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleConfirmKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	m.mode = modeBrowse
	m.pendingDelete = ""

	switch msg.String() {
	case "y", "Y":
		if _, ok := m.state.Find(id); ok {
			return m, m.remove(id)
		}
	}
	return m, nil
}

func (m Model) setSelectedStatus(status domain.TaskStatus) tea.Cmd {
	task, ok := m.selected()
	if !ok || task.Status == string(status) {
		return nil
	}
	return m.updateStatus(task.ID, status)
}

func (m Model) selected() (viewstate.Task, bool) {
	visible := viewstate.Visible(m.state)
	if m.cursor < 0 || m.cursor >= len(visible) {
		return viewstate.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(viewstate.Visible(m.state))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextFilter(current viewstate.Filter) viewstate.Filter {
	for i, f := range viewstate.Filters {
		if f == current {
			return viewstate.Filters[(i+1)%len(viewstate.Filters)]
		}
	}
	return viewstate.FilterAll
}

// Run starts the interactive UI and blocks until the user quits.
func Run(ctx context.Context, client viewstate.Client) error {
	p := tea.NewProgram(New(ctx, client), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
