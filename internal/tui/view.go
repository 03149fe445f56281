package tui

import (
	"fmt"
	"strings"

	"taskmanager/internal/viewstate"
)

const timeLayout = "2006-01-02 15:04"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Manager"))
	b.WriteString("\n")

	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	if m.state.Err != "" {
		b.WriteString(errorStyle.Render(m.state.Err))
		b.WriteString("\n\n")
	}

	switch m.mode {
	case modeTitle, modeDescription:
		b.WriteString(m.titleInput.View())
		b.WriteString("\n")
		b.WriteString(m.descInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter next/save • esc cancel"))
		return b.String()
	}

	b.WriteString(m.renderTasks())

	if m.mode == modeConfirmDelete {
		if task, ok := m.state.Find(m.pendingDelete); ok {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Are you sure you want to delete %q? (y/N)", task.Title)))
		}
	}

	b.WriteString(helpStyle.Render("a add • enter toggle • p/i/c set status • d delete • f filter • r reload • q quit"))
	return b.String()
}

func (m Model) renderFilters() string {
	parts := make([]string, 0, len(viewstate.Filters))
	for _, f := range viewstate.Filters {
		if f == m.state.Filter {
			parts = append(parts, filterActiveStyle.Render(string(f)))
		} else {
			parts = append(parts, filterInactiveStyle.Render(string(f)))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTasks() string {
	if m.state.Phase == viewstate.PhaseLoading {
		return mutedStyle.Render("Loading tasks...") + "\n"
	}

	visible := viewstate.Visible(m.state)
	if len(visible) == 0 {
		return mutedStyle.Render(viewstate.EmptyMessage(m.state.Filter)) + "\n"
	}

	var b strings.Builder
	for i, task := range visible {
		cursor := "  "
		title := task.Title
		if task.Status == "completed" {
			title = completedTitleStyle.Render(title)
		}
		if i == m.cursor {
			cursor = "> "
			title = selectedStyle.Render(title)
		}

		fmt.Fprintf(&b, "%s%s %s %s\n",
			cursor,
			statusStyle(task.Status).Render(fmt.Sprintf("[%-11s]", task.Status)),
			title,
			mutedStyle.Render(task.CreatedAt.Local().Format(timeLayout)),
		)
		if task.Description != "" {
			fmt.Fprintf(&b, "      %s\n", mutedStyle.Render(task.Description))
		}
	}
	return b.String()
}
