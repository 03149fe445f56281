// Package viewstate keeps a client-side mirror of the task collection.
//
// State is a plain value. Every change goes through Reduce with one of the
// event types below, and each event is built only after the request it
// describes has completed, so the mirror never runs ahead of the server.
package viewstate

import (
	"fmt"
	"slices"

	"taskmanager/pkg/taskclient"
)

type Task = taskclient.Task

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "loading"
}

type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = "pending"
	FilterInProgress Filter = "in-progress"
	FilterCompleted  Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterPending, FilterInProgress, FilterCompleted}

func ParseFilter(value string) (Filter, error) {
	filter := Filter(value)
	if !slices.Contains(Filters, filter) {
		return "", fmt.Errorf("unknown filter %q (want one of all, pending, in-progress, completed)", value)
	}
	return filter, nil
}

// Fixed messages shown when an operation fails.
const (
	MsgLoadFailed   = "Failed to load The tasks. Please try again later."
	MsgCreateFailed = "Failed to create task."
	MsgUpdateFailed = "Failed to update task status. Please try again."
	MsgDeleteFailed = "Failed to delete task. Please try again."
)

var failureMessages = map[taskclient.Op]string{
	taskclient.OpFetch:  MsgLoadFailed,
	taskclient.OpCreate: MsgCreateFailed,
	taskclient.OpUpdate: MsgUpdateFailed,
	taskclient.OpDelete: MsgDeleteFailed,
}

type State struct {
	Phase  Phase
	Tasks  []Task
	Filter Filter
	Err    string
}

func New() State {
	return State{Phase: PhaseLoading, Tasks: []Task{}, Filter: FilterAll}
}

// Visible is the derived view: the mirror filtered by the current filter, order kept.
func Visible(s State) []Task {
	if s.Filter == FilterAll || s.Filter == "" {
		return slices.Clone(s.Tasks)
	}

	visible := make([]Task, 0, len(s.Tasks))
	for _, task := range s.Tasks {
		if task.Status == string(s.Filter) {
			visible = append(visible, task)
		}
	}
	return visible
}

// EmptyMessage is shown when the derived view has no tasks.
func EmptyMessage(filter Filter) string {
	if filter == FilterAll || filter == "" {
		return "No tasks found."
	}
	return fmt.Sprintf("No %s tasks found. Try changing the filter.", filter)
}

// Find looks a task up in the mirror by id.
func (s State) Find(id string) (Task, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}
