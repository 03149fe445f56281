package viewstate

import (
	"slices"

	"taskmanager/pkg/taskclient"
)

// Event is a confirmed outcome that changes State.
type Event interface {
	apply(State) State
}

type FetchSucceeded struct{ Tasks []Task }

type CreateSucceeded struct{ Task Task }

type UpdateSucceeded struct{ Task Task }

type DeleteSucceeded struct{ ID string }

// OperationFailed leaves the mirror alone and sets the message for Op.
type OperationFailed struct {
	Op  taskclient.Op
	Err error
}

type FilterChanged struct{ Filter Filter }

// Reduce returns the state after e. s is not modified.
func Reduce(s State, e Event) State {
	return e.apply(s)
}

func (e FetchSucceeded) apply(s State) State {
	s.Tasks = slices.Clone(e.Tasks)
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	s.Phase = PhaseReady
	s.Err = ""
	return s
}

func (e CreateSucceeded) apply(s State) State {
	tasks := make([]Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, e.Task)
	s.Tasks = append(tasks, s.Tasks...)
	s.Err = ""
	return s
}

func (e UpdateSucceeded) apply(s State) State {
	tasks := slices.Clone(s.Tasks)
	for i := range tasks {
		if tasks[i].ID == e.Task.ID {
			tasks[i] = e.Task
		}
	}
	s.Tasks = tasks
	s.Err = ""
	return s
}

func (e DeleteSucceeded) apply(s State) State {
	s.Tasks = slices.DeleteFunc(slices.Clone(s.Tasks), func(task Task) bool {
		return task.ID == e.ID
	})
	s.Err = ""
	return s
}

func (e OperationFailed) apply(s State) State {
	if e.Op == taskclient.OpFetch {
		s.Phase = PhaseReady
	}
	s.Err = failureMessages[e.Op]
	return s
}

func (e FilterChanged) apply(s State) State {
	s.Filter = e.Filter
	return s
}

// Failed turns a client error into the matching OperationFailed event.
// Errors without an operation tag are attributed to fallback.
func Failed(err error, fallback taskclient.Op) OperationFailed {
	op, ok := taskclient.OpOf(err)
	if !ok {
		op = fallback
	}
	return OperationFailed{Op: op, Err: err}
}
