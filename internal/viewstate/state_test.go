package viewstate

import (
	"errors"
	"testing"
	"time"

	"taskmanager/pkg/taskclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id, status string) Task {
	return Task{
		ID:        id,
		Title:     "task " + id,
		Status:    status,
		CreatedAt: time.Date(2026, 2, 13, 10, 0, 0, 0, time.UTC),
	}
}

func ready(tasks ...Task) State {
	return Reduce(New(), FetchSucceeded{Tasks: tasks})
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.Equal(t, FilterAll, s.Filter)
	assert.Empty(t, s.Tasks)
	assert.Empty(t, s.Err)
}

func TestParseFilter(t *testing.T) {
	for _, f := range Filters {
		got, err := ParseFilter(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFilter("done")
	require.Error(t, err)
}

func TestFetchSucceeded(t *testing.T) {
	s := Reduce(New(), OperationFailed{Op: taskclient.OpFetch})
	require.Equal(t, MsgLoadFailed, s.Err)
	require.Equal(t, PhaseReady, s.Phase)

	s = Reduce(s, FetchSucceeded{Tasks: []Task{task("b", "pending"), task("a", "completed")}})
	assert.Equal(t, PhaseReady, s.Phase)
	assert.Empty(t, s.Err)
	assert.Equal(t, []string{"b", "a"}, ids(s.Tasks))
}

func TestFetchSucceeded_NilListIsEmpty(t *testing.T) {
	s := Reduce(New(), FetchSucceeded{})
	require.NotNil(t, s.Tasks)
	require.Empty(t, s.Tasks)
}

func TestCreateSucceeded_Prepends(t *testing.T) {
	before := ready(task("a", "pending"))
	after := Reduce(before, CreateSucceeded{Task: task("b", "pending")})

	assert.Equal(t, []string{"b", "a"}, ids(after.Tasks))
	assert.Equal(t, []string{"a"}, ids(before.Tasks), "previous state must not change")
}

func TestUpdateSucceeded_ReplacesByID(t *testing.T) {
	before := ready(task("a", "pending"), task("b", "pending"))
	after := Reduce(before, UpdateSucceeded{Task: task("b", "completed")})

	assert.Equal(t, []string{"a", "b"}, ids(after.Tasks))
	assert.Equal(t, "completed", after.Tasks[1].Status)
	assert.Equal(t, "pending", before.Tasks[1].Status)
}

func TestUpdateSucceeded_UnknownIDIsNoop(t *testing.T) {
	before := ready(task("a", "pending"))
	after := Reduce(before, UpdateSucceeded{Task: task("zzz", "completed")})
	assert.Equal(t, before.Tasks, after.Tasks)
}

func TestDeleteSucceeded_Removes(t *testing.T) {
	before := ready(task("a", "pending"), task("b", "pending"), task("c", "pending"))
	after := Reduce(before, DeleteSucceeded{ID: "b"})

	assert.Equal(t, []string{"a", "c"}, ids(after.Tasks))
	assert.Len(t, before.Tasks, 3)
}

func TestOperationFailed_KeepsMirror(t *testing.T) {
	cases := map[taskclient.Op]string{
		taskclient.OpFetch:  MsgLoadFailed,
		taskclient.OpCreate: MsgCreateFailed,
		taskclient.OpUpdate: MsgUpdateFailed,
		taskclient.OpDelete: MsgDeleteFailed,
	}

	for op, msg := range cases {
		t.Run(string(op), func(t *testing.T) {
			before := ready(task("a", "pending"))
			after := Reduce(before, OperationFailed{Op: op, Err: errors.New("boom")})

			assert.Equal(t, msg, after.Err)
			assert.Equal(t, before.Tasks, after.Tasks)
		})
	}
}

func TestSuccessClearsError(t *testing.T) {
	s := Reduce(ready(task("a", "pending")), OperationFailed{Op: taskclient.OpDelete})
	require.NotEmpty(t, s.Err)

	s = Reduce(s, CreateSucceeded{Task: task("b", "pending")})
	assert.Empty(t, s.Err)
}

func TestFailed_UsesTaggedOp(t *testing.T) {
	ev := Failed(&taskclient.Error{Op: taskclient.OpDelete, Err: taskclient.ErrTransport}, taskclient.OpFetch)
	assert.Equal(t, taskclient.OpDelete, ev.Op)

	ev = Failed(errors.New("untagged"), taskclient.OpCreate)
	assert.Equal(t, taskclient.OpCreate, ev.Op)
}

func TestVisible(t *testing.T) {
	s := ready(
		task("d", "completed"),
		task("c", "pending"),
		task("b", "in-progress"),
		task("a", "pending"),
	)

	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(Visible(s)))

	for _, f := range []Filter{FilterPending, FilterInProgress, FilterCompleted} {
		visible := Visible(Reduce(s, FilterChanged{Filter: f}))
		for _, v := range visible {
			assert.Equal(t, string(f), v.Status)
		}
	}

	assert.Equal(t, []string{"c", "a"}, ids(Visible(Reduce(s, FilterChanged{Filter: FilterPending}))))
	assert.Empty(t, Visible(Reduce(ready(task("a", "pending")), FilterChanged{Filter: FilterCompleted})))
}

func TestFilterChanged_DoesNotTouchTasks(t *testing.T) {
	s := ready(task("a", "pending"))
	after := Reduce(s, FilterChanged{Filter: FilterCompleted})
	assert.Equal(t, s.Tasks, after.Tasks)
	assert.Equal(t, FilterCompleted, after.Filter)
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, "No completed tasks found. Try changing the filter.", EmptyMessage(FilterCompleted))
	assert.Equal(t, "No in-progress tasks found. Try changing the filter.", EmptyMessage(FilterInProgress))
	assert.Equal(t, "No tasks found.", EmptyMessage(FilterAll))
}

func TestState_Find(t *testing.T) {
	s := ready(task("a", "pending"), task("b", "completed"))

	got, ok := s.Find("b")
	require.True(t, ok)
	assert.Equal(t, "completed", got.Status)

	_, ok = s.Find("zzz")
	assert.False(t, ok)
}
