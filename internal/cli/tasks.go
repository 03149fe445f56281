package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/viewstate"

	"github.com/spf13/cobra"
)

// failure turns the controller's error flag into a command error.
func failure(s viewstate.State) error {
	if s.Err == "" {
		return nil
	}
	return errors.New(s.Err)
}

func newListCommand(a *app) *cobra.Command {
	var (
		filter string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := viewstate.ParseFilter(filter)
			if err != nil {
				return err
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			c := a.controller()
			if err := failure(c.Load(ctx)); err != nil {
				return err
			}
			c.SetFilter(f)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), c.Visible())
			}
			return writeTasks(cmd.OutOrStdout(), c.Visible(), f)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", string(viewstate.FilterAll), "all, pending, in-progress or completed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tasks as JSON")
	return cmd
}

func newAddCommand(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return errors.New("title is required")
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			s := a.controller().Create(ctx, title, description)
			if err := failure(s); err != nil {
				return err
			}
			return writeTasks(cmd.OutOrStdout(), s.Tasks[:1], viewstate.FilterAll)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	return cmd
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <pending|in-progress|completed>",
		Short: "Set the status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseTaskStatus(args[1])
			if err != nil {
				return fmt.Errorf("invalid status %q: must be one of pending, in-progress, completed", args[1])
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			event := viewstate.UpdateStatusCmd(ctx, a.client(), args[0], string(status))
			if updated, ok := event.(viewstate.UpdateSucceeded); ok {
				return writeTasks(cmd.OutOrStdout(), []viewstate.Task{updated.Task}, viewstate.FilterAll)
			}
			return failure(viewstate.Reduce(viewstate.New(), event))
		},
	}
}

func newToggleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			c := a.controller()
			if err := failure(c.Load(ctx)); err != nil {
				return err
			}

			id := args[0]
			if _, ok := c.State().Find(id); !ok {
				return fmt.Errorf("task %s not found", id)
			}
			if err := failure(c.Toggle(ctx, id)); err != nil {
				return err
			}
			return writeTask(cmd.OutOrStdout(), c.State(), id)
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Are you sure you want to delete task %s? [y/N]: ", id))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			if err := failure(a.controller().Delete(ctx, id)); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	_, _ = fmt.Fprint(out, prompt)

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// writeTask prints task id from the mirror, or just its id if the mirror lacks it.
func writeTask(w io.Writer, s viewstate.State, id string) error {
	task, ok := s.Find(id)
	if !ok {
		_, err := fmt.Fprintf(w, "Updated %s\n", id)
		return err
	}
	return writeTasks(w, []viewstate.Task{task}, viewstate.FilterAll)
}

func writeTasks(w io.Writer, tasks []viewstate.Task, filter viewstate.Filter) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, viewstate.EmptyMessage(filter))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tTITLE\tCREATED")
	for _, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID, task.Status, task.Title, task.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, tasks []viewstate.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}
