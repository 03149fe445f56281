// Package cli implements the taskctl command line client.
package cli

import (
	"context"
	"strings"

	"taskmanager/internal/viewstate"
	"taskmanager/pkg/taskclient"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "TASKCTL"

// app holds what every subcommand needs once flags and env are resolved.
type app struct {
	v      *viper.Viper
	logger *zap.Logger

	// newClient is swapped in tests.
	newClient func(baseURL string, logger *zap.Logger) viewstate.Client
}

func defaultClient(baseURL string, logger *zap.Logger) viewstate.Client {
	return taskclient.New(baseURL, taskclient.WithLogger(logger))
}

// NewRootCommand builds the taskctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultClient)
}

func newRootCommand(newClient func(string, *zap.Logger) viewstate.Client) *cobra.Command {
	a := &app{
		v:         viper.New(),
		logger:    zap.NewNop(),
		newClient: newClient,
	}

	root := &cobra.Command{
		Use:   "taskctl",
		Short: "Manage tasks on a task manager server",
		Long: `taskctl talks to the task manager REST API.

Run "taskctl ui" for the interactive view, or use the subcommands to
list, add, update and delete tasks from scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().String("server", taskclient.DefaultBaseURL, "task API base URL")
	root.PersistentFlags().Bool("verbose", false, "log failed requests to stderr")
	root.PersistentFlags().Duration("timeout", 0, "per-request timeout (0 disables it)")
	_ = a.v.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = a.v.BindPFlag("timeout", root.PersistentFlags().Lookup("timeout"))

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newListCommand(a),
		newAddCommand(a),
		newStatusCommand(a),
		newToggleCommand(a),
		newDeleteCommand(a),
		newUICommand(a),
	)
	return root
}

func (a *app) setup() error {
	if !a.v.GetBool("verbose") {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) serverURL() string {
	return a.v.GetString("server")
}

// requestContext bounds a command's requests by --timeout when it is set.
func (a *app) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := a.v.GetDuration("timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) client() viewstate.Client {
	return a.newClient(a.serverURL(), a.logger)
}

func (a *app) controller() *viewstate.Controller {
	return viewstate.NewController(a.client())
}
