package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kode4food/statebox"
	"github.com/kode4food/statebox/internal/config"
	"github.com/kode4food/statebox/todo"
)

// Scenario is the action sequence played by the demo command
func Scenario() []statebox.Action {
	return []statebox.Action{
		todo.AddTodo{Todo: todo.Todo{ID: 0, Name: "Walk the dog"}},
		todo.AddTodo{Todo: todo.Todo{ID: 1, Name: "Wash the car"}},
		todo.AddTodo{
			Todo: todo.Todo{ID: 2, Name: "Go to the gym", Complete: true},
		},
		todo.RemoveTodo{ID: 1},
		todo.ToggleTodo{ID: 0},
		todo.AddGoal{Goal: todo.Goal{ID: 0, Name: "Learn Redux"}},
		todo.AddGoal{Goal: todo.Goal{ID: 1, Name: "Lose 20 pounds"}},
		todo.RemoveGoal{ID: 0},
	}
}

// SampleData is served to the repl command when seeding is requested
func SampleData() ([]todo.Todo, []todo.Goal) {
	todos := []todo.Todo{
		{ID: 0, Name: "Walk the dog"},
		{ID: 1, Name: "Read a book", Complete: true},
	}
	goals := []todo.Goal{
		{ID: 0, Name: "Learn Go"},
	}
	return todos, goals
}

// NewRootCmd builds the statebox command tree
func NewRootCmd(cfg config.Config) *cobra.Command {
	var logger *zap.Logger

	root := &cobra.Command{
		Use:   "statebox",
		Short: "Drive a todos and goals state store",
		Long: `statebox dispatches todo and goal actions into a unidirectional
state store and prints the resulting state after every change.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.NoColor {
				color.NoColor = true
			}
			var err error
			logger, err = cfg.NewLogger()
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(
		&cfg.LogLevel, "log-level", cfg.LogLevel, "log level",
	)
	root.PersistentFlags().BoolVar(
		&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output",
	)

	root.AddCommand(demoCmd(func() *zap.Logger { return logger }))
	root.AddCommand(replCmd(func() *zap.Logger { return logger }))
	return root
}

func demoCmd(logger func() *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Play the sample todos and goals scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunDemo(cmd.OutOrStdout(), logger())
		},
	}
}

func replCmd(logger func() *zap.Logger) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read actions from standard input",
		Long: `Commands:
  add-todo <name>   add a todo
  add-goal <name>   add a goal
  toggle <id>       toggle a todo's completion
  remove-todo <id>  remove a todo
  remove-goal <id>  remove a goal
  state             print the current state
  quit              leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunREPL(
				cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
				cmd.ErrOrStderr(), logger(), seed,
			)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "start with sample data")
	return cmd
}

// RunDemo plays Scenario through a new Session
func RunDemo(out io.Writer, logger *zap.Logger) error {
	s, err := NewSession(out, logger)
	if err != nil {
		return err
	}
	for _, a := range Scenario() {
		if err := s.Dispatch(a); err != nil {
			return err
		}
	}
	return nil
}

// RunREPL executes commands read from in until it is exhausted or a quit
// command arrives. Command errors are reported and do not end the session
func RunREPL(
	ctx context.Context, in io.Reader, out, errOut io.Writer,
	logger *zap.Logger, seed bool,
) error {
	s, err := NewSession(out, logger)
	if err != nil {
		return err
	}

	if seed {
		todos, goals := SampleData()
		api := todo.NewStaticAPI(todos, goals)
		if err := todo.HandleInitialData(ctx, api, s.Store()); err != nil {
			return err
		}
		s.Seed()
	}

	errColor := color.New(color.FgRed)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.Exec(scanner.Text())
		if err != nil {
			_, _ = errColor.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
