package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/kode4food/statebox"
	"github.com/kode4food/statebox/todo"
)

// Session owns a todo store and renders its state after every dispatch
type Session struct {
	store    *statebox.Store[todo.State]
	out      io.Writer
	nextTodo todo.ID
	nextGoal todo.ID
}

var (
	// ErrUnknownCommand indicates an unrecognized REPL command
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument indicates a REPL command without its argument
	ErrMissingArgument = errors.New("missing argument")
)

var (
	headerColor = color.New(color.FgYellow, color.Bold)
	doneColor   = color.New(color.FgGreen)
	openColor   = color.New(color.FgRed)
	goalColor   = color.New(color.FgCyan)
)

// NewSession creates a Session whose store logs dispatched actions and
// listener failures through logger
func NewSession(out io.Writer, logger *zap.Logger) (*Session, error) {
	cfg := statebox.DefaultConfig()
	cfg.Logger = logger
	cfg.Interceptor = statebox.LogActions(logger)

	store, err := statebox.NewStoreWithConfig(todo.Root, cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		store: store,
		out:   out,
	}
	store.Subscribe(s.render)
	return s, nil
}

// Store returns the Session's store
func (s *Session) Store() *statebox.Store[todo.State] {
	return s.store
}

// Dispatch prints the action's type and dispatches it
func (s *Session) Dispatch(a statebox.Action) error {
	_, _ = headerColor.Fprintf(s.out, "> %s\n", a.Type())
	_, err := s.store.Dispatch(a)
	return err
}

// Exec interprets a single REPL line. It reports true when the session
// should end
func (s *Session) Exec(line string) (bool, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "state":
		s.render()
		return false, nil
	case "add-todo":
		if arg == "" {
			return false, fmt.Errorf("%s: %w", cmd, ErrMissingArgument)
		}
		id := s.nextTodo
		s.nextTodo++
		return false, s.Dispatch(todo.AddTodo{
			Todo: todo.Todo{ID: id, Name: arg},
		})
	case "add-goal":
		if arg == "" {
			return false, fmt.Errorf("%s: %w", cmd, ErrMissingArgument)
		}
		id := s.nextGoal
		s.nextGoal++
		return false, s.Dispatch(todo.AddGoal{
			Goal: todo.Goal{ID: id, Name: arg},
		})
	case "toggle", "remove-todo", "remove-goal":
		id, err := parseID(cmd, arg)
		if err != nil {
			return false, err
		}
		return false, s.Dispatch(idAction(cmd, id))
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// Seed reserves identifiers past everything the store already holds, so
// entities added later do not collide with fetched ones
func (s *Session) Seed() {
	state := s.store.GetState()
	for _, t := range state.Todos {
		s.nextTodo = max(s.nextTodo, t.ID+1)
	}
	for _, g := range state.Goals {
		s.nextGoal = max(s.nextGoal, g.ID+1)
	}
}

func (s *Session) render() {
	state := s.store.GetState()
	_, _ = fmt.Fprintln(s.out, "todos:")
	for _, t := range state.Todos {
		mark := openColor.Sprint("[ ]")
		if t.Complete {
			mark = doneColor.Sprint("[x]")
		}
		_, _ = fmt.Fprintf(s.out, "  %s %d %s\n", mark, t.ID, t.Name)
	}
	_, _ = fmt.Fprintln(s.out, "goals:")
	for _, g := range state.Goals {
		_, _ = fmt.Fprintf(s.out, "  - %d %s\n", g.ID, goalColor.Sprint(g.Name))
	}
}

func parseID(cmd, arg string) (todo.ID, error) {
	if arg == "" {
		return 0, fmt.Errorf("%s: %w", cmd, ErrMissingArgument)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid id %q: %w", cmd, arg, err)
	}
	return todo.ID(n), nil
}

func idAction(cmd string, id todo.ID) statebox.Action {
	switch cmd {
	case "toggle":
		return todo.ToggleTodo{ID: id}
	case "remove-todo":
		return todo.RemoveTodo{ID: id}
	default:
		return todo.RemoveGoal{ID: id}
	}
}
