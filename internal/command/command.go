// Package command holds the id-keyed registry of editor commands.
//
// Commands are looked up by id and run against a Context describing the node,
// panel and triggering event. The registry never interprets an action's error;
// it hands it back to the caller exactly as returned.
package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/atomicstack/treehouse/internal/keybind"
	"github.com/atomicstack/treehouse/internal/logging/events"
	"github.com/atomicstack/treehouse/internal/panel"
	"github.com/atomicstack/treehouse/internal/tree"
)

var (
	ErrNotFound  = errors.New("command not found")
	ErrDuplicate = errors.New("command already registered")
)

// Context describes where a command was invoked. Any field may be nil.
type Context struct {
	Node  *tree.Node
	Panel *panel.Panel
	Event *keybind.Event
}

// Action is the body of a command.
type Action func(Context, ...any) error

// Command is a named action plus the metadata menus and palettes display.
type Command struct {
	ID        string
	Title     string
	TitleFunc func() string
	When      func() bool
	Disabled  bool
	OnClick   func()
	Action    Action
}

// Label resolves the display title.
func (c *Command) Label() string {
	if c.TitleFunc != nil {
		if title := c.TitleFunc(); title != "" {
			return title
		}
	}
	if c.Title != "" {
		return c.Title
	}
	return PrettyLabel(c.ID)
}

// Visible reports the result of the When predicate, true when unset.
func (c *Command) Visible() bool {
	return c.When == nil || c.When()
}

// PrettyLabel turns an identifier such as "add-checkbox" into "add checkbox".
// The first rune keeps its case and the rest of the label is lower-cased.
func PrettyLabel(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	runes := []rune(strings.Join(parts, " "))
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// Registry maps ids to commands, remembering registration order.
type Registry struct {
	commands map[string]*Command
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd. Empty and duplicate ids are rejected.
func (r *Registry) Register(cmd Command) error {
	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		return fmt.Errorf("register command: empty id")
	}
	if _, ok := r.commands[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, id)
	}
	cmd.ID = id
	r.commands[id] = &cmd
	r.order = append(r.order, id)
	events.Command.Register(id)
	return nil
}

// Command looks up a command by id.
func (r *Registry) Command(id string) (*Command, bool) {
	cmd, ok := r.commands[id]
	return cmd, ok
}

// IDs lists command ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Commands lists registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.commands[id])
	}
	return out
}

// Execute runs the command registered under id. An unknown id yields
// ErrNotFound; otherwise the action's own error is returned.
func (r *Registry) Execute(id string, ctx Context, args ...any) error {
	cmd, ok := r.commands[id]
	if !ok {
		events.Command.NotFound(id)
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	nodeID := ""
	if ctx.Node != nil {
		nodeID = ctx.Node.ID()
	}
	events.Command.Execute(id, nodeID, len(args))
	if cmd.Action == nil {
		return nil
	}
	err := cmd.Action(ctx, args...)
	events.Command.Error(id, err)
	return err
}
