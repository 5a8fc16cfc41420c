package menu

import "github.com/atomicstack/treehouse/internal/command"

// Item is one line of a menu definition. When Command is set the item
// inherits that command's metadata; any field set on the item overrides it.
// Items without a command are free-standing and only carry OnClick.
type Item struct {
	Command   string
	Title     string
	TitleFunc func() string
	When      func() bool
	Disabled  bool
	OnClick   func()
}

// Entry is an item resolved against the command registry, ready to display.
type Entry struct {
	Label    string
	Command  string
	Disabled bool
	OnClick  func()
}

// Invoke runs the entry's click handler, or executes its command when it
// has none.
func (e Entry) Invoke(cmds *command.Registry, ctx command.Context) error {
	if e.Disabled {
		return nil
	}
	if e.OnClick != nil {
		e.OnClick()
		return nil
	}
	if e.Command == "" || cmds == nil {
		return nil
	}
	return cmds.Execute(e.Command, ctx)
}

func resolve(item Item, cmds *command.Registry) (Entry, bool) {
	var cmd *command.Command
	if item.Command != "" && cmds != nil {
		cmd, _ = cmds.Command(item.Command)
	}

	when := item.When
	if when == nil && cmd != nil {
		when = cmd.When
	}
	if when != nil && !when() {
		return Entry{}, false
	}

	entry := Entry{
		Label:    itemLabel(item, cmd),
		Command:  item.Command,
		Disabled: item.Disabled || (cmd != nil && cmd.Disabled),
		OnClick:  item.OnClick,
	}
	if entry.OnClick == nil && cmd != nil {
		entry.OnClick = cmd.OnClick
	}
	return entry, true
}

func itemLabel(item Item, cmd *command.Command) string {
	if item.TitleFunc != nil {
		if title := item.TitleFunc(); title != "" {
			return title
		}
	}
	if item.Title != "" {
		return item.Title
	}
	if cmd != nil {
		return cmd.Label()
	}
	return command.PrettyLabel(item.Command)
}
