package app

import (
	"github.com/atomicstack/treehouse/internal/backend"
	"github.com/atomicstack/treehouse/internal/tree"
)

// DemoRecords is the outline a fresh demo session starts from.
func DemoRecords() []backend.Record {
	return []backend.Record{
		{ID: "welcome", ParentID: tree.RootID, Name: "Welcome to treehouse", Index: 0},
		{ID: "keys", ParentID: "welcome", Name: "Type to edit the focused line", Index: 0},
		{ID: "enter", ParentID: "welcome", Name: "Enter adds a line below", Index: 1},
		{ID: "indent", ParentID: "welcome", Name: "Tab and Shift+Tab indent and outdent", Index: 2},
		{ID: "palette", ParentID: "welcome", Name: "Ctrl+K opens the command palette", Index: 3},
		{ID: "menus", ParentID: "welcome", Name: "F1 opens settings, F2 the node menu", Index: 4},
		{ID: "todo", ParentID: tree.RootID, Name: "Things to try", Index: 1},
		{ID: "todo-zoom", ParentID: "todo", Name: "Open a node from the node menu", Index: 0},
		{ID: "todo-panel", ParentID: "todo", Name: "Open a node in a new panel", Index: 1},
		{ID: "todo-random", ParentID: "todo", Name: "Generate random children", Index: 2},
	}
}
