package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/treehouse/internal/format/table"
	"github.com/atomicstack/treehouse/internal/workspace"
)

// ListKeys writes one row per registered command: id, label, chord and the
// chord's glyphs. Unbound commands show a dash.
func ListKeys(w io.Writer, ws *workspace.Workspace) error {
	rows := [][]string{{"COMMAND", "LABEL", "KEY", ""}}
	bindings := ws.Bindings()
	for _, cmd := range ws.Commands().Commands() {
		chord, glyphs := "-", ""
		if b, ok := bindings.Binding(cmd.ID); ok {
			chord = b.Key
			glyphs = strings.Join(bindings.Symbols(cmd.ID), "")
		}
		rows = append(rows, []string{cmd.ID, cmd.Label(), chord, glyphs})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
