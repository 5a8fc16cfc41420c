package testutil

import (
	"strings"
	"testing"

	"github.com/atomicstack/treehouse/internal/tree"
)

// BuildOutline adds the nodes described by an indented outline under the
// tree's root and returns them keyed by name. Each level of nesting is two
// spaces; blank lines are ignored and names must be unique.
//
//	BuildOutline(t, tr, `
//	p
//	  x
//	  y
//	`)
func BuildOutline(t *testing.T, tr *tree.Tree, outline string) map[string]*tree.Node {
	t.Helper()
	nodes := make(map[string]*tree.Node)
	stack := []*tree.Node{tr.Root()}
	for lineNo, line := range strings.Split(outline, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)
		if indent%2 != 0 {
			t.Fatalf("outline line %d: odd indentation %q", lineNo+1, line)
		}
		depth := indent/2 + 1
		if depth > len(stack) {
			t.Fatalf("outline line %d: indented too deep %q", lineNo+1, line)
		}
		name := strings.TrimSpace(trimmed)
		if _, dup := nodes[name]; dup {
			t.Fatalf("outline line %d: duplicate name %q", lineNo+1, name)
		}
		stack = stack[:depth]
		n := tr.NewNode(name)
		if err := tr.SetParent(n, stack[depth-1]); err != nil {
			t.Fatalf("outline line %d: %v", lineNo+1, err)
		}
		nodes[name] = n
		stack = append(stack, n)
	}
	return nodes
}

// Outline renders the subtree below n in the format BuildOutline accepts.
func Outline(tr *tree.Tree, n *tree.Node) string {
	var b strings.Builder
	base := depthOf(n)
	tr.Walk(n, func(x *tree.Node) bool {
		if x == n {
			return true
		}
		b.WriteString(strings.Repeat("  ", depthOf(x)-base-1))
		b.WriteString(x.Name())
		b.WriteString("\n")
		return true
	})
	return b.String()
}

func depthOf(n *tree.Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
