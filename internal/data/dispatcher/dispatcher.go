package dispatcher

import (
	"errors"
	"sort"

	"github.com/atomicstack/treehouse/internal/backend"
	"github.com/atomicstack/treehouse/internal/logging"
	"github.com/atomicstack/treehouse/internal/tree"
)

// Result summarises what Apply did with a batch of records.
type Result struct {
	Created int
	Updated int
	Orphans int
	Cycles  int
	Skipped int
}

// Apply loads records into t. Records naming an existing node rename it;
// new ids create nodes. Nodes whose parent is unknown, and nodes whose
// parent link would close a cycle, are attached to the root. Siblings are
// appended in Index order.
func Apply(t *tree.Tree, records []backend.Record) Result {
	var res Result
	ordered := make([]backend.Record, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if rec.ID == "" || rec.ID == tree.RootID || seen[rec.ID] {
			res.Skipped++
			continue
		}
		seen[rec.ID] = true
		if n, err := t.Find(rec.ID); err == nil {
			n.SetName(rec.Name)
			res.Updated++
		} else if _, err := t.NewNodeWithID(rec.ID, rec.Name); err != nil {
			logging.Error(err)
			res.Skipped++
			continue
		} else {
			res.Created++
		}
		ordered = append(ordered, rec)
	}

	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	root := t.Root()
	for _, rec := range ordered {
		n, err := t.Find(rec.ID)
		if err != nil {
			continue
		}
		parent := root
		if rec.ParentID != "" && rec.ParentID != tree.RootID {
			if p, err := t.Find(rec.ParentID); err == nil {
				parent = p
			} else {
				res.Orphans++
			}
		}
		err = t.SetParent(n, parent)
		if errors.Is(err, tree.ErrCycle) {
			res.Cycles++
			err = t.SetParent(n, root)
		}
		if err != nil {
			logging.Error(err)
		}
	}
	return res
}

// Snapshot flattens the tree below the root into records in document order.
func Snapshot(t *tree.Tree) []backend.Record {
	out := []backend.Record{}
	t.Walk(t.Root(), func(n *tree.Node) bool {
		if n.IsRoot() {
			return true
		}
		out = append(out, backend.Record{
			ID:       n.ID(),
			ParentID: n.Parent().ID(),
			Name:     n.Name(),
			Index:    n.SiblingIndex(),
		})
		return true
	})
	return out
}
