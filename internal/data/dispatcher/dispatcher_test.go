package dispatcher

import (
	"reflect"
	"testing"

	"github.com/atomicstack/treehouse/internal/backend"
	"github.com/atomicstack/treehouse/internal/testutil"
	"github.com/atomicstack/treehouse/internal/tree"
)

func TestApplyBuildsTree(t *testing.T) {
	tr := tree.New()
	res := Apply(tr, []backend.Record{
		{ID: "y", ParentID: "p", Name: "y", Index: 1},
		{ID: "p", Name: "p", Index: 0},
		{ID: "x", ParentID: "p", Name: "x", Index: 0},
		{ID: "q", ParentID: tree.RootID, Name: "q", Index: 1},
	})
	if res.Created != 4 || res.Skipped != 0 || res.Orphans != 0 || res.Cycles != 0 {
		t.Fatalf("unexpected result %#v", res)
	}
	want := "p\n  x\n  y\nq\n"
	if got := testutil.Outline(tr, tr.Root()); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestApplyOrphansAndSkips(t *testing.T) {
	tr := tree.New()
	res := Apply(tr, []backend.Record{
		{ID: "a", ParentID: "ghost", Name: "a"},
		{ID: "", Name: "blank"},
		{ID: tree.RootID, Name: "root"},
		{ID: "a", Name: "dup"},
	})
	if res.Created != 1 || res.Orphans != 1 || res.Skipped != 3 {
		t.Fatalf("unexpected result %#v", res)
	}
	a, err := tr.Find("a")
	if err != nil || a.Parent() != tr.Root() || a.Name() != "a" {
		t.Fatalf("expected orphan a attached to root")
	}
}

func TestApplyBreaksCycles(t *testing.T) {
	tr := tree.New()
	res := Apply(tr, []backend.Record{
		{ID: "a", ParentID: "b", Name: "a"},
		{ID: "b", ParentID: "a", Name: "b"},
	})
	if res.Cycles != 1 {
		t.Fatalf("expected one cycle, got %#v", res)
	}
	if got := testutil.Outline(tr, tr.Root()); got != "b\n  a\n" {
		t.Fatalf("unexpected outline %q", got)
	}
}

func TestApplyUpdatesExisting(t *testing.T) {
	tr := tree.New()
	nodes := testutil.BuildOutline(t, tr, "a\n")
	id := nodes["a"].ID()
	res := Apply(tr, []backend.Record{{ID: id, Name: "renamed"}})
	if res.Updated != 1 || res.Created != 0 {
		t.Fatalf("unexpected result %#v", res)
	}
	if nodes["a"].Name() != "renamed" {
		t.Fatalf("expected rename, got %q", nodes["a"].Name())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := tree.New()
	testutil.BuildOutline(t, src, `
p
  x
  y
q
`)
	records := Snapshot(src)
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].ParentID != tree.RootID || records[1].Index != 0 || records[2].Index != 1 {
		t.Fatalf("unexpected records %#v", records)
	}

	dst := tree.New()
	Apply(dst, records)
	if got, want := testutil.Outline(dst, dst.Root()), testutil.Outline(src, src.Root()); got != want {
		t.Fatalf("expected round trip\n%s\ngot\n%s", want, got)
	}
	if !reflect.DeepEqual(Snapshot(dst), records) {
		t.Fatalf("expected identical snapshot after round trip")
	}
}
