package events

import "github.com/atomicstack/treehouse/internal/logging"

type TreeTracer struct{}

type PanelTracer struct{}

type MenuTracer struct{}

var (
	Tree  = TreeTracer{}
	Panel = PanelTracer{}
	Menu  = MenuTracer{}
)

func (TreeTracer) Reparent(id, from, to string) {
	logging.Trace("tree.reparent", map[string]interface{}{"node": id, "from": from, "to": to})
}

func (TreeTracer) Reorder(id string, index int) {
	logging.Trace("tree.reorder", map[string]interface{}{"node": id, "index": index})
}

func (TreeTracer) Destroy(id string, count int) {
	logging.Trace("tree.destroy", map[string]interface{}{"node": id, "count": count})
}

func (TreeTracer) Rejected(op, id string, err error) {
	logging.Trace("tree.rejected", map[string]interface{}{"op": op, "node": id, "error": err.Error()})
}

func (PanelTracer) Open(id, root string) {
	logging.Trace("panel.open", map[string]interface{}{"panel": id, "root": root})
}

func (PanelTracer) Close(id string) {
	logging.Trace("panel.close", map[string]interface{}{"panel": id})
}

func (PanelTracer) Zoom(id, root string, depth int) {
	logging.Trace("panel.zoom", map[string]interface{}{"panel": id, "root": root, "depth": depth})
}

func (MenuTracer) Show(name string, entries int) {
	logging.Trace("menu.show", map[string]interface{}{"menu": name, "entries": entries})
}

func (MenuTracer) Hide(name string) {
	logging.Trace("menu.hide", map[string]interface{}{"menu": name})
}
