package state

// Item is a single palette row: a command id and its display label.
type Item struct {
	ID    string
	Label string
}

// Palette tracks the command palette's items, query, and cursor.
type Palette struct {
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPalette constructs a Palette over the provided items.
func NewPalette(items []Item) *Palette {
	p := &Palette{
		LastCursor: -1,
	}
	p.UpdateItems(items)
	return p
}

// IndexOf returns the index for a given item identifier.
func (p *Palette) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range p.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the item under the cursor.
func (p *Palette) Selected() (Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Item{}, false
	}
	return p.Items[p.Cursor], true
}

// UpdateItems replaces the full item set and reapplies the current filter.
func (p *Palette) UpdateItems(items []Item) {
	prevOffset := p.ViewportOffset
	p.Full = CloneItems(items)
	p.applyFilter()
	if len(p.Items) == 0 {
		p.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
