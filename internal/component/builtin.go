package component

const (
	KindCheckbox Kind = "checkbox"
	KindPage     Kind = "page"
)

// Checkbox turns a node into a task.
type Checkbox struct {
	Checked bool
}

func (*Checkbox) Kind() Kind { return KindCheckbox }

// NewCheckbox returns an unchecked checkbox.
func NewCheckbox() *Checkbox {
	return &Checkbox{}
}

// Page attaches a markdown body to a node.
type Page struct {
	Markdown string
}

func (*Page) Kind() Kind { return KindPage }

// NewPage returns an empty page.
func NewPage() *Page {
	return &Page{}
}
