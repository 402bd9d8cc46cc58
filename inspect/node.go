package inspect

// Node is one region of the surface: where it sits, whether it is drawn,
// and the values that decided how it looks.
type Node struct {
	// Type is the component type (e.g. "Status", "Prompter", "Minimap").
	Type string `json:"type"`

	ID string `json:"id,omitempty"`

	Bounds Bounds `json:"bounds"`

	// Visible is false for chrome the layout dropped.
	Visible bool `json:"visible"`

	// State contains component-specific values.
	State map[string]interface{} `json:"state,omitempty"`

	Styles *StyleInfo `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the text content if applicable.
	Content string `json:"content,omitempty"`
}

// Bounds is measured in terminal cells from the top-left corner.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo is the subset of a lipgloss style worth diffing between frames.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      bool   `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	Padding     []int  `json:"padding,omitempty"` // [top, right, bottom, left]

	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// NewNode starts a visible node. The With* setters return the node so a
// tree can be built in one expression.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithVisible sets whether the node is drawn.
func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild appends child and returns the parent.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}
