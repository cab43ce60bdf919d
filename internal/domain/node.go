package domain

type NodeKind string

const (
	Rectangle NodeKind = "rectangle"
	Square    NodeKind = "square"
	Circle    NodeKind = "circle"
	Text      NodeKind = "text"
	Table     NodeKind = "table"
)

// Kinds lists every node kind in toolbar order.
var Kinds = []NodeKind{Rectangle, Square, Circle, Text, Table}

func (k NodeKind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// RenderType names the rendering strategy the surface uses for a node.
type RenderType string

const (
	RenderDefault        RenderType = "default"
	RenderDatabaseSchema RenderType = "databaseSchema"
)

type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Style holds visual hints derived once from the kind at creation time.
// A zero Width or Height means the surface sizes the node to its content.
type Style struct {
	Width        float32 `json:"width,omitempty"`
	Height       float32 `json:"height,omitempty"`
	MinHeight    float32 `json:"min_height,omitempty"`
	Background   string  `json:"background,omitempty"`
	Border       string  `json:"border,omitempty"`
	BorderRadius string  `json:"border_radius,omitempty"`
	Padding      float32 `json:"padding,omitempty"`
}

type NodeData struct {
	Label  string  `json:"label"`
	Schema []Field `json:"schema,omitempty"`
}

type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Position Position `json:"position"`
	Style    Style    `json:"style"`
	Data     NodeData `json:"data"`
	Selected bool     `json:"selected"`
	Dragging bool     `json:"dragging"`
}

// IsTable reports whether the node carries a schema.
func (n Node) IsTable() bool {
	return n.Data.Schema != nil
}

func (n Node) RenderType() RenderType {
	if n.Kind == Table {
		return RenderDatabaseSchema
	}
	return RenderDefault
}

// WithLabel returns a copy of n with a new label.
func (n Node) WithLabel(label string) Node {
	n.Data.Label = label
	return n
}

// WithField returns a copy of n with f appended to its schema. The
// original schema slice is never written to.
func (n Node) WithField(f Field) Node {
	schema := make([]Field, len(n.Data.Schema), len(n.Data.Schema)+1)
	copy(schema, n.Data.Schema)
	n.Data.Schema = append(schema, f)
	return n
}

// FindNode returns the index of the node with the given id, or -1.
func FindNode(nodes []Node, id string) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
