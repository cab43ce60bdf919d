package domain

// LinkableType is the field type that marks a row as a relational handle.
const LinkableType = "uuid"

type Field struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Linkable bool   `json:"linkable"`
}

// NewField builds a field and decides once whether its row exposes
// attachment points.
func NewField(title, typ string) Field {
	return Field{
		Title:    title,
		Type:     typ,
		Linkable: typ == LinkableType,
	}
}

// HandleSide is the side of a row an attachment point sits on.
type HandleSide string

const (
	HandleSource HandleSide = "source"
	HandleTarget HandleSide = "target"
)

type Handle struct {
	ID      string     `json:"id"`
	Side    HandleSide `json:"side"`
	Visible bool       `json:"visible"`
}

// TableRow is the presentation of one schema field.
type TableRow struct {
	Title  string `json:"title"`
	Type   string `json:"type"`
	Source Handle `json:"source"`
	Target Handle `json:"target"`
}

// TableRows lays out a schema as rows, one per field in schema order.
// Both handles of a row carry the field title as their id.
func TableRows(schema []Field) []TableRow {
	rows := make([]TableRow, 0, len(schema))
	for _, f := range schema {
		rows = append(rows, TableRow{
			Title:  f.Title,
			Type:   f.Type,
			Source: Handle{ID: f.Title, Side: HandleSource, Visible: f.Linkable},
			Target: Handle{ID: f.Title, Side: HandleTarget, Visible: f.Linkable},
		})
	}
	return rows
}
