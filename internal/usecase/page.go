package usecase

import (
	"fmt"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

// Page is one of the editor's canvases. Pages never share state.
type Page string

const (
	PageShapes   Page = "shapes"
	PageDatabase Page = "database"
)

func ParsePage(s string) (Page, error) {
	switch p := Page(s); p {
	case PageShapes, PageDatabase:
		return p, nil
	default:
		return "", fmt.Errorf("unknown page %q", s)
	}
}

// Kinds returns the node kinds offered by the page's toolbar.
func (p Page) Kinds() []domain.NodeKind {
	if p == PageDatabase {
		return []domain.NodeKind{domain.Table}
	}
	return []domain.NodeKind{domain.Rectangle, domain.Square, domain.Circle, domain.Text}
}

// Preset returns the canvas a page opens with.
func (p Page) Preset() domain.Canvas {
	if p != PageDatabase {
		return domain.Canvas{Nodes: []domain.Node{}, Edges: []domain.Edge{}}
	}
	return databasePreset()
}

// FirstNodeID is the counter value of the first node created on the page.
func (p Page) FirstNodeID() int {
	return len(p.Preset().Nodes) + 1
}

// NewCanvas wires a use case for the page on top of repo. repo is expected
// to hold the page preset.
func NewCanvas(p Page, repo CanvasRepository, strategy IDStrategy, opts ...Option) (*CanvasUseCase, error) {
	nodeIDs, err := NewIDGenerator(strategy, "node-", p.FirstNodeID())
	if err != nil {
		return nil, fmt.Errorf("node ids: %w", err)
	}
	edgeIDs, err := NewIDGenerator(strategy, "edge-", 1)
	if err != nil {
		return nil, fmt.Errorf("edge ids: %w", err)
	}
	return NewCanvasUseCase(repo, NewNodeFactory(nodeIDs), edgeIDs, opts...), nil
}

func presetTable(id, label string, pos domain.Position, fields ...[2]string) domain.Node {
	schema := make([]domain.Field, 0, len(fields))
	for _, f := range fields {
		schema = append(schema, domain.NewField(f[0], f[1]))
	}
	return domain.Node{
		ID:       id,
		Kind:     domain.Table,
		Position: pos,
		Style:    StyleFor(domain.Table),
		Data:     domain.NodeData{Label: label, Schema: schema},
	}
}

func databasePreset() domain.Canvas {
	return domain.Canvas{
		Nodes: []domain.Node{
			presetTable("1", "Products", domain.Position{X: 0, Y: 0},
				[2]string{"id", "uuid"},
				[2]string{"name", "varchar"},
				[2]string{"description", "varchar"},
				[2]string{"warehouse_id", "uuid"},
				[2]string{"supplier_id", "uuid"},
				[2]string{"price", "money"},
				[2]string{"quantity", "int4"},
			),
			presetTable("2", "Warehouses", domain.Position{X: 350, Y: -100},
				[2]string{"id", "uuid"},
				[2]string{"name", "varchar"},
				[2]string{"address", "varchar"},
				[2]string{"capacity", "int4"},
			),
			presetTable("3", "Suppliers", domain.Position{X: 350, Y: 200},
				[2]string{"id", "uuid"},
				[2]string{"name", "varchar"},
				[2]string{"description", "varchar"},
				[2]string{"country", "varchar"},
			),
		},
		Edges: []domain.Edge{
			{ID: "products-warehouses", Source: "1", Target: "2", SourceHandle: "warehouse_id", TargetHandle: "id"},
			{ID: "products-suppliers", Source: "1", Target: "3", SourceHandle: "supplier_id", TargetHandle: "id"},
		},
	}
}
