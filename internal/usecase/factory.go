package usecase

import (
	"fmt"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

const (
	TextLabel    = "Double click to edit"
	DefaultLabel = "New Table"
)

// DefaultPosition is where every new node is placed. New nodes may overlap
// existing ones.
var DefaultPosition = domain.Position{X: 100, Y: 100}

var baseStyle = domain.Style{
	Background: "#fff",
	Border:     "1px solid #ddd",
	Padding:    10,
}

type NodeFactory struct {
	ids IDGenerator
}

func NewNodeFactory(ids IDGenerator) *NodeFactory {
	return &NodeFactory{
		ids: ids,
	}
}

// Create builds a new node of the given kind with default geometry and
// data. Table nodes are seeded with an id and a created_at field.
func (f *NodeFactory) Create(kind domain.NodeKind) (domain.Node, error) {
	if !kind.Valid() {
		return domain.Node{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	node := domain.Node{
		ID:       f.ids.Next(),
		Kind:     kind,
		Position: DefaultPosition,
		Style:    StyleFor(kind),
		Data:     domain.NodeData{Label: DefaultLabel},
	}

	switch kind {
	case domain.Text:
		node.Data.Label = TextLabel
	case domain.Table:
		node.Data.Schema = []domain.Field{
			domain.NewField("id", "uuid"),
			domain.NewField("created_at", "timestamp"),
		}
	}
	return node, nil
}

// StyleFor returns the default visual style of a kind.
func StyleFor(kind domain.NodeKind) domain.Style {
	s := baseStyle
	switch kind {
	case domain.Rectangle:
		s.Width, s.Height = 150, 80
	case domain.Square:
		s.Width, s.Height = 80, 80
	case domain.Circle:
		s.Width, s.Height = 80, 80
		s.BorderRadius = "50%"
	case domain.Text:
		s.Background = "transparent"
		s.Border = "none"
		s.Width = 150
	case domain.Table:
		s.Width = 250
		s.MinHeight = 120
		s.BorderRadius = "4px"
		s.Padding = 0
	}
	return s
}
