package usecase

import (
	"errors"
	"fmt"
	"sync"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNotTable     = errors.New("node has no schema")
	ErrNotEditing   = errors.New("no edit in progress")
	ErrUnknownKind  = errors.New("unknown node kind")
)

// DanglingPolicy decides what happens to edges whose node is removed.
type DanglingPolicy string

const (
	// DanglingKeep leaves edges to removed nodes in the collection.
	DanglingKeep DanglingPolicy = "keep"
	// DanglingCascade removes them together with the node.
	DanglingCascade DanglingPolicy = "cascade"
)

func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	switch p := DanglingPolicy(s); p {
	case DanglingKeep, DanglingCascade:
		return p, nil
	case "":
		return DanglingKeep, nil
	default:
		return "", fmt.Errorf("unknown dangling edge policy %q", s)
	}
}

type Option func(*CanvasUseCase)

func WithDanglingPolicy(p DanglingPolicy) Option {
	return func(uc *CanvasUseCase) {
		uc.dangling = p
	}
}

// CanvasUseCase is the single source of truth for one canvas session. The
// rendering surface reports gestures to it and re-renders from the canvas
// passed to subscribers after every mutation.
type CanvasUseCase struct {
	repo     CanvasRepository
	factory  *NodeFactory
	edgeIDs  IDGenerator
	dangling DanglingPolicy

	mu        sync.Mutex
	editing   *EditSession
	observers map[int]func(domain.Canvas)
	nextObs   int
}

func NewCanvasUseCase(repo CanvasRepository, factory *NodeFactory, edgeIDs IDGenerator, opts ...Option) *CanvasUseCase {
	uc := &CanvasUseCase{
		repo:      repo,
		factory:   factory,
		edgeIDs:   edgeIDs,
		dangling:  DanglingKeep,
		observers: make(map[int]func(domain.Canvas)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *CanvasUseCase) Canvas() domain.Canvas {
	return uc.repo.Canvas()
}

// Subscribe registers fn to receive the canvas after each mutation. The
// returned func removes the subscription.
func (uc *CanvasUseCase) Subscribe(fn func(domain.Canvas)) func() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.nextObs
	uc.nextObs++
	uc.observers[id] = fn
	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		delete(uc.observers, id)
	}
}

func (uc *CanvasUseCase) notify(c domain.Canvas) {
	uc.mu.Lock()
	fns := make([]func(domain.Canvas), 0, len(uc.observers))
	for _, fn := range uc.observers {
		fns = append(fns, fn)
	}
	uc.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// AddNode creates a node of the given kind and appends it to the canvas.
func (uc *CanvasUseCase) AddNode(kind domain.NodeKind) (domain.Node, error) {
	node, err := uc.factory.Create(kind)
	if err != nil {
		return domain.Node{}, err
	}

	c := uc.repo.Update(func(c domain.Canvas) domain.Canvas {
		nodes := make([]domain.Node, len(c.Nodes), len(c.Nodes)+1)
		copy(nodes, c.Nodes)
		c.Nodes = append(nodes, node)
		return c
	})
	uc.notify(c)
	return node, nil
}

// ApplyNodeChanges applies a batch of node changes reported by the
// rendering surface. Under DanglingCascade, edges touching removed nodes
// are dropped in the same update.
func (uc *CanvasUseCase) ApplyNodeChanges(changes []domain.NodeChange) {
	if len(changes) == 0 {
		return
	}
	removed := domain.RemovedNodeIDs(changes)

	c := uc.repo.Update(func(c domain.Canvas) domain.Canvas {
		c.Nodes = domain.ApplyNodeChanges(changes, c.Nodes)
		if uc.dangling == DanglingCascade && len(removed) > 0 {
			c.Edges = dropEdgesTouching(c.Edges, removed)
		}
		return c
	})
	uc.notify(c)
}

func (uc *CanvasUseCase) ApplyEdgeChanges(changes []domain.EdgeChange) {
	if len(changes) == 0 {
		return
	}

	c := uc.repo.Update(func(c domain.Canvas) domain.Canvas {
		c.Edges = domain.ApplyEdgeChanges(changes, c.Edges)
		return c
	})
	uc.notify(c)
}

// Connect accepts a connection proposal verbatim and appends it as a new
// edge. Duplicate edges, self-loops and unknown endpoints are all accepted.
func (uc *CanvasUseCase) Connect(proposal domain.Connection) domain.Edge {
	edge := proposal.Edge(uc.edgeIDs.Next())

	c := uc.repo.Update(func(c domain.Canvas) domain.Canvas {
		edges := make([]domain.Edge, len(c.Edges), len(c.Edges)+1)
		copy(edges, c.Edges)
		c.Edges = append(edges, edge)
		return c
	})
	uc.notify(c)
	return edge
}

// RenameNode replaces the label of a node. An empty label is treated as no
// change requested and reports false.
func (uc *CanvasUseCase) RenameNode(nodeID, label string) (bool, error) {
	if label == "" {
		return false, nil
	}
	return uc.updateNode(nodeID, func(n domain.Node) (domain.Node, error) {
		return n.WithLabel(label), nil
	})
}

// AddField appends a field to a table node. Both title and type must be
// non-empty, otherwise nothing is added and false is reported.
func (uc *CanvasUseCase) AddField(nodeID, title, typ string) (bool, error) {
	if title == "" || typ == "" {
		return false, nil
	}
	return uc.updateNode(nodeID, func(n domain.Node) (domain.Node, error) {
		if !n.IsTable() {
			return n, fmt.Errorf("add field to %s: %w", nodeID, ErrNotTable)
		}
		return n.WithField(domain.NewField(title, typ)), nil
	})
}

func (uc *CanvasUseCase) updateNode(nodeID string, fn func(domain.Node) (domain.Node, error)) (bool, error) {
	var err error
	updated := false

	c := uc.repo.Update(func(c domain.Canvas) domain.Canvas {
		i := domain.FindNode(c.Nodes, nodeID)
		if i < 0 {
			err = fmt.Errorf("%s: %w", nodeID, ErrNodeNotFound)
			return c
		}
		var n domain.Node
		n, err = fn(c.Nodes[i])
		if err != nil {
			return c
		}
		nodes := make([]domain.Node, len(c.Nodes))
		copy(nodes, c.Nodes)
		nodes[i] = n
		c.Nodes = nodes
		updated = true
		return c
	})
	if !updated {
		return false, err
	}
	uc.notify(c)
	return true, nil
}

func dropEdgesTouching(edges []domain.Edge, nodeIDs []string) []domain.Edge {
	kept := make([]domain.Edge, 0, len(edges))
	for _, e := range edges {
		touched := false
		for _, id := range nodeIDs {
			if e.Touches(id) {
				touched = true
				break
			}
		}
		if !touched {
			kept = append(kept, e)
		}
	}
	return kept
}
