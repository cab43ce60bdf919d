package repository

import (
	"sync"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

// CanvasRepository keeps one canvas in memory for the lifetime of the
// process. Every update swaps in a new canvas value; the slices of a
// canvas returned earlier are never written to, so callers can detect a
// change by comparing slice identity.
type CanvasRepository struct {
	mu     sync.RWMutex
	canvas domain.Canvas
}

func NewCanvasRepository(initial domain.Canvas) *CanvasRepository {
	if initial.Nodes == nil {
		initial.Nodes = []domain.Node{}
	}
	if initial.Edges == nil {
		initial.Edges = []domain.Edge{}
	}
	return &CanvasRepository{
		canvas: initial,
	}
}

func (r *CanvasRepository) Canvas() domain.Canvas {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.canvas
}

func (r *CanvasRepository) Update(fn func(domain.Canvas) domain.Canvas) domain.Canvas {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.canvas = fn(r.canvas)
	return r.canvas
}
