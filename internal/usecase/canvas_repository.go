package usecase

import (
	"github.com/AndrivA89/canvas-editor/internal/domain"
)

// CanvasRepository holds the current canvas. Update runs fn against the
// current canvas and stores the canvas it returns; implementations must
// serialise concurrent updates.
type CanvasRepository interface {
	Canvas() domain.Canvas
	Update(fn func(domain.Canvas) domain.Canvas) domain.Canvas
}
