package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

// HandleWidget is an attachment point. Tapping a source handle and then a
// target handle completes a connection. A handle that is not Visible keeps
// its place on the node but draws nothing and ignores taps.
type HandleWidget struct {
	widget.BaseWidget
	NodeID   string
	Handle   domain.Handle
	OnTapped func(nodeID string, h domain.Handle)
}

func NewHandleWidget(nodeID string, h domain.Handle, onTapped func(string, domain.Handle)) *HandleWidget {
	hw := &HandleWidget{
		NodeID:   nodeID,
		Handle:   h,
		OnTapped: onTapped,
	}
	hw.ExtendBaseWidget(hw)
	return hw
}

func (hw *HandleWidget) CreateRenderer() fyne.WidgetRenderer {
	var fill color.Color = color.Transparent
	if hw.Handle.Visible {
		fill = handleFill
	}
	return widget.NewSimpleRenderer(canvas.NewCircle(fill))
}

func (hw *HandleWidget) MinSize() fyne.Size {
	return fyne.NewSize(handleSize, handleSize)
}

func (hw *HandleWidget) Tapped(_ *fyne.PointEvent) {
	if hw.Handle.Visible && hw.OnTapped != nil {
		hw.OnTapped(hw.NodeID, hw.Handle)
	}
}

// handleKey identifies a handle within one render of the canvas.
type handleKey struct {
	nodeID string
	side   domain.HandleSide
	id     string
}
