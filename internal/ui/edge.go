package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

// EdgeWidget is the tap target at the middle of an edge. Tapping it
// selects the edge. Line is the stroke it belongs to and is added to the
// canvas separately, below the nodes.
type EdgeWidget struct {
	widget.BaseWidget
	Edge     domain.Edge
	Line     *canvas.Line
	OnTapped func(edgeID string)
}

func NewEdgeWidget(e domain.Edge, onTapped func(string)) *EdgeWidget {
	line := canvas.NewLine(edgeStroke)
	line.StrokeWidth = 2
	if e.Selected {
		line.StrokeColor = selectedStroke
	}

	ew := &EdgeWidget{
		Edge:     e,
		Line:     line,
		OnTapped: onTapped,
	}
	ew.ExtendBaseWidget(ew)
	ew.Resize(fyne.NewSize(edgeHitSize, edgeHitSize))
	return ew
}

func (ew *EdgeWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewCircle(ew.Line.StrokeColor))
}

func (ew *EdgeWidget) MinSize() fyne.Size {
	return fyne.NewSize(edgeHitSize, edgeHitSize)
}

func (ew *EdgeWidget) Tapped(_ *fyne.PointEvent) {
	if ew.OnTapped != nil {
		ew.OnTapped(ew.Edge.ID)
	}
}

// connect stretches the line between two canvas points and centres the
// tap target on it.
func (ew *EdgeWidget) connect(from, to fyne.Position) {
	ew.Line.Position1, ew.Line.Position2 = from, to
	mid := fyne.NewPos((from.X+to.X)/2, (from.Y+to.Y)/2)
	ew.Move(mid.SubtractXY(edgeHitSize/2, edgeHitSize/2))
	ew.Line.Refresh()
}
