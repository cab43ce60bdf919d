package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

// nodeRenderer draws the content of a node of one render type.
type nodeRenderer func(nw *NodeWidget) fyne.CanvasObject

// renderers maps each render type to its drawing strategy.
var renderers = map[domain.RenderType]nodeRenderer{
	domain.RenderDefault:        renderDefaultNode,
	domain.RenderDatabaseSchema: renderSchemaNode,
}

// NodeWidget presents one node and turns pointer gestures into canvas
// changes through the view it belongs to.
type NodeWidget struct {
	widget.BaseWidget
	Node    domain.Node
	view    *CanvasView
	handles []*HandleWidget
}

func NewNodeWidget(n domain.Node, v *CanvasView) *NodeWidget {
	nw := &NodeWidget{
		Node: n,
		view: v,
	}
	for _, h := range nodeHandles(n) {
		nw.handles = append(nw.handles, NewHandleWidget(n.ID, h, v.handleTapped))
	}
	nw.ExtendBaseWidget(nw)
	return nw
}

// nodeHandles lists the attachment points of a node, target before source.
// Table nodes get a pair per field; other nodes one default pair.
func nodeHandles(n domain.Node) []domain.Handle {
	if n.RenderType() != domain.RenderDatabaseSchema {
		return []domain.Handle{
			{Side: domain.HandleTarget, Visible: true},
			{Side: domain.HandleSource, Visible: true},
		}
	}
	rows := domain.TableRows(n.Data.Schema)
	handles := make([]domain.Handle, 0, 2*len(rows))
	for _, row := range rows {
		handles = append(handles, row.Target, row.Source)
	}
	return handles
}

func (nw *NodeWidget) CreateRenderer() fyne.WidgetRenderer {
	render, ok := renderers[nw.Node.RenderType()]
	if !ok {
		render = renderDefaultNode
	}
	return widget.NewSimpleRenderer(render(nw))
}

func (nw *NodeWidget) MinSize() fyne.Size {
	return nodeSize(nw.Node)
}

func (nw *NodeWidget) Tapped(_ *fyne.PointEvent) {
	nw.view.selectNode(nw.Node.ID)
}

func (nw *NodeWidget) DoubleTapped(_ *fyne.PointEvent) {
	nw.view.editNode(nw.Node.ID)
}

func (nw *NodeWidget) TappedSecondary(_ *fyne.PointEvent) {
	nw.view.addField(nw.Node.ID)
}

func (nw *NodeWidget) Dragged(ev *fyne.DragEvent) {
	nw.Node.Position.X += ev.Dragged.DX
	nw.Node.Position.Y += ev.Dragged.DY
	nw.view.dragNode(nw.Node.ID, nw.Node.Position)
}

func (nw *NodeWidget) DragEnd() {
	nw.view.dropNode(nw.Node.ID, nw.Node.Position)
}

func frame(n domain.Node, size fyne.Size) *canvas.Rectangle {
	bg := canvas.NewRectangle(parseColor(n.Style.Background))
	bg.StrokeWidth, bg.StrokeColor = borderStyle(n.Style.Border)
	if n.Selected {
		bg.StrokeWidth, bg.StrokeColor = 2, selectedStroke
	}
	bg.CornerRadius = cornerRadius(n.Style.BorderRadius, size)
	bg.Resize(size)
	return bg
}

func renderDefaultNode(nw *NodeWidget) fyne.CanvasObject {
	n := nw.Node
	size := nodeSize(n)

	label := widget.NewLabel(n.Data.Label)
	label.Alignment = fyne.TextAlignCenter
	label.Wrapping = fyne.TextWrapWord
	label.Resize(size)

	target, source := nw.handles[0], nw.handles[1]
	placeHandle(target, defaultHandleCenter(size, domain.HandleTarget))
	placeHandle(source, defaultHandleCenter(size, domain.HandleSource))

	return container.NewWithoutLayout(frame(n, size), label, target, source)
}

// renderSchemaNode lays the table out by hand so that every handle sits
// exactly where anchor attaches edges to it.
func renderSchemaNode(nw *NodeWidget) fyne.CanvasObject {
	n := nw.Node
	size := nodeSize(n)

	header := canvas.NewText(n.Data.Label, textFill)
	header.TextStyle = fyne.TextStyle{Bold: true}
	objects := []fyne.CanvasObject{
		frame(n, size),
		placeText(header, textInset, 0, tableHeaderHeight),
	}

	for i, row := range domain.TableRows(n.Data.Schema) {
		top := rowTop(i)
		title := canvas.NewText(row.Title, textFill)
		typ := canvas.NewText(row.Type, edgeStroke)
		typ.TextStyle = fyne.TextStyle{Monospace: true}
		typ.TextSize = 11

		target, source := nw.handles[2*i], nw.handles[2*i+1]
		placeHandle(target, fieldHandleCenter(size.Width, i, domain.HandleTarget))
		placeHandle(source, fieldHandleCenter(size.Width, i, domain.HandleSource))

		objects = append(objects,
			placeText(title, textInset, top, tableRowHeight),
			placeText(typ, size.Width-textInset-typ.MinSize().Width, top, tableRowHeight),
			target,
			source,
		)
	}

	return container.NewWithoutLayout(objects...)
}
