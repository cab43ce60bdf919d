package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/canvas-editor/internal/domain"
	"github.com/AndrivA89/canvas-editor/internal/repository"
	"github.com/AndrivA89/canvas-editor/internal/usecase"
)

func newTestView(t *testing.T, page usecase.Page) (*CanvasView, *usecase.CanvasUseCase) {
	t.Helper()
	test.NewApp()

	uc, err := usecase.NewCanvas(page, repository.NewCanvasRepository(page.Preset()), usecase.IDCounter)
	require.NoError(t, err)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	v := NewCanvasView(uc, page, w)
	t.Cleanup(v.Close)
	w.SetContent(v.Content())
	return v, uc
}

func TestToolbarMatchesPage(t *testing.T) {
	shapes, _ := newTestView(t, usecase.PageShapes)
	assert.Contains(t, shapes.buttons, "Add Rectangle")
	assert.Contains(t, shapes.buttons, "Add Text")
	assert.NotContains(t, shapes.buttons, "Add Database Table")

	db, _ := newTestView(t, usecase.PageDatabase)
	assert.Contains(t, db.buttons, "Add Database Table")
	assert.Contains(t, db.buttons, "Add Field")
	assert.NotContains(t, db.buttons, "Add Circle")
}

func TestToolbarAddsNode(t *testing.T) {
	v, uc := newTestView(t, usecase.PageShapes)

	test.Tap(v.buttons["Add Circle"])

	nodes := uc.Canvas().Nodes
	require.Len(t, nodes, 1)
	assert.Equal(t, domain.Circle, nodes[0].Kind)
	assert.Contains(t, v.nodes, nodes[0].ID, "View should re-render with the new node")
}

func TestTapSelectsAndDeleteRemoves(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	test.Tap(v.nodes["2"])
	n, ok := uc.Canvas().Node("2")
	require.True(t, ok)
	assert.True(t, n.Selected)

	test.Tap(v.nodes["3"])
	n, _ = uc.Canvas().Node("2")
	assert.False(t, n.Selected, "Selecting another node clears the previous selection")

	v.typedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})

	c := uc.Canvas()
	_, ok = c.Node("3")
	assert.False(t, ok)
	assert.Len(t, c.Edges, 2, "Edges to the removed node stay in the collection")
	assert.NotContains(t, v.nodes, "3")
}

func TestHandleTapsConnect(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	src := v.handles[handleKey{nodeID: "1", side: domain.HandleSource, id: "warehouse_id"}]
	dst := v.handles[handleKey{nodeID: "2", side: domain.HandleTarget, id: "id"}]
	require.NotNil(t, src)
	require.NotNil(t, dst)

	test.Tap(src)
	test.Tap(dst)

	edges := uc.Canvas().Edges
	require.Len(t, edges, 3)
	assert.Equal(t, domain.Edge{
		ID:           "edge-1",
		Source:       "1",
		Target:       "2",
		SourceHandle: "warehouse_id",
		TargetHandle: "id",
	}, edges[2])
}

func TestTargetTapWithoutSourceIsIgnored(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	test.Tap(v.handles[handleKey{nodeID: "2", side: domain.HandleTarget, id: "id"}])

	assert.Len(t, uc.Canvas().Edges, 2)
}

func handleDot(hw *HandleWidget) *canvas.Circle {
	return test.WidgetRenderer(hw).Objects()[0].(*canvas.Circle)
}

func TestHandleVisibilityFollowsField(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	linkable := v.handles[handleKey{nodeID: "1", side: domain.HandleSource, id: "supplier_id"}]
	plain := v.handles[handleKey{nodeID: "1", side: domain.HandleSource, id: "price"}]
	assert.Equal(t, handleFill, handleDot(linkable).FillColor)
	assert.Equal(t, color.Transparent, handleDot(plain).FillColor)
	assert.Equal(t, color.Transparent, handleDot(v.handles[handleKey{nodeID: "1", side: domain.HandleTarget, id: "name"}]).FillColor)

	assert.True(t, plain.Visible(), "Hidden handles keep their slot in the row")
	assert.Equal(t, linkable.Position().X, plain.Position().X)

	test.Tap(plain)
	test.Tap(v.handles[handleKey{nodeID: "2", side: domain.HandleTarget, id: "id"}])
	assert.Len(t, uc.Canvas().Edges, 2, "Hidden handles do not start connections")
}

func TestEdgesAttachToRenderedHandles(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)
	d := fyne.CurrentApp().Driver()
	c := uc.Canvas()

	require.NotEmpty(t, v.handles)
	for key, hw := range v.handles {
		n, ok := c.Node(key.nodeID)
		require.True(t, ok)

		nodeAt := d.AbsolutePositionForObject(v.nodes[key.nodeID])
		rendered := d.AbsolutePositionForObject(hw).Subtract(nodeAt).AddXY(handleSize/2, handleSize/2)
		want := anchor(n, key.id, key.side).Subtract(fyne.NewPos(n.Position.X, n.Position.Y))
		assert.Equal(t, want, rendered, "handle %s/%s/%s", key.nodeID, key.side, key.id)
	}

	warehouses := v.edges["products-warehouses"]
	require.NotNil(t, warehouses)
	src := v.handles[handleKey{nodeID: "1", side: domain.HandleSource, id: "warehouse_id"}]
	srcCenter := d.AbsolutePositionForObject(src).Subtract(d.AbsolutePositionForObject(v.nodes["1"])).AddXY(handleSize/2, handleSize/2)
	products, _ := c.Node("1")
	assert.Equal(t, v.toScreen(products.Position).Add(srcCenter), warehouses.Line.Position1)
}

func TestTableRowsFitInFrame(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)
	d := fyne.CurrentApp().Driver()

	products, _ := uc.Canvas().Node("1")
	last := v.handles[handleKey{nodeID: "1", side: domain.HandleSource, id: "quantity"}]
	bottom := d.AbsolutePositionForObject(last).Y - d.AbsolutePositionForObject(v.nodes["1"]).Y + handleSize
	assert.LessOrEqual(t, bottom, nodeSize(products).Height)
}

func TestTapEdgeSelectsAndDeleteRemoves(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	test.Tap(v.nodes["1"])
	test.Tap(v.edges["products-warehouses"])

	c := uc.Canvas()
	n, _ := c.Node("1")
	assert.False(t, n.Selected, "Selecting an edge clears node selections")
	assert.True(t, c.Edges[0].Selected)
	assert.False(t, c.Edges[1].Selected)

	test.Tap(v.nodes["2"])
	assert.False(t, uc.Canvas().Edges[0].Selected, "Selecting a node clears edge selections")

	test.Tap(v.edges["products-warehouses"])
	v.typedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})

	c = uc.Canvas()
	require.Len(t, c.Edges, 1)
	assert.Equal(t, "products-suppliers", c.Edges[0].ID)
	assert.Len(t, c.Nodes, 3)
}

func TestDoubleTapEditsTableName(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	test.DoubleTap(v.nodes["1"])

	s, editing := uc.Editing()
	require.True(t, editing)
	assert.Equal(t, usecase.EditTableName, s.Target)

	v.finishEdit(true, "Items")
	n, _ := uc.Canvas().Node("1")
	assert.Equal(t, "Items", n.Data.Label)
}

func TestCancelledEditKeepsLabel(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	test.DoubleTap(v.nodes["1"])
	v.finishEdit(false, "ignored")

	n, _ := uc.Canvas().Node("1")
	assert.Equal(t, "Products", n.Data.Label)
	_, editing := uc.Editing()
	assert.False(t, editing)
}

func TestSubmitField(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)

	v.submitField("2", "region", "varchar")
	v.submitField("missing", "region", "varchar")

	n, _ := uc.Canvas().Node("2")
	assert.Equal(t, domain.NewField("region", "varchar"), n.Data.Schema[len(n.Data.Schema)-1])
	assert.Len(t, v.handles, 2*(7+5+4), "Re-render should add handles for the new row")
}

func TestDragMovesNode(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)
	nw := v.nodes["3"]

	nw.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(10, -20)})
	n, _ := uc.Canvas().Node("3")
	assert.True(t, n.Dragging)

	nw.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(5, 5)})
	nw.DragEnd()

	n, _ = uc.Canvas().Node("3")
	assert.Equal(t, domain.Position{X: 365, Y: 185}, n.Position)
	assert.False(t, n.Dragging)
	assert.Equal(t, "Suppliers", n.Data.Label)
}

func TestDragFollowsWithoutRebuild(t *testing.T) {
	v, uc := newTestView(t, usecase.PageDatabase)
	nw := v.nodes["3"]
	suppliers := v.edges["products-suppliers"]

	nw.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(10, 20)})

	assert.Same(t, nw, v.nodes["3"])
	assert.Same(t, suppliers, v.edges["products-suppliers"])

	n, _ := uc.Canvas().Node("3")
	assert.Equal(t, domain.Position{X: 360, Y: 220}, n.Position)
	assert.True(t, n.Dragging)
	assert.Equal(t, v.toScreen(n.Position), nw.Position())
	assert.Equal(t, anchor(n, "id", domain.HandleTarget).Add(v.origin), suppliers.Line.Position2)

	nw.DragEnd()
	assert.NotSame(t, nw, v.nodes["3"], "Dropping the node renders the canvas again")
}

func TestRenderersCoverRenderTypes(t *testing.T) {
	for _, kind := range domain.Kinds {
		n := domain.Node{Kind: kind}
		assert.Contains(t, renderers, n.RenderType(), "kind %s", kind)
	}
}
