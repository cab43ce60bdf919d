package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/AndrivA89/canvas-editor/internal/config"
	"github.com/AndrivA89/canvas-editor/internal/domain"
	"github.com/AndrivA89/canvas-editor/internal/usecase"
)

var kindTitles = map[domain.NodeKind]string{
	domain.Rectangle: "Add Rectangle",
	domain.Square:    "Add Square",
	domain.Circle:    "Add Circle",
	domain.Text:      "Add Text",
	domain.Table:     "Add Database Table",
}

// pendingConnection is a source handle waiting for a target.
type pendingConnection struct {
	nodeID   string
	handleID string
}

// CanvasView is the rendering surface of one page. It redraws from the
// canvas it receives after every mutation and reports gestures back to
// the use case.
type CanvasView struct {
	uc     *usecase.CanvasUseCase
	page   usecase.Page
	window fyne.Window
	origin fyne.Position

	scroll  *container.Scroll
	toolbar *fyne.Container
	buttons map[string]*widget.Button

	nodes    map[string]*NodeWidget
	edges    map[string]*EdgeWidget
	handles  map[handleKey]*HandleWidget
	pending  *pendingConnection
	dragging string
	cancel   func()
}

func NewCanvasView(uc *usecase.CanvasUseCase, page usecase.Page, w fyne.Window) *CanvasView {
	v := &CanvasView{
		uc:      uc,
		page:    page,
		window:  w,
		origin:  fitOffset(uc.Canvas().Nodes),
		scroll:  container.NewScroll(container.NewWithoutLayout()),
		buttons: make(map[string]*widget.Button),
	}

	var items []fyne.CanvasObject
	for _, kind := range page.Kinds() {
		items = append(items, v.button(kindTitles[kind], func() { v.addNode(kind) }))
	}
	if page == usecase.PageDatabase {
		items = append(items, v.button("Add Field", v.addFieldToSelected))
	}
	items = append(items, v.button("Remove Edge", v.removeEdge))
	v.toolbar = container.NewHBox(items...)

	v.render(uc.Canvas())
	v.cancel = uc.Subscribe(v.render)
	return v
}

func (v *CanvasView) button(title string, tapped func()) *widget.Button {
	b := widget.NewButton(title, tapped)
	v.buttons[title] = b
	return b
}

// Content is the full page: toolbar on top, canvas below.
func (v *CanvasView) Content() fyne.CanvasObject {
	return container.NewBorder(v.toolbar, nil, nil, nil, v.scroll)
}

func (v *CanvasView) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *CanvasView) toScreen(p domain.Position) fyne.Position {
	return fyne.NewPos(p.X, p.Y).Add(v.origin)
}

func (v *CanvasView) render(c domain.Canvas) {
	if v.dragging != "" {
		v.follow(c)
		return
	}

	graph := container.NewWithoutLayout()
	nodes := make(map[string]*NodeWidget, len(c.Nodes))
	edges := make(map[string]*EdgeWidget, len(c.Edges))
	handles := make(map[handleKey]*HandleWidget)

	for _, e := range c.Edges {
		from, to, ok := v.edgeEnds(c, e)
		if !ok {
			continue
		}
		ew := NewEdgeWidget(e, v.selectEdge)
		ew.connect(from, to)
		graph.Add(ew.Line)
		edges[e.ID] = ew
	}

	for _, n := range c.Nodes {
		nw := NewNodeWidget(n, v)
		nw.Move(v.toScreen(n.Position))
		nw.Resize(nodeSize(n))
		graph.Add(nw)
		nodes[n.ID] = nw

		for _, hw := range nw.handles {
			handles[handleKey{nodeID: n.ID, side: hw.Handle.Side, id: hw.Handle.ID}] = hw
		}
	}

	// Edge tap targets go above the nodes.
	for _, e := range c.Edges {
		if ew, ok := edges[e.ID]; ok {
			graph.Add(ew)
		}
	}

	v.nodes = nodes
	v.edges = edges
	v.handles = handles
	v.scroll.Content = graph
	v.scroll.Refresh()
}

// follow moves the widgets already on screen to the positions in c. It
// replaces a full render while a node is being dragged.
func (v *CanvasView) follow(c domain.Canvas) {
	for _, n := range c.Nodes {
		if nw, ok := v.nodes[n.ID]; ok {
			nw.Move(v.toScreen(n.Position))
		}
	}
	for _, e := range c.Edges {
		ew, ok := v.edges[e.ID]
		if !ok {
			continue
		}
		if from, to, ok := v.edgeEnds(c, e); ok {
			ew.connect(from, to)
		}
	}
}

// edgeEnds returns the canvas points an edge joins. Edges with a missing
// endpoint are not drawn.
func (v *CanvasView) edgeEnds(c domain.Canvas, e domain.Edge) (fyne.Position, fyne.Position, bool) {
	src, ok := c.Node(e.Source)
	if !ok {
		return fyne.Position{}, fyne.Position{}, false
	}
	dst, ok := c.Node(e.Target)
	if !ok {
		return fyne.Position{}, fyne.Position{}, false
	}
	from := anchor(src, e.SourceHandle, domain.HandleSource).Add(v.origin)
	to := anchor(dst, e.TargetHandle, domain.HandleTarget).Add(v.origin)
	return from, to, true
}

func (v *CanvasView) addNode(kind domain.NodeKind) {
	if _, err := v.uc.AddNode(kind); err != nil {
		dialog.ShowError(err, v.window)
	}
}

func (v *CanvasView) moveNode(id string, pos domain.Position, dragging bool) {
	v.uc.ApplyNodeChanges([]domain.NodeChange{domain.MoveNode(id, pos, dragging)})
}

// dragNode records an intermediate drag position. The view follows it
// without rebuilding its widgets.
func (v *CanvasView) dragNode(id string, pos domain.Position) {
	v.dragging = id
	v.moveNode(id, pos, true)
}

func (v *CanvasView) dropNode(id string, pos domain.Position) {
	v.dragging = ""
	v.moveNode(id, pos, false)
}

// selectNode selects node id and clears every other selection.
func (v *CanvasView) selectNode(id string) {
	v.selectOnly(id, "")
}

// selectEdge selects edge id and clears every other selection.
func (v *CanvasView) selectEdge(id string) {
	v.selectOnly("", id)
}

func (v *CanvasView) selectOnly(nodeID, edgeID string) {
	c := v.uc.Canvas()
	var nodeChanges []domain.NodeChange
	for _, n := range c.Nodes {
		want := nodeID != "" && n.ID == nodeID
		if n.Selected != want {
			nodeChanges = append(nodeChanges, domain.SelectNode(n.ID, want))
		}
	}
	var edgeChanges []domain.EdgeChange
	for _, e := range c.Edges {
		want := edgeID != "" && e.ID == edgeID
		if e.Selected != want {
			edgeChanges = append(edgeChanges, domain.SelectEdge(e.ID, want))
		}
	}
	v.uc.ApplyEdgeChanges(edgeChanges)
	v.uc.ApplyNodeChanges(nodeChanges)
}

func (v *CanvasView) selectedNodeID() (string, bool) {
	for _, n := range v.uc.Canvas().Nodes {
		if n.Selected {
			return n.ID, true
		}
	}
	return "", false
}

// deleteSelected removes every selected node and edge.
func (v *CanvasView) deleteSelected() {
	c := v.uc.Canvas()
	var edgeChanges []domain.EdgeChange
	for _, e := range c.Edges {
		if e.Selected {
			edgeChanges = append(edgeChanges, domain.RemoveEdge(e.ID))
		}
	}
	var nodeChanges []domain.NodeChange
	for _, n := range c.Nodes {
		if n.Selected {
			nodeChanges = append(nodeChanges, domain.RemoveNode(n.ID))
		}
	}
	v.uc.ApplyEdgeChanges(edgeChanges)
	v.uc.ApplyNodeChanges(nodeChanges)
}

func (v *CanvasView) typedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyDelete {
		v.deleteSelected()
	}
}

func (v *CanvasView) handleTapped(nodeID string, h domain.Handle) {
	switch h.Side {
	case domain.HandleSource:
		v.pending = &pendingConnection{nodeID: nodeID, handleID: h.ID}
	case domain.HandleTarget:
		if v.pending == nil {
			return
		}
		p := v.pending
		v.pending = nil
		v.uc.Connect(domain.Connection{
			Source:       p.nodeID,
			SourceHandle: p.handleID,
			Target:       nodeID,
			TargetHandle: h.ID,
		})
	}
}

// editNode puts a node in edit mode and shows an input for its label or
// table name.
func (v *CanvasView) editNode(id string) {
	s, err := v.uc.BeginEdit(id)
	if errors.Is(err, usecase.ErrNodeNotFound) {
		log.Printf("edit ignored: %v", err)
		return
	}
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}

	entry := widget.NewEntry()
	entry.SetText(s.Draft)
	items := []*widget.FormItem{widget.NewFormItem(s.Target.Prompt(), entry)}
	dialog.ShowForm("Edit", "Save", "Cancel", items, func(ok bool) {
		v.finishEdit(ok, entry.Text)
	}, v.window)
}

func (v *CanvasView) finishEdit(ok bool, value string) {
	if !ok {
		v.uc.CancelEdit()
		return
	}
	if _, err := v.uc.CommitEdit(value); err != nil {
		dialog.ShowError(err, v.window)
	}
}

func (v *CanvasView) addFieldToSelected() {
	id, ok := v.selectedNodeID()
	if !ok {
		dialog.ShowInformation("No table selected", "Select a table to add a field to", v.window)
		return
	}
	v.addField(id)
}

// addField asks for a field title and type and appends the field to a
// table node. Non-table nodes are ignored.
func (v *CanvasView) addField(id string) {
	if !v.uc.CanAddField(id) {
		return
	}

	titleEntry := widget.NewEntry()
	typeEntry := widget.NewEntry()
	items := []*widget.FormItem{
		widget.NewFormItem(usecase.FieldTitlePrompt, titleEntry),
		widget.NewFormItem(usecase.FieldTypePrompt, typeEntry),
	}
	dialog.ShowForm("Add Field", "Add", "Cancel", items, func(ok bool) {
		if ok {
			v.submitField(id, titleEntry.Text, typeEntry.Text)
		}
	}, v.window)
}

func (v *CanvasView) submitField(id, title, typ string) {
	_, err := v.uc.AddField(id, title, typ)
	switch {
	case errors.Is(err, usecase.ErrNodeNotFound):
		log.Printf("add field ignored: %v", err)
	case err != nil:
		dialog.ShowError(err, v.window)
	}
}

func edgeLabel(c domain.Canvas, e domain.Edge) string {
	end := func(id, handle string) string {
		name := id
		if n, ok := c.Node(id); ok {
			name = n.Data.Label
		}
		if handle != "" {
			name += "." + handle
		}
		return name
	}
	return fmt.Sprintf("%s -> %s", end(e.Source, e.SourceHandle), end(e.Target, e.TargetHandle))
}

func (v *CanvasView) removeEdge() {
	c := v.uc.Canvas()
	if len(c.Edges) == 0 {
		dialog.ShowInformation("No edges", "No edges to remove", v.window)
		return
	}

	options := make([]string, len(c.Edges))
	for i, e := range c.Edges {
		options[i] = fmt.Sprintf("[%d] %s", i, edgeLabel(c, e))
	}
	edgeSelect := widget.NewSelect(options, nil)
	edgeSelect.SetSelected(options[0])

	items := []*widget.FormItem{widget.NewFormItem("Select Edge", edgeSelect)}
	dialog.ShowForm("Remove Edge", "Delete", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		idx := indexOf(options, edgeSelect.Selected)
		if idx < 0 {
			return
		}
		v.uc.ApplyEdgeChanges([]domain.EdgeChange{domain.RemoveEdge(c.Edges[idx].ID)})
	}, v.window)
}

// ShowCanvasUI opens a window for one page and blocks until it is closed.
func ShowCanvasUI(uc *usecase.CanvasUseCase, page usecase.Page, cfg *config.Config) {
	a := app.New()
	w := a.NewWindow(fmt.Sprintf("%s - %s", cfg.Window.Title, page))
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	v := NewCanvasView(uc, page, w)
	defer v.Close()

	w.Canvas().SetOnTypedKey(v.typedKey)
	w.SetContent(v.Content())
	w.ShowAndRun()
}

func indexOf(arr []string, val string) int {
	for i, v := range arr {
		if v == val {
			return i
		}
	}
	return -1
}
