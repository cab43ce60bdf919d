package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/AndrivA89/canvas-editor/internal/domain"
)

const (
	tableHeaderHeight = 36
	tableRowHeight    = 28
	autoHeight        = 40
	handleSize        = 10
	edgeHitSize       = 12
	textInset         = 12
	fitMargin         = 40
)

var (
	selectedStroke = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	handleFill     = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	edgeStroke     = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	textFill       = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
)

// nodeSize is the on-screen size of a node. Nodes without a fixed height
// grow to fit their content.
func nodeSize(n domain.Node) fyne.Size {
	w, h := n.Style.Width, n.Style.Height
	if w == 0 {
		w = 150
	}
	if n.Kind == domain.Table {
		h = rowTop(len(n.Data.Schema))
		if h < n.Style.MinHeight {
			h = n.Style.MinHeight
		}
	}
	if h == 0 {
		h = autoHeight
	}
	return fyne.NewSize(w, h)
}

// rowTop is the offset of table row i from the top of its node. The rows
// follow the header with no gap.
func rowTop(i int) float32 {
	return tableHeaderHeight + float32(i)*tableRowHeight
}

// fieldHandleCenter is the centre of a field handle relative to the node:
// on the left border for targets, the right border for sources.
func fieldHandleCenter(width float32, row int, side domain.HandleSide) fyne.Position {
	y := rowTop(row) + tableRowHeight/2
	if side == domain.HandleSource {
		return fyne.NewPos(width, y)
	}
	return fyne.NewPos(0, y)
}

// defaultHandleCenter is the centre of a node's default handle: the middle
// of the top border for targets, the bottom border for sources.
func defaultHandleCenter(size fyne.Size, side domain.HandleSide) fyne.Position {
	if side == domain.HandleSource {
		return fyne.NewPos(size.Width/2, size.Height)
	}
	return fyne.NewPos(size.Width/2, 0)
}

// handleCenter locates a handle relative to its node. Field handles sit on
// the row of the first field with the same title; any other handle uses
// the node's default side.
func handleCenter(n domain.Node, handleID string, side domain.HandleSide) fyne.Position {
	size := nodeSize(n)
	if handleID != "" {
		for i, f := range n.Data.Schema {
			if f.Title == handleID {
				return fieldHandleCenter(size.Width, i, side)
			}
		}
	}
	return defaultHandleCenter(size, side)
}

// anchor is where an edge attaches to a node, relative to the canvas
// origin. It is the centre of the rendered handle.
func anchor(n domain.Node, handleID string, side domain.HandleSide) fyne.Position {
	return fyne.NewPos(n.Position.X, n.Position.Y).Add(handleCenter(n, handleID, side))
}

// placeHandle centres a handle on c.
func placeHandle(hw *HandleWidget, c fyne.Position) {
	hw.Resize(fyne.NewSize(handleSize, handleSize))
	hw.Move(c.SubtractXY(handleSize/2, handleSize/2))
}

// placeText sets t to its minimum size at x and centres it vertically in
// the band of height h starting at top.
func placeText(t *canvas.Text, x, top, h float32) *canvas.Text {
	size := t.MinSize()
	t.Resize(size)
	t.Move(fyne.NewPos(x, top+(h-size.Height)/2))
	return t
}

// fitOffset shifts the canvas so every node starts at least fitMargin from
// the top-left corner.
func fitOffset(nodes []domain.Node) fyne.Position {
	if len(nodes) == 0 {
		return fyne.NewPos(fitMargin, fitMargin)
	}
	minX, minY := nodes[0].Position.X, nodes[0].Position.Y
	for _, n := range nodes[1:] {
		if n.Position.X < minX {
			minX = n.Position.X
		}
		if n.Position.Y < minY {
			minY = n.Position.Y
		}
	}
	return fyne.NewPos(fitMargin-minX, fitMargin-minY)
}

// parseColor understands the style values the node factory produces:
// "transparent", "#rgb" and "#rrggbb". Anything else is white.
func parseColor(s string) color.Color {
	if s == "transparent" {
		return color.Transparent
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.White
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.White
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// borderStyle turns a CSS-like "1px solid #ddd" into a stroke. "none"
// and empty borders have no stroke.
func borderStyle(border string) (float32, color.Color) {
	parts := strings.Fields(border)
	if len(parts) != 3 {
		return 0, color.Transparent
	}
	width, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "px"), 32)
	if err != nil {
		return 0, color.Transparent
	}
	return float32(width), parseColor(parts[2])
}

// cornerRadius converts a "50%" or "4px" radius into pixels for size.
func cornerRadius(radius string, size fyne.Size) float32 {
	switch {
	case strings.HasSuffix(radius, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(radius, "%"), 32)
		if err != nil {
			return 0
		}
		return fyne.Min(size.Width, size.Height) * float32(pct) / 100
	case strings.HasSuffix(radius, "px"):
		px, err := strconv.ParseFloat(strings.TrimSuffix(radius, "px"), 32)
		if err != nil {
			return 0
		}
		return float32(px)
	}
	return 0
}
