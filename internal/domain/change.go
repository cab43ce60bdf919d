package domain

type ChangeType string

const (
	ChangePosition ChangeType = "position"
	ChangeSelect   ChangeType = "select"
	ChangeRemove   ChangeType = "remove"
)

// NodeChange describes one structural change the rendering surface
// reports for a node. Position is only read for ChangePosition and
// Selected only for ChangeSelect.
type NodeChange struct {
	Type     ChangeType `json:"type"`
	ID       string     `json:"id"`
	Position *Position  `json:"position,omitempty"`
	Dragging bool       `json:"dragging,omitempty"`
	Selected bool       `json:"selected,omitempty"`
}

type EdgeChange struct {
	Type     ChangeType `json:"type"`
	ID       string     `json:"id"`
	Selected bool       `json:"selected,omitempty"`
}

func MoveNode(id string, pos Position, dragging bool) NodeChange {
	return NodeChange{Type: ChangePosition, ID: id, Position: &pos, Dragging: dragging}
}

func SelectNode(id string, selected bool) NodeChange {
	return NodeChange{Type: ChangeSelect, ID: id, Selected: selected}
}

func RemoveNode(id string) NodeChange {
	return NodeChange{Type: ChangeRemove, ID: id}
}

func SelectEdge(id string, selected bool) EdgeChange {
	return EdgeChange{Type: ChangeSelect, ID: id, Selected: selected}
}

func RemoveEdge(id string) EdgeChange {
	return EdgeChange{Type: ChangeRemove, ID: id}
}

// ApplyNodeChanges returns the node collection that results from applying
// changes in order. The input slice is left untouched and a new slice is
// always returned. Changes naming unknown ids are ignored.
func ApplyNodeChanges(changes []NodeChange, nodes []Node) []Node {
	next := make([]Node, len(nodes))
	copy(next, nodes)

	for _, c := range changes {
		i := FindNode(next, c.ID)
		if i < 0 {
			continue
		}
		switch c.Type {
		case ChangePosition:
			if c.Position != nil {
				next[i].Position = *c.Position
			}
			next[i].Dragging = c.Dragging
		case ChangeSelect:
			next[i].Selected = c.Selected
		case ChangeRemove:
			next = append(next[:i:i], next[i+1:]...)
		}
	}
	return next
}

// ApplyEdgeChanges is the edge counterpart of ApplyNodeChanges.
func ApplyEdgeChanges(changes []EdgeChange, edges []Edge) []Edge {
	next := make([]Edge, len(edges))
	copy(next, edges)

	for _, c := range changes {
		i := findEdge(next, c.ID)
		if i < 0 {
			continue
		}
		switch c.Type {
		case ChangeSelect:
			next[i].Selected = c.Selected
		case ChangeRemove:
			next = append(next[:i:i], next[i+1:]...)
		}
	}
	return next
}

// RemovedNodeIDs returns the ids of nodes removed by changes.
func RemovedNodeIDs(changes []NodeChange) []string {
	var ids []string
	for _, c := range changes {
		if c.Type == ChangeRemove {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func findEdge(edges []Edge, id string) int {
	for i, e := range edges {
		if e.ID == id {
			return i
		}
	}
	return -1
}
