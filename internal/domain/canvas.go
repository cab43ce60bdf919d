package domain

// Canvas is one immutable view of the node and edge collections. A
// mutation produces a new Canvas with new slices; slices held by an older
// Canvas are never written to.
type Canvas struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node returns the node with the given id.
func (c Canvas) Node(id string) (Node, bool) {
	i := FindNode(c.Nodes, id)
	if i < 0 {
		return Node{}, false
	}
	return c.Nodes[i], true
}

// DanglingEdges returns the edges whose source or target is not a node of
// the canvas.
func (c Canvas) DanglingEdges() []Edge {
	var dangling []Edge
	for _, e := range c.Edges {
		if FindNode(c.Nodes, e.Source) < 0 || FindNode(c.Nodes, e.Target) < 0 {
			dangling = append(dangling, e)
		}
	}
	return dangling
}
