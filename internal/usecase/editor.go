package usecase

import (
	"errors"
	"fmt"
)

type EditTarget string

const (
	EditLabel     EditTarget = "label"
	EditTableName EditTarget = "table-name"
)

func (t EditTarget) Prompt() string {
	if t == EditTableName {
		return "Enter table name:"
	}
	return "Enter new text:"
}

// EditSession is the state of a node in edit mode. Draft starts as the
// node's current label.
type EditSession struct {
	NodeID string
	Target EditTarget
	Draft  string
}

// BeginEdit puts a node into edit mode. Beginning a new edit replaces any
// edit already in progress without applying it.
func (uc *CanvasUseCase) BeginEdit(nodeID string) (EditSession, error) {
	node, ok := uc.repo.Canvas().Node(nodeID)
	if !ok {
		return EditSession{}, fmt.Errorf("edit %s: %w", nodeID, ErrNodeNotFound)
	}

	s := EditSession{
		NodeID: nodeID,
		Target: EditLabel,
		Draft:  node.Data.Label,
	}
	if node.IsTable() {
		s.Target = EditTableName
	}

	uc.mu.Lock()
	uc.editing = &s
	uc.mu.Unlock()
	return s, nil
}

func (uc *CanvasUseCase) Editing() (EditSession, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.editing == nil {
		return EditSession{}, false
	}
	return *uc.editing, true
}

// CommitEdit leaves edit mode and applies value as the node's new label or
// table name. An empty value, or a node removed while it was being edited,
// leaves the canvas unchanged.
func (uc *CanvasUseCase) CommitEdit(value string) (bool, error) {
	uc.mu.Lock()
	s := uc.editing
	uc.editing = nil
	uc.mu.Unlock()

	if s == nil {
		return false, ErrNotEditing
	}

	ok, err := uc.RenameNode(s.NodeID, value)
	if errors.Is(err, ErrNodeNotFound) {
		return false, nil
	}
	return ok, err
}

func (uc *CanvasUseCase) CancelEdit() {
	uc.mu.Lock()
	uc.editing = nil
	uc.mu.Unlock()
}

// Prompts of the add-field form, in order.
const (
	FieldTitlePrompt = "Enter field name:"
	FieldTypePrompt  = "Enter field type (e.g., varchar, int4, uuid, timestamp, money):"
)

// CanAddField reports whether nodeID names a table node that accepts new
// fields.
func (uc *CanvasUseCase) CanAddField(nodeID string) bool {
	node, ok := uc.repo.Canvas().Node(nodeID)
	return ok && node.IsTable()
}
