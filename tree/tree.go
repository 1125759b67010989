package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/hier/ident"
	"github.com/npillmayer/hier/record"
)

// rootID is the identity of the synthetic root of every tree.
var rootID = record.Int(0)

// Tree owns a collection of nodes, keyed by identity. A synthetic root node
// with identity 0 anchors all top-level nodes.
//
// The zero value is not usable; create trees with New or Empty.
type Tree struct {
	root  *Node
	index *index
	newID ident.Generator
}

// Option configures a tree.
type Option func(*Tree)

// WithIDGenerator sets the generator for identities of records which do not
// carry an "id" field. The default is ident.Random.
func WithIDGenerator(gen ident.Generator) Option {
	return func(t *Tree) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// Empty creates a tree consisting of the root node only.
func Empty(opts ...Option) *Tree {
	t := &Tree{newID: ident.Random}
	for _, opt := range opts {
		opt(t)
	}
	t.Clear()
	return t
}

// New creates a tree from a store of records. Records are sorted by identity
// and linked under their parents in that order. Records whose identity is
// already present are skipped: the first one wins. A record whose parent
// has not been linked yet (because it sorts after its child) is deferred
// until the parent is present.
//
// If a record refers to a parent neither present in the tree nor in the
// store, New fails with ErrDanglingParent.
func New(store []*record.Record, opts ...Option) (*Tree, error) {
	t := Empty(opts...)
	if err := t.Import(store); err != nil {
		return nil, err
	}
	return t, nil
}

// Clear resets the tree to consist of the root node only.
func (t *Tree) Clear() {
	t.index = newIndex()
	t.root = &Node{
		tree:     t,
		id:       rootID,
		parentID: record.Null(),
		value:    record.New(),
	}
	t.index.put(t.root)
}

// Import adds a store of records to the tree, as described for New.
// Importing is cumulative; call Clear to start over.
//
// Import either adds all of the records or none of them: if one of the
// records has a dangling parent, the tree is left unchanged.
func (t *Tree) Import(store []*record.Record) error {
	sorted := make([]*record.Record, len(store))
	copy(sorted, store)
	record.SortByID(sorted)
	order, err := t.linkOrder(sorted)
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	for _, rec := range order {
		node := t.CreateNode(rec)
		t.index.get(node.parentID.Key()).link(node)
	}
	tracer().Debugf("imported %d of %d records, tree has %d nodes", len(order), len(store), t.Len())
	return nil
}

// ImportStore adds a store of records which do not use the reserved fields
// "id" and "parentId". The values of idField and parentField are used
// instead. The records of store are not modified.
//
// Multiple stores may be combined into one tree by calling ImportStore
// repeatedly.
func (t *Tree) ImportStore(idField, parentField string, store []*record.Record) error {
	return t.Import(record.Remap(store, idField, parentField))
}

// linkOrder drops duplicates from a sorted store and returns the remaining
// records in an order in which every parent is linked before its children.
// Records are taken in sorted order, with records waiting for their parent
// moved to a later pass.
func (t *Tree) linkOrder(sorted []*record.Record) ([]*record.Record, error) {
	seen := make(map[string]bool)
	pending := make([]*record.Record, 0, len(sorted))
	for _, rec := range sorted {
		if id := rec.ID(); !id.IsNull() {
			if seen[id.Key()] || t.index.has(id.Key()) {
				tracer().Debugf("skipping duplicate record with id=%s", id)
				continue
			}
			seen[id.Key()] = true
		}
		pending = append(pending, rec)
	}
	linked := make(map[string]bool)
	order := make([]*record.Record, 0, len(pending))
	for len(pending) > 0 {
		var deferred []*record.Record
		for _, rec := range pending {
			if key := parentOf(rec).Key(); !linked[key] && !t.index.has(key) {
				deferred = append(deferred, rec)
				continue
			}
			order = append(order, rec)
			if id := rec.ID(); !id.IsNull() {
				linked[id.Key()] = true
			}
		}
		if len(deferred) == len(pending) {
			rec := deferred[0]
			return nil, fmt.Errorf("record id=%s refers to parent %s: %w",
				rec.ID(), parentOf(rec), ErrDanglingParent)
		}
		pending = deferred
	}
	return order, nil
}

// parentOf returns the parent identity a record declares; a missing or null
// parentId denotes a top-level record.
func parentOf(rec *record.Record) record.Value {
	if p, ok := rec.Get(record.ParentIDField); ok && !p.IsNull() {
		return p
	}
	return rootID
}

// CreateNode creates a node for a payload and registers it with the tree.
// The node's identity is taken from the payload's "id" field, or generated
// if absent. The node is not linked to a parent: clients have to call
// AppendChild on the intended parent.
//
// The payload is copied. If a node with the payload's identity is already
// present, no node is created and the existing node is returned unchanged,
// as with duplicate records on import.
func (t *Tree) CreateNode(payload *record.Record) *Node {
	value := payload.Clone()
	node := &Node{tree: t, value: value, parentID: parentOf(value)}
	if id := value.ID(); !id.IsNull() {
		if existing := t.NodeByID(id); existing != nil {
			tracer().Debugf("node with id=%s already present", id)
			return existing
		}
		node.id = id
	} else {
		node.id = record.String(t.newID())
	}
	t.index.put(node)
	return node
}

// NodeByID returns the node with a given identity, or nil.
func (t *Tree) NodeByID(id record.Value) *Node {
	return t.index.get(id.Key())
}

// DeleteNode removes a node from the tree. The node is detached from its
// parent. Deleting a node which does not exist is a no-op. Deleting the root
// or a node with children is an error.
func (t *Tree) DeleteNode(id record.Value) error {
	node := t.NodeByID(id)
	if node == nil {
		return nil
	}
	if node.IsRoot() {
		return ErrRootNode
	}
	if node.ChildCount() > 0 {
		return fmt.Errorf("delete node %s: %w", id, ErrHasChildren)
	}
	if p := node.Parent(); p != nil {
		if i := p.IndexOfChild(node); i >= 0 {
			p.RemoveChild(i)
		}
	}
	t.index.remove(node.id.Key())
	return nil
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Child returns the top-level node at position n (see Node.Child).
func (t *Tree) Child(n int) (*Node, bool) {
	return t.root.Child(n)
}

// AppendChild appends a top-level node (see Node.AppendChild).
func (t *Tree) AppendChild(node *Node) error {
	return t.root.AppendChild(node)
}

// RemoveChild removes the top-level node at position n (see Node.RemoveChild).
func (t *Tree) RemoveChild(n int) *Node {
	return t.root.RemoveChild(n)
}

// Len returns the number of nodes, not counting the root.
func (t *Tree) Len() int {
	return t.index.len() - 1
}

// Nodes returns all nodes except the root, in index order.
func (t *Tree) Nodes() []*Node {
	nodes := make([]*Node, 0, t.Len())
	t.index.each(func(n *Node) bool {
		if !n.IsRoot() {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// Records exports every node except the root as a record, in index order.
// Each record is the node's payload with the node's identity and its
// parent's identity merged in. New(t.Records()) reconstructs a tree of
// identical structure.
func (t *Tree) Records() []*record.Record {
	return exportAll(t.Nodes())
}

// derive creates a tree from a store, sharing the configuration of t.
func (t *Tree) derive(store []*record.Record) (*Tree, error) {
	return New(store, WithIDGenerator(t.newID))
}

func (t *Tree) String() string {
	return fmt.Sprintf("(Tree #nodes=%d #top=%d)", t.Len(), t.root.ChildCount())
}
