package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/hier/record"
)

/*
A node is owned by exactly one tree. Its identity and its parent's identity
are record values; the parent is resolved through the tree's index, not by
pointer. Children are kept in insertion order.
*/

// Node is a single entry of a hierarchy. Nodes are created by
// Tree.CreateNode or by constructing a tree from records, never directly.
type Node struct {
	tree     *Tree
	id       record.Value
	parentID record.Value
	value    *record.Record
	children []*Node
}

func (node *Node) String() string {
	return fmt.Sprintf("(Node #%s ^%s #ch=%d %v)", node.id, node.parentID, len(node.children), node.value)
}

// ID returns the identity of a node.
func (node *Node) ID() record.Value {
	return node.id
}

// ParentID returns the identity of the node's parent. 0 denotes a top-level
// node. Null denotes the root, or a node detached by RemoveChild.
func (node *Node) ParentID() record.Value {
	return node.parentID
}

// Value returns the payload record of a node. The record is owned by the node;
// changing its "id" or "parentId" fields does not change the tree structure.
func (node *Node) Value() *record.Record {
	return node.value
}

// SetValue replaces the payload of a node and returns the previous one.
// It has no effect on structure.
func (node *Node) SetValue(value *record.Record) *record.Record {
	old := node.value
	node.value = value
	return old
}

// Tree returns the tree owning this node.
func (node *Node) Tree() *Tree {
	return node.tree
}

// IsRoot is true for the synthetic root node of a tree.
func (node *Node) IsRoot() bool {
	return node.tree != nil && node.tree.root == node
}

// Parent returns the parent node, or nil for the root and for detached nodes.
func (node *Node) Parent() *Node {
	if node.parentID.IsNull() || node.tree == nil {
		return nil
	}
	return node.tree.index.get(node.parentID.Key())
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node) ChildCount() int {
	return len(node.children)
}

// Child returns the child at position n. If n is out of range, Child
// returns false.
func (node *Node) Child(n int) (*Node, bool) {
	if n < 0 || n >= len(node.children) {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node, in order.
func (node *Node) Children() []*Node {
	children := make([]*Node, len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the position of ch within the children of node,
// or -1.
func (node *Node) IndexOfChild(ch *Node) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// AppendChild makes ch the last child of node. If ch is currently linked to
// a parent, it is detached from there first.
//
// Appending the root or an ancestor of node (including node itself) is an
// error. Both nodes have to be registered with the same tree: nodes of other
// trees, deleted nodes and nodes dropped by Tree.Clear are rejected.
func (node *Node) AppendChild(ch *Node) error {
	if ch == nil {
		return nil
	}
	if !node.registered() || !ch.registered() || ch.tree != node.tree {
		return ErrForeignNode
	}
	if ch.IsRoot() {
		return ErrRootNode
	}
	for p := node; p != nil; p = p.Parent() {
		if p == ch {
			return fmt.Errorf("append %s to %s: %w", ch.id, node.id, ErrCycle)
		}
		if p.IsRoot() {
			break
		}
	}
	if p := ch.Parent(); p != nil {
		if i := p.IndexOfChild(ch); i >= 0 {
			p.removeAt(i)
		}
	}
	node.link(ch)
	return nil
}

// registered is true if node is the entry for its identity in its tree's
// index.
func (node *Node) registered() bool {
	return node.tree != nil && node.tree.index.get(node.id.Key()) == node
}

// link appends ch without any checks.
func (node *Node) link(ch *Node) {
	ch.parentID = node.id
	node.children = append(node.children, ch)
}

// RemoveChild removes the child at position n and returns it. Remaining
// children keep their relative order. If n is out of range, nil is returned.
//
// The removed node stays registered with the tree, but is detached: its
// ParentID becomes null and Parent returns nil, until it is appended again.
func (node *Node) RemoveChild(n int) *Node {
	if n < 0 || n >= len(node.children) {
		return nil
	}
	ch := node.removeAt(n)
	ch.parentID = record.Null()
	return ch
}

func (node *Node) removeAt(n int) *Node {
	ch := node.children[n]
	copy(node.children[n:], node.children[n+1:])
	node.children[len(node.children)-1] = nil
	node.children = node.children[:len(node.children)-1]
	return ch
}

// Record returns the exported record of a node: a copy of its payload, with
// the structural identities merged in. Detached nodes export parentId 0.
func (node *Node) Record() *record.Record {
	rec := node.value.Clone()
	rec.Set(record.IDField, node.id)
	parentID := node.parentID
	if parentID.IsNull() {
		parentID = rootID
	}
	rec.Set(record.ParentIDField, parentID)
	return rec
}
