package tree

import (
	"github.com/npillmayer/hier/record"
)

// Ancestors returns the parent of node, the parent's parent, and so on, up to
// and including the top-level ancestor. The root is not included.
// Top-level nodes have no ancestors.
func (node *Node) Ancestors() []*Node {
	var ancestors []*Node
	limit := node.tree.index.len() // guards against corrupted links
	for p := node.Parent(); p != nil && !p.IsRoot(); p = p.Parent() {
		ancestors = append(ancestors, p)
		if len(ancestors) > limit {
			assertThat(false, "cycle in ancestors of node %s", node.id)
		}
	}
	return ancestors
}

// Descendants returns all nodes below node, in breadth-first order: all
// children first, then all grandchildren, and so on. Siblings keep their
// order. node itself is not included.
func (node *Node) Descendants() []*Node {
	var descendants []*Node
	queue := []*Node{node}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		descendants = append(descendants, n.children...)
		queue = append(queue, n.children...)
	}
	return descendants
}

// topLevel returns the top-level ancestor of node, or node itself.
func (node *Node) topLevel() *Node {
	ancestors := node.Ancestors()
	if len(ancestors) == 0 {
		return node
	}
	return ancestors[len(ancestors)-1]
}

// Branch returns a new tree holding the top-level ancestor of node (or node
// itself, if it is top-level) with all of that ancestor's descendants.
// It represents the whole top-level category node belongs to.
func (node *Node) Branch() (*Tree, error) {
	top := node.topLevel()
	nodes := append([]*Node{top}, top.Descendants()...)
	tracer().Debugf("branch of node %s has %d nodes", node.id, len(nodes))
	return node.tree.derive(exportAll(nodes))
}

// Limb returns a new tree holding a single node at each level: the path from
// the top-level ancestor of node down to node itself.
func (node *Node) Limb() (*Tree, error) {
	ancestors := node.Ancestors()
	nodes := make([]*Node, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		nodes = append(nodes, ancestors[i])
	}
	nodes = append(nodes, node)
	tracer().Debugf("limb of node %s has %d nodes", node.id, len(nodes))
	return node.tree.derive(exportAll(nodes))
}

// Stem returns a new tree holding node as a top-level node, together with all
// of its descendants. Structurally, node is detached from its ancestry in the
// new tree. Its payload, however, keeps the original "parentId".
func (node *Node) Stem() (*Tree, error) {
	descendants := node.Descendants()
	store := make([]*record.Record, 0, len(descendants)+1)
	self := node.Record()
	self.Set(record.ParentIDField, rootID)
	store = append(store, self)
	store = append(store, exportAll(descendants)...)
	tracer().Debugf("stem of node %s has %d nodes", node.id, len(store))
	stem, err := node.tree.derive(store)
	if err != nil {
		return nil, err
	}
	if n := stem.NodeByID(node.id); n != nil && !n.IsRoot() {
		original := node.parentID
		if original.IsNull() {
			original = rootID
		}
		value := n.Value().Clone()
		value.Set(record.ParentIDField, original)
		n.SetValue(value)
	}
	return stem, nil
}

func exportAll(nodes []*Node) []*record.Record {
	store := make([]*record.Record, len(nodes))
	for i, n := range nodes {
		store[i] = n.Record()
	}
	return store
}
