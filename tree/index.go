package tree

// index maps identity keys to nodes, remembering insertion order.
// Export order of a tree is index order.
type index struct {
	nodes map[string]*Node
	order []string
}

func newIndex() *index {
	return &index{nodes: make(map[string]*Node)}
}

func (ix *index) get(key string) *Node {
	return ix.nodes[key]
}

func (ix *index) has(key string) bool {
	_, ok := ix.nodes[key]
	return ok
}

// put registers a node. Re-registering an identity replaces the node but
// keeps its position.
func (ix *index) put(n *Node) {
	key := n.id.Key()
	if _, ok := ix.nodes[key]; !ok {
		ix.order = append(ix.order, key)
	}
	ix.nodes[key] = n
}

func (ix *index) remove(key string) {
	if _, ok := ix.nodes[key]; !ok {
		return
	}
	delete(ix.nodes, key)
	for i, k := range ix.order {
		if k == key {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
}

func (ix *index) len() int {
	return len(ix.order)
}

// each calls f for every node in index order, until f returns false.
func (ix *index) each(f func(*Node) bool) {
	for _, k := range ix.order {
		if !f(ix.nodes[k]) {
			return
		}
	}
}
