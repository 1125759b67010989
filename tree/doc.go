/*
Package tree builds hierarchies from flat records.

Records are linked by an id/parentId relationship. An ideal source of records
would be a database query result having key columns aliased to "id" and
"parentId". Records may carry any other payload fields, which are opaque to
the tree.

Every tree owns a synthetic root node with identity 0. Records with a parentId
of 0 (or without a parentId) become children of the root, i.e. top-level
nodes. The root is never exported.

Trees are not views: Node.Branch, Node.Limb, Node.Stem and Tree.Search
export the records of a selection of nodes and construct a new, independent
tree from them.

   Ancestors()     // parent, grandparent, … up to the top-level node
   Descendants()   // all nodes below a node, breadth first
   Branch()        // the whole top-level node a node belongs to
   Limb()          // the path from the top-level node down to a node
   Stem()          // a node, re-rooted, with all its descendants

Querying

Tree.Find performs a linear scan over all nodes, matching a payload field
against an operand with one of twelve operators (see type Operator).
Nodes not carrying the field are never matched.

Concurrency

Trees are not safe for concurrent use. Clients have to serialize access to
a tree and its nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// ErrUnsupportedOperator is returned by Find for an unknown operator.
var ErrUnsupportedOperator = errors.New("unsupported search operator")

// ErrInvalidOperand is returned by Find if an operand does not fit the
// operator, e.g. a range operand for OpBetween which is not a pair.
var ErrInvalidOperand = errors.New("invalid operand for search operator")

// ErrDanglingParent is returned if a record refers to a parent which is not
// present in the tree at the time the record is linked.
var ErrDanglingParent = errors.New("parent of node not present in tree")

// ErrHasChildren is returned when deleting a node which still has children.
var ErrHasChildren = errors.New("node still has children")

// ErrRootNode is returned for operations not permitted on the root node.
var ErrRootNode = errors.New("operation not permitted on root node")

// ErrCycle is returned if a node would become a descendant of itself.
var ErrCycle = errors.New("node cannot become a descendant of itself")

// ErrForeignNode is returned if a node is linked which does not belong to
// the tree (any longer), i.e. a node of another tree, a deleted node, or a
// node created before the tree was cleared.
var ErrForeignNode = errors.New("node does not belong to tree")

// tracer traces with key 'hier.tree'.
func tracer() tracing.Trace {
	return tracing.Select("hier.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hier.tree: "+msg, msgargs...)
		panic(msg)
	}
}
