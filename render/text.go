package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	tp "github.com/xlab/treeprint"
)

// Labeler creates a one-line label for a node.
type Labeler func(*tree.Node) string

// FieldLabel labels nodes by their identity and the value of a payload field.
func FieldLabel(field string) Labeler {
	return func(n *tree.Node) string {
		if v, ok := n.Value().Get(field); ok {
			return fmt.Sprintf("#%s %s", n.ID(), v)
		}
		return "#" + n.ID().String()
	}
}

// PayloadLabel labels nodes by their identity and all payload fields except
// the reserved ones.
func PayloadLabel(n *tree.Node) string {
	var b strings.Builder
	b.WriteString("#" + n.ID().String())
	for _, k := range n.Value().Keys() {
		if k == record.IDField || k == record.ParentIDField {
			continue
		}
		v, _ := n.Value().Get(k)
		fmt.Fprintf(&b, " %s=%s", k, v)
	}
	return b.String()
}

// Text renders a tree as indented text. If label is nil, PayloadLabel is used.
func Text(t *tree.Tree, label Labeler) string {
	if label == nil {
		label = PayloadLabel
	}
	p := tp.New()
	p.SetValue(fmt.Sprintf("%d nodes", t.Len()))
	var add func(tp.Tree, *tree.Node)
	add = func(branch tp.Tree, n *tree.Node) {
		for _, ch := range n.Children() {
			if ch.ChildCount() == 0 {
				branch.AddNode(label(ch))
			} else {
				add(branch.AddBranch(label(ch)), ch)
			}
		}
	}
	add(p, t.Root())
	return p.String()
}
