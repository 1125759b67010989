package render

import (
	"io"
	"regexp"
	"strings"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeClass is the CSS class of every rendered list item.
const NodeClass = "tree-node"

var placeholder = regexp.MustCompile(`<%(.*?)%>`)

// Substitute replaces the placeholders of a template with the payload
// fields of a node. Values are HTML-escaped. Placeholders for missing
// fields are kept.
func Substitute(node *tree.Node, template string) string {
	return placeholder.ReplaceAllStringFunc(template, func(tag string) string {
		field := placeholder.FindStringSubmatch(tag)[1]
		if v, ok := node.Value().Get(field); ok {
			return html.EscapeString(v.String())
		}
		return tag
	})
}

// HTML renders a tree as a nested unordered list. The root itself is not
// rendered: the outermost list holds the top-level nodes.
func HTML(w io.Writer, t *tree.Tree, template string) error {
	ul := listOf(t.Root().Children(), template)
	tracer().Debugf("rendering %d nodes as HTML", t.Len())
	return html.Render(w, ul)
}

// HTMLString is like HTML, but returns the markup as a string.
func HTMLString(t *tree.Tree, template string) (string, error) {
	var b strings.Builder
	if err := HTML(&b, t, template); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Search finds nodes (see tree.Tree.Search) and renders the union of the
// paths to every match as HTML.
func Search(w io.Writer, t *tree.Tree, field string, op tree.Operator, operand record.Value,
	template string) error {
	//
	view, err := t.Search(field, op, operand)
	if err != nil {
		return err
	}
	return HTML(w, view, template)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func listOf(nodes []*tree.Node, template string) *html.Node {
	ul := element(atom.Ul)
	for _, n := range nodes {
		ul.AppendChild(item(n, template))
	}
	return ul
}

// item creates the list item for a node. The substituted template is
// inserted verbatim.
func item(n *tree.Node, template string) *html.Node {
	li := element(atom.Li)
	li.Attr = []html.Attribute{{Key: "class", Val: NodeClass}}
	li.AppendChild(&html.Node{Type: html.RawNode, Data: Substitute(n, template)})
	if n.ChildCount() > 0 {
		li.AppendChild(listOf(n.Children(), template))
	}
	return li
}
