package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/hier/tree"
)

// DOT writes a tree as a GraphViz digraph. Nodes are labeled by label, or by
// PayloadLabel if label is nil.
func DOT(w io.Writer, t *tree.Tree, label Labeler) error {
	if label == nil {
		label = PayloadLabel
	}
	if err := dotHeadTmpl.Execute(w, "Helvetica"); err != nil {
		return err
	}
	names := make(map[*tree.Node]string, t.Len()+1)
	name := func(n *tree.Node) string {
		s, ok := names[n]
		if !ok {
			s = fmt.Sprintf("node%05d", len(names))
			names[n] = s
		}
		return s
	}
	if err := dotRootTmpl.Execute(w, name(t.Root())); err != nil {
		return err
	}
	queue := []*tree.Node{t.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, ch := range n.Children() {
			if err := dotNodeTmpl.Execute(w, dotNode{Name: name(ch), Label: label(ch)}); err != nil {
				return err
			}
			if err := dotEdgeTmpl.Execute(w, [2]string{name(n), name(ch)}); err != nil {
				return err
			}
			queue = append(queue, ch)
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

type dotNode struct {
	Name  string
	Label string
}

var dotHeadTmpl = template.Must(template.New("head").Parse(`digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ . }}" fontsize=14] ;
  edge [fontname = "{{ . }}" fontsize=14] ;
`))

var dotRootTmpl = template.Must(template.New("root").Parse(`{{ . }}	[ label="root" shape=point ] ;
`))

var dotNodeTmpl = template.Must(template.New("node").Parse(`{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=lightblue3 ] ;
`))

var dotEdgeTmpl = template.Must(template.New("edge").Parse(`{{ index . 0 }} -> {{ index . 1 }} [weight=1] ;
`))
