package render

import (
	"strings"
	"testing"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func family(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New([]*record.Record{
		record.Make("id", 1, "parentId", 0, "text", "Cat", "uri", "#"),
		record.Make("id", 2, "parentId", 1, "text", "Child1", "uri", "/c1"),
		record.Make("id", 3, "parentId", 1, "text", "Child2", "uri", "/c2"),
		record.Make("id", 4, "parentId", 2, "text", "Grandchild", "uri", "/gc"),
	})
	require.NoError(t, err)
	return tr
}

func TestSubstitute(t *testing.T) {
	tr, err := tree.New([]*record.Record{
		record.Make("id", 1, "text", "Tom & Jerry <3", "rating", 4.5),
	})
	require.NoError(t, err)
	n := tr.NodeByID(record.Int(1))
	assert.Equal(t, "Tom &amp; Jerry &lt;3 (4.5)", Substitute(n, "<%text%> (<%rating%>)"))
	assert.Equal(t, "#1: <%missing%>", Substitute(n, "#<%id%>: <%missing%>"))
	assert.Equal(t, "no placeholders", Substitute(n, "no placeholders"))
}

func TestHTMLNestedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.render")
	defer teardown()
	//
	s, err := HTMLString(family(t), "<%text%>")
	require.NoError(t, err)
	t.Logf("html = %s", s)
	expected := `<ul><li class="tree-node">Cat<ul>` +
		`<li class="tree-node">Child1<ul><li class="tree-node">Grandchild</li></ul></li>` +
		`<li class="tree-node">Child2</li>` +
		`</ul></li></ul>`
	assert.Equal(t, expected, s)
}

func TestHTMLWithMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.render")
	defer teardown()
	//
	s, err := HTMLString(family(t), `<a href="<%uri%>" target="_blank"><%text%></a>`)
	require.NoError(t, err)
	assert.Contains(t, s, `<li class="tree-node"><a href="/gc" target="_blank">Grandchild</a></li>`)
	assert.Equal(t, 4, strings.Count(s, `<a `))
	assert.Equal(t, 3, strings.Count(s, `<ul>`))
}

func TestHTMLEmptyTree(t *testing.T) {
	s, err := HTMLString(tree.Empty(), "<%text%>")
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>", s)
}

func TestSearchRendersPaths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.render")
	defer teardown()
	//
	var b strings.Builder
	err := Search(&b, family(t), "text", tree.OpStartsWith, record.String("grand"), "<%text%>")
	require.NoError(t, err)
	assert.Equal(t, `<ul><li class="tree-node">Cat<ul><li class="tree-node">Child1<ul>`+
		`<li class="tree-node">Grandchild</li></ul></li></ul></li></ul>`, b.String())
	err = Search(&b, family(t), "text", tree.Operator("???"), record.String("x"), "")
	assert.ErrorIs(t, err, tree.ErrUnsupportedOperator)
}

func TestText(t *testing.T) {
	s := Text(family(t), FieldLabel("text"))
	t.Logf("text =\n%s", s)
	assert.Contains(t, s, "4 nodes")
	assert.Contains(t, s, "#4 Grandchild")
	assert.Less(t, strings.Index(s, "#2 Child1"), strings.Index(s, "#3 Child2"))
	s = Text(family(t), nil)
	assert.Contains(t, s, "#1 text=Cat uri=#")
}

func TestDOT(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.render")
	defer teardown()
	//
	var b strings.Builder
	require.NoError(t, DOT(&b, family(t), FieldLabel("text")))
	s := b.String()
	t.Logf("dot =\n%s", s)
	assert.True(t, strings.HasPrefix(s, "digraph g {"))
	assert.True(t, strings.HasSuffix(s, "}\n"))
	assert.Contains(t, s, `node00001	[ label="#1 Cat"`)
	assert.Contains(t, s, "node00000 -> node00001 [weight=1] ;")
	assert.Contains(t, s, "node00002 -> node00004 [weight=1] ;")
	assert.Equal(t, 4, strings.Count(s, "->"))
}

func TestHTMLKeepsTemplateVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.render")
	defer teardown()
	//
	tr, err := tree.New([]*record.Record{
		record.Make("id", 1, "text", "Fish & Chips"),
	})
	require.NoError(t, err)
	s, err := HTMLString(tr, `<a href="<%missing%>"><%text%></a> <%nope%>`)
	require.NoError(t, err)
	assert.Equal(t, `<ul><li class="tree-node"><a href="<%missing%>">Fish &amp; Chips</a> <%nope%></li></ul>`, s)
	// markup which would not parse inside a list item is kept, too
	s, err = HTMLString(tr, `<td><%text%></td>`)
	require.NoError(t, err)
	assert.Equal(t, `<ul><li class="tree-node"><td>Fish &amp; Chips</td></li></ul>`, s)
}
