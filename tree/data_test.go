package tree

import (
	"fmt"
	"sort"
	"testing"

	"github.com/npillmayer/hier/record"
	tp "github.com/xlab/treeprint"
)

func tutorials() []*record.Record {
	return []*record.Record{
		record.Make("id", 1, "parentId", 0, "uri", "#", "text", "HTML Tutorials"),
		record.Make("id", 2, "parentId", 1, "uri", "https://html.com/", "text", "HTML.com: Study HTML and Learn to Code With Our Step-By-Step Guide"),
		record.Make("id", 3, "parentId", 1, "uri", "https://www.w3schools.com/html/", "text", "HTML5 Tutorial"),
		record.Make("id", 4, "parentId", 1, "uri", "https://www.htmldog.com/guides/html/beginner/", "text", "HTML Beginner Tutorial"),
		record.Make("id", 5, "parentId", 0, "uri", "#", "text", "CSS Tutorials"),
		record.Make("id", 6, "parentId", 5, "uri", "https://www.w3schools.com/Css/", "text", "CSS Tutorial"),
		record.Make("id", 7, "parentId", 5, "uri", "https://www.tutorialspoint.com/css/css3_tutorial.htm", "text", "CSS3 - Tutorial"),
		record.Make("id", 8, "parentId", 5, "uri", "https://www.lynda.com/CSS-training-tutorials/447-0.html", "text", "CSS Training and Tutorials"),
		record.Make("id", 9, "parentId", 0, "uri", "#", "text", "JavaScript Tutorials"),
		record.Make("id", 10, "parentId", 9, "uri", "https://javascript.info/", "text", "The Modern Javascript Tutorial"),
		record.Make("id", 11, "parentId", 9, "uri", "https://www.codecademy.com/learn/introduction-to-javascript", "text", "Introduction To JavaScript"),
		record.Make("id", 12, "parentId", 9, "uri", "https://www.javascript.com/try", "text", "Start learning JavaScript with our free real time tutorial"),
		record.Make("id", 13, "parentId", 0, "uri", "#", "text", "PHP Tutorials"),
		record.Make("id", 14, "parentId", 13, "uri", "https://www.tutorialrepublic.com/php-tutorial/", "text", "PHP Tutorial - An Ultimate Guide for Beginners"),
		record.Make("id", 15, "parentId", 13, "uri", "https://www.guru99.com/php-tutorials.html", "text", "PHP Tutorial for Beginners: Learn in 7 Days"),
		record.Make("id", 16, "parentId", 13, "uri", "https://www.sololearn.com/Course/PHP/", "text", "PHP Tutorial | SoloLearn: Learn to code for FREE!"),
	}
}

func family() []*record.Record {
	return []*record.Record{
		record.Make("id", 1, "parentId", 0, "text", "Cat"),
		record.Make("id", 2, "parentId", 1, "text", "Child1"),
		record.Make("id", 3, "parentId", 1, "text", "Child2"),
		record.Make("id", 4, "parentId", 2, "text", "Grandchild"),
	}
}

func mustTree(t *testing.T, store []*record.Record, opts ...Option) *Tree {
	t.Helper()
	tree, err := New(store, opts...)
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	return tree
}

func node(t *testing.T, tree *Tree, id int) *Node {
	t.Helper()
	n := tree.NodeByID(record.Int(int64(id)))
	if n == nil {
		t.Fatalf("node #%d not found", id)
	}
	return n
}

func ids(nodes []*Node) []string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.ID().String()
	}
	return s
}

func recordIDs(store []*record.Record) []string {
	s := make([]string, len(store))
	for i, rec := range store {
		s[i] = rec.ID().String()
	}
	sort.Strings(s)
	return s
}

// dump prints a tree for test logs.
func dump(tree *Tree) string {
	p := tp.New()
	var add func(tp.Tree, *Node)
	add = func(branch tp.Tree, n *Node) {
		for _, ch := range n.Children() {
			text, _ := ch.Value().Get("text")
			label := fmt.Sprintf("#%s %s", ch.ID(), text)
			if ch.ChildCount() == 0 {
				branch.AddNode(label)
			} else {
				add(branch.AddBranch(label), ch)
			}
		}
	}
	add(p, tree.Root())
	return p.String()
}
