package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/hier/codec"
	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/render"
	"github.com/npillmayer/hier/tree"
	"github.com/spf13/cobra"
)

func newExploreCmd(s *settings) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Walk a tree interactively",
		Long: `The explore command starts a shell positioned at the root of the tree.
Type 'help' for the list of shell commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.loadTree(cmd)
			if err != nil {
				return err
			}
			x := newExplorer(t, cmd.OutOrStdout(), labeler(label))
			rl, err := readline.New(x.prompt())
			if err != nil {
				return err
			}
			defer rl.Close()
			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					return nil
				} else if err != nil {
					return err
				}
				quit, err := x.exec(line)
				if err != nil {
					fmt.Fprintf(x.out, "error: %v\n", err)
				}
				if quit {
					return nil
				}
				rl.SetPrompt(x.prompt())
			}
		},
	}
	cmd.Flags().StringVar(&label, "label", "text", "Field labeling nodes, all fields if empty")
	return cmd
}

// explorer is the state of an interactive session: a tree and a current
// node.
type explorer struct {
	tree  *tree.Tree
	cur   *tree.Node
	out   io.Writer
	label render.Labeler
}

var errUsage = errors.New("wrong number of arguments, try 'help'")

func newExplorer(t *tree.Tree, out io.Writer, label render.Labeler) *explorer {
	return &explorer{tree: t, cur: t.Root(), out: out, label: label}
}

func (x *explorer) prompt() string {
	return "hier:" + x.path() + "> "
}

// path returns the identities from the top level down to the current node.
func (x *explorer) path() string {
	if x.cur.IsRoot() {
		return "/"
	}
	anc := x.cur.Ancestors()
	parts := make([]string, 0, len(anc)+1)
	for i := len(anc) - 1; i >= 0; i-- {
		parts = append(parts, anc[i].ID().String())
	}
	parts = append(parts, x.cur.ID().String())
	return "/" + strings.Join(parts, "/")
}

// exec runs a single shell command. It returns true if the session should
// end.
func (x *explorer) exec(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case "help", "?":
		x.help()
	case "ls":
		if len(args) > 1 {
			return false, errUsage
		}
		for _, ch := range x.cur.Children() {
			fmt.Fprintf(x.out, "%s (%d)\n", x.label(ch), ch.ChildCount())
		}
	case "cd":
		if len(args) != 2 {
			return false, errUsage
		}
		return false, x.cd(args[1])
	case "pwd":
		fmt.Fprintln(x.out, x.path())
	case "cat":
		n, err := x.nodeArg(args)
		if err != nil {
			return false, err
		}
		if n.IsRoot() {
			return false, tree.ErrRootNode
		}
		return false, codec.Encode(x.out, codec.JSON, []*record.Record{n.Record()})
	case "tree":
		n, err := x.nodeArg(args)
		if err != nil {
			return false, err
		}
		view := x.tree
		if !n.IsRoot() {
			if view, err = n.Stem(); err != nil {
				return false, err
			}
		}
		fmt.Fprint(x.out, render.Text(view, x.label))
	case "find":
		if len(args) != 4 {
			return false, errUsage
		}
		op, operand, err := parseCondition(args[2], args[3])
		if err != nil {
			return false, err
		}
		found, err := x.tree.Find(args[1], op, operand)
		if err != nil {
			return false, err
		}
		for _, n := range found {
			fmt.Fprintln(x.out, x.label(n))
		}
		fmt.Fprintf(x.out, "%d found\n", len(found))
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command: %s", args[0])
	}
	return false, nil
}

func (x *explorer) cd(target string) error {
	switch target {
	case "/":
		x.cur = x.tree.Root()
	case "..":
		if p := x.cur.Parent(); p != nil {
			x.cur = p
		}
	default:
		n := x.tree.NodeByID(parseScalar(target))
		if n == nil {
			return fmt.Errorf("no node with id %s", target)
		}
		x.cur = n
	}
	return nil
}

// nodeArg returns the node named by an optional id argument, or the current
// node.
func (x *explorer) nodeArg(args []string) (*tree.Node, error) {
	switch len(args) {
	case 1:
		return x.cur, nil
	case 2:
		if n := x.tree.NodeByID(parseScalar(args[1])); n != nil {
			return n, nil
		}
		return nil, fmt.Errorf("no node with id %s", args[1])
	}
	return nil, errUsage
}

func (x *explorer) help() {
	fmt.Fprint(x.out, `Commands:
  ls                           list the children of the current node
  cd <id> | cd .. | cd /       change the current node
  pwd                          print the path to the current node
  cat [id]                     print the record of a node
  tree [id]                    print the subtree below a node
  find <field> <op> <operand>  list the nodes matching a condition
  exit                         leave the shell
`)
}
