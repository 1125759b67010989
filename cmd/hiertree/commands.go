package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/hier/codec"
	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/render"
	"github.com/npillmayer/hier/tree"
	"github.com/spf13/cobra"
)

func newShowCmd(s *settings) *cobra.Command {
	var view, template, label string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display a tree",
		Long: `The show command displays the tree built from the input records.

Views:
  text     indented outline (default)
  html     nested unordered list, one item per node, filled from --template
  dot      GraphViz digraph
  records  the exported record store, in the --output format

Example:
  hiertree show -i links.json
  hiertree show -i links.json --view html --template '<a href="<%uri%>"><%text%></a>'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.loadTree(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch view {
			case "text":
				_, err = fmt.Fprint(w, render.Text(t, labeler(label)))
			case "html":
				if err = render.HTML(w, t, template); err == nil {
					_, err = fmt.Fprintln(w)
				}
			case "dot":
				err = render.DOT(w, t, labeler(label))
			case "records":
				err = s.writeRecords(w, t.Records())
			default:
				err = fmt.Errorf("unknown view %q", view)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&view, "view", "text", "View to display (text|html|dot|records)")
	cmd.Flags().StringVar(&template, "template", "<%text%>", "Template for HTML list items")
	cmd.Flags().StringVar(&label, "label", "text", "Field labeling nodes in text and dot views, all fields if empty")
	return cmd
}

func labeler(field string) render.Labeler {
	if field == "" {
		return render.PayloadLabel
	}
	return render.FieldLabel(field)
}

func newFindCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "find <field> <operator> <operand>",
		Short: "Print the records of all nodes matching a condition",
		Long: `The find command prints the records of all nodes whose field satisfies
a condition, in tree order.

Operators: ` + operatorList() + `
Operands of btw and ins are comma-separated lists.

Example:
  hiertree find -i links.json text css beginner
  hiertree find -i links.json id btw 2,4`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.loadTree(cmd)
			if err != nil {
				return err
			}
			op, operand, err := parseCondition(args[1], args[2])
			if err != nil {
				return err
			}
			found, err := t.Find(args[0], op, operand)
			if err != nil {
				return err
			}
			store := make([]*record.Record, len(found))
			for i, n := range found {
				store[i] = n.Record()
			}
			return s.writeRecords(cmd.OutOrStdout(), store)
		},
	}
}

func newSearchCmd(s *settings) *cobra.Command {
	var template string
	cmd := &cobra.Command{
		Use:   "search <field> <operator> <operand>",
		Short: "Print the paths leading to all nodes matching a condition",
		Long: `The search command finds all nodes whose field satisfies a condition and
prints the tree made of the matches and their ancestors. With --template the
tree is printed as an HTML list, otherwise as records.

Example:
  hiertree search -i links.json text css php --template '<%text%>'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.loadTree(cmd)
			if err != nil {
				return err
			}
			op, operand, err := parseCondition(args[1], args[2])
			if err != nil {
				return err
			}
			if template != "" {
				err = render.Search(cmd.OutOrStdout(), t, args[0], op, operand, template)
				if err == nil {
					_, err = fmt.Fprintln(cmd.OutOrStdout())
				}
				return err
			}
			view, err := t.Search(args[0], op, operand)
			if err != nil {
				return err
			}
			return s.writeRecords(cmd.OutOrStdout(), view.Records())
		},
	}
	cmd.Flags().StringVar(&template, "template", "", "Print an HTML list using this item template")
	return cmd
}

func newSubtreeCmd(s *settings, name, short string, cut func(*tree.Node) (*tree.Tree, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.loadTree(cmd)
			if err != nil {
				return err
			}
			n := t.NodeByID(parseScalar(args[0]))
			if n == nil {
				return fmt.Errorf("no node with id %s", args[0])
			}
			sub, err := cut(n)
			if err != nil {
				return err
			}
			return s.writeRecords(cmd.OutOrStdout(), sub.Records())
		},
	}
}

func newConvertCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [file]",
		Short: "Write the records of a tree to a file",
		Long: `The convert command reads records, builds the tree and writes its records
back out. The output format is derived from the file name; without a file the
records are printed in the --output format. Records without an identity are
given one, and key fields named by --id-field and --parent-field are
normalized to "id" and "parentId".

Example:
  hiertree convert -i links.json links.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.loadTree(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return s.writeRecords(cmd.OutOrStdout(), t.Records())
			}
			if err = codec.SaveFile(args[0], t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d records to %s\n", t.Len(), args[0])
			return nil
		},
	}
}

func operatorList() string {
	ops := make([]string, len(tree.Operators))
	for i, op := range tree.Operators {
		ops[i] = string(op)
	}
	return strings.Join(ops, " ")
}

// parseCondition parses the operator and operand of a find condition given
// on the command line.
func parseCondition(opname, operand string) (tree.Operator, record.Value, error) {
	op, err := tree.ParseOperator(opname)
	if err != nil {
		return op, record.Null(), err
	}
	if op != tree.OpBetween && op != tree.OpInSet {
		return op, parseScalar(operand), nil
	}
	parts := strings.Split(operand, ",")
	elems := make([]record.Value, len(parts))
	for i, p := range parts {
		elems[i] = parseScalar(strings.TrimSpace(p))
	}
	return op, record.Array(elems...), nil
}

// parseScalar interprets a command line argument as a number, if possible,
// or as a string.
func parseScalar(s string) record.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return record.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return record.Float(f)
	}
	return record.String(s)
}
