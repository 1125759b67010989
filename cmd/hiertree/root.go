package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/hier/codec"
	"github.com/npillmayer/hier/ident"
	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/sqlsource"
	"github.com/npillmayer/hier/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

// settings holds the global flags.
type settings struct {
	input       string
	format      string
	output      string
	idField     string
	parentField string
	database    string
	query       string
	uuidIDs     bool
	verbose     bool
}

var traceKeys = []string{"hier.record", "hier.tree", "hier.codec", "hier.sql", "hier.render"}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:   "hiertree",
		Short: "Build trees from flat id/parentId records",
		Long: `hiertree reads a flat store of records, each naming its own id and the
id of its parent, and arranges them as a tree. The tree may then be
displayed, queried, cut into subtrees or converted between formats.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.LevelError
			if s.verbose {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&s.input, "input", "i", "-", "Record store to read, '-' for standard input")
	flags.StringVarP(&s.format, "format", "f", "", "Input format (json|yaml), derived from the file name if empty")
	flags.StringVarP(&s.output, "output", "o", string(codec.JSON), "Format of record output (json|yaml)")
	flags.StringVar(&s.idField, "id-field", record.IDField, "Field holding the identity of a record")
	flags.StringVar(&s.parentField, "parent-field", record.ParentIDField, "Field holding the identity of the parent")
	flags.StringVar(&s.database, "db", "", "SQLite database to read records from")
	flags.StringVar(&s.query, "sql", "", "Query selecting the records (with --db)")
	flags.BoolVar(&s.uuidIDs, "uuid-ids", false, "Generate UUIDs for records without an identity")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "Enable debug tracing")
	//
	root.AddCommand(
		newShowCmd(s),
		newFindCmd(s),
		newSearchCmd(s),
		newSubtreeCmd(s, "branch", "Print the branch a node belongs to", (*tree.Node).Branch),
		newSubtreeCmd(s, "limb", "Print the path from the top-level ancestor down to a node", (*tree.Node).Limb),
		newSubtreeCmd(s, "stem", "Print a node and its descendants", (*tree.Node).Stem),
		newConvertCmd(s),
		newExploreCmd(s),
	)
	return root
}

// loadTree reads the records selected by the global flags and builds a tree.
func (s *settings) loadTree(cmd *cobra.Command) (*tree.Tree, error) {
	var opts []tree.Option
	if s.uuidIDs {
		opts = append(opts, tree.WithIDGenerator(ident.UUID))
	}
	store, err := s.readStore(cmd.Context(), cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	t := tree.Empty(opts...)
	if err = t.ImportStore(s.idField, s.parentField, store); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *settings) readStore(ctx context.Context, stdin io.Reader) ([]*record.Record, error) {
	if s.database != "" {
		if s.query == "" {
			return nil, fmt.Errorf("--db requires a query (--sql)")
		}
		db, err := sql.Open("sqlite", s.database)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		if ctx == nil {
			ctx = context.Background()
		}
		return sqlsource.Query(ctx, db, s.query)
	}
	format, err := s.inputFormat()
	if err != nil {
		return nil, err
	}
	if s.input == "-" {
		return codec.Decode(stdin, format)
	}
	f, err := os.Open(s.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codec.Decode(f, format)
}

func (s *settings) inputFormat() (codec.Format, error) {
	if s.format != "" {
		return codec.ParseFormat(s.format)
	}
	if s.input == "-" {
		return codec.JSON, nil
	}
	return codec.FormatOf(s.input)
}

// writeRecords prints a store in the output format.
func (s *settings) writeRecords(w io.Writer, store []*record.Record) error {
	format, err := codec.ParseFormat(s.output)
	if err != nil {
		return err
	}
	return codec.Encode(w, format, store)
}
