/*
Package sqlsource turns database query results into record stores.

The typical source of a hierarchy is a table with a self-referencing key,
queried with its key columns aliased to "id" and "parentId":

    SELECT cat_id AS id, parent_cat AS parentId, title FROM categories

Any database/sql driver may be used. Column values are mapped to record
values: integers, floats, strings and bools keep their kind, byte slices
become strings, time stamps become RFC 3339 strings and NULL becomes null.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hier.sql'.
func tracer() tracing.Trace {
	return tracing.Select("hier.sql")
}

// Querier is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Records reads all rows of a result set into records, one field per column,
// in column order. Rows are not closed.
func Records(rows *sql.Rows) ([]*record.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}
	var store []*record.Record
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(store)+1, err)
		}
		rec := record.New()
		for i, col := range columns {
			v, err := record.ValueOf(values[i])
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", len(store)+1, col, err)
			}
			rec.Set(col, v)
		}
		store = append(store, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d rows with columns %v", len(store), columns)
	return store, nil
}

// Query runs a query and reads its result set into records.
func Query(ctx context.Context, db Querier, query string, args ...interface{}) ([]*record.Record, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	return Records(rows)
}

// Load runs a query and constructs a tree from its result. idColumn and
// parentColumn name the key columns; empty names default to "id" and
// "parentId".
func Load(ctx context.Context, db Querier, idColumn, parentColumn string, query string,
	args ...interface{}) (*tree.Tree, error) {
	//
	store, err := Query(ctx, db, query, args...)
	if err != nil {
		return nil, err
	}
	if idColumn == "" {
		idColumn = record.IDField
	}
	if parentColumn == "" {
		parentColumn = record.ParentIDField
	}
	t := tree.Empty()
	if err = t.ImportStore(idColumn, parentColumn, store); err != nil {
		return nil, err
	}
	return t, nil
}
