package sqlsource

import (
	"context"
	"database/sql"
	"testing"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openCategories(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // every connection would get its own in-memory database
	t.Cleanup(func() { db.Close() })
	stmts := []string{
		`CREATE TABLE categories (
			cat_id     INTEGER PRIMARY KEY,
			parent_cat INTEGER NOT NULL,
			title      TEXT NOT NULL,
			weight     REAL,
			note       TEXT
		)`,
		`INSERT INTO categories VALUES (1, 0, 'Cat', 1.5, NULL)`,
		`INSERT INTO categories VALUES (2, 1, 'Child1', 2, 'first')`,
		`INSERT INTO categories VALUES (3, 1, 'Child2', NULL, NULL)`,
		`INSERT INTO categories VALUES (4, 2, 'Grandchild', NULL, NULL)`,
	}
	for _, stmt := range stmts {
		_, err = db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return db
}

func TestQueryRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.sql")
	defer teardown()
	//
	db := openCategories(t)
	store, err := Query(context.Background(), db,
		`SELECT cat_id AS id, parent_cat AS parentId, title, weight, note FROM categories ORDER BY cat_id`)
	require.NoError(t, err)
	require.Len(t, store, 4)
	assert.Equal(t, []string{"id", "parentId", "title", "weight", "note"}, store[0].Keys())
	id, _ := store[0].Get("id")
	assert.Equal(t, record.IntKind, id.Kind())
	title, _ := store[0].Get("title")
	assert.Equal(t, "Cat", title.String())
	note, _ := store[0].Get("note")
	assert.True(t, note.IsNull())
	weight, _ := store[0].Get("weight")
	assert.Equal(t, record.FloatKind, weight.Kind())
	//
	tr, err := tree.New(store)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, 2, tr.NodeByID(record.Int(1)).ChildCount())
}

func TestLoadWithKeyColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.sql")
	defer teardown()
	//
	db := openCategories(t)
	tr, err := Load(context.Background(), db, "cat_id", "parent_cat",
		`SELECT * FROM categories WHERE cat_id <> ?`, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Len())
	grandchild := tr.NodeByID(record.Int(4))
	require.NotNil(t, grandchild)
	limb, err := grandchild.Limb()
	require.NoError(t, err)
	assert.Equal(t, 3, limb.Len())
}

func TestQueryError(t *testing.T) {
	db := openCategories(t)
	_, err := Query(context.Background(), db, `SELECT * FROM no_such_table`)
	assert.Error(t, err)
	_, err = Load(context.Background(), db, "", "", `SELECT cat_id AS id, 99 AS parentId FROM categories`)
	assert.ErrorIs(t, err, tree.ErrDanglingParent)
}
