package codec

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func links() []*record.Record {
	return []*record.Record{
		record.Make("id", 1, "parentId", 0, "uri", "#", "text", "HTML Tutorials"),
		record.Make("id", 2, "parentId", 1, "uri", "https://html.com/", "text", "HTML.com"),
		record.Make("id", 4, "parentId", 1, "uri", "https://www.htmldog.com/", "text", "HTML Beginner Tutorial", "rating", 4.0),
		record.Make("id", 5, "parentId", 0, "uri", "#", "text", "CSS Tutorials", "tags", []string{"css", "web"}),
	}
}

func sameRecords(t *testing.T, expected, actual []*record.Record) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Keys(), actual[i].Keys())
		assert.True(t, expected[i].Equal(actual[i]), "expected %v, have %v", expected[i], actual[i])
	}
}

func TestRoundTripFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.codec")
	defer teardown()
	//
	orig, err := tree.New(links())
	require.NoError(t, err)
	for _, format := range []Format{JSON, YAML} {
		s, err := ToString(orig, format)
		require.NoError(t, err)
		t.Logf("%s:\n%s", format, s)
		back, err := FromString(s, format)
		require.NoError(t, err)
		sameRecords(t, orig.Records(), back.Records())
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, format := range []Format{JSON, YAML} {
		store, err := Decode(strings.NewReader(""), format)
		require.NoError(t, err)
		assert.Empty(t, store)
	}
	tr, err := FromString("[]", JSON)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
}

func TestDecodeInvalidStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.codec")
	defer teardown()
	//
	inputs := []struct {
		format Format
		data   string
	}{
		{JSON, `{"id": 1}`},
		{JSON, `"a string"`},
		{JSON, `[{"id": 1}, null]`},
		{JSON, `[{"id": 1, "sub": {"x": 1}}]`},
		{YAML, "id: 1\n"},
		{YAML, "- id: 1\n  sub:\n    x: 1\n"},
	}
	for _, in := range inputs {
		_, err := Decode(strings.NewReader(in.data), in.format)
		assert.ErrorIs(t, err, ErrInvalidStore, "%s: %s", in.format, in.data)
	}
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	f, err = FormatOf("/tmp/links.json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)
	_, err = FormatOf("links.dat")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatOf("links")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Encode(&strings.Builder{}, Format("xml"), nil), ErrUnknownFormat)
}

func TestEncodeNilStoreIsEmptyArray(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Encode(&b, JSON, nil))
	assert.Equal(t, "[]\n", b.String())
}

func TestSaveAndLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hier.codec")
	defer teardown()
	//
	orig, err := tree.New(links())
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"links.json", "links.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveFile(path, orig))
		back, err := LoadFile(path)
		require.NoError(t, err)
		sameRecords(t, orig.Records(), back.Records())
		assert.Equal(t, orig.Root().ChildCount(), back.Root().ChildCount())
	}
	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
