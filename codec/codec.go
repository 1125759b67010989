package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/hier/record"
	"github.com/npillmayer/hier/tree"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStore is returned if encoded data is not a sequence of records.
var ErrInvalidStore = errors.New("invalid record store")

// ErrUnknownFormat is returned for unsupported encodings.
var ErrUnknownFormat = errors.New("unknown store format")

// Format is an encoding for record stores.
type Format string

// Supported formats
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitive. "yml" is accepted
// for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("format %q: %w", name, ErrUnknownFormat)
}

// FormatOf derives the format from a file name extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("no extension in %q: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

// Encode writes a store of records.
func Encode(w io.Writer, format Format, store []*record.Record) error {
	if store == nil {
		store = []*record.Record{}
	}
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(store)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(store); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q: %w", string(format), ErrUnknownFormat)
}

// Decode reads a store of records. Empty input is an empty store. Input which
// does not decode to a sequence of records is an error wrapping
// ErrInvalidStore.
func Decode(r io.Reader, format Format) ([]*record.Record, error) {
	var store []*record.Record
	var err error
	switch format {
	case JSON:
		var data []byte
		if data, err = io.ReadAll(r); err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		err = json.Unmarshal(data, &store)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&store)
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
	default:
		return nil, fmt.Errorf("format %q: %w", string(format), ErrUnknownFormat)
	}
	if err != nil {
		tracer().Errorf("decoding %s store: %v", format, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStore, err)
	}
	for i, rec := range store {
		if rec == nil {
			return nil, fmt.Errorf("%w: entry %d is null", ErrInvalidStore, i)
		}
	}
	tracer().Debugf("decoded %d records from %s", len(store), format)
	return store, nil
}

// WriteTree exports the records of a tree and encodes them.
func WriteTree(w io.Writer, format Format, t *tree.Tree) error {
	return Encode(w, format, t.Records())
}

// ReadTree decodes a store and constructs a tree from it.
func ReadTree(r io.Reader, format Format, opts ...tree.Option) (*tree.Tree, error) {
	store, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return tree.New(store, opts...)
}

// FromString constructs a tree from an encoded store held in a string.
func FromString(s string, format Format, opts ...tree.Option) (*tree.Tree, error) {
	return ReadTree(strings.NewReader(s), format, opts...)
}

// ToString encodes the records of a tree into a string.
func ToString(t *tree.Tree, format Format) (string, error) {
	var b strings.Builder
	if err := WriteTree(&b, format, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

// LoadFile reads a tree from a file. The format is derived from the file
// name extension.
func LoadFile(path string, opts ...tree.Option) (*tree.Tree, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTree(f, format, opts...)
}

// SaveFile writes the records of a tree to a file. The format is derived
// from the file name extension.
func SaveFile(path string, t *tree.Tree) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = WriteTree(&buf, format, t); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
