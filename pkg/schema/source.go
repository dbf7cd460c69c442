// Package schema builds currency fields from OpenAPI documents. A document
// is loaded once from a file, an fs.FS, or an in-memory payload; its
// component schemas are then queried for numeric properties, which come back
// as ready-to-render field definitions.
package schema

import (
	"io/fs"
	"path/filepath"
)

// SourceKind enumerates where a document payload comes from.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

// Source identifies a document payload to load.
type Source interface {
	Kind() SourceKind
	Location() string
}

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile points at an on-disk document.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// SourceFromFS points at an entry inside a filesystem, embedded specs
// included.
func SourceFromFS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

type bytesSource struct {
	data []byte
}

func (s bytesSource) Kind() SourceKind { return SourceKindBytes }
func (s bytesSource) Location() string { return "inline" }

// SourceFromBytes wraps an in-memory payload.
func SourceFromBytes(data []byte) Source {
	return bytesSource{data: data}
}
