package fetch

import (
	"context"
	"fmt"
	"os"

	"github.com/ppiankov/bbpie/internal/tweet"
)

// File serves a record saved as JSON on disk, whatever id is asked for.
type File struct {
	path string
}

// NewFile creates a fetcher reading the record at path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Fetch(_ context.Context, id string) (*tweet.Record, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, &tweet.FetchError{ID: id, Err: err}
	}
	defer func() { _ = fh.Close() }()

	rec, err := tweet.DecodeRecord(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return rec, nil
}
