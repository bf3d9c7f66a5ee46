// Package archive packs document parts into zip containers and walks them
// back. It builds on "archive/zip" and hidez8891/zip for data descriptor
// removal.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is called for each file in the archive visited by Walk. The
// archive argument is the name passed to Walk, file is the matching entry.
// If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits all files in the archive whose names start with prefix.
// Entries with absolute paths or ".." components abort the walk.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	return walk(archive, &r.Reader, prefix, walkFn)
}

// WalkBytes is Walk for an archive held in memory.
func WalkBytes(data []byte, prefix string, walkFn WalkFunc) error {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	return walk("", r, prefix, walkFn)
}

// ReadAll returns content of every file in an in-memory archive keyed by
// entry name.
func ReadAll(data []byte) (map[string][]byte, error) {
	out := make(map[string][]byte)
	err := WalkBytes(data, "", func(_ string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		b, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", file.Name, err)
		}
		out[file.Name] = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func walk(archive string, r *zip.Reader, prefix string, walkFn WalkFunc) error {
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
