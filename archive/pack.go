package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
)

// Part is a single archive entry.
type Part struct {
	Name string
	Data []byte
	// Store writes entry without compression.
	Store bool
}

// ErrDuplicate is returned when two parts have the same name.
var ErrDuplicate = errors.New("duplicate archive entry")

// epoch is modification time of all entries, so that the same parts always
// produce the same archive.
var epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Pack writes parts in the given order as a zip archive. When fix is set
// archive is rewritten without data descriptors, some readers choke on them.
func Pack(w io.Writer, parts []Part, fix bool) (err error) {
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%s: %w", p.Name, ErrDuplicate)
		}
		if !isSafePath(p.Name) || p.Name == "" {
			return fmt.Errorf("part %q: unsafe name", p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, p := range parts {
		hdr := &zip.FileHeader{Name: p.Name, Method: zip.Deflate, Modified: epoch}
		if p.Store {
			hdr.Method = zip.Store
		}
		fw, e := zw.CreateHeader(hdr)
		if e != nil {
			return multierr.Append(fmt.Errorf("unable to create %s: %w", p.Name, e), zw.Close())
		}
		if _, e := fw.Write(p.Data); e != nil {
			return multierr.Append(fmt.Errorf("unable to write %s: %w", p.Name, e), zw.Close())
		}
	}
	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close archive: %w", err)
	}

	if !fix {
		_, err = w.Write(buf.Bytes())
		return err
	}
	return copyWithoutDataDescriptors(buf.Bytes(), w)
}

func copyWithoutDataDescriptors(data []byte, to io.Writer) (err error) {
	r, err := fixzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("unable to read archive: %w", err)
	}

	w := fixzip.NewWriter(to)
	defer func() {
		err = multierr.Append(err, w.Close())
	}()

	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to copy %s: %w", file.Name, err)
		}
	}
	return nil
}
