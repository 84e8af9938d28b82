// internal/writers/outfile.go
package writers

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// OpenOutput returns stdout when path is "" or "-", otherwise a file
// writer (gzip-compressed for ".gz" paths). closer must always be called.
func OpenOutput(path string, stdout io.Writer) (w io.Writer, closer func() error, err error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := xopen.Wopen(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, path)
	}
	return fh, fh.Close, nil
}
