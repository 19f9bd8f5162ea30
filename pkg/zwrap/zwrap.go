// Package zwrap takes a reader and, if the stream is gzip compressed,
// wraps it so reads come out decompressed. Alignments from the
// databases are often shipped as .a3m.gz or .a2m.gz.
// Upon calling Close, the decompressor will be closed, followed by the
// underlying reader.
package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

// gzip streams start with these two bytes
const (
	magic1 = 0x1f
	magic2 = 0x8b
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // buffered fp, or the decompressor sitting on top of it
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying readCloser.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		errs = append(errs, fc.zrdr.Close())
	}
	errs = append(errs, fc.fp.Close())
	return errors.Join(errs...)
}

// Read makes sure we read from the decompressed stream if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Compressed says whether we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// IsGzip looks at the start of some data and says if it is gzip.
func IsGzip(b []byte) bool { return len(b) >= 2 && b[0] == magic1 && b[1] == magic2 }

// WrapMaybe peeks at the first bytes of the stream. If they are the gzip
// magic number, we return a decompressing reader. Otherwise reads pass
// straight through. Nothing has to seek, so it works on stdin and pipes.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	fz := &FpGzip{fp: fp, rdr: br}
	head, err := br.Peek(2)
	if err != nil && err != io.EOF { // short input is not an error here
		return nil, err
	}
	if !IsGzip(head) {
		return fz, nil
	}
	if fz.zrdr, err = gzip.NewReader(br); err != nil {
		return nil, err
	}
	fz.rdr = fz.zrdr
	return fz, nil
}
