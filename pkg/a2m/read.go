package a2m

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/plmcprep/pkg/zwrap"
	"github.com/edsrzf/mmap-go"
)

// Parse reads an alignment. Every line starting with ">" begins a new
// record and is kept verbatim as its comment. The lines that follow
// are glued together to make the sequence. Only the line endings are
// removed. Anything else, including spaces, is kept.
// Text before the first comment is an error, but blank lines there
// are forgiven. Empty input gives an empty set and no error.
func Parse(rdr io.Reader) (*Set, error) {
	set := new(Set)
	br := bufio.NewReader(rdr)
	var cur *Record
	var lnum int
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lnum++
			line = bytes.TrimRight(line, "\r\n")
			switch {
			case len(line) > 0 && line[0] == cmmtChar:
				set.seqs = append(set.seqs, Record{cmmt: string(line)})
				cur = &set.seqs[len(set.seqs)-1]
			case cur != nil:
				cur.seq = append(cur.seq, line...)
			case len(line) != 0:
				return nil, &MalformedInputError{
					Line: lnum,
					Desc: "text before first comment line, starting " +
						fmt.Sprintf("%q", trimStr(string(line), maxMsgLen)),
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading alignment line %d: %w", lnum+1, err)
		}
	}
	return set, nil
}

// isStdio says if a name means stdin or stdout.
func isStdio(fname string) bool { return fname == "" || fname == "-" }

// ReadFile reads an alignment from a file. If the name is empty or "-",
// read from stdin. Compressed (gzip) files are recognised and
// decompressed on the fly. Regular files are mapped into memory rather
// than read through a buffer. The mapping is released before we return
// and nothing in the set points into it.
func ReadFile(fname string) (*Set, error) {
	if isStdio(fname) {
		return readFrom(os.Stdin, "stdin")
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("opening alignment: %w", err)
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, fmt.Errorf("alignment %s: %w", fname, err)
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 { // pipes and empty files
		return readFrom(fp, fname) //                 cannot be mapped
	}
	m, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping alignment %s: %w", fname, err)
	}
	defer m.Unmap()
	return readFrom(io.NopCloser(bytes.NewReader(m)), fname)
}

// readFrom puts the gzip check in front of Parse and fills in the
// file name in any format error.
func readFrom(rc io.ReadCloser, fname string) (*Set, error) {
	zr, err := zwrap.WrapMaybe(rc)
	if err != nil {
		return nil, fmt.Errorf("alignment %s: %w", fname, err)
	}
	set, err := Parse(zr)
	if err != nil {
		var merr *MalformedInputError
		if errors.As(err, &merr) {
			merr.Path = fname
			return nil, merr
		}
		return nil, fmt.Errorf("alignment %s: %w", fname, err)
	}
	return set, nil
}
