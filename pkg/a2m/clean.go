package a2m

import (
	"bytes"
	"fmt"
	"io"
)

// Stats describes what a cleaning run did to an alignment.
type Stats struct {
	NSeq    int    `json:"nseq"`         // number of sequences
	Query   string `json:"query"`        // comment line of the query
	OrigLen int    `json:"orig_len"`     // alignment length before
	NGap    int    `json:"gaps_removed"` // gaps removed from the query
	NewLen  int    `json:"new_len"`      // alignment length after
}

func statsOf(before, after *Set) Stats {
	var st Stats
	if st.NSeq = before.NSeq(); st.NSeq == 0 {
		return st
	}
	ref := before.Ref()
	st.Query = ref.cmmt
	st.OrigLen = ref.Len()
	st.NGap = NGap(ref.seq)
	st.NewLen = after.GetLen()
	return st
}

// Clean squashes an alignment that is already in memory and says what
// happened.
func Clean(set *Set) (*Set, Stats, error) {
	out, err := Squash(set)
	if err != nil {
		return nil, Stats{}, err
	}
	return out, statsOf(set, out), nil
}

// CleanQueryGaps reads an alignment, removes the query's gap columns
// and writes the result. Nothing is written unless the whole alignment
// could be squashed. Empty input gives empty output.
func CleanQueryGaps(in io.Reader, out io.Writer) (Stats, error) {
	set, err := Parse(in)
	if err != nil {
		return Stats{}, err
	}
	sq, st, err := Clean(set)
	if err != nil {
		return Stats{}, err
	}
	return st, Write(out, sq)
}

// CleanString is CleanQueryGaps for text already in memory.
func CleanString(s string) (string, error) {
	var b bytes.Buffer
	if _, err := CleanQueryGaps(bytes.NewBufferString(s), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// CleanFile reads infile, squashes and writes to outfile. They may be
// the same file. A file with no sequences is treated as broken, since
// there is no query to work with.
func CleanFile(infile, outfile string) (Stats, error) {
	set, err := ReadFile(infile)
	if err != nil {
		return Stats{}, err
	}
	if set.NSeq() == 0 {
		return Stats{}, &MalformedInputError{Path: infile, Desc: "no sequences found"}
	}
	sq, st, err := Clean(set)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", infile, err)
	}
	if err := WriteFile(outfile, sq); err != nil {
		return Stats{}, err
	}
	return st, nil
}
