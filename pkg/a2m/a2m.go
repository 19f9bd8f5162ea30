// 3 Nov 2025

// Package a2m reads, squashes and writes alignments in a2m format.
// The first sequence in a file is the query. It sets the coordinates
// for everything else, so removing a column from the query means
// removing it from every sequence.
//
// a2m uses upper case for match columns and lower case for inserts.
// Gaps are "-" in match columns and "." in insert columns. We do not
// care about the case here. A gap is a gap.
package a2m

import (
	"fmt"
)

// LineWidth is the number of residues per line on output.
const LineWidth = 80

const cmmtChar byte = '>' // introduces a new record

// Record is one sequence from an alignment. The comment is kept
// exactly as it was read, including the leading ">".
type Record struct {
	cmmt string
	seq  []byte
}

// NewRecord makes a record from a comment line and residues.
func NewRecord(cmmt string, seq []byte) Record { return Record{cmmt: cmmt, seq: seq} }

// GetCmmt returns the comment, including the leading ">"
func (r Record) GetCmmt() string { return r.cmmt }

// GetSeq returns the residues as the original byte slice
func (r Record) GetSeq() []byte { return r.seq }

func (r Record) Len() int { return len(r.seq) }

// String returns the comment and sequence on two lines, without any
// line breaking of the sequence.
func (r Record) String() string { return r.cmmt + "\n" + string(r.seq) }

// Set is an ordered group of records. Element zero is the query.
type Set struct {
	seqs []Record
}

// NSeq returns the number of sequences
func (set *Set) NSeq() int {
	if set == nil {
		return 0
	}
	return len(set.seqs)
}

// SeqSlc returns the slice of records.
func (set *Set) SeqSlc() []Record {
	if set == nil {
		return nil
	}
	return set.seqs
}

// Ref returns the query/reference sequence. It panics on an empty set,
// just like indexing would.
func (set *Set) Ref() Record { return set.seqs[0] }

// GetLen returns the length of the first sequence.
// In an alignment, this should be the length of all sequences.
func (set *Set) GetLen() int {
	if set.NSeq() == 0 {
		return 0
	}
	return len(set.seqs[0].seq)
}

// Append adds a record to the end of a set.
func (set *Set) Append(r Record) { set.seqs = append(set.seqs, r) }

// Str2Set takes some strings and returns them as a set.
// Sequences need comments. If prefix is not given, they
// will be called ">s0", ">s1", ...
func Str2Set(sIn []string, prefix ...string) *Set {
	base := ">s"
	if prefix != nil {
		base = prefix[0]
	}
	set := new(Set)
	for i, s := range sIn {
		set.seqs = append(set.seqs, Record{cmmt: fmt.Sprint(base, i), seq: []byte(s)})
	}
	return set
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
