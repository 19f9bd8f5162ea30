package a2m

import (
	. "github.com/andrew-torda/plmcprep/pkg/seq/common"
)

// KeepCols returns, in order, the positions in ref which are not gaps.
func KeepCols(ref []byte) []int {
	n := 0
	for _, c := range ref { // count first, so we allocate once
		if !IsGap(c) {
			n++
		}
	}
	keep := make([]int, 0, n)
	for i, c := range ref {
		if !IsGap(c) {
			keep = append(keep, i)
		}
	}
	return keep
}

// checkLengths makes sure every sequence is as long as the query.
// We are reading an alignment, so they must all be the same length.
func checkLengths(seqs []Record) error {
	iwant := len(seqs[0].seq)
	for i := 1; i < len(seqs); i++ {
		if got := len(seqs[i].seq); got != iwant {
			return &LengthMismatchError{Index: i, Label: seqs[i].cmmt, Want: iwant, Got: got}
		}
	}
	return nil
}

// Squash removes every column where the query has a gap. The same
// columns go from every sequence, so the result is still aligned.
// It returns a new set with the same comments in the same order.
// The input is not touched. An empty set gives back an empty set.
// If the sequences are not all the same length, we return a
// LengthMismatchError and no set.
func Squash(set *Set) (*Set, error) {
	out := new(Set)
	if set.NSeq() == 0 {
		return out, nil
	}
	if err := checkLengths(set.seqs); err != nil {
		return nil, err
	}
	keep := KeepCols(set.seqs[0].seq)
	nkeep := len(keep)
	lump := make([]byte, nkeep*len(set.seqs)) // one allocation for all sequences
	out.seqs = make([]Record, len(set.seqs))
	for i, r := range set.seqs {
		b := lump[i*nkeep : (i+1)*nkeep : (i+1)*nkeep]
		for j, k := range keep {
			b[j] = r.seq[k]
		}
		out.seqs[i] = Record{cmmt: r.cmmt, seq: b}
	}
	return out, nil
}

// NGap counts the gaps in a sequence.
func NGap(s []byte) (n int) {
	for _, c := range s {
		if IsGap(c) {
			n++
		}
	}
	return n
}
