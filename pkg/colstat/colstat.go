// 5 Nov 2025
// colstat does simple sums over the columns of an alignment, usually
// one that has just been squashed. Before handing an alignment to plmc
// you want to know how many columns are mostly gaps.

package colstat

import (
	"fmt"
	"io"
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/plmcprep/pkg/a2m"
	. "github.com/andrew-torda/plmcprep/pkg/seq/common"
)

const (
	maxSym  = 128 // we only expect ascii
	logBase = 20  // amino acids, so entropy is at most 1 for proteins
)

// Occupancy holds per column counts for an alignment.
// Counts.Mat looks like [number_of_symbols][length_of_alignment].
// Symbols are folded to upper case and both gap symbols are counted as
// GapChar.
type Occupancy struct {
	Counts  *matrix.FMatrix2d
	Revmap  []byte    // Revmap[2] tells me the symbol in row 2
	NonGap  []float32 // fraction of sequences with a residue in each column
	NSeq    int
	Query   []byte
	mapping [maxSym]int
}

func fold(c byte) byte {
	switch {
	case IsGap(c):
		return GapChar
	case 'a' <= c && c <= 'z':
		return c - ('a' - 'A')
	case c >= maxSym:
		return '?'
	}
	return c
}

// Calc counts symbols in each column. The set must be aligned. An empty
// set gives an empty Occupancy.
func Calc(set *a2m.Set) (*Occupancy, error) {
	occ := &Occupancy{NSeq: set.NSeq()}
	if occ.NSeq == 0 {
		occ.Counts = matrix.NewFMatrix2d(0, 0)
		return occ, nil
	}
	ncol := set.GetLen()
	var used [maxSym]bool
	for i, r := range set.SeqSlc() {
		if r.Len() != ncol {
			return nil, &a2m.LengthMismatchError{Index: i, Label: r.GetCmmt(), Want: ncol, Got: r.Len()}
		}
		for _, c := range r.GetSeq() {
			used[fold(c)] = true
		}
	}
	for i := range occ.mapping {
		occ.mapping[i] = -1
	}
	for c, u := range used {
		if u {
			occ.mapping[c] = len(occ.Revmap)
			occ.Revmap = append(occ.Revmap, byte(c))
		}
	}
	occ.Counts = matrix.NewFMatrix2d(len(occ.Revmap), ncol)
	for _, r := range set.SeqSlc() {
		for i, c := range r.GetSeq() {
			occ.Counts.Mat[occ.mapping[fold(c)]][i]++
		}
	}
	occ.NonGap = make([]float32, ncol)
	gaprow := occ.mapping[GapChar]
	for i := range occ.NonGap {
		var ngap float32
		if gaprow >= 0 {
			ngap = occ.Counts.Mat[gaprow][i]
		}
		occ.NonGap[i] = 1 - ngap/float32(occ.NSeq)
	}
	occ.Query = set.Ref().GetSeq()
	return occ, nil
}

// Count returns how often symbol c was seen in column icol.
func (occ *Occupancy) Count(c byte, icol int) float32 {
	row := occ.mapping[fold(c)]
	if row < 0 {
		return 0
	}
	return occ.Counts.Mat[row][icol]
}

// NSparse says how many columns have residues in less than frac of
// the sequences.
func (occ *Occupancy) NSparse(frac float32) (n int) {
	for _, f := range occ.NonGap {
		if f < frac {
			n++
		}
	}
	return n
}

// Entropy is the Shannon entropy of the residues in each column,
// ignoring gaps, with logs to base 20. A column of only gaps has zero
// entropy.
func (occ *Occupancy) Entropy() []float32 {
	entropy := make([]float32, len(occ.NonGap))
	logfac := 1.0 / math.Log(logBase)
	for icol := range entropy {
		var nres float64
		for irow, c := range occ.Revmap {
			if c != GapChar {
				nres += float64(occ.Counts.Mat[irow][icol])
			}
		}
		if nres == 0 {
			continue
		}
		h := 0.0
		for irow, c := range occ.Revmap {
			f := float64(occ.Counts.Mat[irow][icol]) / nres
			if c == GapChar || f == 0 {
				continue
			}
			h -= f * math.Log(f) * logfac
		}
		entropy[icol] = float32(h)
	}
	return entropy
}

// WriteCSV writes one line per column, numbered from 1, for plotting
// with some other program.
func (occ *Occupancy) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, `"col","query res","frac non-gap","n distinct","entropy"`); err != nil {
		return err
	}
	entropy := occ.Entropy()
	for i, f := range occ.NonGap {
		ndistinct := 0
		for irow, c := range occ.Revmap {
			if c != GapChar && occ.Counts.Mat[irow][i] > 0 {
				ndistinct++
			}
		}
		if _, err := fmt.Fprintf(w, "%d,%c,%.2f,%d,%.2f\n", i+1, occ.Query[i], f, ndistinct, entropy[i]); err != nil {
			return err
		}
	}
	return nil
}
