// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations, or to fail after a fixed number of
// bytes, so we can check that readers pass errors back instead of
// quietly returning half an alignment.
// Typical use in a test: take a reader from a string or file and write
// reader = brokenio.NewReader(reader). Everything functions as before,
// but with artificial errors.
// When we introduce a failure on the first read, we return EOF without
// an error. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what a read returns when we decide it should fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard
// library, but with variables controlling the frequency of errors.
// Probabilities are the fraction of reads which go wrong, so 0.05 means
// failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rng          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability of any read failing
	failAfter    int     // fail once this many bytes have gone through, if > 0
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, rng: rand.New(rand.NewSource(1))}
}

// SetVerbose sets the verbosity flag. If true, print out the amount of
// data when the reader is closed.
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetSeed makes the random failures repeatable.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rng = rand.New(rand.NewSource(seed)) }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. We do not check if the argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failure.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter says reads should fail once n bytes have been delivered.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rng.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter > 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && r.rng.Float32() < r.probFail {
		return 0, ErrBroken
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
