package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/plmcprep/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

func newRdr() *brokenio.BrknRdrClsr {
	return brokenio.NewReader(io.NopCloser(strings.NewReader(longstring)))
}

func TestReaderSimple(t *testing.T) {
	b, err := io.ReadAll(newRdr())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != longstring {
		t.Errorf("simple read fail got %q wanted %q", b, longstring)
	}
}

// TestFailAfter reads through a reader that should break part way.
func TestFailAfter(t *testing.T) {
	for _, n := range []int{1, 7, 39} {
		rdr := newRdr()
		rdr.SetFailAfter(n)
		b, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatalf("fail after %d got err %v", n, err)
		}
		if len(b) != n {
			t.Errorf("fail after %d, but got %d bytes", n, len(b))
		}
		if string(b) != longstring[:n] {
			t.Errorf("data changed on the way through: %q", b)
		}
	}
}

func TestFailAlways(t *testing.T) {
	rdr := newRdr()
	rdr.SetProbFail(1)
	if _, err := io.ReadAll(rdr); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatalf("wanted failure, got %v", err)
	}
}

func TestZeroFile(t *testing.T) {
	rdr := newRdr()
	rdr.SetProbZeroFile(1)
	tmp := make([]byte, len(longstring))
	n, err := rdr.Read(tmp)
	if n > 0 {
		t.Error("should have received zero bytes")
	}
	if err != io.EOF {
		t.Errorf("Should have received EOF")
	}
}

func Example_setVerbose() {
	rdr := newRdr()
	rdr.SetVerbose(true)
	tmp := make([]byte, len(longstring))
	rdr.Read(tmp)
	rdr.Close()
	// Output: Closing 1 calls and 40 bytes
}
