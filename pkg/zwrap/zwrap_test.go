// Test Zwrap
package zwrap_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/plmcprep/pkg/zwrap"
)

// both of these are "andrewsayshello", but the first is compressed and
// the second has a newline.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

func TestWrapMaybe(t *testing.T) {
	for _, x := range gztests {
		rdr, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader(x.data)))
		if err != nil {
			t.Fatal(err)
		}
		if rdr.Compressed() != x.gzipped {
			t.Errorf("compressed says %t, want %t", rdr.Compressed(), x.gzipped)
		}
		b, err := io.ReadAll(rdr)
		if err != nil {
			t.Fatal(err)
		}
		if string(bytes.TrimSpace(b)) != "andrewsayshello" {
			t.Errorf("got %q", b)
		}
		if err := rdr.Close(); err != nil {
			t.Error("close", err)
		}
	}
}

// TestShort checks files too short to hold the magic number.
func TestShort(t *testing.T) {
	for _, s := range []string{"", ">"} {
		rdr, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewBufferString(s)))
		if err != nil {
			t.Fatalf("%q gave %v", s, err)
		}
		if b, _ := io.ReadAll(rdr); string(b) != s {
			t.Errorf("got %q want %q", b, s)
		}
	}
}

// TestBrokenGzip has the magic number, but rubbish after it.
func TestBrokenGzip(t *testing.T) {
	if _, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader([]byte{0x1f, 0x8b, 0, 0}))); err == nil {
		t.Error("broken gzip header not noticed")
	}
}

// TestCloseFile checks the underlying file really is closed.
func TestCloseFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "zwrap")
	if err != nil {
		t.Fatal(err)
	}
	f.Write(gztests[0].data)
	f.Seek(0, io.SeekStart)
	rdr, err := zwrap.WrapMaybe(f)
	if err != nil {
		t.Fatal(err)
	}
	io.ReadAll(rdr)
	if err := rdr.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Read(make([]byte, 1)); err == nil {
		t.Error("file still open after Close")
	}
}
