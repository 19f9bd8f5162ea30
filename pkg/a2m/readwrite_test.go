package a2m_test

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/plmcprep/brokenio"
	. "github.com/andrew-torda/plmcprep/pkg/a2m"
	"github.com/andrew-torda/plmcprep/pkg/seq/common"
)

// TestComment checks comments are kept exactly, including the ">"
// and odd characters.
func TestComment(t *testing.T) {
	cmmts := []string{">a☺b☻c☹d", ">>>", ">", "> leading space", ">tab\there "}
	var b strings.Builder
	for _, c := range cmmts {
		fmt.Fprintf(&b, "%s\nAC\n", c)
	}
	set, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if set.NSeq() != len(cmmts) {
		t.Fatalf("got %d seqs, want %d", set.NSeq(), len(cmmts))
	}
	for i, r := range set.SeqSlc() {
		if r.GetCmmt() != cmmts[i] {
			t.Errorf("comment %d got %q want %q", i, r.GetCmmt(), cmmts[i])
		}
	}
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"multi line", ">a\nAC\nDE\n\nF\n>b\nGH", []string{"ACDEF", "GH"}},
		{"crlf", ">a\r\nAC\r\nDE\r\n>b\r\nGHIK\r\n", []string{"ACDE", "GHIK"}},
		{"spaces kept", ">a\nA C\n", []string{"A C"}},
		{"no sequence", ">a\n>b\nAA\n", []string{"", "AA"}},
		{"blank lines first", "\n\r\n>a\nA-\n", []string{"A-"}},
		{"no newline", ">a\nA-.", []string{"A-."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, r := range set.SeqSlc() {
				got = append(got, string(r.GetSeq()))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	set, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if set.NSeq() != 0 {
		t.Fatalf("empty input gave %d seqs", set.NSeq())
	}
	sq, err := Squash(set)
	if err != nil || sq.NSeq() != 0 {
		t.Fatalf("squash of empty set gave %d seqs, err %v", sq.NSeq(), err)
	}
	var b strings.Builder
	if err := Write(&b, sq); err != nil || b.Len() != 0 {
		t.Fatalf("write of empty set gave %q, err %v", b.String(), err)
	}
}

func TestTextBeforeComment(t *testing.T) {
	_, err := Parse(strings.NewReader("\nACGT\n>a\nACGT\n"))
	var merr *MalformedInputError
	if !errors.As(err, &merr) {
		t.Fatalf("wanted MalformedInputError, got %v", err)
	}
	if merr.Line != 2 {
		t.Errorf("error on line %d, want 2", merr.Line)
	}
}

// TestBrokenRead makes sure a failing reader gives an error, and not
// a short alignment.
func TestBrokenRead(t *testing.T) {
	in := ">a\n" + strings.Repeat("A", 5000) + "\n"
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(in)))
	rdr.SetFailAfter(1000)
	_, err := Parse(rdr)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatalf("wanted broken read error, got %v", err)
	}
	var merr *MalformedInputError
	if errors.As(err, &merr) {
		t.Fatal("read failure reported as bad format")
	}
}

func TestWriteWidth(t *testing.T) {
	tests := []struct {
		n     int
		lines []int
	}{
		{1, []int{1}},
		{LineWidth, []int{LineWidth}},
		{LineWidth + 1, []int{LineWidth, 1}},
		{200, []int{LineWidth, LineWidth, 40}},
	}
	for _, tt := range tests {
		set := Str2Set([]string{strings.Repeat("W", tt.n)})
		var b strings.Builder
		if err := Write(&b, set); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		var got []int
		for _, l := range lines[1:] {
			got = append(got, len(l))
		}
		if diff := cmp.Diff(tt.lines, got); diff != "" {
			t.Errorf("length %d (-want +got):\n%s", tt.n, diff)
		}
	}
}

// wrtGz writes a string as a gzipped temporary file.
func wrtGz(t *testing.T, s string) string {
	fname := filepath.Join(t.TempDir(), "aln.a2m.gz")
	fp, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fp)
	io.WriteString(zw, s)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	fp.Close()
	return fname
}

const set1 = `>query
AC-DE.F
>s2
ACQDEXF
>s3
-C-D-.F
`

const set1Clean = `>query
ACDEF
>s2
ACDEF
>s3
-CD-F
`

func TestCleanFile(t *testing.T) {
	plain, err := common.WrtTemp(set1)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(plain)
	for _, in := range []string{plain, wrtGz(t, set1)} {
		out := filepath.Join(t.TempDir(), "out.a2m")
		st, err := CleanFile(in, out)
		if err != nil {
			t.Fatal(err)
		}
		want := Stats{NSeq: 3, Query: ">query", OrigLen: 7, NGap: 2, NewLen: 5}
		if diff := cmp.Diff(want, st); diff != "" {
			t.Errorf("stats (-want +got):\n%s", diff)
		}
		b, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(set1Clean, string(b)); diff != "" {
			t.Errorf("output (-want +got):\n%s", diff)
		}
	}
}

// TestCleanInPlace uses the same name for input and output, which is
// how the converter uses it.
func TestCleanInPlace(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "x.a2m")
	if err := os.WriteFile(fname, []byte(set1), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := CleanFile(fname, fname); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(fname)
	if string(b) != set1Clean {
		t.Errorf("in place got\n%s", b)
	}
	left, _ := filepath.Glob(filepath.Join(filepath.Dir(fname), ".*tmp*"))
	if len(left) != 0 {
		t.Errorf("temporary files left behind: %v", left)
	}
}

// TestCleanFileFails checks that bad input leaves the output alone.
func TestCleanFileFails(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.a2m")
	if err := os.WriteFile(out, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.a2m")
	os.WriteFile(bad, []byte(">q\nA-C\n>s\nAC\n"), 0o644)
	_, err := CleanFile(bad, out)
	var lerr *LengthMismatchError
	if !errors.As(err, &lerr) {
		t.Fatalf("wanted length error, got %v", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q does not name the file", err)
	}
	if b, _ := os.ReadFile(out); string(b) != "old" {
		t.Errorf("output was overwritten with %q", b)
	}

	empty := filepath.Join(dir, "empty.a2m")
	os.WriteFile(empty, nil, 0o644)
	var merr *MalformedInputError
	if _, err = CleanFile(empty, out); !errors.As(err, &merr) {
		t.Errorf("empty file: wanted MalformedInputError, got %v", err)
	}

	if _, err = CleanFile(filepath.Join(dir, "missing"), out); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: wanted not exist, got %v", err)
	}
}

func ExampleCleanQueryGaps() {
	in := ">ref\nA.C.G\n>s2\nAXCXG\n"
	st, err := CleanQueryGaps(strings.NewReader(in), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(st.OrigLen, st.NGap, st.NewLen)
	// Output:
	// >ref
	// ACG
	// >s2
	// ACG
	// 5 2 3
}
