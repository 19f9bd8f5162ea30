package reformat_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/plmcprep/pkg/a2m"
	"github.com/andrew-torda/plmcprep/pkg/extool"
	"github.com/andrew-torda/plmcprep/pkg/reformat"
)

const converted = `>query
AC-De.F
>hit1
ACQDeXF
`

// fakeReformat pretends to be reformat.pl. It checks the arguments
// and writes a canned a2m file to the output name.
func fakeReformat(t *testing.T, exit int) extool.Runner {
	return extool.RunnerFunc(func(ctx context.Context, name string, args ...string) (extool.Result, error) {
		if name != "reformat.pl" {
			t.Errorf("ran %s", name)
		}
		if len(args) != 4 || args[0] != "a3m" || args[1] != "a2m" {
			t.Fatalf("bad args %v", args)
		}
		if exit != 0 {
			return extool.Result{ExitCode: exit, Stderr: "cannot read"}, &extool.ExternalToolError{
				Tool: name, Args: args, ExitCode: exit, Stderr: "cannot read"}
		}
		if err := os.WriteFile(args[3], []byte(converted), 0o644); err != nil {
			t.Fatal(err)
		}
		return extool.Result{Stdout: "Reformatted 2 sequences"}, nil
	})
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "x.a3m")
	out := filepath.Join(dir, "x.a2m")
	st, err := reformat.Convert(context.Background(), fakeReformat(t, 0), "reformat.pl", in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := a2m.Stats{NSeq: 2, Query: ">query", OrigLen: 7, NGap: 2, NewLen: 5}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}
	b, _ := os.ReadFile(out)
	if string(b) != ">query\nACDeF\n>hit1\nACDeF\n" {
		t.Errorf("cleaned file is\n%s", b)
	}
}

// TestConvertFails makes sure a broken conversion is reported as the
// tool's fault and no output appears.
func TestConvertFails(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "x.a2m")
	_, err := reformat.Convert(context.Background(), fakeReformat(t, 1), "reformat.pl",
		filepath.Join(dir, "x.a3m"), out, nil)
	var xerr *extool.ExternalToolError
	if !errors.As(err, &xerr) {
		t.Fatalf("wanted ExternalToolError, got %v", err)
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("output file exists after a failed conversion")
	}
}

func TestArgs(t *testing.T) {
	want := []string{"a3m", "a2m", "in.a3m", "out.a2m"}
	if diff := cmp.Diff(want, reformat.Args("in.a3m", "out.a2m")); diff != "" {
		t.Error(diff)
	}
}
