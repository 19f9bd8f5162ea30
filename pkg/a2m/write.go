package a2m

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write puts a set out in a2m format. Each comment goes out as it was
// read, then the sequence, LineWidth residues per line. A sequence of
// length zero gets its comment line and nothing else.
func Write(w io.Writer, set *Set) error {
	bw := bufio.NewWriter(w)
	for _, r := range set.SeqSlc() {
		if _, err := bw.WriteString(r.cmmt); err != nil {
			return err
		}
		bw.WriteByte('\n')
		s := r.seq
		for ; len(s) > LineWidth; s = s[LineWidth:] {
			bw.Write(s[:LineWidth])
			bw.WriteByte('\n')
		}
		if len(s) > 0 {
			bw.Write(s)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush() // bufio keeps the first error, so this catches the lot
}

// WriteFile writes a set to a file, or stdout if the name is "" or "-".
// We write to a temporary file in the same directory and rename it at
// the end, so either the whole alignment arrives or the old file is
// left alone. This also means input and output can be the same file.
func WriteFile(fname string, set *Set) error {
	if isStdio(fname) {
		return Write(os.Stdout, set)
	}
	dir, base := filepath.Split(fname)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("creating output alignment: %w", err)
	}
	tmpname := tmp.Name()
	defer os.Remove(tmpname) // fails quietly after a successful rename
	if err := Write(tmp, set); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err := os.Chmod(tmpname, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err := os.Rename(tmpname, fname); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}
