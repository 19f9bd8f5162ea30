// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Gap symbols in a2m. A minus is a gap in a match column, a dot is
// padding in an insert column. For deciding which columns to keep,
// they mean the same thing.
const (
	GapChar    byte = '-'
	InsGapChar byte = '.'
)

// IsGap reports whether c is one of the two gap symbols.
func IsGap(c byte) bool { return c == GapChar || c == InsGapChar }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
