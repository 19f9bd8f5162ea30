package a2m

import (
	"strconv"
)

const maxMsgLen = 40

// MalformedInputError says the input does not look like a2m at all.
// Line is the line number (from 1) where we gave up, or zero if the
// problem is not tied to a line, as with a file with no sequences.
type MalformedInputError struct {
	Path string
	Line int
	Desc string
}

func (e *MalformedInputError) Error() string {
	var errmsg string
	if e.Path != "" {
		errmsg = e.Path + ": "
	}
	if e.Line != 0 {
		errmsg += "line " + strconv.Itoa(e.Line) + ": "
	}
	return errmsg + e.Desc
}

// LengthMismatchError is returned when a sequence is not the same
// length as the query. Index counts from zero, so the query is 0.
type LengthMismatchError struct {
	Index int
	Label string
	Want  int
	Got   int
}

func (e *LengthMismatchError) Error() string {
	return "sequence " + strconv.Itoa(e.Index) + " length " + strconv.Itoa(e.Got) +
		", but query length " + strconv.Itoa(e.Want) +
		". Sequence starts " + strconv.Quote(trimStr(e.Label, maxMsgLen))
}
