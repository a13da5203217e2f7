package namedbin

import (
	"errors"
	"fmt"
)

var (
	ErrNoOpenNode      = errors.New("namedbin: no open node")
	ErrLengthMismatch  = errors.New("namedbin: record length fields disagree")
	ErrNameTooLong     = errors.New("namedbin: record name exceeds limit")
	ErrPayloadTooLarge = errors.New("namedbin: record payload exceeds limit")
)

// ShortWriteError reports a sink that accepted fewer bytes than requested.
// The stream is corrupt from this point onward; there is no retry.
type ShortWriteError struct {
	Requested int
	Written   int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("namedbin: failed to write %d bytes to output stream, wrote %d", e.Requested, e.Written)
}

// ShortReadError reports a source that yielded fewer bytes than requested.
type ShortReadError struct {
	Requested int
	Read      int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("namedbin: failed to read %d bytes from input stream, read %d", e.Requested, e.Read)
}
