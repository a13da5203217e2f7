package namedbin

import "io"

// InputArchive reconstructs primitive values from a stream produced by an
// OutputArchive. It consumes raw bytes in lock-step with the writes that
// produced them and does not parse or validate record framing; driving
// reads in the same shape as the original writes is the host's contract.
// Use Scanner when the framing itself must be inspected.
type InputArchive struct {
	r io.Reader
}

// NewInputArchive returns an archive reading from r.
func NewInputArchive(r io.Reader) *InputArchive {
	return &InputArchive{r: r}
}

// ReadBinary fills p from the stream, failing with a ShortReadError when
// fewer than len(p) bytes are available.
func (ar *InputArchive) ReadBinary(p []byte) error {
	read, err := io.ReadFull(ar.r, p)
	if err != nil {
		return &ShortReadError{Requested: len(p), Read: read}
	}
	return nil
}

// SetNextName is a no-op: names do not locate or validate fields during
// reads.
func (ar *InputArchive) SetNextName(string) {}

// BeginNode is a no-op on the read side, present so one host traversal can
// drive both archive directions.
func (ar *InputArchive) BeginNode() {}

// FinishNode is a no-op on the read side.
func (ar *InputArchive) FinishNode() error { return nil }
