// Package namedbin implements a hierarchical, self-describing binary
// serialization format: a tree of named values becomes a flat sequence of
// framed records, each carrying its own name and length, emitted the moment
// the value that produced it completes. Nodes that accumulate no payload
// are elided entirely.
package namedbin

import (
	"bytes"
	"io"
)

// node is one open serialization frame: the byte payload accumulated for a
// single value, plus the name bound to it.
type node struct {
	buf   bytes.Buffer
	name  string
	named bool
}

// OutputArchive writes the named binary format to a sink. It keeps one node
// per level of value nesting; primitive writes land in the top node, and a
// node is framed and written out the moment it finishes, never spliced into
// an ancestor's payload.
//
// An OutputArchive is owned by exactly one serialization session and is not
// safe for concurrent use. It does not close its sink.
type OutputArchive struct {
	w        io.Writer
	nodes    []*node
	nextName string
}

// NewOutputArchive returns an archive writing to w.
func NewOutputArchive(w io.Writer) *OutputArchive {
	return &OutputArchive{w: w}
}

// SetNextName stores name for consumption by the next WriteBinary call.
// The slot holds a single name: setting it again before a write replaces
// the previous one, and a name never consumed is silently dropped.
func (ar *OutputArchive) SetNextName(name string) {
	ar.nextName = name
}

// BeginNode pushes a fresh, empty accumulation target. All writes go to it
// until FinishNode pops it.
func (ar *OutputArchive) BeginNode() {
	ar.nodes = append(ar.nodes, &node{})
}

// Depth reports how many nodes are currently open.
func (ar *OutputArchive) Depth() int { return len(ar.nodes) }

// WriteBinary appends p to the current node's payload and claims the
// pending name for that node. A node keeps the first name it is given.
func (ar *OutputArchive) WriteBinary(p []byte) error {
	if len(ar.nodes) == 0 {
		return ErrNoOpenNode
	}
	n := ar.nodes[len(ar.nodes)-1]
	if !n.named {
		n.name = ar.nextName
		n.named = true
	}
	ar.nextName = ""
	written, err := n.buf.Write(p)
	if err != nil || written != len(p) {
		return &ShortWriteError{Requested: len(p), Written: written}
	}
	return nil
}

// FinishNode pops the current node. A node with zero payload bytes vanishes
// without any wire output, name included; anything else is emitted as one
// contiguous framed record.
func (ar *OutputArchive) FinishNode() error {
	if len(ar.nodes) == 0 {
		return ErrNoOpenNode
	}
	n := ar.nodes[len(ar.nodes)-1]
	ar.nodes = ar.nodes[:len(ar.nodes)-1]
	if n.buf.Len() == 0 {
		return nil
	}
	rec := frameRecord(n.name, n.buf.Bytes())
	written, err := ar.w.Write(rec)
	if err != nil || written != len(rec) {
		return &ShortWriteError{Requested: len(rec), Written: written}
	}
	return nil
}
