package namedbin

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Record is one parsed framed record.
type Record struct {
	Total   uint64
	Name    string
	Payload []byte
}

// Limits constrains scanner memory use on untrusted streams.
type Limits struct {
	MaxNameBytes    uint64
	MaxPayloadBytes uint64
}

func DefaultLimits() Limits {
	return Limits{
		MaxNameBytes:    64 * 1024,
		MaxPayloadBytes: 64 << 20,
	}
}

// Scanner performs the validated, self-describing parse that InputArchive
// deliberately does not: it walks a stream record by record, checks the
// length fields against each other and against its limits, and keeps a
// running xxhash64 fingerprint of every byte consumed.
type Scanner struct {
	r      io.Reader
	limits Limits
	sum    *xxhash.Digest
	count  int
}

func NewScanner(r io.Reader, limits Limits) *Scanner {
	return &Scanner{r: r, limits: limits, sum: xxhash.New()}
}

// Next parses one framed record. It returns io.EOF at a clean record
// boundary and a ShortReadError when the stream ends mid-record.
func (s *Scanner) Next() (Record, error) {
	total, err := s.readLen(true)
	if err != nil {
		return Record{}, err
	}
	nameLen, err := s.readLen(false)
	if err != nil {
		return Record{}, err
	}
	if nameLen > s.limits.MaxNameBytes {
		return Record{}, ErrNameTooLong
	}
	if total < nameLen+lenFieldSize {
		return Record{}, ErrLengthMismatch
	}
	name := make([]byte, nameLen)
	if err := s.read(name); err != nil {
		return Record{}, err
	}
	payloadLen, err := s.readLen(false)
	if err != nil {
		return Record{}, err
	}
	if payloadLen > s.limits.MaxPayloadBytes {
		return Record{}, ErrPayloadTooLarge
	}
	if total != payloadLen+nameLen+lenFieldSize {
		return Record{}, ErrLengthMismatch
	}
	payload := make([]byte, payloadLen)
	if err := s.read(payload); err != nil {
		return Record{}, err
	}
	s.count++
	return Record{Total: total, Name: string(name), Payload: payload}, nil
}

// Records drains the stream and returns every remaining record.
func (s *Scanner) Records() ([]Record, error) {
	var recs []Record
	for {
		rec, err := s.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Count returns the number of records parsed so far.
func (s *Scanner) Count() int { return s.count }

// Sum64 returns the xxhash64 fingerprint of all bytes consumed so far.
func (s *Scanner) Sum64() uint64 { return s.sum.Sum64() }

func (s *Scanner) readLen(atBoundary bool) (uint64, error) {
	var buf [lenFieldSize]byte
	n, err := io.ReadFull(s.r, buf[:])
	if err == io.EOF && atBoundary {
		return 0, io.EOF
	}
	if err != nil {
		return 0, &ShortReadError{Requested: lenFieldSize, Read: n}
	}
	s.sum.Write(buf[:])
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (s *Scanner) read(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	if err != nil {
		return &ShortReadError{Requested: len(p), Read: n}
	}
	s.sum.Write(p)
	return nil
}
