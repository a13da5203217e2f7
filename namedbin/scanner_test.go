package namedbin

import (
	"bytes"
	"io"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func sampleStream(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	ar := NewOutputArchive(&buf)
	require.NoError(t, ar.Save(
		Named{Name: "qty", Value: uint32(7)},
		Named{Name: "label", Value: "box"},
		Named{Name: "w", Value: 1.25},
	))
	return buf.Bytes()
}

func TestScannerCleanEOF(t *testing.T) {
	sc := NewScanner(bytes.NewReader(nil), DefaultLimits())
	_, err := sc.Next()
	require.ErrorIs(t, err, io.EOF)

	recs, err := sc.Records()
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestScannerWalksWholeStream(t *testing.T) {
	wire := sampleStream(t)
	sc := NewScanner(bytes.NewReader(wire), DefaultLimits())
	recs, err := sc.Records()
	require.NoError(t, err)
	require.Equal(t, len(recs), sc.Count())

	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Name)
	}
	// "label" emits a named size tag and an unnamed data record.
	require.Equal(t, []string{"qty", "label", "", "w"}, names)
}

func TestScannerTruncatedRecord(t *testing.T) {
	wire := sampleStream(t)
	sc := NewScanner(bytes.NewReader(wire[:len(wire)-3]), DefaultLimits())
	var err error
	for err == nil {
		_, err = sc.Next()
	}
	var sr *ShortReadError
	require.ErrorAs(t, err, &sr)
}

func TestScannerLengthMismatch(t *testing.T) {
	wire := sampleStream(t)
	// Corrupt the first record's totalLength field.
	wire[0] ^= 0x01
	sc := NewScanner(bytes.NewReader(wire), DefaultLimits())
	_, err := sc.Next()
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestScannerLimits(t *testing.T) {
	var buf bytes.Buffer
	ar := NewOutputArchive(&buf)
	require.NoError(t, ar.Save(Named{Name: "generous-name", Value: uint64(1)}))
	wire := buf.Bytes()

	sc := NewScanner(bytes.NewReader(wire), Limits{MaxNameBytes: 4, MaxPayloadBytes: 1 << 20})
	_, err := sc.Next()
	require.ErrorIs(t, err, ErrNameTooLong)

	sc = NewScanner(bytes.NewReader(wire), Limits{MaxNameBytes: 1 << 10, MaxPayloadBytes: 4})
	_, err = sc.Next()
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestScannerFingerprintCoversStream(t *testing.T) {
	wire := sampleStream(t)
	sc := NewScanner(bytes.NewReader(wire), DefaultLimits())
	_, err := sc.Records()
	require.NoError(t, err)
	require.Equal(t, xxhash.Sum64(wire), sc.Sum64())
}
