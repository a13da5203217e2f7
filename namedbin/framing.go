package namedbin

import "encoding/binary"

// lenFieldSize is the fixed width of every length field in a framed record.
const lenFieldSize = 8

// frameRecord lays out one complete record:
//
//	[totalLength:8][nameLength:8][name][payloadLength:8][payload]
//
// with totalLength = payloadLength + nameLength + lenFieldSize. All length
// fields are 8-byte little-endian unsigned integers, packed with no
// alignment padding. Nothing here negotiates byte order: a stream must be
// consumed under the same convention it was produced with.
func frameRecord(name string, payload []byte) []byte {
	total := uint64(len(payload) + len(name) + lenFieldSize)
	buf := make([]byte, 0, 3*lenFieldSize+len(name)+len(payload))
	buf = binary.LittleEndian.AppendUint64(buf, total)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(payload)))
	buf = append(buf, payload...)
	return buf
}
