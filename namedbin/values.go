package namedbin

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Named tags the next value with a human-readable name. The name binds to
// the first record the value emits; a nested composite that emits through
// its members hands the name down to its first leaf.
type Named struct {
	Name  string
	Value any
}

// SizeTag carries sequence-length metadata. It travels through the
// ordinary integer channel and is not specially framed.
type SizeTag uint64

// Saver is the hook a composite value implements to serialize its members
// through the archive in a deterministic traversal order.
type Saver interface {
	Save(ar *OutputArchive) error
}

// Loader mirrors Saver on the read side. Loads must visit members in the
// exact order the corresponding Save used.
type Loader interface {
	Load(ar *InputArchive) error
}

// Save serializes each value in traversal order. Every value gets its own
// node; a composite implementing Saver writes nothing into that node
// directly (its members own their bytes), so the composite's frame elides
// and only leaf records reach the wire, in completion order.
func (ar *OutputArchive) Save(values ...any) error {
	for _, v := range values {
		if err := ar.save(v); err != nil {
			return err
		}
	}
	return nil
}

func (ar *OutputArchive) save(v any) error {
	switch x := v.(type) {
	case Named:
		ar.SetNextName(x.Name)
		return ar.save(x.Value)
	case SizeTag:
		return ar.save(uint64(x))
	}
	ar.BeginNode()
	if err := ar.savePayload(v); err != nil {
		return err
	}
	return ar.FinishNode()
}

func (ar *OutputArchive) savePayload(v any) error {
	switch x := v.(type) {
	case Saver:
		return x.Save(ar)
	case bool:
		b := byte(0)
		if x {
			b = 1
		}
		return ar.WriteBinary([]byte{b})
	case int8:
		return ar.WriteBinary([]byte{byte(x)})
	case uint8:
		return ar.WriteBinary([]byte{x})
	case int16:
		return ar.writeUint(uint64(uint16(x)), 2)
	case uint16:
		return ar.writeUint(uint64(x), 2)
	case int32:
		return ar.writeUint(uint64(uint32(x)), 4)
	case uint32:
		return ar.writeUint(uint64(x), 4)
	case int64:
		return ar.writeUint(uint64(x), 8)
	case uint64:
		return ar.writeUint(x, 8)
	case int:
		return ar.writeUint(uint64(int64(x)), 8)
	case uint:
		return ar.writeUint(uint64(x), 8)
	case float32:
		return ar.writeUint(uint64(math.Float32bits(x)), 4)
	case float64:
		return ar.writeUint(math.Float64bits(x), 8)
	case string:
		if err := ar.save(SizeTag(len(x))); err != nil {
			return err
		}
		return ar.save([]byte(x))
	case []byte:
		return ar.WriteBinary(x)
	default:
		return fmt.Errorf("namedbin: unsupported value type %T", v)
	}
}

func (ar *OutputArchive) writeUint(v uint64, size int) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return ar.WriteBinary(buf[:size])
}

// Load reconstructs each value in the same traversal order used to produce
// the stream. Named wrappers are accepted and their names ignored. A plain
// []byte is filled with exactly len bytes of raw data.
func (ar *InputArchive) Load(values ...any) error {
	for _, v := range values {
		if err := ar.load(v); err != nil {
			return err
		}
	}
	return nil
}

func (ar *InputArchive) load(v any) error {
	switch x := v.(type) {
	case Named:
		ar.SetNextName(x.Name)
		return ar.load(x.Value)
	case Loader:
		return x.Load(ar)
	case *bool:
		var b [1]byte
		if err := ar.ReadBinary(b[:]); err != nil {
			return err
		}
		*x = b[0] != 0
		return nil
	case *int8:
		u, err := ar.readUint(1)
		*x = int8(u)
		return err
	case *uint8:
		u, err := ar.readUint(1)
		*x = uint8(u)
		return err
	case *int16:
		u, err := ar.readUint(2)
		*x = int16(u)
		return err
	case *uint16:
		u, err := ar.readUint(2)
		*x = uint16(u)
		return err
	case *int32:
		u, err := ar.readUint(4)
		*x = int32(u)
		return err
	case *uint32:
		u, err := ar.readUint(4)
		*x = uint32(u)
		return err
	case *int64:
		u, err := ar.readUint(8)
		*x = int64(u)
		return err
	case *uint64:
		u, err := ar.readUint(8)
		*x = u
		return err
	case *int:
		u, err := ar.readUint(8)
		*x = int(int64(u))
		return err
	case *uint:
		u, err := ar.readUint(8)
		*x = uint(u)
		return err
	case *float32:
		u, err := ar.readUint(4)
		*x = math.Float32frombits(uint32(u))
		return err
	case *float64:
		u, err := ar.readUint(8)
		*x = math.Float64frombits(u)
		return err
	case *SizeTag:
		u, err := ar.readUint(8)
		*x = SizeTag(u)
		return err
	case *string:
		var n SizeTag
		if err := ar.load(&n); err != nil {
			return err
		}
		buf := make([]byte, n)
		if err := ar.ReadBinary(buf); err != nil {
			return err
		}
		*x = string(buf)
		return nil
	case []byte:
		return ar.ReadBinary(x)
	default:
		return fmt.Errorf("namedbin: unsupported value type %T", v)
	}
}

func (ar *InputArchive) readUint(size int) (uint64, error) {
	var buf [8]byte
	if err := ar.ReadBinary(buf[:size]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
