// Package namedbinsec seals serialized streams in an AEAD container so
// archives can cross untrusted storage or transport intact. The container
// is magic "NBSC", a version byte, then uvarint-length-prefixed fields:
// algorithm, key id, nonce, header JSON (bound as associated data), and
// ciphertext.
package namedbinsec

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const (
	magicNBSC = "NBSC"
	ver01     = 0x01
)

// Header describes how a sealed stream was encrypted. It is marshaled to
// JSON and authenticated as the AEAD's associated data.
type Header struct {
	Alg   Alg               `json:"alg"`
	KeyID string            `json:"kid"`
	Extra map[string]string `json:"extra,omitempty"`
}

// Seal encrypts a serialized stream under the key named by hdr.KeyID.
func Seal(stream []byte, hdr Header, kr Keyring) ([]byte, error) {
	suite, err := suiteFor(hdr.Alg)
	if err != nil {
		return nil, err
	}
	key, err := kr.Get(hdr.KeyID)
	if err != nil {
		return nil, err
	}
	if len(key) != suite.keyLen {
		return nil, fmt.Errorf("key length %d mismatch for %s", len(key), hdr.Alg)
	}

	nonce := make([]byte, suite.nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	a, err := suite.newAEAD(key)
	if err != nil {
		return nil, err
	}

	if hdr.Extra == nil {
		hdr.Extra = map[string]string{}
	}
	aadJSON, err := json.Marshal(hdr)
	if err != nil {
		return nil, err
	}

	ct := a.Seal(nil, nonce, stream, aadJSON)

	var buf bytes.Buffer
	buf.WriteString(magicNBSC)
	buf.WriteByte(ver01)
	writeVarBytes(&buf, []byte(hdr.Alg))
	writeVarBytes(&buf, []byte(hdr.KeyID))
	writeVarBytes(&buf, nonce)
	writeVarBytes(&buf, aadJSON)
	writeVarBytes(&buf, ct)
	return buf.Bytes(), nil
}

// Open authenticates and decrypts a sealed stream, returning the plaintext
// stream bytes and the header it was sealed under.
func Open(blob []byte, kr Keyring) ([]byte, Header, error) {
	rd := bytes.NewReader(blob)
	magic := make([]byte, 4)
	if _, err := io.ReadFull(rd, magic); err != nil {
		return nil, Header{}, err
	}
	if string(magic) != magicNBSC {
		return nil, Header{}, fmt.Errorf("bad magic")
	}
	ver, err := rd.ReadByte()
	if err != nil {
		return nil, Header{}, err
	}
	if ver != ver01 {
		return nil, Header{}, fmt.Errorf("unsupported version %d", ver)
	}

	alg, err := readVarBytes(rd)
	if err != nil {
		return nil, Header{}, err
	}
	keyID, err := readVarBytes(rd)
	if err != nil {
		return nil, Header{}, err
	}
	nonce, err := readVarBytes(rd)
	if err != nil {
		return nil, Header{}, err
	}
	aadJSON, err := readVarBytes(rd)
	if err != nil {
		return nil, Header{}, err
	}
	ct, err := readVarBytes(rd)
	if err != nil {
		return nil, Header{}, err
	}

	var hdr Header
	if err := json.Unmarshal(aadJSON, &hdr); err != nil {
		return nil, Header{}, err
	}
	if hdr.KeyID != string(keyID) || string(alg) != string(hdr.Alg) {
		return nil, Header{}, fmt.Errorf("AAD/header mismatch")
	}

	suite, err := suiteFor(hdr.Alg)
	if err != nil {
		return nil, Header{}, err
	}
	key, err := kr.Get(hdr.KeyID)
	if err != nil {
		return nil, Header{}, err
	}
	if len(key) != suite.keyLen {
		return nil, Header{}, fmt.Errorf("key length mismatch")
	}

	a, err := suite.newAEAD(key)
	if err != nil {
		return nil, Header{}, err
	}
	pt, err := a.Open(nil, nonce, ct, aadJSON)
	if err != nil {
		return nil, Header{}, fmt.Errorf("decryption failed: %w", err)
	}
	return pt, hdr, nil
}

func writeVarBytes(w *bytes.Buffer, b []byte) {
	var hdr [10]byte
	n := binary.PutUvarint(hdr[:], uint64(len(b)))
	w.Write(hdr[:n])
	w.Write(b)
}

func readVarBytes(r *bytes.Reader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Len()) {
		return nil, fmt.Errorf("truncated field: need %d bytes, have %d", n, r.Len())
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}
