package namedbinsec

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"
)

type Keyring interface {
	Get(keyID string) ([]byte, error)
}

type StaticKeyring map[string][]byte

func (s StaticKeyring) Get(keyID string) ([]byte, error) {
	k, ok := s[keyID]
	if !ok {
		return nil, fmt.Errorf("key %q not found", keyID)
	}
	return k, nil
}

// keyringFile is the on-disk keyring shape:
//
//	[keys]
//	k1 = "<hex-encoded key bytes>"
type keyringFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyringTOML reads a TOML keyring file mapping key ids to hex-encoded
// key material.
func LoadKeyringTOML(path string) (StaticKeyring, error) {
	var kf keyringFile
	if _, err := toml.DecodeFile(path, &kf); err != nil {
		return nil, fmt.Errorf("load keyring: %w", err)
	}
	kr := make(StaticKeyring, len(kf.Keys))
	for kid, hexKey := range kf.Keys {
		key, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", kid, err)
		}
		kr[kid] = key
	}
	return kr, nil
}
