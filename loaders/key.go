// Package loaders resolves verification key material for registered circuits.
package loaders

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/circuits"
)

// VerificationKeyLoader loads verification key bytes for a specific circuit
type VerificationKeyLoader interface {
	Load(id circuits.CircuitID) ([]byte, error)
}

// FSKeyLoader reads keys from a directory, one <circuit id>.json per circuit
type FSKeyLoader struct {
	Dir string
}

// Load reads the key file for the given circuit. A missing file is reported
// as ErrKeyNotFound so loaders can be chained.
func (m FSKeyLoader) Load(id circuits.CircuitID) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(m.Dir, fmt.Sprintf("%v.json", id)))
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrKeyNotFound, "%v", id)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
