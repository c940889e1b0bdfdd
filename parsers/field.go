// Package parsers decodes snarkjs JSON documents (verification keys,
// proofs, public inputs) into the native BN254 structures consumed by the
// groth16 package.
package parsers

import (
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/types"
)

var (
	// ErrMalformedFieldElement is returned when a string is neither a
	// decimal nor a 0x-prefixed hexadecimal numeral.
	ErrMalformedFieldElement = errors.New("malformed field element")

	// ErrMalformedPoint is returned when a point encoding has the wrong shape.
	ErrMalformedPoint = errors.New("malformed point")

	// ErrNonInvertibleCoordinate is returned when a projective Z coordinate
	// cannot be inverted. Unreachable for nonzero elements of a prime field,
	// kept as defined behavior for malformed input.
	ErrNonInvertibleCoordinate = errors.New("non-invertible projective coordinate")
)

// parseBigInt converts a decimal or 0x-prefixed hexadecimal numeral to a
// big integer. Hex digits are read as a big-endian unsigned value. Signs
// are not accepted.
func parseBigInt(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = strings.TrimPrefix(s, "0x")
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, errors.Wrapf(ErrMalformedFieldElement, "cannot parse %q", s)
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedFieldElement, "cannot parse %q", s)
	}
	return n, nil
}

// ParseFr parses a scalar field element. Values greater than or equal to
// the scalar field order r are reduced, not rejected.
func ParseFr(s string) (fr.Element, error) {
	var e fr.Element
	n, err := parseBigInt(s)
	if err != nil {
		return e, err
	}
	e.SetBigInt(n)
	return e, nil
}

// ParseFq parses a base field element. Values greater than or equal to the
// base field order q are reduced, not rejected.
func ParseFq(s string) (fp.Element, error) {
	var e fp.Element
	n, err := parseBigInt(s)
	if err != nil {
		return e, err
	}
	e.SetBigInt(n)
	return e, nil
}

// ParsePublicInputs parses an ordered list of public input strings into
// scalar field elements. Order is preserved.
func ParsePublicInputs(inputs []string) ([]fr.Element, error) {
	out := make([]fr.Element, len(inputs))
	for i, s := range inputs {
		e, err := ParseFr(s)
		if err != nil {
			return nil, errors.Wrapf(types.ErrInvalidPublicInputs, "input %d: %v", i, err)
		}
		out[i] = e
	}
	return out, nil
}
