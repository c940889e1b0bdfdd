package parsers

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/pkg/errors"
)

// ParseG1 decodes a projective G1 point [X, Y, Z] into affine form.
// A zero Z denotes the point at infinity; otherwise the affine coordinates
// are (X/Z, Y/Z).
func ParseG1(coords []string) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if len(coords) != 3 {
		return p, errors.Wrapf(ErrMalformedPoint, "G1 point expects 3 coordinates, got %d", len(coords))
	}
	x, err := ParseFq(coords[0])
	if err != nil {
		return p, err
	}
	y, err := ParseFq(coords[1])
	if err != nil {
		return p, err
	}
	z, err := ParseFq(coords[2])
	if err != nil {
		return p, err
	}
	if z.IsZero() {
		return p, nil
	}
	var zInv fp.Element
	zInv.Inverse(&z)
	if zInv.IsZero() {
		return p, errors.Wrap(ErrNonInvertibleCoordinate, "G1 z coordinate")
	}
	p.X.Mul(&x, &zInv)
	p.Y.Mul(&y, &zInv)
	return p, nil
}

// ParseG2 decodes a projective G2 point given as three [c0, c1] pairs of
// Fq2 coordinates for X, Y and Z. A Z with both components zero denotes
// the point at infinity; otherwise X and Y are multiplied through by the
// extension field inverse of Z.
func ParseG2(coords [][]string) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	if len(coords) != 3 {
		return p, errors.Wrapf(ErrMalformedPoint, "G2 point expects 3 coordinates, got %d", len(coords))
	}
	var xyz [3]bn254.E2
	for i, pair := range coords {
		if len(pair) != 2 {
			return p, errors.Wrapf(ErrMalformedPoint, "G2 coordinate %d expects 2 components, got %d", i, len(pair))
		}
		c0, err := ParseFq(pair[0])
		if err != nil {
			return p, err
		}
		c1, err := ParseFq(pair[1])
		if err != nil {
			return p, err
		}
		xyz[i].A0 = c0
		xyz[i].A1 = c1
	}
	if xyz[2].IsZero() {
		return p, nil
	}
	var zInv bn254.E2
	zInv.Inverse(&xyz[2])
	if zInv.IsZero() {
		return p, errors.Wrap(ErrNonInvertibleCoordinate, "G2 z coordinate")
	}
	p.X.Mul(&xyz[0], &zInv)
	p.Y.Mul(&xyz[1], &zInv)
	return p, nil
}
