// Package groth16 implements Groth16 proof verification over BN254.
package groth16

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/types"
)

// VerifyingKey holds the five components of a Groth16 verification key.
// GammaABC must contain one point more than the number of public inputs.
type VerifyingKey struct {
	AlphaG1  bn254.G1Affine
	BetaG2   bn254.G2Affine
	GammaG2  bn254.G2Affine
	DeltaG2  bn254.G2Affine
	GammaABC []bn254.G1Affine
}

// Proof holds the three components of a Groth16 proof.
type Proof struct {
	A bn254.G1Affine
	B bn254.G2Affine
	C bn254.G1Affine
}

// Verify checks the Groth16 pairing equation
//
//	e(A, B) == e(alpha, beta) * e(vk_x, gamma) * e(C, delta)
//
// where vk_x = GammaABC[0] + sum(publicInputs[i] * GammaABC[i+1]).
//
// A mismatch between the public input count and the key is reported as an
// error. Points that are not valid group elements, and any failure inside
// the pairing computation, make the result false rather than an error:
// malformed proofs must fail closed.
//
// Verify is deterministic and side effect free. Identical inputs always
// produce identical results.
func Verify(vk *VerifyingKey, proof *Proof, publicInputs []fr.Element) (bool, error) {
	if len(publicInputs)+1 != len(vk.GammaABC) {
		return false, errors.Wrapf(types.ErrInvalidPublicInputs,
			"got %d public inputs, verification key expects %d",
			len(publicInputs), len(vk.GammaABC)-1)
	}

	if !validG1(&proof.A) || !validG1(&proof.C) || !validG1(&vk.AlphaG1) {
		return false, nil
	}
	if !validG2(&proof.B) || !validG2(&vk.BetaG2) || !validG2(&vk.GammaG2) || !validG2(&vk.DeltaG2) {
		return false, nil
	}
	for i := range vk.GammaABC {
		if !validG1(&vk.GammaABC[i]) {
			return false, nil
		}
	}

	// vk_x is accumulated strictly by input index.
	var s big.Int
	vkX := vk.GammaABC[0]
	for i := range publicInputs {
		var t bn254.G1Affine
		t.ScalarMultiplication(&vk.GammaABC[i+1], publicInputs[i].BigInt(&s))
		vkX.Add(&vkX, &t)
	}

	var negA bn254.G1Affine
	negA.Neg(&proof.A)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negA, vk.AlphaG1, vkX, proof.C},
		[]bn254.G2Affine{proof.B, vk.BetaG2, vk.GammaG2, vk.DeltaG2},
	)
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// validG1 accepts the identity and any point on the curve. The BN254 G1
// cofactor is one, so on-curve membership implies the right subgroup.
func validG1(p *bn254.G1Affine) bool {
	return p.IsInfinity() || p.IsOnCurve()
}

// validG2 accepts the identity and any point on the twist that lies in the
// r-torsion subgroup.
func validG2(p *bn254.G2Affine) bool {
	return p.IsInfinity() || (p.IsOnCurve() && p.IsInSubGroup())
}
