// Package testvectors builds valid Groth16 instances from the BN254
// generators for use in tests.
//
// With alpha = g1, beta = gamma = delta = g2 and every IC point equal to
// g1, the verification equation
//
//	e(A, B) == e(alpha, beta) * e(vk_x, gamma) * e(C, delta)
//
// reduces on both sides to powers of e(g1, g2). Choosing A = t*g1, B = g2
// and C = g1 the exponents are t on the left and 1 + (1 + sum(inputs)) + 1
// on the right, so t = 3 + sum(inputs) yields a valid instance for any
// public inputs.
package testvectors

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/persona-chain/go-zkverifier/groth16"
	"github.com/persona-chain/go-zkverifier/types"
)

// Instance is a verification key, proof and matching public inputs that
// satisfy the pairing equation, in both native and snarkjs JSON form.
type Instance struct {
	VK     groth16.VerifyingKey
	Proof  groth16.Proof
	Inputs []fr.Element

	Raw       []uint64
	InputStrs []string
	VKJSON    string
	ProofJSON string
}

// New builds a valid instance for the given public inputs.
func New(inputs ...uint64) Instance {
	_, _, g1, g2 := bn254.Generators()

	vk := groth16.VerifyingKey{
		AlphaG1:  g1,
		BetaG2:   g2,
		GammaG2:  g2,
		DeltaG2:  g2,
		GammaABC: make([]bn254.G1Affine, len(inputs)+1),
	}
	for i := range vk.GammaABC {
		vk.GammaABC[i] = g1
	}

	var sum fr.Element
	frInputs := make([]fr.Element, len(inputs))
	strInputs := make([]string, len(inputs))
	for i, v := range inputs {
		frInputs[i].SetUint64(v)
		strInputs[i] = strconv.FormatUint(v, 10)
		sum.Add(&sum, &frInputs[i])
	}

	three := fr.NewElement(3)
	var t fr.Element
	t.Add(&sum, &three)

	var a bn254.G1Affine
	a.ScalarMultiplication(&g1, t.BigInt(new(big.Int)))

	proof := groth16.Proof{A: a, B: g2, C: g1}

	return Instance{
		VK:        vk,
		Proof:     proof,
		Inputs:    frInputs,
		Raw:       append([]uint64(nil), inputs...),
		InputStrs: strInputs,
		VKJSON:    RenderVK(&vk, len(inputs)),
		ProofJSON: RenderProof(&proof),
	}
}

// Tampered returns a copy of the instance whose proof component A is
// shifted by the generator. The point remains a valid group element but
// the equation no longer holds.
func (in Instance) Tampered() Instance {
	_, _, g1, _ := bn254.Generators()
	out := in
	out.Proof.A.Add(&in.Proof.A, &g1)
	out.ProofJSON = RenderProof(&out.Proof)
	return out
}

// RenderVK encodes a verification key as a snarkjs JSON document.
func RenderVK(vk *groth16.VerifyingKey, nPublic int) string {
	wire := types.VerificationKey{
		Protocol: types.ProtocolGroth16,
		Curve:    types.CurveBN254,
		NPublic:  nPublic,
		AlphaG1:  G1Coords(&vk.AlphaG1),
		BetaG2:   G2Coords(&vk.BetaG2),
		GammaG2:  G2Coords(&vk.GammaG2),
		DeltaG2:  G2Coords(&vk.DeltaG2),
		IC:       make([][]string, len(vk.GammaABC)),
	}
	for i := range vk.GammaABC {
		wire.IC[i] = G1Coords(&vk.GammaABC[i])
	}
	return mustMarshal(wire)
}

// RenderProof encodes a proof as a snarkjs JSON document.
func RenderProof(p *groth16.Proof) string {
	wire := types.ProofData{
		A:        G1Coords(&p.A),
		B:        G2Coords(&p.B),
		C:        G1Coords(&p.C),
		Protocol: types.ProtocolGroth16,
	}
	return mustMarshal(wire)
}

// G1Coords renders an affine G1 point as projective coordinate strings.
func G1Coords(p *bn254.G1Affine) []string {
	if p.IsInfinity() {
		return []string{"0", "1", "0"}
	}
	return []string{p.X.String(), p.Y.String(), "1"}
}

// G2Coords renders an affine G2 point as projective coordinate pairs.
func G2Coords(p *bn254.G2Affine) [][]string {
	if p.IsInfinity() {
		return [][]string{{"0", "0"}, {"1", "0"}, {"0", "0"}}
	}
	return [][]string{
		{p.X.A0.String(), p.X.A1.String()},
		{p.Y.A0.String(), p.Y.A1.String()},
		{"1", "0"},
	}
}

func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
