package parsers

import (
	"encoding/json"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/groth16"
	"github.com/persona-chain/go-zkverifier/types"
)

// ParseVerificationKey parses a snarkjs verification key JSON document.
// The document must carry vk_alpha_1, vk_beta_2, vk_gamma_2, vk_delta_2 and
// a non-empty IC array. Every failure wraps types.ErrInvalidVerificationKey.
func ParseVerificationKey(data []byte) (*groth16.VerifyingKey, error) {
	var wire types.VerificationKey
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "unmarshal: %v", err)
	}
	if wire.Protocol != "" && wire.Protocol != types.ProtocolGroth16 {
		return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "unsupported protocol %q", wire.Protocol)
	}
	if len(wire.AlphaG1) == 0 || len(wire.BetaG2) == 0 || len(wire.GammaG2) == 0 || len(wire.DeltaG2) == 0 {
		return nil, errors.Wrap(types.ErrInvalidVerificationKey, "missing key component")
	}
	if len(wire.IC) == 0 {
		return nil, errors.Wrap(types.ErrInvalidVerificationKey, "missing or empty IC")
	}

	var (
		vk  groth16.VerifyingKey
		err error
	)
	if vk.AlphaG1, err = ParseG1(wire.AlphaG1); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "vk_alpha_1: %v", err)
	}
	if vk.BetaG2, err = ParseG2(wire.BetaG2); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "vk_beta_2: %v", err)
	}
	if vk.GammaG2, err = ParseG2(wire.GammaG2); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "vk_gamma_2: %v", err)
	}
	if vk.DeltaG2, err = ParseG2(wire.DeltaG2); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "vk_delta_2: %v", err)
	}
	vk.GammaABC = make([]bn254.G1Affine, len(wire.IC))
	for i, coords := range wire.IC {
		if vk.GammaABC[i], err = ParseG1(coords); err != nil {
			return nil, errors.Wrapf(types.ErrInvalidVerificationKey, "IC[%d]: %v", i, err)
		}
	}
	return &vk, nil
}

// ParseProof parses a snarkjs proof JSON document with pi_a, pi_b and pi_c
// components. Every failure wraps types.ErrInvalidProof.
func ParseProof(data []byte) (*groth16.Proof, error) {
	var wire types.ProofData
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidProof, "unmarshal: %v", err)
	}
	return parseProofData(&wire)
}

// parseProofData converts wire-level proof data into its native form.
func parseProofData(wire *types.ProofData) (*groth16.Proof, error) {
	if wire.Protocol != "" && wire.Protocol != types.ProtocolGroth16 {
		return nil, errors.Wrapf(types.ErrInvalidProof, "unsupported protocol %q", wire.Protocol)
	}
	if len(wire.A) == 0 || len(wire.B) == 0 || len(wire.C) == 0 {
		return nil, errors.Wrap(types.ErrInvalidProof, "missing proof component")
	}

	var (
		p   groth16.Proof
		err error
	)
	if p.A, err = ParseG1(wire.A); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidProof, "pi_a: %v", err)
	}
	if p.B, err = ParseG2(wire.B); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidProof, "pi_b: %v", err)
	}
	if p.C, err = ParseG1(wire.C); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidProof, "pi_c: %v", err)
	}
	return &p, nil
}

// ParseProofData converts already unmarshalled wire proof data. It is used
// when the proof arrives embedded in a larger message.
func ParseProofData(wire *types.ProofData) (*groth16.Proof, error) {
	if wire == nil {
		return nil, errors.Wrap(types.ErrInvalidProof, "missing proof data")
	}
	return parseProofData(wire)
}
