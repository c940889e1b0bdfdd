// Package structural provides a degraded verification mode that checks the
// shape of proof material without performing any pairing cryptography.
//
// It exists for environments where the pairing backend cannot be linked and
// for exercising ledger logic in tests. It must never ship as the only
// verification path.
package structural

import (
	"strings"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/logger"
	"github.com/persona-chain/go-zkverifier/types"
)

const (
	// minKeyLength is the minimum verification key length accepted.
	minKeyLength = 10
	// minProofLength is the minimum proof length accepted.
	minProofLength = 20
	// maxPublicInputs bounds the number of public inputs a structurally
	// validated proof may carry.
	maxPublicInputs = 10

	// simulatedFailingInput is a public input value that forces a false
	// result. Simulation hook only, no cryptographic meaning.
	simulatedFailingInput = "999999"
	// simulatedInvalidProof is a proof substring that forces a false
	// result. Simulation hook only, no cryptographic meaning.
	simulatedInvalidProof = "invalid_test_proof"
)

// proofComponents are the substrings every Groth16 proof document carries.
var proofComponents = []string{"pi_a", "pi_b", "pi_c"}

// Verifier validates the format of proof material instead of verifying it
// cryptographically. It satisfies the same contract as the pairing backend.
type Verifier struct{}

// NewVerifier creates a structural verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyProof checks that the verification key, public inputs and proof are
// plausibly shaped. Format violations are reported as typed errors; an
// implausible but well-formed submission yields false. A true result means
// nothing beyond surface shape.
func (v *Verifier) VerifyProof(verificationKey string, publicInputs []string, proof string) (bool, error) {
	log := logger.Logger().With().Str("backend", "structural").Logger()
	log.Debug().Int("inputs", len(publicInputs)).Msg("structural proof validation")

	if verificationKey == "" {
		return false, types.ErrEmptyVerificationKey
	}
	if proof == "" {
		return false, types.ErrEmptyProof
	}
	if len(verificationKey) <= minKeyLength {
		return false, errors.Wrap(types.ErrInvalidVerificationKey, "verification key too short")
	}
	if !strings.HasPrefix(proof, "{") || !strings.HasSuffix(proof, "}") {
		return false, errors.Wrap(types.ErrInvalidProof, "proof is not a JSON object")
	}
	if len(proof) < minProofLength {
		return false, errors.Wrap(types.ErrInvalidProof, "proof too short")
	}
	for _, component := range proofComponents {
		if !strings.Contains(proof, component) {
			return false, errors.Wrapf(types.ErrInvalidProof, "missing %s component", component)
		}
	}
	for i, input := range publicInputs {
		if !validNumeral(input) {
			return false, errors.Wrapf(types.ErrInvalidPublicInputs, "input %d is not numeric", i)
		}
	}

	// A proof must carry a sane number of inputs to pass.
	if len(publicInputs) == 0 || len(publicInputs) > maxPublicInputs {
		return false, nil
	}

	// Simulation hooks, segregated to this backend. The pairing backend
	// knows nothing about them.
	if strings.Contains(proof, simulatedInvalidProof) {
		return false, nil
	}
	if strings.Contains(verificationKey, "malformed") {
		return false, errors.Wrap(types.ErrInvalidVerificationKey, "verification key marked malformed")
	}
	for _, input := range publicInputs {
		if input == simulatedFailingInput {
			return false, nil
		}
	}

	return true, nil
}

// validNumeral reports whether the input is a decimal uint64 or carries a
// hex prefix. The prefix alone is enough; magnitude is not checked for hex
// values. ParseUint64 treats "" as zero, so empty is rejected up front.
func validNumeral(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "0x") {
		return true
	}
	_, ok := ethmath.ParseUint64(s)
	return ok
}
