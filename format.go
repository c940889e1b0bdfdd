package zkverifier

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/types"
)

const (
	minKeyLength   = 10
	minProofLength = 20
)

var proofComponents = []string{"pi_a", "pi_b", "pi_c"}

// ValidateVerificationKey checks that a verification key string is present
// and plausibly sized. It is a cheap check for callers that store keys
// before any proof arrives; it performs no cryptographic validation.
func ValidateVerificationKey(verificationKey string) error {
	if verificationKey == "" {
		return types.ErrEmptyVerificationKey
	}
	if len(verificationKey) <= minKeyLength {
		return errors.Wrap(types.ErrInvalidVerificationKey, "verification key too short")
	}
	return nil
}

// ValidateProof checks that a proof string is a JSON object carrying the
// three Groth16 components. Like ValidateVerificationKey it is a format
// check only.
func ValidateProof(proof string) error {
	if proof == "" {
		return types.ErrEmptyProof
	}
	if !strings.HasPrefix(proof, "{") || !strings.HasSuffix(proof, "}") {
		return errors.Wrap(types.ErrInvalidProof, "proof is not a JSON object")
	}
	if len(proof) < minProofLength {
		return errors.Wrap(types.ErrInvalidProof, "proof too short")
	}
	for _, component := range proofComponents {
		if !strings.Contains(proof, component) {
			return errors.Wrapf(types.ErrInvalidProof, "missing %s component", component)
		}
	}
	return nil
}
