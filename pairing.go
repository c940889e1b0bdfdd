package zkverifier

import (
	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/groth16"
	"github.com/persona-chain/go-zkverifier/logger"
	"github.com/persona-chain/go-zkverifier/parsers"
	"github.com/persona-chain/go-zkverifier/types"
)

// PairingVerifier is the production backend. It parses snarkjs JSON
// material and checks the Groth16 pairing equation over BN254.
type PairingVerifier struct{}

// NewPairingVerifier creates the pairing backend.
func NewPairingVerifier() *PairingVerifier {
	return &PairingVerifier{}
}

// VerifyProof implements ProofVerifier. It returns false with a nil error
// when the pairing equation does not hold; errors are reserved for material
// that cannot be parsed. A panic raised below the parsing boundary is
// converted into ErrVerification.
func (p *PairingVerifier) VerifyProof(verificationKey string, publicInputs []string, proof string) (valid bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
			err = errors.Wrapf(types.ErrVerification, "recovered: %v", r)
		}
	}()

	if verificationKey == "" {
		return false, types.ErrEmptyVerificationKey
	}
	if proof == "" {
		return false, types.ErrEmptyProof
	}

	vk, err := parsers.ParseVerificationKey([]byte(verificationKey))
	if err != nil {
		return false, err
	}
	pr, err := parsers.ParseProof([]byte(proof))
	if err != nil {
		return false, err
	}
	inputs, err := parsers.ParsePublicInputs(publicInputs)
	if err != nil {
		return false, err
	}

	valid, err = groth16.Verify(vk, pr, inputs)
	if err != nil {
		return false, err
	}

	log := logger.Logger().With().Str("backend", "pairing").Logger()
	log.Debug().Bool("valid", valid).Int("inputs", len(publicInputs)).Msg("groth16 pairing check")

	return valid, nil
}
