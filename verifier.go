// Package zkverifier verifies Groth16 zero-knowledge proofs produced by
// snarkjs circuits over the BN254 curve.
//
// Verification keys and proofs are snarkjs JSON documents and public inputs
// are decimal or 0x-prefixed hex strings. The default backend parses this
// material and checks the Groth16 pairing equation with gnark-crypto. A
// structural backend that only validates the shape of the material can be
// selected for environments without pairing support.
package zkverifier

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/circuits"
	"github.com/persona-chain/go-zkverifier/loaders"
	"github.com/persona-chain/go-zkverifier/structural"
	"github.com/persona-chain/go-zkverifier/types"
)

// ProofVerifier checks a Groth16 proof against a verification key and
// ordered public inputs. A false result with a nil error means the material
// was well formed but the proof did not verify; an error is returned only
// when verification could not be attempted.
type ProofVerifier interface {
	VerifyProof(verificationKey string, publicInputs []string, proof string) (bool, error)
}

// Verifier dispatches proof verification to a configured backend and
// resolves verification keys for registered circuits. It is safe for
// concurrent use.
type Verifier struct {
	backend   ProofVerifier
	keyLoader loaders.VerificationKeyLoader
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithProofVerifier overrides the verification backend.
func WithProofVerifier(pv ProofVerifier) Option {
	return func(v *Verifier) {
		v.backend = pv
	}
}

// WithStructuralVerification selects the structural backend, which checks
// the shape of the proof material without any pairing cryptography.
func WithStructuralVerification() Option {
	return func(v *Verifier) {
		v.backend = structural.NewVerifier()
	}
}

// WithKeyLoader sets the loader used to resolve verification keys for
// registered circuits.
func WithKeyLoader(loader loaders.VerificationKeyLoader) Option {
	return func(v *Verifier) {
		v.keyLoader = loader
	}
}

// NewVerifier creates a verifier with the pairing backend and the embedded
// key loader, then applies the given options.
func NewVerifier(opts ...Option) (*Verifier, error) {
	v := &Verifier{
		backend:   NewPairingVerifier(),
		keyLoader: loaders.NewEmbeddedKeyLoader(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.backend == nil {
		return nil, errors.New("proof verifier backend is nil")
	}
	if v.keyLoader == nil {
		return nil, errors.New("verification key loader is nil")
	}
	return v, nil
}

// VerifyProof checks the proof against the supplied verification key and
// public inputs using the configured backend.
func (v *Verifier) VerifyProof(verificationKey string, publicInputs []string, proof string) (bool, error) {
	return v.backend.VerifyProof(verificationKey, publicInputs, proof)
}

// VerifyCircuit resolves the verification key registered for the circuit
// and checks the proof against it. The number of public inputs must match
// the circuit schema.
func (v *Verifier) VerifyCircuit(id circuits.CircuitID, publicInputs []string, proof string) (bool, error) {
	err := circuits.ValidatePublicInputs(id, publicInputs)
	if err != nil {
		return false, err
	}
	key, err := v.keyLoader.Load(id)
	if err != nil {
		return false, errors.Wrapf(err, "verification key for circuit %v", id)
	}
	return v.backend.VerifyProof(string(key), publicInputs, proof)
}

// VerifyZKProof verifies a proof envelope for the given circuit, dispatching
// on the declared protocol. Only groth16 is supported.
func (v *Verifier) VerifyZKProof(id circuits.CircuitID, zkProof *types.ZKProof) (bool, error) {
	if zkProof == nil || zkProof.Proof == nil {
		return false, types.ErrEmptyProof
	}
	switch zkProof.Proof.Protocol {
	case types.ProtocolGroth16:
		proof, err := json.Marshal(zkProof.Proof)
		if err != nil {
			return false, errors.Wrapf(types.ErrInvalidProof, "%v", err)
		}
		return v.VerifyCircuit(id, zkProof.PubSignals, string(proof))
	default:
		return false, errors.Errorf("%s protocol is not supported", zkProof.Proof.Protocol)
	}
}

// VerifyProof checks a proof with the default pairing backend.
func VerifyProof(verificationKey string, publicInputs []string, proof string) (bool, error) {
	return NewPairingVerifier().VerifyProof(verificationKey, publicInputs, proof)
}
