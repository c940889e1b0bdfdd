package types

import "github.com/pkg/errors"

var (
	// ErrEmptyVerificationKey is returned when the verification key string is empty.
	ErrEmptyVerificationKey = errors.New("verification key is empty")

	// ErrEmptyProof is returned when the proof string is empty.
	ErrEmptyProof = errors.New("proof is empty")

	// ErrInvalidVerificationKey is returned when the verification key is
	// malformed or cannot be parsed.
	ErrInvalidVerificationKey = errors.New("invalid verification key")

	// ErrInvalidProof is returned when the proof is malformed or cannot be parsed.
	ErrInvalidProof = errors.New("invalid proof")

	// ErrInvalidPublicInputs is returned when public inputs are missing,
	// malformed, or do not match the verification key.
	ErrInvalidPublicInputs = errors.New("invalid public inputs")

	// ErrVerification is returned when verification aborts for an internal
	// reason before producing a result. An ordinary failed pairing check is
	// reported as a false result, not as this error.
	ErrVerification = errors.New("verification error")
)
