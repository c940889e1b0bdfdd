// Package types defines the wire structures of the snarkjs proof and
// verification key JSON format and the error taxonomy of the library.
package types

// ProtocolGroth16 is the proving protocol supported by this library.
const ProtocolGroth16 = "groth16"

// CurveBN254 is the only curve the verification pipeline operates on.
// snarkjs emits it under its alternative name bn128.
const CurveBN254 = "bn128"

// ProofData describes the three components of a Groth16 proof.
// Points are encoded as projective coordinate strings, decimal or 0x-hex.
type ProofData struct {
	A        []string   `json:"pi_a"`
	B        [][]string `json:"pi_b"`
	C        []string   `json:"pi_c"`
	Protocol string     `json:"protocol,omitempty"`
}

// ZKProof represents a proof object together with its public signals.
type ZKProof struct {
	Proof      *ProofData `json:"proof"`
	PubSignals []string   `json:"pub_signals"`
}

// VerificationKey describes a Groth16 verification key in snarkjs JSON
// format. NPublic and Curve are informational and may be absent.
type VerificationKey struct {
	Protocol string     `json:"protocol,omitempty"`
	Curve    string     `json:"curve,omitempty"`
	NPublic  int        `json:"nPublic,omitempty"`
	AlphaG1  []string   `json:"vk_alpha_1"`
	BetaG2   [][]string `json:"vk_beta_2"`
	GammaG2  [][]string `json:"vk_gamma_2"`
	DeltaG2  [][]string `json:"vk_delta_2"`
	IC       [][]string `json:"IC"`
}
