// Package circuits describes the circuits whose proofs this library can
// verify: their identifiers, proving protocol and public signal layout.
package circuits

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/persona-chain/go-zkverifier/types"
)

// CircuitID is the identifier of a registered circuit.
type CircuitID string

const (
	// AgeVerificationCircuitID proves an age threshold without revealing
	// the birth year.
	AgeVerificationCircuitID CircuitID = "age_verification"
	// IdentityProofCircuitID proves knowledge of an identity commitment.
	IdentityProofCircuitID CircuitID = "identity_proof"
	// EducationVerificationCircuitID proves possession of an education credential.
	EducationVerificationCircuitID CircuitID = "education_verification"
	// EmploymentVerificationCircuitID proves an employment relationship.
	EmploymentVerificationCircuitID CircuitID = "employment_verification"
	// FinancialVerificationCircuitID proves a balance threshold.
	FinancialVerificationCircuitID CircuitID = "financial_verification"
	// HealthVerificationCircuitID proves possession of a health credential.
	HealthVerificationCircuitID CircuitID = "health_verification"
	// LocationVerificationCircuitID proves residency in a region.
	LocationVerificationCircuitID CircuitID = "location_verification"
)

// ErrCircuitNotFound is returned when a circuit id is not registered.
var ErrCircuitNotFound = errors.New("circuit not found")

// Circuit describes a registered circuit. PublicSignals names the public
// inputs of the circuit in the order proofs must supply them.
type Circuit struct {
	ID            CircuitID
	Protocol      string
	PublicSignals []string
}

// NPublic returns the number of public signals the circuit exposes.
func (c Circuit) NPublic() int {
	return len(c.PublicSignals)
}

var (
	registryMu sync.RWMutex
	registry   = map[CircuitID]Circuit{}
)

func init() {
	for _, c := range builtinCircuits {
		registry[c.ID] = c
	}
}

// Register makes a circuit known to the library. Registering an already
// known id replaces its description.
func Register(c Circuit) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.ID] = c
}

// Get returns the description of a registered circuit.
func Get(id CircuitID) (Circuit, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[id]
	if !ok {
		return Circuit{}, errors.Wrapf(ErrCircuitNotFound, "%s", id)
	}
	return c, nil
}

// List returns the registered circuit ids in lexical order.
func List() []CircuitID {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]CircuitID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ValidatePublicInputs checks that the inputs match the public signal
// layout of the circuit.
func ValidatePublicInputs(id CircuitID, inputs []string) error {
	c, err := Get(id)
	if err != nil {
		return err
	}
	if len(inputs) != c.NPublic() {
		return errors.Wrapf(types.ErrInvalidPublicInputs,
			"circuit %s expects %d public inputs, got %d", id, c.NPublic(), len(inputs))
	}
	return nil
}
