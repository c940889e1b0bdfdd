package circuits

import "github.com/persona-chain/go-zkverifier/types"

// builtinCircuits seed the registry. Signal names follow the order the
// circuits expose them as public inputs.
var builtinCircuits = []Circuit{
	{
		ID:            AgeVerificationCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"current_year", "min_age"},
	},
	{
		ID:            IdentityProofCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"identity_commitment", "challenge"},
	},
	{
		ID:            EducationVerificationCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"credential_hash", "issuer_id"},
	},
	{
		ID:            EmploymentVerificationCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"employer_commitment", "current_year"},
	},
	{
		ID:            FinancialVerificationCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"asset_commitment", "threshold"},
	},
	{
		ID:            HealthVerificationCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"record_commitment", "issuer_id"},
	},
	{
		ID:            LocationVerificationCircuitID,
		Protocol:      types.ProtocolGroth16,
		PublicSignals: []string{"region_commitment", "challenge"},
	},
}
