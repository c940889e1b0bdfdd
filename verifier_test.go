package zkverifier

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/persona-chain/go-zkverifier/circuits"
	"github.com/persona-chain/go-zkverifier/internal/testvectors"
	"github.com/persona-chain/go-zkverifier/loaders"
	mock_loaders "github.com/persona-chain/go-zkverifier/loaders/mock"
	"github.com/persona-chain/go-zkverifier/types"
)

func TestVerifyProofEndToEnd(t *testing.T) {
	inst := testvectors.New(2026, 18)

	ok, err := VerifyProof(inst.VKJSON, inst.InputStrs, inst.ProofJSON)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyProofRejectsTamperedProof(t *testing.T) {
	inst := testvectors.New(2026, 18)
	tampered := inst.Tampered()

	ok, err := VerifyProof(inst.VKJSON, inst.InputStrs, tampered.ProofJSON)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyProofHexAndDecimalInputsAgree(t *testing.T) {
	inst := testvectors.New(2026, 18)
	hex := make([]string, len(inst.Raw))
	for i, v := range inst.Raw {
		hex[i] = "0x" + strconv.FormatUint(v, 16)
	}

	okDec, err := VerifyProof(inst.VKJSON, inst.InputStrs, inst.ProofJSON)
	require.NoError(t, err)
	okHex, err := VerifyProof(inst.VKJSON, hex, inst.ProofJSON)
	require.NoError(t, err)

	require.True(t, okDec)
	require.Equal(t, okDec, okHex)
}

func TestVerifyProofCorruptedCoordinate(t *testing.T) {
	// One flipped digit must never verify. Depending on where the flip
	// lands the material either stops parsing or fails the equation.
	inst := testvectors.New(2026, 18)
	raw := []byte(inst.ProofJSON)
	i := bytes.IndexAny(raw, "123456789")
	require.GreaterOrEqual(t, i, 0)
	if raw[i] == '1' {
		raw[i] = '2'
	} else {
		raw[i] = '1'
	}

	ok, err := VerifyProof(inst.VKJSON, inst.InputStrs, string(raw))
	if err == nil {
		require.False(t, ok)
	}
}

func TestPairingVerifierEmptyMaterial(t *testing.T) {
	p := NewPairingVerifier()
	inst := testvectors.New(1)

	_, err := p.VerifyProof("", inst.InputStrs, inst.ProofJSON)
	require.ErrorIs(t, err, types.ErrEmptyVerificationKey)

	_, err = p.VerifyProof(inst.VKJSON, inst.InputStrs, "")
	require.ErrorIs(t, err, types.ErrEmptyProof)
}

func TestPairingVerifierMalformedMaterial(t *testing.T) {
	p := NewPairingVerifier()
	inst := testvectors.New(1)

	_, err := p.VerifyProof("not a json document", inst.InputStrs, inst.ProofJSON)
	require.ErrorIs(t, err, types.ErrInvalidVerificationKey)

	_, err = p.VerifyProof(inst.VKJSON, inst.InputStrs, "not a json document")
	require.ErrorIs(t, err, types.ErrInvalidProof)

	_, err = p.VerifyProof(inst.VKJSON, []string{"zz"}, inst.ProofJSON)
	require.ErrorIs(t, err, types.ErrInvalidPublicInputs)

	_, err = p.VerifyProof(inst.VKJSON, []string{"1", "2"}, inst.ProofJSON)
	require.ErrorIs(t, err, types.ErrInvalidPublicInputs)
}

type recordingVerifier struct {
	calls  int
	result bool
}

func (r *recordingVerifier) VerifyProof(string, []string, string) (bool, error) {
	r.calls++
	return r.result, nil
}

func TestNewVerifierOptions(t *testing.T) {
	t.Run("custom backend", func(t *testing.T) {
		rec := &recordingVerifier{result: true}
		v, err := NewVerifier(WithProofVerifier(rec))
		require.NoError(t, err)

		ok, err := v.VerifyProof("any key material", []string{"1"}, "any proof material")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1, rec.calls)
	})

	t.Run("nil backend", func(t *testing.T) {
		_, err := NewVerifier(WithProofVerifier(nil))
		require.Error(t, err)
	})

	t.Run("nil key loader", func(t *testing.T) {
		_, err := NewVerifier(WithKeyLoader(nil))
		require.Error(t, err)
	})
}

func TestVerifier_StructuralBackend(t *testing.T) {
	v, err := NewVerifier(WithStructuralVerification())
	require.NoError(t, err)

	proof := `{"pi_a":["1","2","1"],"pi_b":[["1","0"],["1","0"],["1","0"]],"pi_c":["1","2","1"]}`

	ok, err := v.VerifyProof("vk_test_key_12345", []string{"123", "456"}, proof)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.VerifyProof("vk_test_key_12345", []string{"999999"}, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifier_VerifyCircuit(t *testing.T) {
	inst := testvectors.New(2026, 18)
	tampered := inst.Tampered()

	tests := []struct {
		name        string
		id          circuits.CircuitID
		inputs      []string
		proof       string
		prepareMock func(m *mock_loaders.MockVerificationKeyLoader)
		want        bool
		wantErr     error
	}{
		{
			name:   "valid proof",
			id:     circuits.AgeVerificationCircuitID,
			inputs: inst.InputStrs,
			proof:  inst.ProofJSON,
			prepareMock: func(m *mock_loaders.MockVerificationKeyLoader) {
				m.EXPECT().Load(circuits.AgeVerificationCircuitID).Return([]byte(inst.VKJSON), nil)
			},
			want: true,
		},
		{
			name:   "tampered proof",
			id:     circuits.AgeVerificationCircuitID,
			inputs: inst.InputStrs,
			proof:  tampered.ProofJSON,
			prepareMock: func(m *mock_loaders.MockVerificationKeyLoader) {
				m.EXPECT().Load(circuits.AgeVerificationCircuitID).Return([]byte(inst.VKJSON), nil)
			},
			want: false,
		},
		{
			name:    "input count does not match circuit",
			id:      circuits.AgeVerificationCircuitID,
			inputs:  []string{"2026"},
			proof:   inst.ProofJSON,
			wantErr: types.ErrInvalidPublicInputs,
		},
		{
			name:    "unknown circuit",
			id:      "unknown_circuit",
			inputs:  inst.InputStrs,
			proof:   inst.ProofJSON,
			wantErr: circuits.ErrCircuitNotFound,
		},
		{
			name:   "key loader failure",
			id:     circuits.AgeVerificationCircuitID,
			inputs: inst.InputStrs,
			proof:  inst.ProofJSON,
			prepareMock: func(m *mock_loaders.MockVerificationKeyLoader) {
				m.EXPECT().Load(circuits.AgeVerificationCircuitID).Return(nil, loaders.ErrKeyNotFound)
			},
			wantErr: loaders.ErrKeyNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			loader := mock_loaders.NewMockVerificationKeyLoader(ctrl)
			if tt.prepareMock != nil {
				tt.prepareMock(loader)
			}

			v, err := NewVerifier(WithKeyLoader(loader))
			require.NoError(t, err)

			got, err := v.VerifyCircuit(tt.id, tt.inputs, tt.proof)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.False(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestVerifier_VerifyCircuitEmbeddedKeys(t *testing.T) {
	// The embedded development keys are generator based, so a matching
	// proof can be constructed for any pair of public inputs.
	inst := testvectors.New(2026, 18)

	v, err := NewVerifier()
	require.NoError(t, err)

	ok, err := v.VerifyCircuit(circuits.AgeVerificationCircuitID, inst.InputStrs, inst.ProofJSON)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = v.VerifyCircuit(circuits.AgeVerificationCircuitID, inst.InputStrs, inst.Tampered().ProofJSON)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifier_VerifyZKProof(t *testing.T) {
	inst := testvectors.New(2026, 18)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mock_loaders.NewMockVerificationKeyLoader(ctrl)
	loader.EXPECT().Load(circuits.AgeVerificationCircuitID).Return([]byte(inst.VKJSON), nil)

	v, err := NewVerifier(WithKeyLoader(loader))
	require.NoError(t, err)

	var wire types.ProofData
	require.NoError(t, json.Unmarshal([]byte(inst.ProofJSON), &wire))

	ok, err := v.VerifyZKProof(circuits.AgeVerificationCircuitID, &types.ZKProof{
		Proof:      &wire,
		PubSignals: inst.InputStrs,
	})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifier_VerifyZKProofUnsupportedProtocol(t *testing.T) {
	v, err := NewVerifier()
	require.NoError(t, err)

	_, err = v.VerifyZKProof(circuits.AgeVerificationCircuitID, &types.ZKProof{
		Proof: &types.ProofData{Protocol: "plonk"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "plonk protocol is not supported")
}

func TestVerifier_VerifyZKProofEmptyEnvelope(t *testing.T) {
	v, err := NewVerifier()
	require.NoError(t, err)

	_, err = v.VerifyZKProof(circuits.AgeVerificationCircuitID, nil)
	require.ErrorIs(t, err, types.ErrEmptyProof)

	_, err = v.VerifyZKProof(circuits.AgeVerificationCircuitID, &types.ZKProof{})
	require.ErrorIs(t, err, types.ErrEmptyProof)
}
