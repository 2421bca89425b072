package consensus

import (
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"
)

// Default discrepancy under test: 16 million whole units at 12 decimals.
const (
	DIAGNOSTIC_MAGNITUDE_UNITS = 16_000_000
	ATOMIC_UNIT_DECIMALS       = 12
)

// diagnosticOutputIndices are the only outputs the diagnostic perturbs.
// Transactions with more outputs are not scanned further.
var diagnosticOutputIndices = [...]int{0, 1}

// Perturbation is the outcome of re-verifying with k*H added to one output.
type Perturbation struct {
	OutputIndex int
	Valid       bool
}

// PerturbCommitments returns a copy of commitments with k*H added to the
// commitment at index.
func PerturbCommitments(commitments []Point, index int, k *edwards25519.Scalar) ([]Point, error) {
	if index < 0 || index >= len(commitments) {
		return nil, txerr(TX_ERR_COMMITMENT_ARITHMETIC, fmt.Sprintf("output index %d out of range", index))
	}
	out := append([]Point(nil), commitments...)
	shifted, err := crypto.AddMultipleOfH(out[index], k)
	if err != nil {
		return nil, fielderr(TX_ERR_COMMITMENT_ARITHMETIC, fmt.Sprintf("out_pk[%d]", index), err.Error())
	}
	out[index] = shifted
	return out, nil
}

// DiagnoseDiscrepancy tests, one output at a time, whether the range proof
// becomes valid once the commitment is increased by magnitude*H. Only outputs
// 0 and 1 are tried, and only those that exist.
func DiagnoseDiscrepancy(v RangeProofVerifier, tx *Tx, magnitude *edwards25519.Scalar, rng io.Reader) ([]Perturbation, error) {
	commitments := tx.OutputCommitments()
	results := make([]Perturbation, 0, len(diagnosticOutputIndices))
	for _, idx := range diagnosticOutputIndices {
		if idx >= len(commitments) {
			break
		}
		perturbed, err := PerturbCommitments(commitments, idx, magnitude)
		if err != nil {
			return nil, err
		}
		results = append(results, Perturbation{
			OutputIndex: idx,
			Valid:       verifyAgainst(v, perturbed, &tx.Prunable.BulletproofPlus, rng),
		})
	}
	return results, nil
}

// DefaultMagnitude is DIAGNOSTIC_MAGNITUDE_UNITS at ATOMIC_UNIT_DECIMALS.
func DefaultMagnitude() *edwards25519.Scalar {
	k, err := crypto.MagnitudeScalar(DIAGNOSTIC_MAGNITUDE_UNITS, ATOMIC_UNIT_DECIMALS)
	if err != nil {
		panic("consensus: default magnitude does not fit")
	}
	return k
}
