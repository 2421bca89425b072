package consensus

import "io"

// RangeProofVerifier is the black-box Bulletproof+ verifier. commitments are
// the output commitments as they appear on the wire; proof is the wire
// encoding of BulletproofPlus. rng only seeds verifier-internal batching.
type RangeProofVerifier interface {
	VerifyBulletproofPlus(commitments [][32]byte, proof []byte, rng io.Reader) bool
}

// VerifyRangeProof checks the transaction's range proof against its own
// output commitments.
func VerifyRangeProof(v RangeProofVerifier, tx *Tx, rng io.Reader) bool {
	return verifyAgainst(v, tx.OutputCommitments(), &tx.Prunable.BulletproofPlus, rng)
}

func verifyAgainst(v RangeProofVerifier, commitments []Point, bp *BulletproofPlus, rng io.Reader) bool {
	cs := make([][32]byte, len(commitments))
	for i, c := range commitments {
		cs[i] = c
	}
	return v.VerifyBulletproofPlus(cs, bp.Bytes(), rng)
}
