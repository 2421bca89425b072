package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/consensus/v5/monero/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/consensus/v5/monero/crypto/ringct/bulletproofs/plus"
)

var (
	ErrProofTrailingBytes = errors.New("bulletproof+: trailing bytes after proof")
	ErrNoCommitments      = errors.New("bulletproof+: no commitments")
)

type bulletproofPlus = plus.AggregateRangeProof[curve25519.VarTimeOperations]

// MoneroProvider verifies Bulletproofs+ with the P2Pool consensus
// implementation of the Monero range proof.
type MoneroProvider struct{}

var _ CryptoProvider = MoneroProvider{}

// VerifyBulletproofPlus takes commitments as stored in outPk. Like the
// Monero verifier, the library rescales them by 1/8 itself.
func (MoneroProvider) VerifyBulletproofPlus(commitments [][32]byte, proof []byte, rng io.Reader) bool {
	keys, err := decodeCommitments(commitments)
	if err != nil {
		return false
	}
	bp, err := decodeBulletproofPlus(proof)
	if err != nil {
		return false
	}
	return bp.Verify(keys, rng)
}

// decodeBulletproofPlus reads A, A1, B, r1, s1, d1, L and R. The proof must be
// consumed exactly.
func decodeBulletproofPlus(proof []byte) (*bulletproofPlus, error) {
	reader := bytes.NewReader(proof)
	var bp bulletproofPlus
	if err := bp.FromReader(reader); err != nil {
		return nil, fmt.Errorf("bulletproof+: %w", err)
	}
	if reader.Len() != 0 {
		return nil, ErrProofTrailingBytes
	}
	return &bp, nil
}

func decodeCommitments(commitments [][32]byte) ([]curve25519.VarTimePublicKey, error) {
	if len(commitments) == 0 {
		return nil, ErrNoCommitments
	}
	keys := make([]curve25519.VarTimePublicKey, len(commitments))
	for i := range commitments {
		if _, err := keys[i].SetBytes(commitments[i][:]); err != nil {
			return nil, fmt.Errorf("commitment %d: %w", i, err)
		}
	}
	return keys, nil
}
