package crypto

import "io"

// CryptoProvider is the range-proof capability the audit pipeline needs.
// Verification is a black box: implementations receive the output
// commitments exactly as they appear in outPk, plus the proof in wire
// encoding, and report validity.
type CryptoProvider interface {
	VerifyBulletproofPlus(commitments [][32]byte, proof []byte, rng io.Reader) bool
}
