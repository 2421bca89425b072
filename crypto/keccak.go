package crypto

import "golang.org/x/crypto/sha3"

// Keccak256 is the pre-standard Keccak-256 used by CryptoNote chains
// (cn_fast_hash), not FIPS-202 SHA3-256.
func Keccak256(input []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(input)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
