package consensus

import "github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"

// Hash returns the transaction id: keccak(keccak(prefix) || keccak(base) ||
// keccak(prunable)).
func (tx *Tx) Hash() [32]byte {
	prefixHash := tx.PrefixHash()
	baseHash := crypto.Keccak256(MarshalRctBase(&tx.Base))
	prunableHash := crypto.Keccak256(MarshalRctPrunable(&tx.Prunable))

	buf := make([]byte, 0, 96)
	buf = append(buf, prefixHash[:]...)
	buf = append(buf, baseHash[:]...)
	buf = append(buf, prunableHash[:]...)
	return crypto.Keccak256(buf)
}

// PrefixHash is the hash signed by the ring signatures.
func (tx *Tx) PrefixHash() [32]byte {
	return crypto.Keccak256(MarshalPrefix(&tx.Prefix))
}
