package node

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"io"
	"sync"
	"testing"

	"filippo.io/edwards25519"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/consensus"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"
	"github.com/kayabaNerve/zephyr-verify-bulletproofs/node/rpc"
)

func testPoint(v uint64) consensus.Point {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], v)
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return consensus.Point(crypto.EncodePoint(new(edwards25519.Point).ScalarBaseMult(s)))
}

func testScalar(v uint64) consensus.Scalar {
	var s consensus.Scalar
	binary.LittleEndian.PutUint64(s[:8], v)
	return s
}

// scenarioTx builds a one-input two-output transaction whose points all
// derive from seed, so distinct seeds give distinct proofs and commitments.
func scenarioTx(seed uint64) *consensus.Tx {
	base := seed * 1000
	offsets := make([]uint64, consensus.RING_SIZE)
	s := make([]consensus.Scalar, consensus.RING_SIZE)
	for i := range offsets {
		offsets[i] = uint64(i + 1)
		s[i] = testScalar(base + uint64(i) + 50)
	}
	tx := &consensus.Tx{
		Prefix: consensus.TxPrefix{
			Version: consensus.TX_VERSION_CONVERSION,
			Inputs: []consensus.TxInput{{
				Kind:       consensus.TXIN_KIND_ASSET_TO_KEY,
				AssetType:  consensus.SUPPORTED_ASSET_TYPE,
				KeyOffsets: offsets,
				KeyImage:   testPoint(base + 1),
			}},
			Extra:               []byte{0x02, 0x00},
			PricingRecordHeight: 600_000 + seed,
		},
		Base: consensus.RctBase{
			Type: consensus.RCT_TYPE_BULLETPROOF_PLUS,
			Fee:  30_000_000 + seed,
		},
		Prunable: consensus.RctPrunable{
			BulletproofPlus: consensus.BulletproofPlus{
				A:  testPoint(base + 10),
				A1: testPoint(base + 11),
				B:  testPoint(base + 12),
				R1: testScalar(base + 13),
				S1: testScalar(base + 14),
				D1: testScalar(base + 15),
			},
			CLSAGs: []consensus.Clsag{{
				S:  s,
				C1: testScalar(base + 20),
				D:  testPoint(base + 21),
			}},
			PseudoOuts: []consensus.Point{testPoint(base + 22)},
		},
	}
	for i := uint64(0); i < 2; i++ {
		tx.Prefix.Outputs = append(tx.Prefix.Outputs, consensus.TxOutput{
			Kind:      consensus.TXOUT_KIND_ASSET_TAGGED_KEY,
			Key:       testPoint(base + 30 + i),
			AssetType: consensus.SUPPORTED_ASSET_TYPE,
			ViewTag:   uint8(i),
		})
		tx.Base.EcdhInfo = append(tx.Base.EcdhInfo, [consensus.ECDH_AMOUNT_BYTES]byte{byte(i)})
		tx.Base.OutPk = append(tx.Base.OutPk, testPoint(base+40+i))
	}
	for i := uint64(0); i < 6; i++ {
		tx.Prunable.BulletproofPlus.L = append(tx.Prunable.BulletproofPlus.L, testPoint(base+60+i))
		tx.Prunable.BulletproofPlus.R = append(tx.Prunable.BulletproofPlus.R, testPoint(base+70+i))
	}
	return tx
}

type scenarioEntry struct {
	id  string
	hex string
}

func mustEncodeTx(t *testing.T, tx *consensus.Tx) scenarioEntry {
	t.Helper()
	b, err := consensus.MarshalTx(tx)
	if err != nil {
		t.Fatalf("MarshalTx: %v", err)
	}
	h := tx.Hash()
	return scenarioEntry{id: hex.EncodeToString(h[:]), hex: hex.EncodeToString(b)}
}

// proofVerifier accepts a proof only together with the commitments it was
// registered with.
type proofVerifier struct {
	mu     sync.Mutex
	golden map[string][][32]byte
	calls  int
}

func newProofVerifier() *proofVerifier {
	return &proofVerifier{golden: make(map[string][][32]byte)}
}

func (v *proofVerifier) accept(tx *consensus.Tx, commitments []consensus.Point) {
	cs := make([][32]byte, len(commitments))
	for i, c := range commitments {
		cs[i] = c
	}
	v.golden[string(tx.Prunable.BulletproofPlus.Bytes())] = cs
}

func (v *proofVerifier) VerifyBulletproofPlus(commitments [][32]byte, proof []byte, _ io.Reader) bool {
	v.mu.Lock()
	v.calls++
	golden, ok := v.golden[string(proof)]
	v.mu.Unlock()
	if !ok || len(golden) != len(commitments) {
		return false
	}
	for i := range golden {
		if golden[i] != commitments[i] {
			return false
		}
	}
	return true
}

type fakeFetcher struct {
	result *rpc.TransactionsResult
	err    error
	calls  [][]string
}

func (f *fakeFetcher) FetchTransactions(_ context.Context, ids []string) (*rpc.TransactionsResult, error) {
	f.calls = append(f.calls, append([]string(nil), ids...))
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func fetcherFor(entries ...scenarioEntry) *fakeFetcher {
	res := &rpc.TransactionsResult{}
	for _, e := range entries {
		res.Txs = append(res.Txs, rpc.FetchedTx{Hash: e.id, Hex: e.hex})
	}
	return &fakeFetcher{result: res}
}

func idsOf(entries ...scenarioEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}
