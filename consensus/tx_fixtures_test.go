package consensus

import (
	"encoding/binary"
	"io"
	"testing"

	"filippo.io/edwards25519"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"
)

func mustTxErrCode(t *testing.T, err error) ErrorCode {
	t.Helper()
	te, ok := err.(*TxError)
	if !ok {
		t.Fatalf("expected *TxError, got %T: %v", err, err)
	}
	return te.Code
}

func testScalar(v uint64) Scalar {
	var s Scalar
	binary.LittleEndian.PutUint64(s[:8], v)
	return s
}

// testPoint returns v*G, which is always canonical and of prime order.
func testPoint(v uint64) Point {
	sb := testScalar(v)
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(sb[:])
	if err != nil {
		panic(err)
	}
	return Point(crypto.EncodePoint(new(edwards25519.Point).ScalarBaseMult(s)))
}

func testTx(nIn, nOut int) *Tx {
	txPub := testPoint(9001)
	tx := &Tx{
		Prefix: TxPrefix{
			Version:             TX_VERSION_CONVERSION,
			UnlockTime:          0,
			Extra:               append([]byte{0x01}, txPub[:]...),
			PricingRecordHeight: 512_345,
		},
		Base: RctBase{
			Type: RCT_TYPE_BULLETPROOF_PLUS,
			Fee:  1_230_000_000,
		},
	}
	for i := 0; i < nIn; i++ {
		offsets := make([]uint64, RING_SIZE)
		for j := range offsets {
			offsets[j] = uint64(1000*i + j + 1)
		}
		tx.Prefix.Inputs = append(tx.Prefix.Inputs, TxInput{
			Kind:       TXIN_KIND_ASSET_TO_KEY,
			Amount:     0,
			AssetType:  SUPPORTED_ASSET_TYPE,
			KeyOffsets: offsets,
			KeyImage:   testPoint(uint64(100 + i)),
		})

		s := make([]Scalar, RING_SIZE)
		for j := range s {
			s[j] = testScalar(uint64(10_000*i + j + 7))
		}
		tx.Prunable.CLSAGs = append(tx.Prunable.CLSAGs, Clsag{
			S:  s,
			C1: testScalar(uint64(55 + i)),
			D:  testPoint(uint64(300 + i)),
		})
		tx.Prunable.PseudoOuts = append(tx.Prunable.PseudoOuts, testPoint(uint64(400+i)))
	}
	for i := 0; i < nOut; i++ {
		tx.Prefix.Outputs = append(tx.Prefix.Outputs, TxOutput{
			Amount:    0,
			Kind:      TXOUT_KIND_ASSET_TAGGED_KEY,
			Key:       testPoint(uint64(200 + i)),
			AssetType: SUPPORTED_ASSET_TYPE,
			ViewTag:   uint8(0xa0 + i),
		})
		tx.Base.EcdhInfo = append(tx.Base.EcdhInfo, [ECDH_AMOUNT_BYTES]byte{byte(i), 1, 2, 3, 4, 5, 6, 7})
		tx.Base.OutPk = append(tx.Base.OutPk, testPoint(uint64(500+i)))
	}
	bp := BulletproofPlus{
		A:  testPoint(600),
		A1: testPoint(601),
		B:  testPoint(602),
		R1: testScalar(603),
		S1: testScalar(604),
		D1: testScalar(605),
	}
	for i := 0; i < 7; i++ {
		bp.L = append(bp.L, testPoint(uint64(700+i)))
		bp.R = append(bp.R, testPoint(uint64(800+i)))
	}
	tx.Prunable.BulletproofPlus = bp
	return tx
}

func mustMarshalTx(t *testing.T, tx *Tx) []byte {
	t.Helper()
	b, err := MarshalTx(tx)
	if err != nil {
		t.Fatalf("MarshalTx: %v", err)
	}
	return b
}

func validTxBytes(t *testing.T) []byte {
	t.Helper()
	return mustMarshalTx(t, testTx(1, 2))
}

func expectParseErrCode(t *testing.T, txBytes []byte, want ErrorCode) *TxError {
	t.Helper()
	_, err := ParseTx(txBytes)
	if err == nil {
		t.Fatalf("expected error %s", want)
	}
	if got := mustTxErrCode(t, err); got != want {
		t.Fatalf("code=%s, want %s (%v)", got, want, err)
	}
	return err.(*TxError)
}

// goldenVerifier accepts exactly one commitment sequence.
type goldenVerifier struct {
	golden [][32]byte
	proof  []byte
	calls  int
	seen   [][][32]byte
}

func newGoldenVerifier(golden []Point, proof []byte) *goldenVerifier {
	v := &goldenVerifier{proof: proof}
	for _, p := range golden {
		v.golden = append(v.golden, p)
	}
	return v
}

func (v *goldenVerifier) VerifyBulletproofPlus(commitments [][32]byte, proof []byte, _ io.Reader) bool {
	v.calls++
	v.seen = append(v.seen, append([][32]byte(nil), commitments...))
	if v.proof != nil && string(proof) != string(v.proof) {
		return false
	}
	if len(commitments) != len(v.golden) {
		return false
	}
	for i := range commitments {
		if commitments[i] != v.golden[i] {
			return false
		}
	}
	return true
}
