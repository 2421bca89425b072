package consensus

// Tx is a decoded Zephyr RingCT transaction of the single supported shape:
// version 3, asset-tagged inputs/outputs, Bulletproof+ range proof, CLSAG
// ring signatures.
type Tx struct {
	Prefix   TxPrefix
	Base     RctBase
	Prunable RctPrunable
}

type TxPrefix struct {
	Version    uint64
	UnlockTime uint64
	Inputs     []TxInput
	Outputs    []TxOutput
	Extra      []byte

	// Conversion fields. Both amounts are zero for plain transfers.
	PricingRecordHeight uint64
	AmountBurnt         uint64
	AmountMinted        uint64
}

type TxInput struct {
	Kind       uint8
	Amount     uint64
	AssetType  string
	KeyOffsets []uint64
	KeyImage   Point
}

type TxOutput struct {
	Amount    uint64
	Kind      uint8
	Key       Point
	AssetType string
	ViewTag   uint8
}

// RctBase carries the output commitments the range proof is checked against.
type RctBase struct {
	Type     uint8
	Fee      uint64
	EcdhInfo [][ECDH_AMOUNT_BYTES]byte
	OutPk    []Point
}

type RctPrunable struct {
	BulletproofPlus BulletproofPlus
	CLSAGs          []Clsag
	PseudoOuts      []Point
}

// BulletproofPlus is an aggregate range proof over all outputs. V is not
// serialized; it is recovered from RctBase.OutPk.
type BulletproofPlus struct {
	A  Point
	A1 Point
	B  Point
	R1 Scalar
	S1 Scalar
	D1 Scalar
	L  []Point
	R  []Point
}

type Clsag struct {
	S  []Scalar
	C1 Scalar
	D  Point
}

// OutputCommitments returns a copy of the output Pedersen commitments.
func (tx *Tx) OutputCommitments() []Point {
	if tx == nil {
		return nil
	}
	return append([]Point(nil), tx.Base.OutPk...)
}

// Bytes returns the wire encoding of the proof as read by ParseTx.
func (bp *BulletproofPlus) Bytes() []byte {
	size := 3*POINT_BYTES + 3*SCALAR_BYTES +
		VarintSize(uint64(len(bp.L))) + VarintSize(uint64(len(bp.R))) +
		POINT_BYTES*(len(bp.L)+len(bp.R))
	out := make([]byte, 0, size)
	return appendBulletproofPlus(out, bp)
}
