package consensus

import "fmt"

// MarshalTx serialises a Tx into its wire-format bytes.
// The output is the exact inverse of ParseTx (roundtrip property).
func MarshalTx(tx *Tx) ([]byte, error) {
	if tx == nil {
		return nil, fmt.Errorf("nil tx")
	}
	b := MarshalPrefix(&tx.Prefix)
	b = append(b, MarshalRctBase(&tx.Base)...)
	b = append(b, MarshalRctPrunable(&tx.Prunable)...)
	return b, nil
}

// MarshalPrefix encodes the transaction prefix: version | unlock_time | vin |
// vout | extra | pricing_record_height | amount_burnt | amount_minted.
func MarshalPrefix(p *TxPrefix) []byte {
	var b []byte
	b = AppendVarint(b, p.Version)
	b = AppendVarint(b, p.UnlockTime)

	b = AppendVarint(b, uint64(len(p.Inputs)))
	for _, in := range p.Inputs {
		b = appendTxInput(b, in)
	}

	b = AppendVarint(b, uint64(len(p.Outputs)))
	for _, out := range p.Outputs {
		b = appendTxOutput(b, out)
	}

	b = appendByteVec(b, p.Extra)
	b = AppendVarint(b, p.PricingRecordHeight)
	b = AppendVarint(b, p.AmountBurnt)
	b = AppendVarint(b, p.AmountMinted)
	return b
}

// MarshalRctBase encodes type | fee | ecdh_info | out_pk. The counts are
// implied by the prefix and not written.
func MarshalRctBase(base *RctBase) []byte {
	b := []byte{base.Type}
	b = AppendVarint(b, base.Fee)
	for _, e := range base.EcdhInfo {
		b = append(b, e[:]...)
	}
	return appendPoints(b, base.OutPk)
}

// MarshalRctPrunable encodes bp_count | bulletproof+ | clsags | pseudo_outs.
func MarshalRctPrunable(p *RctPrunable) []byte {
	b := []byte{BP_PLUS_COUNT}
	b = appendBulletproofPlus(b, &p.BulletproofPlus)
	for _, sig := range p.CLSAGs {
		b = appendClsag(b, sig)
	}
	return appendPoints(b, p.PseudoOuts)
}
