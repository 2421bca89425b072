package consensus

import "fmt"

// ParseTx decodes b as a single transaction of the supported shape. Every tag,
// asset type and ring size is checked as soon as it is read, and b must be
// consumed exactly.
func ParseTx(b []byte) (*Tx, error) {
	c := newCursor(b)

	prefix, err := parsePrefix(c)
	if err != nil {
		return nil, err
	}
	nIn, nOut := len(prefix.Inputs), len(prefix.Outputs)

	base, err := parseRctBase(c, nOut)
	if err != nil {
		return nil, err
	}

	prunable, err := parseRctPrunable(c, nIn)
	if err != nil {
		return nil, err
	}

	if !c.exhausted() {
		return nil, txerr(TX_ERR_TRAILING_BYTES, fmt.Sprintf("%d bytes left after prunable section", c.remaining()))
	}

	return &Tx{
		Prefix:   prefix,
		Base:     base,
		Prunable: prunable,
	}, nil
}

func parsePrefix(c *cursor) (TxPrefix, error) {
	var p TxPrefix

	version, err := c.readVarintU64()
	if err != nil {
		return p, withField(err, "version")
	}
	if version != TX_VERSION_CONVERSION {
		return p, mismatch("version", TX_VERSION_CONVERSION, version)
	}
	p.Version = version

	if p.UnlockTime, err = c.readVarintU64(); err != nil {
		return p, withField(err, "unlock_time")
	}

	inCount, err := c.readVarintU64()
	if err != nil {
		return p, withField(err, "vin.count")
	}
	if inCount == 0 || inCount > MAX_TX_INPUTS {
		return p, mismatch("vin.count", fmt.Sprintf("1..%d", MAX_TX_INPUTS), inCount)
	}
	p.Inputs = make([]TxInput, 0, int(inCount))
	for i := 0; i < int(inCount); i++ {
		in, err := parseTxInput(c, i)
		if err != nil {
			return p, err
		}
		p.Inputs = append(p.Inputs, in)
	}

	outCount, err := c.readVarintU64()
	if err != nil {
		return p, withField(err, "vout.count")
	}
	if outCount == 0 || outCount > MAX_TX_OUTPUTS {
		return p, mismatch("vout.count", fmt.Sprintf("1..%d", MAX_TX_OUTPUTS), outCount)
	}
	p.Outputs = make([]TxOutput, 0, int(outCount))
	for i := 0; i < int(outCount); i++ {
		out, err := parseTxOutput(c, i)
		if err != nil {
			return p, err
		}
		p.Outputs = append(p.Outputs, out)
	}

	if p.Extra, err = c.readByteVec(MAX_TX_EXTRA_BYTES); err != nil {
		return p, withField(err, "extra")
	}

	if p.PricingRecordHeight, err = c.readVarintU64(); err != nil {
		return p, withField(err, "pricing_record_height")
	}
	if p.AmountBurnt, err = c.readVarintU64(); err != nil {
		return p, withField(err, "amount_burnt")
	}
	if p.AmountBurnt != CONVERSION_AMOUNT_NONE {
		return p, mismatch("amount_burnt", CONVERSION_AMOUNT_NONE, p.AmountBurnt)
	}
	if p.AmountMinted, err = c.readVarintU64(); err != nil {
		return p, withField(err, "amount_minted")
	}
	if p.AmountMinted != CONVERSION_AMOUNT_NONE {
		return p, mismatch("amount_minted", CONVERSION_AMOUNT_NONE, p.AmountMinted)
	}
	return p, nil
}

func parseTxInput(c *cursor, i int) (TxInput, error) {
	var in TxInput
	field := func(name string) string { return fmt.Sprintf("vin[%d].%s", i, name) }

	kind, err := c.readU8()
	if err != nil {
		return in, withField(err, field("kind"))
	}
	if kind != TXIN_KIND_ASSET_TO_KEY {
		return in, mismatch(field("kind"), TXIN_KIND_ASSET_TO_KEY, kind)
	}
	in.Kind = kind

	if in.Amount, err = c.readVarintU64(); err != nil {
		return in, withField(err, field("amount"))
	}

	if in.AssetType, err = readAssetType(c, field("asset_type")); err != nil {
		return in, err
	}

	if in.KeyOffsets, err = readVec(c, RING_SIZE, 1, (*cursor).readVarintU64); err != nil {
		return in, withField(err, field("key_offsets"))
	}
	if len(in.KeyOffsets) != RING_SIZE {
		return in, mismatch(field("key_offsets.count"), RING_SIZE, len(in.KeyOffsets))
	}

	if in.KeyImage, err = c.readPrimeOrderPoint(); err != nil {
		return in, withField(err, field("key_image"))
	}
	return in, nil
}

func parseTxOutput(c *cursor, i int) (TxOutput, error) {
	var out TxOutput
	field := func(name string) string { return fmt.Sprintf("vout[%d].%s", i, name) }

	var err error
	if out.Amount, err = c.readVarintU64(); err != nil {
		return out, withField(err, field("amount"))
	}

	kind, err := c.readU8()
	if err != nil {
		return out, withField(err, field("kind"))
	}
	if kind != TXOUT_KIND_ASSET_TAGGED_KEY {
		return out, mismatch(field("kind"), TXOUT_KIND_ASSET_TAGGED_KEY, kind)
	}
	out.Kind = kind

	if out.Key, err = c.readPoint(); err != nil {
		return out, withField(err, field("key"))
	}

	if out.AssetType, err = readAssetType(c, field("asset_type")); err != nil {
		return out, err
	}

	if out.ViewTag, err = c.readU8(); err != nil {
		return out, withField(err, field("view_tag"))
	}
	return out, nil
}

func readAssetType(c *cursor, field string) (string, error) {
	raw, err := c.readByteVec(MAX_ASSET_TYPE_LEN)
	if err != nil {
		return "", withField(err, field)
	}
	if string(raw) != SUPPORTED_ASSET_TYPE {
		return "", mismatch(field, SUPPORTED_ASSET_TYPE, fmt.Sprintf("%q", raw))
	}
	return string(raw), nil
}

func parseRctBase(c *cursor, nOut int) (RctBase, error) {
	var base RctBase

	rctType, err := c.readU8()
	if err != nil {
		return base, withField(err, "rct.type")
	}
	if rctType != RCT_TYPE_BULLETPROOF_PLUS {
		return base, mismatch("rct.type", RCT_TYPE_BULLETPROOF_PLUS, rctType)
	}
	base.Type = rctType

	if base.Fee, err = c.readVarintU64(); err != nil {
		return base, withField(err, "rct.fee")
	}

	if base.EcdhInfo, err = readFixed(c, nOut, ECDH_AMOUNT_BYTES, readEcdhAmount); err != nil {
		return base, withField(err, "rct.ecdh_info")
	}

	if base.OutPk, err = readFixed(c, nOut, POINT_BYTES, (*cursor).readPoint); err != nil {
		return base, withField(err, "rct.out_pk")
	}
	return base, nil
}

func readEcdhAmount(c *cursor) ([ECDH_AMOUNT_BYTES]byte, error) {
	var out [ECDH_AMOUNT_BYTES]byte
	b, err := c.readExact(ECDH_AMOUNT_BYTES)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func parseRctPrunable(c *cursor, nIn int) (RctPrunable, error) {
	var p RctPrunable

	bpCount, err := c.readU8()
	if err != nil {
		return p, withField(err, "rctp.bp_count")
	}
	if bpCount != BP_PLUS_COUNT {
		return p, mismatch("rctp.bp_count", BP_PLUS_COUNT, bpCount)
	}

	if p.BulletproofPlus, err = parseBulletproofPlus(c); err != nil {
		return p, err
	}

	if p.CLSAGs, err = readFixed(c, nIn, (RING_SIZE+1)*SCALAR_BYTES+POINT_BYTES, parseClsag); err != nil {
		return p, withField(err, "rctp.clsags")
	}

	if p.PseudoOuts, err = readFixed(c, nIn, POINT_BYTES, (*cursor).readPoint); err != nil {
		return p, withField(err, "rctp.pseudo_outs")
	}
	return p, nil
}

func parseBulletproofPlus(c *cursor) (BulletproofPlus, error) {
	var bp BulletproofPlus
	var err error

	if bp.A, err = c.readPoint(); err != nil {
		return bp, withField(err, "bpp.A")
	}
	if bp.A1, err = c.readPoint(); err != nil {
		return bp, withField(err, "bpp.A1")
	}
	if bp.B, err = c.readPoint(); err != nil {
		return bp, withField(err, "bpp.B")
	}
	if bp.R1, err = c.readScalar(); err != nil {
		return bp, withField(err, "bpp.r1")
	}
	if bp.S1, err = c.readScalar(); err != nil {
		return bp, withField(err, "bpp.s1")
	}
	if bp.D1, err = c.readScalar(); err != nil {
		return bp, withField(err, "bpp.d1")
	}
	if bp.L, err = readVec(c, MAX_BP_PLUS_ROUNDS, POINT_BYTES, (*cursor).readPoint); err != nil {
		return bp, withField(err, "bpp.L")
	}
	if bp.R, err = readVec(c, MAX_BP_PLUS_ROUNDS, POINT_BYTES, (*cursor).readPoint); err != nil {
		return bp, withField(err, "bpp.R")
	}
	if len(bp.L) != len(bp.R) {
		return bp, mismatch("bpp.R.count", len(bp.L), len(bp.R))
	}
	return bp, nil
}

func parseClsag(c *cursor) (Clsag, error) {
	var sig Clsag
	var err error

	if sig.S, err = readFixed(c, RING_SIZE, SCALAR_BYTES, (*cursor).readScalar); err != nil {
		return sig, err
	}
	if sig.C1, err = c.readScalar(); err != nil {
		return sig, err
	}
	if sig.D, err = c.readPoint(); err != nil {
		return sig, err
	}
	return sig, nil
}
