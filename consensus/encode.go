package consensus

func appendPoints(b []byte, ps []Point) []byte {
	for _, p := range ps {
		b = append(b, p[:]...)
	}
	return b
}

func appendScalars(b []byte, ss []Scalar) []byte {
	for _, s := range ss {
		b = append(b, s[:]...)
	}
	return b
}

func appendByteVec(b []byte, v []byte) []byte {
	b = AppendVarint(b, uint64(len(v)))
	return append(b, v...)
}

func appendTxInput(b []byte, in TxInput) []byte {
	b = append(b, in.Kind)
	b = AppendVarint(b, in.Amount)
	b = appendByteVec(b, []byte(in.AssetType))
	b = AppendVarint(b, uint64(len(in.KeyOffsets)))
	for _, off := range in.KeyOffsets {
		b = AppendVarint(b, off)
	}
	return append(b, in.KeyImage[:]...)
}

func appendTxOutput(b []byte, out TxOutput) []byte {
	b = AppendVarint(b, out.Amount)
	b = append(b, out.Kind)
	b = append(b, out.Key[:]...)
	b = appendByteVec(b, []byte(out.AssetType))
	return append(b, out.ViewTag)
}

func appendBulletproofPlus(b []byte, bp *BulletproofPlus) []byte {
	b = append(b, bp.A[:]...)
	b = append(b, bp.A1[:]...)
	b = append(b, bp.B[:]...)
	b = append(b, bp.R1[:]...)
	b = append(b, bp.S1[:]...)
	b = append(b, bp.D1[:]...)
	b = AppendVarint(b, uint64(len(bp.L)))
	b = appendPoints(b, bp.L)
	b = AppendVarint(b, uint64(len(bp.R)))
	return appendPoints(b, bp.R)
}

func appendClsag(b []byte, sig Clsag) []byte {
	b = appendScalars(b, sig.S)
	b = append(b, sig.C1[:]...)
	return append(b, sig.D[:]...)
}
