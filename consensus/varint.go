package consensus

// DecodeVarint decodes a little-endian base-128 varint whose value must fit
// in bits (8..64). It returns the value and the number of bytes consumed.
// Overflow and non-minimal encodings (a trailing zero group) are
// TX_ERR_MALFORMED_VARINT; running out of input is TX_ERR_TRUNCATED.
func DecodeVarint(b []byte, bits uint) (uint64, int, error) {
	if bits == 0 || bits > 64 {
		return 0, 0, txerr(TX_ERR_MALFORMED_VARINT, "invalid target width")
	}
	var v uint64
	for i := 0; ; i++ {
		if i >= len(b) {
			return 0, 0, txerr(TX_ERR_TRUNCATED, "unexpected EOF (varint)")
		}
		c := b[i]
		shift := uint(7 * i)
		if shift >= bits {
			return 0, 0, txerr(TX_ERR_MALFORMED_VARINT, "varint overflows target width")
		}
		group := uint64(c & 0x7f)
		if shift+7 > bits && group>>(bits-shift) != 0 {
			return 0, 0, txerr(TX_ERR_MALFORMED_VARINT, "varint overflows target width")
		}
		v |= group << shift
		if c&0x80 == 0 {
			if c == 0 && i > 0 {
				return 0, 0, txerr(TX_ERR_MALFORMED_VARINT, "non-canonical varint")
			}
			return v, i + 1, nil
		}
	}
}

// AppendVarint is the inverse of DecodeVarint.
func AppendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

func VarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
