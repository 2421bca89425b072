package crypto

import (
	"bytes"
	"errors"

	"filippo.io/edwards25519"
)

var (
	ErrNotOnCurve       = errors.New("bytes do not decode to a curve point")
	ErrNonCanonicalPt   = errors.New("non-canonical point encoding")
	ErrTorsion          = errors.New("point is not in the prime-order subgroup")
	ErrNonCanonicalScal = errors.New("non-canonical scalar encoding")
)

// orderMinusOne is l-1 in little-endian, l = 2^252 + 27742317777372353535851937790883648493.
var orderMinusOne = [32]byte{
	0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// DecodePoint decompresses b and requires that it re-encodes to the same
// bytes. Torsion components are accepted.
func DecodePoint(b [32]byte) (*edwards25519.Point, error) {
	p, err := new(edwards25519.Point).SetBytes(b[:])
	if err != nil {
		return nil, ErrNotOnCurve
	}
	if !bytes.Equal(p.Bytes(), b[:]) {
		return nil, ErrNonCanonicalPt
	}
	return p, nil
}

// DecodePrimeOrderPoint is DecodePoint plus a subgroup membership check.
func DecodePrimeOrderPoint(b [32]byte) (*edwards25519.Point, error) {
	p, err := DecodePoint(b)
	if err != nil {
		return nil, err
	}
	if !IsPrimeOrder(p) {
		return nil, ErrTorsion
	}
	return p, nil
}

// IsPrimeOrder reports whether l*p is the identity, checked as (l-1)*p == -p.
func IsPrimeOrder(p *edwards25519.Point) bool {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(orderMinusOne[:])
	if err != nil {
		panic("crypto: l-1 is not canonical")
	}
	lhs := new(edwards25519.Point).ScalarMult(s, p)
	neg := new(edwards25519.Point).Negate(p)
	return lhs.Equal(neg) == 1
}

func DecodeScalar(b [32]byte) (*edwards25519.Scalar, error) {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		return nil, ErrNonCanonicalScal
	}
	return s, nil
}

func EncodePoint(p *edwards25519.Point) [32]byte {
	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}
