package crypto

import (
	"errors"

	"filippo.io/edwards25519"
	"github.com/holiman/uint256"
)

// ErrMagnitudeOverflow is returned when units*10^decimals does not fit in 256 bits.
var ErrMagnitudeOverflow = errors.New("magnitude overflows 256 bits")

// generatorH is the amount generator of Pedersen commitments C = xG + aH.
// It is derived once at init and never mutated.
var generatorH = deriveGeneratorH()

func deriveGeneratorH() *edwards25519.Point {
	digest := Keccak256(edwards25519.NewGeneratorPoint().Bytes())
	p, err := new(edwards25519.Point).SetBytes(digest[:])
	if err != nil {
		panic("crypto: keccak(G) does not decode to a point")
	}
	return p.MultByCofactor(p)
}

// GeneratorH returns a copy of H = 8 * decompress(keccak256(G)).
func GeneratorH() *edwards25519.Point {
	return new(edwards25519.Point).Set(generatorH)
}

// AddMultipleOfH returns the encoding of C + k*H.
func AddMultipleOfH(commitment [32]byte, k *edwards25519.Scalar) ([32]byte, error) {
	c, err := DecodePoint(commitment)
	if err != nil {
		return [32]byte{}, err
	}
	kH := new(edwards25519.Point).ScalarMult(k, generatorH)
	return EncodePoint(new(edwards25519.Point).Add(c, kH)), nil
}

// MagnitudeScalar returns units * 10^decimals reduced modulo l. The product
// is computed in 256-bit arithmetic and must not overflow.
func MagnitudeScalar(units uint64, decimals uint8) (*edwards25519.Scalar, error) {
	v := uint256.NewInt(units)
	ten := uint256.NewInt(10)
	for i := uint8(0); i < decimals; i++ {
		var overflow bool
		v, overflow = new(uint256.Int).MulOverflow(v, ten)
		if overflow {
			return nil, ErrMagnitudeOverflow
		}
	}
	be := v.Bytes32()
	var wide [64]byte
	for i := 0; i < 32; i++ {
		wide[i] = be[31-i]
	}
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		return nil, err
	}
	return s, nil
}
