package consensus

import (
	"encoding/hex"

	"github.com/kayabaNerve/zephyr-verify-bulletproofs/crypto"
)

// Point is a 32-byte compressed Ed25519 encoding as it appears on the wire.
type Point [POINT_BYTES]byte

// Scalar is a 32-byte little-endian scalar as it appears on the wire.
type Scalar [SCALAR_BYTES]byte

func (p Point) String() string { return hex.EncodeToString(p[:]) }

func (s Scalar) String() string { return hex.EncodeToString(s[:]) }

// cursor is a forward-only reader over b. A failed read never moves pos.
type cursor struct {
	b   []byte
	pos int
}

func newCursor(b []byte) *cursor {
	return &cursor{b: b, pos: 0}
}

func (c *cursor) remaining() int {
	if c.pos >= len(c.b) {
		return 0
	}
	return len(c.b) - c.pos
}

func (c *cursor) exhausted() bool {
	return c.remaining() == 0
}

func (c *cursor) readExact(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, txerr(TX_ERR_TRUNCATED, "unexpected EOF")
	}
	start := c.pos
	c.pos += n
	return c.b[start:c.pos], nil
}

func (c *cursor) readU8() (byte, error) {
	b, err := c.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readVarint(bits uint) (uint64, error) {
	v, used, err := DecodeVarint(c.b[c.pos:], bits)
	if err != nil {
		return 0, err
	}
	c.pos += used
	return v, nil
}

func (c *cursor) readVarintU64() (uint64, error) {
	return c.readVarint(64)
}

func (c *cursor) readPoint() (Point, error) {
	var p Point
	b, err := c.readExact(POINT_BYTES)
	if err != nil {
		return p, err
	}
	copy(p[:], b)
	if _, err := crypto.DecodePoint(p); err != nil {
		c.pos -= POINT_BYTES
		return Point{}, txerr(TX_ERR_INVALID_POINT, err.Error())
	}
	return p, nil
}

// readPrimeOrderPoint additionally rejects points with a torsion component.
func (c *cursor) readPrimeOrderPoint() (Point, error) {
	var p Point
	b, err := c.readExact(POINT_BYTES)
	if err != nil {
		return p, err
	}
	copy(p[:], b)
	if _, err := crypto.DecodePrimeOrderPoint(p); err != nil {
		c.pos -= POINT_BYTES
		return Point{}, txerr(TX_ERR_INVALID_POINT, err.Error())
	}
	return p, nil
}

func (c *cursor) readScalar() (Scalar, error) {
	var s Scalar
	b, err := c.readExact(SCALAR_BYTES)
	if err != nil {
		return s, err
	}
	copy(s[:], b)
	if _, err := crypto.DecodeScalar(s); err != nil {
		c.pos -= SCALAR_BYTES
		return Scalar{}, txerr(TX_ERR_INVALID_SCALAR, err.Error())
	}
	return s, nil
}

// readFixed reads exactly n elements. minWidth is the smallest encoding of
// one element and lets obviously short input fail before allocating.
func readFixed[T any](c *cursor, n int, minWidth int, read func(*cursor) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, txerr(TX_ERR_STRUCTURAL_MISMATCH, "negative element count")
	}
	if minWidth > 0 && n > c.remaining()/minWidth {
		return nil, txerr(TX_ERR_TRUNCATED, "unexpected EOF (sequence)")
	}
	start := c.pos
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := read(c)
		if err != nil {
			c.pos = start
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// readVec reads a varint element count followed by that many elements.
func readVec[T any](c *cursor, maxLen uint64, minWidth int, read func(*cursor) (T, error)) ([]T, error) {
	start := c.pos
	n, err := c.readVarintU64()
	if err != nil {
		return nil, err
	}
	if n > maxLen {
		c.pos = start
		return nil, txerr(TX_ERR_STRUCTURAL_MISMATCH, "vector length exceeds cap")
	}
	out, err := readFixed(c, int(n), minWidth, read)
	if err != nil {
		c.pos = start
		return nil, err
	}
	return out, nil
}

// readByteVec reads a varint length followed by that many raw bytes.
func (c *cursor) readByteVec(maxLen uint64) ([]byte, error) {
	start := c.pos
	n, err := c.readVarintU64()
	if err != nil {
		return nil, err
	}
	if n > maxLen {
		c.pos = start
		return nil, txerr(TX_ERR_STRUCTURAL_MISMATCH, "byte vector length exceeds cap")
	}
	b, err := c.readExact(int(n))
	if err != nil {
		c.pos = start
		return nil, err
	}
	return append([]byte(nil), b...), nil
}
