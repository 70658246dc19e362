package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MinusSign is the ASCII '-' the Mini format uses to mark negative values.
const MinusSign = 0x2D

// Sign returns -1 when b is the ASCII minus marker and +1 otherwise.
func Sign(b byte) float64 {
	if b == MinusSign {
		return -1
	}
	return 1
}

// SignByte is the inverse of Sign. Any non-minus byte reads as positive; '+'
// is what the scales send.
func SignByte(v float64) byte {
	if v < 0 {
		return MinusSign
	}
	return '+'
}

// Int32BE reads a big-endian two's-complement int32 at off.
func Int32BE(b []byte, off int) (int32, error) {
	if err := need(b, off, 4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[off : off+4])), nil
}

// Byte reads the byte at off.
func Byte(b []byte, off int) (byte, error) {
	if err := need(b, off, 1); err != nil {
		return 0, err
	}
	return b[off], nil
}

// Scale converts a measured value to its fixed-point wire integer, rounding
// to the nearest step. NaN, infinities and results beyond int64 are rejected.
func Scale(v, factor float64) (int64, error) {
	scaled := v * factor
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return 0, fmt.Errorf("value %v is not finite", v)
	}
	if scaled >= math.MaxInt64 || scaled <= math.MinInt64 {
		return 0, fmt.Errorf("value %v out of range", v)
	}
	if scaled < 0 {
		return int64(scaled - 0.5), nil
	}
	return int64(scaled + 0.5), nil
}

func need(b []byte, off, n int) error {
	if off < 0 || off+n > len(b) {
		return fmt.Errorf("read of %d bytes at offset %d exceeds buffer of %d", n, off, len(b))
	}
	return nil
}
