package frame

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Size is the length of every notification frame emitted by the scales.
const Size = 20

// Format identifies the wire layout of a notification frame.
type Format int

const (
	FormatUnknown Format = iota
	FormatMini
	FormatUltra
)

func (f Format) String() string {
	switch f {
	case FormatMini:
		return "mini"
	case FormatUltra:
		return "ultra"
	default:
		return "unknown"
	}
}

var (
	ErrFrameTooShort    = errors.New("frame too short")
	ErrFrameTooLong     = errors.New("frame too long")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// FrameError reports a hard decode failure together with the offending frame.
type FrameError struct {
	Kind   error
	Frame  []byte
	Detail string
}

// NewError copies raw so the error stays valid after the caller reuses its buffer.
func NewError(kind error, raw []byte, format string, args ...any) *FrameError {
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &FrameError{Kind: kind, Frame: buf, Detail: fmt.Sprintf(format, args...)}
}

func (e *FrameError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	b.WriteString(" (frame ")
	b.WriteString(strings.ToUpper(hex.EncodeToString(e.Frame)))
	b.WriteString(")")
	return b.String()
}

func (e *FrameError) Unwrap() error { return e.Kind }

// CheckLength enforces the fixed frame size before any classification runs.
func CheckLength(raw []byte) error {
	switch {
	case len(raw) < Size:
		return NewError(ErrFrameTooShort, raw, "got %d bytes, want %d", len(raw), Size)
	case len(raw) > Size:
		return NewError(ErrFrameTooLong, raw, "got %d bytes, want %d", len(raw), Size)
	}
	return nil
}

// Checksum XOR-folds every byte of data.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum ^= b
	}
	return sum
}

// VerifyChecksum checks that the last byte of raw is the XOR of all bytes before it.
func VerifyChecksum(raw []byte) error {
	if len(raw) == 0 {
		return NewError(ErrChecksumMismatch, raw, "empty frame")
	}
	want := raw[len(raw)-1]
	got := Checksum(raw[:len(raw)-1])
	if got != want {
		return NewError(ErrChecksumMismatch, raw, "computed 0x%02X, frame carries 0x%02X", got, want)
	}
	return nil
}
