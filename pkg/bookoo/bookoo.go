// Package bookoo decodes the 20-byte weight notifications sent by Bookoo
// scales. Two layouts are understood: the checksummed Mini frame and the
// newer Ultra frame.
package bookoo

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gitlab.com/d21d3q/gobookoo/internal/driver"
	_ "gitlab.com/d21d3q/gobookoo/internal/driver/mini"  // register driver
	_ "gitlab.com/d21d3q/gobookoo/internal/driver/ultra" // register driver
	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

// FrameSize is the only frame length accepted by Decode.
const FrameSize = frame.Size

// Message is a decoded measurement; nil fields are not carried by the format.
type Message = record.Message

// Format identifies the wire layout of a frame.
type Format = frame.Format

const (
	FormatUnknown = frame.FormatUnknown
	FormatMini    = frame.FormatMini
	FormatUltra   = frame.FormatUltra
)

// FrameError is returned for every hard failure. It carries a copy of the
// offending frame and unwraps to one of the sentinel errors below.
type FrameError = frame.FrameError

var (
	ErrFrameTooShort    = frame.ErrFrameTooShort
	ErrFrameTooLong     = frame.ErrFrameTooLong
	ErrChecksumMismatch = frame.ErrChecksumMismatch
)

// Result captures the outcome of a decode call.
type Result struct {
	Format    Format
	RawHex    string
	ByteCount int
	Message   *Message
	// Leftover holds the bytes not consumed by a matched format. For an
	// undecoded frame it is the input itself.
	Leftover []byte
	// SoftError is the reason a matched soft-failing format was passed
	// through. It is never returned as an error.
	SoftError error
}

// Decoded reports whether the result carries a message.
func (r Result) Decoded() bool { return r.Message != nil }

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"format":     r.Format.String(),
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
	}
	if fields := r.Message.Fields(); len(fields) > 0 {
		summary["fields"] = fields
	}
	if r.Message == nil {
		summary["passthrough"] = true
	}
	if r.SoftError != nil {
		summary["error"] = r.SoftError.Error()
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("format: %s bytes:%d raw:%s (marshal error: %v)", r.Format, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// Decode decodes one already-delimited notification frame. It returns the
// message and the unconsumed bytes. Unrecognised frames, and Ultra frames
// that fail to decode, come back as (nil, raw, nil). Length violations and
// Mini checksum failures are returned as *FrameError.
func Decode(raw []byte) (*Message, []byte, error) {
	return DecodeWithOptions(raw, DecodeOptions{})
}

// DecodeWithOptions is Decode with an explicit diagnostic sink.
func DecodeWithOptions(raw []byte, opts DecodeOptions) (*Message, []byte, error) {
	res, err := decodeFrame(raw, driver.Registered(), opts)
	if err != nil {
		return nil, nil, err
	}
	return res.Message, res.Leftover, nil
}

// DecodeResult decodes raw and returns the full Result.
func DecodeResult(raw []byte, opts DecodeOptions) (Result, error) {
	return decodeFrame(raw, driver.Registered(), opts)
}

// DecodeHex parses a hex-encoded frame and decodes it. Whitespace, '|' and
// '_' separators and a 0x prefix are ignored.
func DecodeHex(raw string, opts DecodeOptions) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return decodeFrame(data, driver.Registered(), opts)
}

func decodeFrame(raw []byte, entries []driver.Entry, opts DecodeOptions) (Result, error) {
	if err := frame.CheckLength(raw); err != nil {
		return Result{}, err
	}
	log := opts.logger()
	result := Result{
		Format:    FormatUnknown,
		RawHex:    strings.ToUpper(hex.EncodeToString(raw)),
		ByteCount: len(raw),
		Leftover:  raw,
	}

	entry, err := driver.Lookup(entries, raw)
	if err != nil {
		log.WithField("frame", result.RawHex).Debugf("unknown message format: %v", err)
		return result, nil
	}
	result.Format = entry.Driver.Format()

	msg, err := entry.Driver.Decode(raw)
	if err != nil {
		if entry.Failure == driver.FailSoft {
			log.WithError(err).WithField("frame", result.RawHex).
				Warnf("failed to decode %s message", entry.Driver.Name())
			result.SoftError = err
			return result, nil
		}
		return Result{}, err
	}
	result.Message = msg
	result.Leftover = []byte{}
	return result, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex frame must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
