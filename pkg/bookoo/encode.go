package bookoo

import (
	"gitlab.com/d21d3q/gobookoo/internal/driver/mini"
	"gitlab.com/d21d3q/gobookoo/internal/driver/ultra"
)

// EncodeMini builds a checksummed Mini frame from m. Absent fields are
// written as zero.
func EncodeMini(m *Message) ([]byte, error) {
	return mini.Encode(m)
}

// EncodeUltra builds an Ultra frame from the weight and device settings of m.
func EncodeUltra(m *Message) ([]byte, error) {
	return ultra.Encode(m)
}
