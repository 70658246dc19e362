package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

type stubDriver struct {
	name   string
	marker byte
}

func (s stubDriver) Name() string         { return s.name }
func (s stubDriver) Format() frame.Format { return frame.FormatUnknown }
func (s stubDriver) Match(raw []byte) bool {
	return len(raw) > 0 && raw[0] == s.marker
}
func (s stubDriver) Decode([]byte) (*record.Message, error) { return &record.Message{}, nil }

func TestLookupFirstMatchWins(t *testing.T) {
	entries := []Entry{
		{Priority: 1, Driver: stubDriver{name: "first", marker: 0xAA}},
		{Priority: 2, Driver: stubDriver{name: "second", marker: 0xAA}},
	}
	e, err := Lookup(entries, []byte{0xAA, 0x00})
	require.NoError(t, err)
	require.Equal(t, "first", e.Driver.Name())
}

func TestLookupNoMatch(t *testing.T) {
	entries := []Entry{{Driver: stubDriver{name: "only", marker: 0xAA}}}
	_, err := Lookup(entries, []byte{0x01, 0x02})
	require.ErrorContains(t, err, "0x01 0x02")

	_, err = Lookup(entries, nil)
	require.ErrorContains(t, err, "0-byte")
}

func TestRegisterKeepsPriorityOrder(t *testing.T) {
	regMu.Lock()
	saved := registry
	registry = nil
	regMu.Unlock()
	t.Cleanup(func() {
		regMu.Lock()
		registry = saved
		regMu.Unlock()
	})

	Register(Entry{Priority: PriorityMini, Driver: stubDriver{name: "mini"}})
	Register(Entry{Priority: PriorityUltra, Driver: stubDriver{name: "ultra"}})
	Register(Entry{Priority: PriorityMini, Driver: stubDriver{name: "mini-b"}})

	got := Registered()
	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Driver.Name())
	}
	require.Equal(t, []string{"ultra", "mini", "mini-b"}, names)
}
