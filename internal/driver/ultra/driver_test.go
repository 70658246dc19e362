package ultra

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

func TestDriverDecodeNegativeWeight(t *testing.T) {
	msg, err := (Driver{}).Decode(mustHex(t, "55AA00000000FFFFD8F000000000500210000000"))
	require.NoError(t, err)
	require.InDelta(t, -100.0, *msg.Weight, 1e-9)
	require.Equal(t, 80, *msg.Battery)
	require.Equal(t, 2, *msg.BuzzerGear)
	require.Equal(t, 16, *msg.StandbyTime)
	require.Equal(t, record.UnitUnspecified, *msg.Unit)
	require.Nil(t, msg.Timer)
	require.Nil(t, msg.FlowRate)
	require.Nil(t, msg.FlowRateSmoothing)
}

func TestDriverDecodeOddCentigrams(t *testing.T) {
	msg, err := (Driver{}).Decode(mustHex(t, "55AA00000000FFFFD8F100000000000000000000"))
	require.NoError(t, err)
	require.InDelta(t, -99.99, *msg.Weight, 1e-9)
}

func TestDriverDecodeTruncated(t *testing.T) {
	_, err := (Driver{}).Decode([]byte{Marker1, Marker2, 0, 0, 0, 0, 0, 0})
	require.ErrorContains(t, err, "ultra: weight")

	_, err = (Driver{}).Decode(make([]byte, 15))
	require.ErrorContains(t, err, "ultra: buzzer gear")
}

func TestMatch(t *testing.T) {
	raw := make([]byte, frame.Size)
	raw[0], raw[1] = Marker1, Marker2
	require.True(t, (Driver{}).Match(raw))
	require.False(t, (Driver{}).Match(raw[:19]))
	raw[1] = 0xAB
	require.False(t, (Driver{}).Match(raw))
}

func TestEncodeDecode(t *testing.T) {
	raw, err := Encode(&record.Message{
		Weight:      record.Float(-100),
		Battery:     record.Int(80),
		BuzzerGear:  record.Int(2),
		StandbyTime: record.Int(16),
		Timer:       record.Float(5),
	})
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "55AA00000000FFFFD8F000000000500210000000"), raw)

	msg, err := (Driver{}).Decode(raw)
	require.NoError(t, err)
	require.InDelta(t, -100.0, *msg.Weight, 1e-9)
	require.Nil(t, msg.Timer)
}

func TestEncodeOutOfRange(t *testing.T) {
	_, err := Encode(&record.Message{Battery: record.Int(-1)})
	require.ErrorContains(t, err, "battery")
	_, err = Encode(&record.Message{Weight: record.Float(3e7)})
	require.ErrorContains(t, err, "weight")
}

func TestEncodeRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		raw, err := Encode(&record.Message{Weight: record.Float(v)})
		require.ErrorContains(t, err, "not finite", "weight %v", v)
		require.Nil(t, raw)
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
