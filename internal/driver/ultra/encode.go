package ultra

import (
	"encoding/binary"
	"fmt"
	"math"

	"gitlab.com/d21d3q/gobookoo/internal/driver/wire"
	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

// Encode builds an Ultra frame carrying the weight and device settings of m.
// Fields the format does not carry are ignored.
func Encode(m *record.Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("ultra: nil message")
	}
	raw := make([]byte, frame.Size)
	raw[0] = Marker1
	raw[1] = Marker2

	if m.Weight != nil {
		w, err := wire.Scale(*m.Weight, weightScale)
		if err != nil {
			return nil, fmt.Errorf("ultra: weight: %w", err)
		}
		if w < math.MinInt32 || w > math.MaxInt32 {
			return nil, fmt.Errorf("ultra: weight %v out of range", *m.Weight)
		}
		binary.BigEndian.PutUint32(raw[offWeight:], uint32(int32(w)))
	}
	for _, f := range []struct {
		off  int
		v    *int
		name string
	}{
		{offBattery, m.Battery, "battery"},
		{offBuzzer, m.BuzzerGear, "buzzer gear"},
		{offStandby, m.StandbyTime, "standby time"},
	} {
		if f.v == nil {
			continue
		}
		if *f.v < 0 || *f.v > math.MaxUint8 {
			return nil, fmt.Errorf("ultra: %s %d does not fit in a byte", f.name, *f.v)
		}
		raw[f.off] = byte(*f.v)
	}
	return raw, nil
}
