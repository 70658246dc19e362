package mini

import (
	"encoding/binary"
	"fmt"
	"math"

	"gitlab.com/d21d3q/gobookoo/internal/driver/wire"
	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

// Encode builds a Mini frame carrying m, including the trailing checksum.
// Absent fields are written as zero.
func Encode(m *record.Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("mini: nil message")
	}
	raw := make([]byte, frame.Size)
	raw[0] = Marker1
	raw[1] = Marker2

	timer, err := magnitude(m.Timer, timerScale, math.MaxUint16, "timer")
	if err != nil {
		return nil, err
	}
	if m.Timer != nil && *m.Timer < 0 {
		return nil, fmt.Errorf("mini: timer must not be negative")
	}
	binary.BigEndian.PutUint16(raw[offTimer:], uint16(timer))

	weight, err := magnitude(m.Weight, weightScale, math.MaxUint16, "weight")
	if err != nil {
		return nil, err
	}
	raw[offWeightSign] = wire.SignByte(value(m.Weight))
	binary.BigEndian.PutUint16(raw[offWeight:], uint16(weight))

	flow, err := magnitude(m.FlowRate, flowScale, math.MaxUint8, "flow rate")
	if err != nil {
		return nil, err
	}
	raw[offFlowSign] = wire.SignByte(value(m.FlowRate))
	raw[offFlow] = byte(flow)

	for _, f := range []struct {
		off  int
		v    *int
		name string
	}{
		{offUnit, m.Unit, "unit"},
		{offBattery, m.Battery, "battery"},
		{offStandby, m.StandbyTime, "standby time"},
		{offBuzzer, m.BuzzerGear, "buzzer gear"},
		{offSmoothing, m.FlowRateSmoothing, "flow rate smoothing"},
	} {
		if f.v == nil {
			continue
		}
		if *f.v < 0 || *f.v > math.MaxUint8 {
			return nil, fmt.Errorf("mini: %s %d does not fit in a byte", f.name, *f.v)
		}
		raw[f.off] = byte(*f.v)
	}

	raw[frame.Size-1] = frame.Checksum(raw[:frame.Size-1])
	return raw, nil
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func magnitude(v *float64, factor float64, limit int64, name string) (int64, error) {
	n, err := wire.Scale(math.Abs(value(v)), factor)
	if err != nil {
		return 0, fmt.Errorf("mini: %s: %w", name, err)
	}
	if n < 0 || n > limit {
		return 0, fmt.Errorf("mini: %s %v out of range", name, value(v))
	}
	return n, nil
}
