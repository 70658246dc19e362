package mini

import (
	"encoding/binary"

	"gitlab.com/d21d3q/gobookoo/internal/driver"
	"gitlab.com/d21d3q/gobookoo/internal/driver/wire"
	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

// Weight notification markers of the Mini (legacy) protocol.
const (
	Marker1 = 0x03
	Marker2 = 0x0B
)

const (
	offTimer      = 3
	offUnit       = 5
	offWeightSign = 6
	offWeight     = 8
	offFlowSign   = 10
	offFlow       = 12
	offBattery    = 13
	offStandby    = 14
	offBuzzer     = 16
	offSmoothing  = 17

	timerScale  = 1000.0
	weightScale = 100.0
	flowScale   = 100.0
)

func init() {
	driver.Register(driver.Entry{
		Priority: driver.PriorityMini,
		Failure:  driver.FailHard,
		Driver:   Driver{},
	})
}

// Driver decodes the checksummed Mini frame layout.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "mini" }

// Format reports the wire layout this driver decodes.
func (Driver) Format() frame.Format { return frame.FormatMini }

// Match reports whether raw starts with the Mini weight markers.
func (Driver) Match(raw []byte) bool {
	return len(raw) >= 2 && raw[0] == Marker1 && raw[1] == Marker2
}

// Decode validates the XOR checksum and extracts every Mini field. A checksum
// mismatch is returned as a *frame.FrameError wrapping frame.ErrChecksumMismatch.
func (Driver) Decode(raw []byte) (*record.Message, error) {
	if err := frame.CheckLength(raw); err != nil {
		return nil, err
	}
	if err := frame.VerifyChecksum(raw); err != nil {
		return nil, err
	}

	timer := binary.BigEndian.Uint16(raw[offTimer : offTimer+2])
	weight := binary.BigEndian.Uint16(raw[offWeight : offWeight+2])

	return &record.Message{
		Timer:             record.Float(float64(timer) / timerScale),
		Unit:              record.Int(int(raw[offUnit])),
		Weight:            record.Float(float64(weight) / weightScale * wire.Sign(raw[offWeightSign])),
		FlowRate:          record.Float(float64(raw[offFlow]) / flowScale * wire.Sign(raw[offFlowSign])),
		Battery:           record.Int(int(raw[offBattery])),
		StandbyTime:       record.Int(int(raw[offStandby])),
		BuzzerGear:        record.Int(int(raw[offBuzzer])),
		FlowRateSmoothing: record.Int(int(raw[offSmoothing])),
	}, nil
}
