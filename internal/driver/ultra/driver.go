package ultra

import (
	"fmt"

	"gitlab.com/d21d3q/gobookoo/internal/driver"
	"gitlab.com/d21d3q/gobookoo/internal/driver/wire"
	"gitlab.com/d21d3q/gobookoo/internal/frame"
	"gitlab.com/d21d3q/gobookoo/internal/record"
)

// Header bytes of the Ultra protocol.
const (
	Marker1 = 0x55
	Marker2 = 0xAA
)

const (
	offWeight  = 6
	offBattery = 14
	offBuzzer  = 15
	offStandby = 16

	weightScale = 100.0
)

func init() {
	driver.Register(driver.Entry{
		Priority: driver.PriorityUltra,
		Failure:  driver.FailSoft,
		Driver:   Driver{},
	})
}

// Driver decodes the Ultra frame layout. The format defines no checksum, and
// only weight plus the device settings are extracted.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "ultra" }

// Format reports the wire layout this driver decodes.
func (Driver) Format() frame.Format { return frame.FormatUltra }

// Match requires the exact frame size as well as the header bytes.
func (Driver) Match(raw []byte) bool {
	return len(raw) == frame.Size && raw[0] == Marker1 && raw[1] == Marker2
}

// Decode extracts the Ultra fields. Errors are plain extraction failures;
// the dispatcher downgrades them to a passthrough.
func (Driver) Decode(raw []byte) (*record.Message, error) {
	weight, err := wire.Int32BE(raw, offWeight)
	if err != nil {
		return nil, fmt.Errorf("ultra: weight: %w", err)
	}
	battery, err := wire.Byte(raw, offBattery)
	if err != nil {
		return nil, fmt.Errorf("ultra: battery: %w", err)
	}
	buzzer, err := wire.Byte(raw, offBuzzer)
	if err != nil {
		return nil, fmt.Errorf("ultra: buzzer gear: %w", err)
	}
	standby, err := wire.Byte(raw, offStandby)
	if err != nil {
		return nil, fmt.Errorf("ultra: standby time: %w", err)
	}
	return &record.Message{
		Weight:      record.Float(float64(weight) / weightScale),
		Battery:     record.Int(int(battery)),
		BuzzerGear:  record.Int(int(buzzer)),
		StandbyTime: record.Int(int(standby)),
		Unit:        record.Int(record.UnitUnspecified),
	}, nil
}
