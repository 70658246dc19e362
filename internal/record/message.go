package record

// UnitUnspecified is reported by formats that do not carry a unit code.
const UnitUnspecified = 0

// Message is a decoded measurement. Nil fields are not carried by the
// frame's format.
type Message struct {
	Timer             *float64 // seconds
	Weight            *float64 // grams
	FlowRate          *float64 // grams per second
	Battery           *int     // percent
	Unit              *int
	StandbyTime       *int
	BuzzerGear        *int
	FlowRateSmoothing *int
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Fields renders the present fields keyed by their wire names.
func (m *Message) Fields() map[string]any {
	if m == nil {
		return nil
	}
	fields := make(map[string]any, 8)
	putFloat(fields, "timer", m.Timer)
	putFloat(fields, "weight", m.Weight)
	putFloat(fields, "flow_rate", m.FlowRate)
	putInt(fields, "battery", m.Battery)
	putInt(fields, "unit", m.Unit)
	putInt(fields, "standby_time", m.StandbyTime)
	putInt(fields, "buzzer_gear", m.BuzzerGear)
	putInt(fields, "flow_rate_smoothing", m.FlowRateSmoothing)
	return fields
}

func putFloat(fields map[string]any, key string, v *float64) {
	if v != nil {
		fields[key] = *v
	}
}

func putInt(fields map[string]any, key string, v *int) {
	if v != nil {
		fields[key] = float64(*v)
	}
}
