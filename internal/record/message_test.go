package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldsOnlyPresent(t *testing.T) {
	m := &Message{
		Weight:  Float(-100),
		Battery: Int(80),
		Unit:    Int(UnitUnspecified),
	}
	fields := m.Fields()
	require.Len(t, fields, 3)
	require.Equal(t, -100.0, fields["weight"])
	require.Equal(t, 80.0, fields["battery"])
	require.Equal(t, 0.0, fields["unit"])
	require.NotContains(t, fields, "timer")
	require.NotContains(t, fields, "flow_rate")
}

func TestFieldsNilMessage(t *testing.T) {
	var m *Message
	require.Nil(t, m.Fields())
}
