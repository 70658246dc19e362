package bookoo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/gobookoo/internal/testutil"
)

func TestGolden(t *testing.T) {
	fixtures := []struct {
		name   string
		format Format
	}{
		{name: "mini/brewing", format: FormatMini},
		{name: "mini/negative_weight", format: FormatMini},
		{name: "mini/long_timer", format: FormatMini},
		{name: "ultra/negative_weight", format: FormatUltra},
		{name: "ultra/positive_weight", format: FormatUltra},
	}
	for _, tc := range fixtures {
		t.Run(tc.name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, tc.name+".hex")
			result, err := DecodeHex(hexStr, DecodeOptions{})
			require.NoError(t, err)
			require.Equal(t, tc.format, result.Format)
			require.True(t, result.Decoded())
			require.Empty(t, result.Leftover)

			var expected map[string]any
			testutil.LoadJSON(t, tc.name+".json", &expected)
			require.Equal(t, "", diffMaps(expected, result.Message.Fields()))
		})
	}
}

func diffMaps(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d", len(expected), len(actual))
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		switch ev := v.(type) {
		case float64:
			avFloat, ok := av.(float64)
			if !ok || math.Abs(ev-avFloat) > 1e-6 {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		default:
			if fmt.Sprintf("%v", v) != fmt.Sprintf("%v", av) {
				return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
			}
		}
	}
	return ""
}
