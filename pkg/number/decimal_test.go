package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestDivFloor(t *testing.T) {
	data := map[string][3]string{
		"plain":        {"10", "4", "2.5"},
		"truncated":    {"10", "3", "3.33333333"},
		"no round up":  {"19.999999995", "10", "1.99999999"},
		"exact":        {"6000", "2000", "3"},
		"sub one":      {"1", "3", "0.33333333"},
		"tiny":         {"0.00000001", "2", "0"},
		"zero divided": {"0", "7", "0"},
	}

	for name, d := range data {
		t.Run(name, func(t *testing.T) {
			q := DivFloor(Decimal(d[0]), Decimal(d[1]), 8)
			assert.Equal(t, d[2], q.String(), "quotient must truncate toward zero")
		})
	}
}
