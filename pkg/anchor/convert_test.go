package anchor

import (
	"testing"

	"anchor/pkg/number"

	"github.com/stretchr/testify/assert"
)

func TestToUnitOfAccount(t *testing.T) {
	// 10 units at $2000 → 20000 AUSD
	v := ToUnitOfAccount(number.Decimal("10"), number.Decimal("2000"))
	assert.Equal(t, "20000", v.String())

	// odd price truncates downward
	v = ToUnitOfAccount(number.Decimal("0.00000001"), number.Decimal("0.000000000033"))
	assert.True(t, v.IsZero())
}

func TestFromUnitOfAccount(t *testing.T) {
	q := FromUnitOfAccount(number.Decimal("5000"), number.Decimal("1500"), 8)
	assert.Equal(t, "3.33333333", q.String())
}

// Truncating both ways may lose value but never more than one smallest
// asset unit, and never in the account's favor.
func TestConversionRoundTripBound(t *testing.T) {
	const precision = 8
	unit := number.Decimal("0.00000001")

	quantities := []string{"10", "0.00000001", "1.23456789", "999999.99999999", "0.1", "3.33333333"}
	prices := []string{"2000", "1500", "0.07", "123456.789", "0.000001", "1"}

	for _, qs := range quantities {
		for _, ps := range prices {
			qty := number.Decimal(qs)
			price := number.Decimal(ps)

			back := FromUnitOfAccount(ToUnitOfAccount(qty, price), price, precision)

			diff := qty.Sub(back)
			assert.True(t, diff.GreaterThanOrEqual(decimalZero), "round trip must not create value: %s @ %s", qs, ps)
			assert.True(t, diff.LessThanOrEqual(unit), "round trip loss above one unit: %s @ %s -> %s", qs, ps, back)
		}
	}
}

var decimalZero = number.Decimal("0")

func TestSeize(t *testing.T) {
	total, bonus := Seize(number.Decimal("2.5"), 8)
	assert.Equal(t, "0.25", bonus.String())
	assert.Equal(t, "2.75", total.String())
}
