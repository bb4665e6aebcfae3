package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSTFromInclusive_ExactSplit(t *testing.T) {
	b := GSTFromInclusive(decimal.NewFromInt(118000))

	assert.True(t, b.Base.Equal(decimal.NewFromInt(100000)), "base %s", b.Base)
	assert.True(t, b.CGST.Equal(decimal.NewFromInt(9000)), "cgst %s", b.CGST)
	assert.True(t, b.SGST.Equal(decimal.NewFromInt(9000)), "sgst %s", b.SGST)
}

func TestGSTFromInclusive_RemainderGoesToSGST(t *testing.T) {
	b := GSTFromInclusive(decimal.NewFromInt(100))

	assert.Equal(t, "84.75", b.Base.StringFixed(2))
	assert.Equal(t, "7.63", b.CGST.StringFixed(2))
	// 84.75 + 7.63 + 7.63 overshoots by a paisa; SGST absorbs it.
	assert.Equal(t, "7.62", b.SGST.StringFixed(2))
	assert.True(t, b.Base.Add(b.CGST).Add(b.SGST).Equal(b.Total))
}

func TestGSTFromInclusive_ComponentsAlwaysSumToTotal(t *testing.T) {
	for _, raw := range []string{"1", "0.01", "59", "118", "1180.50", "99999.99", "118000", "123456.78"} {
		total := decimal.RequireFromString(raw)
		b := GSTFromInclusive(total)

		require.True(t, b.Base.Add(b.CGST).Add(b.SGST).Equal(total),
			"total %s: base %s cgst %s sgst %s", total, b.Base, b.CGST, b.SGST)
		assert.True(t, b.Base.Equal(b.Base.Round(2)), "base %s has more than two places", b.Base)
		assert.True(t, b.SGST.Equal(b.SGST.Round(2)), "sgst %s has more than two places", b.SGST)
	}
}
