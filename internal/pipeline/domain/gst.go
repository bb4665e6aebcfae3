package domain

import "github.com/shopspring/decimal"

var (
	gstDivisor = decimal.RequireFromString("1.18")
	gstRate    = decimal.RequireFromString("0.09")
)

// GSTBreakdown is the split of an 18% GST-inclusive amount into its
// taxable base and the two GST halves.
type GSTBreakdown struct {
	Total decimal.Decimal `json:"total_amount"`
	Base  decimal.Decimal `json:"base_amount"`
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
}

// GSTFromInclusive splits total as base = total/1.18 and
// cgst = sgst = base*0.09, each rounded half-up to two places. Any
// rounding remainder is absorbed into SGST so the components always sum
// back to the total exactly.
func GSTFromInclusive(total decimal.Decimal) GSTBreakdown {
	base := total.DivRound(gstDivisor, 2)
	cgst := base.Mul(gstRate).Round(2)
	sgst := cgst

	if diff := total.Sub(base.Add(cgst).Add(sgst)); !diff.IsZero() {
		sgst = sgst.Add(diff)
	}

	return GSTBreakdown{Total: total, Base: base, CGST: cgst, SGST: sgst}
}
