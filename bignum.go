package trac

import "github.com/shopspring/decimal"

// parseBig parses an optionally-signed decimal integer, falling back to zero
// for anything malformed (spec.md §4.5: "malformed integers yield zero").
func parseBig(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Truncate(0)
}

func bigAdd(a, b string) string {
	return parseBig(a).Add(parseBig(b)).String()
}

func bigSub(a, b string) string {
	return parseBig(a).Sub(parseBig(b)).String()
}

func bigMul(a, b string) string {
	return parseBig(a).Mul(parseBig(b)).String()
}

// bigDiv truncates toward zero and returns "0" for division by zero, per
// spec.md §4.5's dv contract. QuoRem(bb, 0) gives the exact integer quotient
// directly, unlike Div().Truncate(0), which rounds at DivisionPrecision
// first and can round the integer part up for operands whose true quotient's
// fractional part lands just past that precision.
func bigDiv(a, b string) string {
	bb := parseBig(b)
	if bb.IsZero() {
		return "0"
	}
	aa := parseBig(a)
	q, _ := aa.QuoRem(bb, 0)
	return q.String()
}

func bigGreater(a, b string) bool {
	return parseBig(a).GreaterThan(parseBig(b))
}
