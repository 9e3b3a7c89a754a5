package trac

import "strconv"

// parseSmallInt parses a signed integer used as a buffer/string offset (cn's
// D, bs/br's S). These index into bounded in-memory text, so unlike the
// arithmetic primitives' arbitrary-precision operands (bignum.go) a 64-bit
// range is more than sufficient; malformed input falls back to zero, per
// spec.md §4.5's general numeric-parsing rule.
func parseSmallInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
