package trac

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// digitValue returns a digit's value in 0..35 ("0"-"9", "A"-"Z"/"a"-"z"), or
// -1 if ch is not a valid digit character.
func digitValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10
	default:
		return -1
	}
}

// radixBase turns a radix character into a base per spec.md §4.5's formula:
// the character's own digit value, plus one ("0"->base 1, "9"->base 10,
// "F"->base 16, "Z"->base 36). Bases below 2 cannot be parsed by math/big, so
// they are reported as invalid along with anything outside 0-35.
func radixBase(ch rune) (int, bool) {
	v := digitValue(ch)
	if v < 0 {
		return 0, false
	}
	base := v + 1
	if base < 2 || base > 36 {
		return 0, false
	}
	return base, true
}

// radixConvert implements cr's three-argument overload: reinterpret V's
// digits from base R1 into base R2. There is no arbitrary-radix bignum
// library in the retrieval pack (shopspring/decimal, used elsewhere in this
// file's neighbors, is decimal-only); math/big.Int natively supports
// parsing/formatting in bases 2-36, which is exactly this contract, so it is
// used here instead of hand-rolling digit arithmetic.
func radixConvert(r1, r2, v string) string {
	b1, ok := radixBase(firstRune(r1))
	if !ok {
		return ""
	}
	b2, ok := radixBase(firstRune(r2))
	if !ok {
		return ""
	}

	n := new(big.Int)
	if _, ok := n.SetString(strings.TrimSpace(v), b1); !ok {
		return ""
	}
	return strings.ToUpper(n.Text(b2))
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func primSL(it *Interpreter, args []string) (string, bool) {
	return strconv.Itoa(utf8.RuneCountInString(arg(args, 0))), false
}

func primCD(it *Interpreter, args []string) (string, bool) {
	r := firstRune(arg(args, 0))
	if r == utf8.RuneError {
		return "0", false
	}
	return strconv.Itoa(int(r)), false
}

func primDC(it *Interpreter, args []string) (string, bool) {
	n, err := strconv.Atoi(arg(args, 0))
	if err != nil || n < 0 || n > 0x10FFFF {
		return "", false
	}
	return string(rune(n)), false
}
