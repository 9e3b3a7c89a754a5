package trac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigArith(t *testing.T) {
	assert.Equal(t, "3", bigAdd("1", "2"))
	assert.Equal(t, "-1", bigSub("1", "2"))
	assert.Equal(t, "6", bigMul("2", "3"))
	assert.Equal(t, "2", bigDiv("7", "3"))
	assert.Equal(t, "0", bigDiv("7", "0"))
	assert.True(t, bigGreater("10", "9"))
	assert.False(t, bigGreater("9", "10"))
}

func TestBigArithMalformedIsZero(t *testing.T) {
	assert.Equal(t, "5", bigAdd("nope", "5"))
}

func TestBigDivTruncatesTowardZeroOnPrecisionBoundary(t *testing.T) {
	// 199999999999999999/100000000000000000 has a true quotient of
	// 1.99999999999999999, which Div()+Truncate(0) can round up to 2 at
	// decimal's default 16-digit DivisionPrecision; QuoRem must still give
	// the exact integer quotient, 1.
	assert.Equal(t, "1", bigDiv("199999999999999999", "100000000000000000"))
	assert.Equal(t, "-2", bigDiv("-7", "3"))
}

func TestBooleanSuffix(t *testing.T) {
	assert.Equal(t, "0110", booleanSuffix("abc0110"))
	assert.Equal(t, "", booleanSuffix("abc"))
	assert.Equal(t, "10", booleanSuffix("10"))
}

func TestBoolOrPadsShorterOperand(t *testing.T) {
	assert.Equal(t, "0111", boolOr("0100", "11"))
}

func TestBoolAndTruncatesLongerOperand(t *testing.T) {
	assert.Equal(t, "00", boolAnd("1100", "10"))
}

func TestBoolNotComplementsEachBit(t *testing.T) {
	assert.Equal(t, "1001", boolNot("0110"))
}

func TestBoolShiftOverflowIsAllZeros(t *testing.T) {
	assert.Equal(t, "0000", boolShift(4, "0110"))
	assert.Equal(t, "0000", boolShift(-4, "0110"))
}

func TestBoolRotateWrapsModuloLength(t *testing.T) {
	assert.Equal(t, boolRotate(1, "0110"), boolRotate(5, "0110"))
}

func TestRadixConvertBaseFormula(t *testing.T) {
	assert.Equal(t, "401", radixConvert("9", "F", "1025"))
	assert.Equal(t, "1025", radixConvert("F", "9", "401"))
}

func TestRadixConvertInvalidBaseIsEmpty(t *testing.T) {
	assert.Equal(t, "", radixConvert("0", "9", "5"))
}

func TestDigitValue(t *testing.T) {
	assert.Equal(t, 0, digitValue('0'))
	assert.Equal(t, 9, digitValue('9'))
	assert.Equal(t, 15, digitValue('F'))
	assert.Equal(t, 35, digitValue('Z'))
	assert.Equal(t, -1, digitValue('!'))
}
