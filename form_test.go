package trac

import "testing"

import "github.com/stretchr/testify/assert"

func TestFormSegmentReplacesEachOccurrence(t *testing.T) {
	f := newForm("aXbXc")
	f.segment("X", 1)
	assert.Equal(t, []rune("abc"), f.literalText())
	assert.True(t, f.hasMarker(1))
	assert.Equal(t, []int{1, 2}, f.markerPositions())
}

func TestFormSegmentNeverSpansAnExistingMarker(t *testing.T) {
	f := newForm("abXcdXef")
	f.segment("X", 1)
	// second pattern straddling both literal runs around marker 1 must not match
	f.segment("de", 2)
	assert.False(t, f.hasMarker(2))
	assert.Equal(t, "abcdef", string(f.literalText()))
}

func TestFormRenderSubstitutesByPosition(t *testing.T) {
	f := newForm("aXbYc")
	f.segment("X", 1)
	f.segment("Y", 2)
	assert.Equal(t, "a1b2c", f.render([]string{"1", "2"}))
}

func TestFormRenderMissingArgIsEmpty(t *testing.T) {
	f := newForm("aXb")
	f.segment("X", 1)
	assert.Equal(t, "ab", f.render(nil))
}

func TestFormMaxMarker(t *testing.T) {
	f := newForm("aXbYc")
	f.segment("X", 1)
	f.segment("Y", 5)
	assert.Equal(t, 5, f.maxMarker())
}

func TestFormNormalizeMergesAdjacentLiterals(t *testing.T) {
	f := &form{parts: []part{{text: []rune("ab")}, {text: []rune("cd")}, {marker: 0, text: nil}}}
	f.normalize()
	assert.Equal(t, []part{{text: []rune("abcd")}}, f.parts)
}
