package trac

import "sort"

// part is one element of a form's body: either a literal run of characters or
// a numbered segment marker produced by ss. Two adjacent literal parts are
// never allowed to persist after a mutation; segment and normalize maintain
// that invariant.
type part struct {
	marker int    // 0 for a literal part; >=1 for a marker
	text   []rune // valid only when marker == 0
}

// form is a named, mutable body plus a character pointer into its
// marker-free coordinate space (0..literalLen()).
type form struct {
	parts   []part
	pointer int
}

func newForm(body string) *form {
	f := &form{}
	if body != "" {
		f.parts = []part{{text: []rune(body)}}
	}
	return f
}

func (f *form) literalLen() int {
	n := 0
	for _, p := range f.parts {
		if p.marker == 0 {
			n += len(p.text)
		}
	}
	return n
}

func (f *form) literalText() []rune {
	var out []rune
	for _, p := range f.parts {
		if p.marker == 0 {
			out = append(out, p.text...)
		}
	}
	return out
}

// markerPositions returns the marker-free coordinate of every marker still
// present in the body, in body order.
func (f *form) markerPositions() []int {
	var out []int
	pos := 0
	for _, p := range f.parts {
		if p.marker == 0 {
			pos += len(p.text)
		} else {
			out = append(out, pos)
		}
	}
	return out
}

// maxMarker returns the highest marker number present, or 0 if none.
func (f *form) maxMarker() int {
	max := 0
	for _, p := range f.parts {
		if p.marker > max {
			max = p.marker
		}
	}
	return max
}

// hasMarker reports whether marker number n is present anywhere in the body.
func (f *form) hasMarker(n int) bool {
	for _, p := range f.parts {
		if p.marker == n {
			return true
		}
	}
	return false
}

// render substitutes each marker i with args[i-1] (or "" if missing) and
// concatenates the result with the literal text, in body order. cl and
// call-form dispatch (§4.3-4.4) both use this directly.
func (f *form) render(args []string) string {
	var out []rune
	for _, p := range f.parts {
		if p.marker == 0 {
			out = append(out, p.text...)
			continue
		}
		if i := p.marker - 1; i >= 0 && i < len(args) {
			out = append(out, []rune(args[i])...)
		}
	}
	return string(out)
}

// segment implements ss's one pass for a single non-empty pattern: every
// occurrence of pattern found inside a single still-literal run is replaced
// by a marker numbered n. A match is never allowed to span a run boundary,
// i.e. to reach across an existing marker — this reproduces the open
// question in spec.md §9 literally: runs are scanned independently and never
// rejoined for matching purposes.
func (f *form) segment(pattern string, n int) {
	pat := []rune(pattern)
	if len(pat) == 0 {
		return
	}

	var out []part
	for _, p := range f.parts {
		if p.marker != 0 {
			out = append(out, p)
			continue
		}

		text := p.text
		i := 0
		for i+len(pat) <= len(text) {
			if runesEqual(text[i:i+len(pat)], pat) {
				if i > 0 {
					out = append(out, part{text: append([]rune(nil), text[:i]...)})
				}
				out = append(out, part{marker: n})
				text = text[i+len(pat):]
				i = 0
				continue
			}
			i++
		}
		if len(text) > 0 {
			out = append(out, part{text: text})
		}
	}
	f.parts = out
	f.normalize()

	if l := f.literalLen(); f.pointer > l {
		f.pointer = l
	}
}

// normalize merges adjacent literal parts and drops empty ones, maintaining
// the data-model invariant from spec.md §3.
func (f *form) normalize() {
	var out []part
	for _, p := range f.parts {
		if p.marker == 0 && len(p.text) == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].marker == 0 && p.marker == 0 {
			out[n-1].text = append(out[n-1].text, p.text...)
			continue
		}
		out = append(out, p)
	}
	f.parts = out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sortedUnique returns the distinct values of xs in ascending order, leaving
// xs itself unmodified.
func sortedUnique(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	out := cp[:1]
	for _, x := range cp[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
