package trac

// activeBuffer is the engine's scan target: a stack of rune chunks with a
// cursor into the front chunk. Front-splice delivery (§9 Design Notes,
// "stack-of-slices (preferred)") pushes a new chunk rather than rebuilding a
// single growable string, so repeated active-mode deliveries stay O(1)
// instead of O(n) per call.
type activeBuffer struct {
	chunks [][]rune
	pos    int
}

// trim drops fully-consumed chunks from the front.
func (b *activeBuffer) trim() {
	for len(b.chunks) > 0 && b.pos >= len(b.chunks[0]) {
		b.chunks = b.chunks[1:]
		b.pos = 0
	}
}

func (b *activeBuffer) empty() bool {
	b.trim()
	return len(b.chunks) == 0
}

// peekAt returns the rune at lookahead offset i (0-based from the cursor)
// without consuming it.
func (b *activeBuffer) peekAt(i int) (rune, bool) {
	b.trim()
	ci, pi := 0, b.pos
	for ci < len(b.chunks) {
		chunk := b.chunks[ci]
		if pi+i < len(chunk) {
			return chunk[pi+i], true
		}
		i -= len(chunk) - pi
		pi = 0
		ci++
	}
	return 0, false
}

// next reads and consumes the rune under the cursor.
func (b *activeBuffer) next() (rune, bool) {
	b.trim()
	if len(b.chunks) == 0 {
		return 0, false
	}
	r := b.chunks[0][b.pos]
	b.pos++
	return r, true
}

// advance consumes n runes without returning them (used for deleted
// syntactic characters: meta-chars, `(`, `#(`, `##(`, `,`, `)`).
func (b *activeBuffer) advance(n int) {
	for n > 0 {
		b.trim()
		if len(b.chunks) == 0 {
			return
		}
		avail := len(b.chunks[0]) - b.pos
		if n < avail {
			b.pos += n
			return
		}
		n -= avail
		b.chunks = b.chunks[1:]
		b.pos = 0
	}
}

// prepend pushes s in front of the scan cursor and resets the cursor to its
// first rune, per spec.md §4.4's active-mode delivery rule.
func (b *activeBuffer) prepend(s string) {
	if s == "" {
		return
	}
	chunk := []rune(s)
	if len(b.chunks) > 0 {
		b.chunks[0] = b.chunks[0][b.pos:]
		b.pos = 0
		b.chunks = append([][]rune{chunk}, b.chunks...)
		return
	}
	b.chunks = [][]rune{chunk}
	b.pos = 0
}

// reset discards all pending active text, used on record abandonment.
func (b *activeBuffer) reset() {
	b.chunks = nil
	b.pos = 0
}
