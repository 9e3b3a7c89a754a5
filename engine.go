package trac

import "context"

// Interpreter holds the full state of one TRAC T-64 run: the form store
// (persists across records) plus the per-record scanner state (active
// buffer, neutral buffer, call-frame stack) that is reset on every record
// boundary (spec.md §3 Ownership and lifecycle).
type Interpreter struct {
	core

	active  activeBuffer
	neutral []rune
	frames  []frame

	forms     map[string]*form
	formOrder []string

	meta  rune
	trace bool

	initialProgram string
	interactive    bool
}

// run seeds the active buffer with the initial program and drives the
// ten-step scan loop (spec.md §4.1) until halted.
func (it *Interpreter) run(ctx context.Context) error {
	it.active.reset()
	it.active.prepend(it.initialProgram)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !it.step() {
			return nil
		}
	}
}

// step performs exactly one of the ten cases from spec.md §4.1. It returns
// false only to signal clean termination (active buffer exhausted in
// non-interactive mode); every other outcome returns true to keep looping.
func (it *Interpreter) step() bool {
	r, ok := it.active.peekAt(0)
	if !ok {
		if it.interactive {
			// A fresh record: active buffer, neutral buffer, and frame
			// stack are all cleared (spec.md §3 Ownership and lifecycle),
			// not just the active buffer step 1 mentions explicitly.
			it.neutral = it.neutral[:0]
			it.frames = nil
			it.active.prepend(it.initialProgram)
			return true
		}
		return false
	}

	switch {
	case r == '\t' || r == '\n' || r == '\r' || r == it.meta:
		it.active.advance(1)
		return true

	case r == '(':
		it.active.advance(1)
		if !it.copyProtected() {
			it.abandon()
		}
		return true

	case r == ',' && len(it.frames) > 0:
		it.active.advance(1)
		top := &it.frames[len(it.frames)-1]
		top.bounds = append(top.bounds, len(it.neutral))
		return true

	case r == '#':
		if r1, ok1 := it.active.peekAt(1); ok1 && r1 == '#' {
			if r2, ok2 := it.active.peekAt(2); ok2 && r2 == '(' {
				it.active.advance(3)
				it.frames = append(it.frames, frame{mode: modeNeutral, begin: len(it.neutral)})
				return true
			}
		}
		if r1, ok1 := it.active.peekAt(1); ok1 && r1 == '(' {
			it.active.advance(2)
			it.frames = append(it.frames, frame{mode: modeActive, begin: len(it.neutral)})
			return true
		}
		it.active.advance(1)
		it.neutral = append(it.neutral, '#')
		return true

	case r == ')':
		it.active.advance(1)
		if len(it.frames) == 0 {
			it.abandon()
			return true
		}
		it.closeTop()
		return true

	default:
		it.active.advance(1)
		it.neutral = append(it.neutral, r)
		return true
	}
}

// copyProtected implements spec.md §4.1 step 3, after the opening `(` has
// already been consumed by the caller. It returns false if the active
// buffer runs out before the matching `)` is found.
func (it *Interpreter) copyProtected() bool {
	depth := 1
	for {
		r, ok := it.active.next()
		if !ok {
			return false
		}
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return true
			}
		}
		it.neutral = append(it.neutral, r)
	}
}

// abandon implements record abandonment (spec.md §7 kind 2): active and
// neutral buffers and the frame stack are cleared; the form store survives.
func (it *Interpreter) abandon() {
	it.active.reset()
	it.neutral = it.neutral[:0]
	it.frames = nil
}

// closeTop implements spec.md §4.2 (argument extraction) and §4.3-4.4
// (dispatch and delivery) for the innermost open frame.
func (it *Interpreter) closeTop() {
	top := it.frames[len(it.frames)-1]
	it.frames = it.frames[:len(it.frames)-1]

	bounds := top.slices(len(it.neutral))
	args := make([]string, len(bounds)-1)
	for i := range args {
		args[i] = string(it.neutral[bounds[i]:bounds[i+1]])
	}
	it.neutral = it.neutral[:top.begin]

	name, rest := args[0], args[1:]

	if it.trace {
		it.logf("call", "%v %v", name, rest)
	}

	value, forceActive := it.invoke(name, rest)

	if forceActive || top.mode == modeActive {
		it.active.prepend(value)
	} else {
		it.neutral = append(it.neutral, []rune(value)...)
	}
}
