package trac

// formOrEmpty returns the named form, or a throwaway empty one if absent, so
// navigation primitives can share one code path for a missing form and a
// present-but-exhausted one (spec.md §4.5 never distinguishes the two for
// cc/cs/cn/in).
func (it *Interpreter) formOrEmpty(name string) *form {
	if f := it.forms[name]; f != nil {
		return f
	}
	return &form{}
}

func primCC(it *Interpreter, args []string) (string, bool) {
	f := it.formOrEmpty(arg(args, 0))
	z := arg(args, 1)
	l := f.literalLen()
	if f.pointer < l {
		text := f.literalText()
		r := text[f.pointer]
		f.pointer++
		return string(r), false
	}
	return z, true
}

func primCS(it *Interpreter, args []string) (string, bool) {
	f := it.formOrEmpty(arg(args, 0))
	z := arg(args, 1)
	l := f.literalLen()
	if f.pointer >= l {
		return z, true
	}
	next := l
	for _, m := range f.markerPositions() {
		if m > f.pointer && m < next {
			next = m
		}
	}
	text := f.literalText()
	s := string(text[f.pointer:next])
	f.pointer = next
	return s, false
}

func primCN(it *Interpreter, args []string) (string, bool) {
	f := it.formOrEmpty(arg(args, 0))
	d := int(parseSmallInt(arg(args, 1)))
	z := arg(args, 2)

	if d == 0 {
		return "", false
	}

	l := f.literalLen()
	text := f.literalText()

	if d > 0 {
		if f.pointer+d > l {
			return z, true
		}
		s := string(text[f.pointer : f.pointer+d])
		f.pointer += d
		return s, false
	}

	if f.pointer+d < 0 {
		return z, true
	}
	s := string(text[f.pointer+d : f.pointer])
	f.pointer += d
	return s, false
}

func primIN(it *Interpreter, args []string) (string, bool) {
	f := it.formOrEmpty(arg(args, 0))
	pattern := []rune(arg(args, 1))
	z := arg(args, 2)

	if len(pattern) == 0 {
		return "", false
	}

	text := f.literalText()
	markers := f.markerPositions()
	l := len(text)

	for start := f.pointer; start+len(pattern) <= l; start++ {
		if !runesEqual(text[start:start+len(pattern)], pattern) {
			continue
		}
		spanned := false
		for _, m := range markers {
			if m > start && m < start+len(pattern) {
				spanned = true
				break
			}
		}
		if spanned {
			continue
		}
		s := string(text[f.pointer:start])
		f.pointer = start + len(pattern)
		return s, false
	}
	return z, true
}

// primCR is the one-argument overload of cr: reset the form's pointer
// (spec.md §4.5). The three-argument radix-conversion overload lives in
// primitives_radix.go; dispatch.go's table entry switches on arity.
func primCR(it *Interpreter, args []string) (string, bool) {
	switch len(args) {
	case 1:
		if f := it.forms[arg(args, 0)]; f != nil {
			f.pointer = 0
		}
		return "", false
	case 3:
		return radixConvert(arg(args, 0), arg(args, 1), arg(args, 2)), false
	default:
		return "", false
	}
}

func primPF(it *Interpreter, args []string) (string, bool) {
	name := arg(args, 0)
	f := it.forms[name]
	if f == nil {
		return "", false
	}
	it.write(dumpForm(f))
	return "", false
}
