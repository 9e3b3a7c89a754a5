package trac

import "strings"

func primQM(it *Interpreter, args []string) (string, bool) {
	return string(it.meta), false
}

func primCM(it *Interpreter, args []string) (string, bool) {
	a := arg(args, 0)
	if a == "" {
		return "", false
	}
	if r := firstRune(a); r != 0 {
		it.meta = r
	}
	return "", false
}

func primPS(it *Interpreter, args []string) (string, bool) {
	it.write(arg(args, 0))
	return "", false
}

func primRC(it *Interpreter, args []string) (string, bool) {
	return string(it.readRuneOrHalt()), false
}

// primRS implements the Open Question decision from spec.md §9: return
// accumulated text on non-interactive end-of-source, and only halt if
// nothing had been read yet.
func primRS(it *Interpreter, args []string) (string, bool) {
	var sb strings.Builder
	for {
		r, err := it.tryReadRune()
		if err != nil {
			if sb.Len() == 0 {
				it.halt(err)
			}
			break
		}
		if r == it.meta {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), false
}

func primHL(it *Interpreter, args []string) (string, bool) {
	it.halt(nil)
	return "", false
}

func primTN(it *Interpreter, args []string) (string, bool) {
	it.trace = true
	return "", false
}

func primTF(it *Interpreter, args []string) (string, bool) {
	it.trace = false
	return "", false
}
