package trac

import "strconv"

func primBU(it *Interpreter, args []string) (string, bool) {
	a := booleanSuffix(arg(args, 0))
	b := booleanSuffix(arg(args, 1))
	return boolOr(a, b), false
}

func primBI(it *Interpreter, args []string) (string, bool) {
	a := booleanSuffix(arg(args, 0))
	b := booleanSuffix(arg(args, 1))
	return boolAnd(a, b), false
}

func primBC(it *Interpreter, args []string) (string, bool) {
	a := booleanSuffix(arg(args, 0))
	return boolNot(a), false
}

func primBS(it *Interpreter, args []string) (string, bool) {
	s := int(parseSmallInt(arg(args, 0)))
	a := booleanSuffix(arg(args, 1))
	return boolShift(s, a), false
}

func primBR(it *Interpreter, args []string) (string, bool) {
	s := int(parseSmallInt(arg(args, 0)))
	a := booleanSuffix(arg(args, 1))
	return boolRotate(s, a), false
}

// primSR is the "segmentation gap" primitive: the highest marker number max
// if any number in 1..max is missing from the form, or "0" if the run is
// complete or the form is absent/marker-less (spec.md §4.5).
func primSR(it *Interpreter, args []string) (string, bool) {
	f := it.forms[arg(args, 0)]
	if f == nil {
		return "0", false
	}
	max := f.maxMarker()
	if max == 0 {
		return "0", false
	}
	for n := 1; n <= max; n++ {
		if !f.hasMarker(n) {
			return strconv.Itoa(max), false
		}
	}
	return "0", false
}
