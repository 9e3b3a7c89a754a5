package trac

func primAD(it *Interpreter, args []string) (string, bool) {
	return bigAdd(arg(args, 0), arg(args, 1)), false
}

func primSU(it *Interpreter, args []string) (string, bool) {
	return bigSub(arg(args, 0), arg(args, 1)), false
}

func primML(it *Interpreter, args []string) (string, bool) {
	return bigMul(arg(args, 0), arg(args, 1)), false
}

func primDV(it *Interpreter, args []string) (string, bool) {
	return bigDiv(arg(args, 0), arg(args, 1)), false
}

func primEQ(it *Interpreter, args []string) (string, bool) {
	t, f := arg(args, 2), arg(args, 3)
	if arg(args, 0) == arg(args, 1) {
		return t, false
	}
	return f, false
}

func primGR(it *Interpreter, args []string) (string, bool) {
	t, f := arg(args, 2), arg(args, 3)
	if bigGreater(arg(args, 0), arg(args, 1)) {
		return t, false
	}
	return f, false
}
