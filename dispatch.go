package trac

// primitiveFunc is a primitive operation. It returns the call's value and a
// force-active flag (spec.md §4.4); only the navigation primitives ever set
// the latter true.
type primitiveFunc func(it *Interpreter, args []string) (value string, forceActive bool)

// primitives is the name -> operation table (spec.md §2's "Primitive
// dispatcher" component). Grounded on the teacher's first.go name-keyed
// vmCodeTable idiom, generalized from opcodes to TRAC's primitive set.
var primitives = map[string]primitiveFunc{
	"ds": primDS,
	"ss": primSS,
	"cl": primCL,
	"ln": primLN,
	"dd": primDD,
	"da": primDA,

	"cc": primCC,
	"cs": primCS,
	"cn": primCN,
	"in": primIN,
	"cr": primCR,
	"pf": primPF,

	"ad": primAD,
	"su": primSU,
	"ml": primML,
	"dv": primDV,
	"eq": primEQ,
	"gr": primGR,

	"bu": primBU,
	"bi": primBI,
	"bc": primBC,
	"bs": primBS,
	"br": primBR,
	"sr": primSR,

	"sl": primSL,
	"cd": primCD,
	"dc": primDC,

	"qm": primQM,
	"cm": primCM,
	"ps": primPS,
	"rc": primRC,
	"rs": primRS,
	"hl": primHL,
	"tn": primTN,
	"tf": primTF,

	"sb": primNA,
	"fb": primNA,
	"eb": primNA,
	"ai": primNA,
	"ao": primNA,
	"sp": primNA,
	"rp": primNA,
}

// invoke resolves a call per spec.md §4.3's precedence: form shadows
// primitive shadows empty string.
func (it *Interpreter) invoke(name string, args []string) (string, bool) {
	if f, ok := it.forms[name]; ok {
		return f.render(args), false
	}
	if fn, ok := primitives[name]; ok {
		return fn(it, args)
	}
	return "", false
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// primNA implements the stub primitives from spec.md §1/§4.5: recognized
// names with a fixed sentinel value, never implemented.
func primNA(*Interpreter, []string) (string, bool) {
	return "N/A", false
}
