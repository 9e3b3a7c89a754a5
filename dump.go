package trac

import (
	"fmt"
	"strings"
)

// FormNames returns the defined form names in insertion order, for callers
// (such as cmd/trac's -dump flag) that want to render the whole store.
func (it *Interpreter) FormNames() []string {
	return append([]string(nil), it.formOrder...)
}

// Dump renders the named form the way pf would, without the sink
// side-effect, for external reporting.
func (it *Interpreter) Dump(name string) (string, bool) {
	f := it.forms[name]
	if f == nil {
		return "", false
	}
	return dumpForm(f), true
}

// dumpForm renders a form's body the way pf reports it (spec.md §4.5):
// literal text verbatim, each marker i as "<i>", and the pointer as "<↑>" at
// its marker-free coordinate. Grounded on the teacher's dumper.go address
// pretty-printer idiom (interleaving punctuation markers into a text walk),
// adapted from memory addresses/opcodes to form parts.
func dumpForm(f *form) string {
	var sb strings.Builder
	pos := 0
	shown := false

	writePointerIfHere := func() {
		if !shown && pos == f.pointer {
			sb.WriteString("<↑>")
			shown = true
		}
	}

	for _, p := range f.parts {
		if p.marker != 0 {
			writePointerIfHere()
			fmt.Fprintf(&sb, "<%d>", p.marker)
			continue
		}
		for _, r := range p.text {
			writePointerIfHere()
			sb.WriteRune(r)
			pos++
		}
	}
	writePointerIfHere()

	return sb.String()
}
