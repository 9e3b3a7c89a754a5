package trac

import "strings"

// defineForm implements ds's store mutation, tracking insertion order for
// ln (spec.md §4.5).
func (it *Interpreter) defineForm(name, body string) {
	if _, exists := it.forms[name]; !exists {
		it.formOrder = append(it.formOrder, name)
	}
	it.forms[name] = newForm(body)
}

func (it *Interpreter) deleteForm(name string) {
	if _, exists := it.forms[name]; !exists {
		return
	}
	delete(it.forms, name)
	for i, n := range it.formOrder {
		if n == name {
			it.formOrder = append(it.formOrder[:i], it.formOrder[i+1:]...)
			break
		}
	}
}

func primDS(it *Interpreter, args []string) (string, bool) {
	it.defineForm(arg(args, 0), arg(args, 1))
	return "", false
}

func primSS(it *Interpreter, args []string) (string, bool) {
	f := it.forms[arg(args, 0)]
	if f == nil {
		return "", false
	}
	for i, pattern := range args[1:] {
		if pattern == "" {
			continue
		}
		f.segment(pattern, i+1)
	}
	return "", false
}

func primCL(it *Interpreter, args []string) (string, bool) {
	f := it.forms[arg(args, 0)]
	if f == nil {
		return "", false
	}
	return f.render(args[1:]), false
}

func primLN(it *Interpreter, args []string) (string, bool) {
	return strings.Join(it.formOrder, arg(args, 0)), false
}

func primDD(it *Interpreter, args []string) (string, bool) {
	for _, name := range args {
		it.deleteForm(name)
	}
	return "", false
}

func primDA(it *Interpreter, args []string) (string, bool) {
	it.forms = map[string]*form{}
	it.formOrder = nil
	return "", false
}
