package trac

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/begoon/trac/internal/flushio"
)

// Option configures an Interpreter at construction time (spec.md's
// Configuration ambient-stack entry).
type Option interface{ apply(it *Interpreter) }

var defaultOptions = Options(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
	withInitialProgram(defaultInitialProgram),
	withMeta('\''),
)

// defaultInitialProgram matches spec.md §6's "something equivalent to print
// the result of reading one record": read one record from the character
// source in active mode, so it is scanned and executed as a program, and
// print its value.
const defaultInitialProgram = "#(ps,#(rs))"

// Options flattens nested option sets, exactly like the teacher's
// VMOptions.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interpreter) {}

type options []Option

func (opts options) apply(it *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(it)
		}
	}
}

func WithInput(r io.Reader) Option { return withInput(r) }
func WithOutput(w io.Writer) Option { return withOutput(w) }
func WithTee(w io.Writer) Option { return withTee(w) }
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
func WithInitialProgram(program string) Option { return withInitialProgram(program) }
func WithInteractive(interactive bool) Option { return withInteractive(interactive) }
func WithMeta(r rune) Option { return withMeta(r) }
func WithTrace(trace bool) Option { return traceOption(trace) }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})
type initialProgramOption string
type interactiveOption bool
type metaOption rune
type traceOption bool

func withInput(r io.Reader) inputOption                 { return inputOption{r} }
func withOutput(w io.Writer) outputOption                { return outputOption{w} }
func withTee(w io.Writer) teeOption                      { return teeOption{w} }
func withInitialProgram(program string) initialProgramOption { return initialProgramOption(program) }
func withInteractive(interactive bool) interactiveOption { return interactiveOption(interactive) }
func withMeta(r rune) metaOption                         { return metaOption(r) }

func (i inputOption) apply(it *Interpreter) {
	it.Queue = append(it.Queue, i.Reader)
}

func (o outputOption) apply(it *Interpreter) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		it.closers = append(it.closers, cl)
	}
}

func (o teeOption) apply(it *Interpreter) {
	it.out = flushio.WriteFlushers(it.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		it.closers = append(it.closers, cl)
	}
}

func (logfn withLogfn) apply(it *Interpreter) {
	it.logfn = logfn
}

func (p initialProgramOption) apply(it *Interpreter) {
	it.initialProgram = string(p)
}

func (b interactiveOption) apply(it *Interpreter) {
	it.interactive = bool(b)
}

func (m metaOption) apply(it *Interpreter) {
	it.meta = rune(m)
}

func (t traceOption) apply(it *Interpreter) {
	it.trace = bool(t)
}
