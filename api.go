package trac

import (
	"context"
	"errors"
	"io"

	"github.com/begoon/trac/internal/panicerr"
)

// New builds an Interpreter with the form store empty and the scanner state
// cleared, ready to Run.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		forms: map[string]*form{},
	}
	defaultOptions.apply(it)
	Options(opts...).apply(it)
	return it
}

// Run drives the rewrite engine to completion, recovering any internal
// panic (including hl's halt signal) as a returned error, never crashing the
// host process (spec.md §7, AMBIENT STACK Error handling).
func (it *Interpreter) Run(ctx context.Context) error {
	err := panicerr.Recover("trac", func() error {
		return it.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		err = he.error
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
	}
	return err
}
