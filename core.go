package trac

import (
	"fmt"
	"io"

	"github.com/begoon/trac/internal/fileinput"
	"github.com/begoon/trac/internal/flushio"
	"github.com/begoon/trac/internal/runeio"
)

// core is the external-interface glue (spec.md §2's "External-interface
// glue" component): the character source, the sink, and halt plumbing. It
// has no rewrite-engine semantics of its own.
type core struct {
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
	logfn   func(mess string, args ...interface{})
}

func (c *core) Close() (err error) {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (c *core) logf(mark, mess string, args ...interface{}) {
	if c.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	c.logfn("%v %v", mark, mess)
}

// write sends s to the sink and flushes it, halting on any write error.
func (c *core) write(s string) {
	if c.out == nil {
		return
	}
	if _, err := runeio.WriteANSIString(c.out, s); err != nil {
		c.halt(err)
	}
	if err := c.out.Flush(); err != nil {
		c.halt(err)
	}
}

// tryReadRune reads the next source character without turning an error into
// a halt; rs needs this to implement its end-of-source leniency (spec.md §9).
func (c *core) tryReadRune() (rune, error) {
	r, _, err := c.Input.ReadRune()
	return r, err
}

// readRuneOrHalt implements rc's unconditional halt-on-drain contract.
func (c *core) readRuneOrHalt() rune {
	r, err := c.tryReadRune()
	if err != nil {
		c.halt(err)
	}
	return r
}

// halt unwinds the run via panic, recovered by Run (spec.md §7, kind 1).
func (c *core) halt(err error) {
	func() {
		defer func() { recover() }()
		if c.out != nil {
			if ferr := c.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()
	panic(haltError{err})
}

type haltError struct{ error }

func (e haltError) Error() string {
	if e.error != nil {
		return fmt.Sprintf("halted: %v", e.error)
	}
	return "halted"
}
func (e haltError) Unwrap() error { return e.error }
