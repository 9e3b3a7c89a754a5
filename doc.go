// Package trac implements a TRAC T-64 interpreter: a self-modifying
// string-rewriting macro processor.
//
// A program is a sequence of characters scanned left to right from a mutable
// active buffer. Ordinary text is shuffled into a neutral buffer; `#(` and
// `##(` open active and neutral calls respectively, which are closed by a
// matching `)` and dispatched either to a user-defined form or to one of the
// built-in primitives (arithmetic, form definition, character navigation,
// boolean bit-string operations, radix conversion, and a small I/O bridge).
// A call's result is spliced back into whichever buffer its mode names,
// which is what lets a TRAC program rewrite itself as it runs.
//
// The package is the CORE engine only: it has no notion of files, terminals,
// or command-line flags. See cmd/trac for that glue.
package trac
