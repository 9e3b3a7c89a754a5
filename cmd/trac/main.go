// Command trac runs a TRAC T-64 program from files, literal arguments, or an
// interactive raw-terminal prompt.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	trac "github.com/begoon/trac"
	"github.com/begoon/trac/internal/logio"
	"github.com/begoon/trac/internal/runeio"
	"golang.org/x/term"
)

// interactivePrompt reads one record and executes it directly: rs runs in
// active mode so the typed line is rescanned as a program, matching a REPL's
// read-eval loop (spec.md §6: "prints a prompt ... then reads one record").
const interactivePrompt = "#(ps,(\r\nTRAC> ))#(rs)"

func main() {
	var (
		trace      bool
		dump       bool
		metaFlag   string
		timeout    time.Duration
		transcript string
	)
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print all defined forms after the run halts")
	flag.StringVar(&metaFlag, "meta", "'", "meta-character, as a literal char, 'X', or <NAME>/^X mnemonic")
	flag.DurationVar(&timeout, "timeout", 0, "halt the run after the given duration")
	flag.StringVar(&transcript, "transcript", "", "tee sink output to this file")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	opts := []trac.Option{
		trac.WithLogf(log.Leveledf("TRACE")),
		trac.WithOutput(os.Stdout),
		trac.WithMeta(parseMeta(metaFlag)),
		trac.WithTrace(trace),
	}

	args := flag.Args()
	if len(args) == 0 {
		restore, err := rawTerminal()
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer restore()
		opts = append(opts,
			trac.WithInput(os.Stdin),
			trac.WithInteractive(true),
			trac.WithInitialProgram(interactivePrompt),
		)
	} else {
		for i, a := range args {
			if i > 0 {
				opts = append(opts, trac.WithInput(strings.NewReader("\n")))
			}
			if rest, ok := strings.CutPrefix(a, "@"); ok {
				opts = append(opts, trac.WithInput(strings.NewReader(rest)))
				continue
			}
			f, err := os.Open(a)
			if err != nil {
				log.Errorf("%v", err)
				return
			}
			defer f.Close()
			opts = append(opts, trac.WithInput(f))
		}
	}

	if transcript != "" {
		f, err := os.Create(transcript)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, trac.WithTee(f))
	}

	it := trac.New(opts...)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runErr := it.Run(ctx)

	if dump {
		dw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer dw.Close()
		for _, name := range it.FormNames() {
			if body, ok := it.Dump(name); ok {
				dw.Logf("%v: %v\n", name, body)
			}
		}
	}

	log.ErrorIf(runErr)
}

func parseMeta(flagValue string) rune {
	if r, err := runeio.UnquoteRune(flagValue); err == nil {
		return r
	}
	if runes := []rune(flagValue); len(runes) > 0 {
		return runes[0]
	}
	return '\''
}

// rawTerminal puts stdin into raw mode and returns a restorer, following the
// tinkerator-lined pattern of reaching the fd through SyscallConn rather than
// assuming os.Stdin.Fd() is safe to use directly.
func rawTerminal() (func(), error) {
	sc, err := os.Stdin.(*os.File).SyscallConn()
	if err != nil {
		return nil, err
	}

	var state *term.State
	var ctrlErr error
	err = sc.Control(func(fd uintptr) {
		state, ctrlErr = term.MakeRaw(int(fd))
	})
	if err != nil {
		return nil, err
	}
	if ctrlErr != nil {
		return nil, ctrlErr
	}

	return func() {
		sc.Control(func(fd uintptr) {
			term.Restore(int(fd), state)
		})
	}, nil
}
