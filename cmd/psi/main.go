// github.com/dcoppa/psi/cmd/psi
// Copyright (c) 2026 the psi authors
//
// Licensed under the MIT License. See the LICENSE file in the
// repository root for details.

// Command psi is a command-line front end for the interpreter: it runs
// a script file non-interactively, or drops into a REPL when no file
// is given. Grounded on jcorbin-gothird's flag-based main.go for CLI
// shape and original_source/src/main.rs for the file-vs-REPL split and
// per-line REPL execution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dcoppa/psi"
	"github.com/dcoppa/psi/internal/trace"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("psi", flag.ContinueOnError)
	fs.SetOutput(errOut)
	lexical := fs.Bool("lexical", false, "use lexical scoping instead of dynamic")
	traceOn := fs.Bool("trace", false, "log each interpreter step to stderr")
	prompt := fs.String("prompt", "PS> ", "REPL prompt string")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	mode := psi.Dynamic
	if *lexical {
		mode = psi.Lexical
	}
	ip := psi.NewInterpreter(mode, out)
	if *traceOn {
		ip.Trace = trace.New(errOut)
	}

	if fs.NArg() > 0 {
		return runFile(ip, fs.Arg(0), errOut)
	}
	repl(ip, in, out, errOut, *prompt)
	return 0
}

func runFile(ip *psi.Interpreter, path string, errOut io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(errOut, "psi: %v\n", err)
		return 2
	}
	defer f.Close()
	if err := ip.Run(f); err != nil {
		fmt.Fprintf(errOut, "psi: %v\n", err)
		return 1
	}
	return 0
}

// repl reads one line at a time and feeds it straight to the
// interpreter, the way original_source/src/main.rs's repl does; state
// (both stacks, every dictionary on the stack) persists across lines.
func repl(ip *psi.Interpreter, in io.Reader, out, errOut io.Writer, prompt string) {
	fmt.Fprintln(out, "psi — a small PostScript-subset interpreter")
	fmt.Fprintln(out, "type 'quit' to exit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		if err := ip.RunString(scanner.Text()); err != nil {
			fmt.Fprintf(errOut, "psi: %v\n", err)
		}
		if ip.Quit {
			return
		}
	}
}
