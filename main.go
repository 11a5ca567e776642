package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ceval/pkg/compiler"
	"ceval/pkg/interp"
	"ceval/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole driver: read, lex, parse, dump, evaluate, report.
// It returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ceval", flag.ContinueOnError)
	fs.SetOutput(stdout)
	showTokens := fs.Bool("tokens", false, "print the token stream before the AST")
	showAST := fs.Bool("ast", true, "print the AST dump")
	quiet := fs.Bool("q", false, "suppress lexer and evaluator warnings")
	fs.Usage = func() {
		fmt.Fprintln(stdout, "Usage: ceval [-tokens] [-ast=false] [-q] <c_file_path>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	logger := log.New(stderr, "ceval: ", 0)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	src, _, err := utils.ReadSource(fs.Arg(0))
	if err != nil {
		reportError(stdout, stderr, err)
		return 1
	}

	tokens, diags := compiler.Lex(src)
	for _, d := range diags {
		logger.Print(d)
	}

	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		reportError(stdout, stderr, fmt.Errorf("parse: %w", err))
		return 1
	}

	if *showTokens {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok)
		}
	}
	if *showAST {
		if err := compiler.Dump(stdout, prog); err != nil {
			reportError(stdout, stderr, err)
			return 1
		}
	}

	res, err := interp.New(&interp.Options{Logger: logger}).Run(prog)
	if err != nil {
		reportError(stdout, stderr, fmt.Errorf("evaluate: %w", err))
		return 1
	}
	for _, v := range res.Prints {
		fmt.Fprintf(stdout, "Computation Result: %s\n", v)
	}
	return 0
}

// reportError prints the one-line message on stdout and the full unwrap
// chain, plus the offending source line for syntax errors, on stderr.
func reportError(stdout, stderr io.Writer, err error) {
	fmt.Fprintf(stdout, "Error: %v\n", err)

	fmt.Fprintln(stderr, "Trace (most recent wrap first):")
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(stderr, "  %T: %v\n", e, e)
	}
	var se *compiler.SyntaxError
	if errors.As(err, &se) && se.Snippet != "" {
		fmt.Fprintf(stderr, "  line %d |> %s\n", se.Line, se.Snippet)
	}
}
