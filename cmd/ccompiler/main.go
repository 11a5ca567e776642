package main

import (
	"fmt"
	"log"
	"os"

	"ceval/pkg/compiler"
	"ceval/pkg/interp"
	"ceval/pkg/utils"
)

const testSource = `#include <stdio.h>

int main() {
    int a = 7;
    int b = 2;
    float x = a;
    float q = x / b;
    int c = a / b;
    printf("%d\n", c);
    printf("%f\n", q);
    return 0;
}
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		var err error
		src, _, err = utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, diags := compiler.Lex(src)
	for _, d := range diags {
		log.Print(d)
	}

	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	// Parse
	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}

	fmt.Println("AST")
	for _, d := range prog.Decls {
		fmt.Println(" ", d)
	}
	fmt.Println()

	// Evaluate
	res, err := interp.Evaluate(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "evaluation error:", err)
		os.Exit(1)
	}

	fmt.Println("Results")
	for _, v := range res.Prints {
		fmt.Printf("  %-5s %s\n", v.Kind, v)
	}
	if res.HasExit {
		fmt.Printf("  main returned %s\n", res.Exit)
	}
	fmt.Println()

	fmt.Println("Environment")
	for _, name := range res.Env.Names() {
		declType, ok := res.Env.TypeOf(name)
		if !ok {
			declType = "(undeclared)"
		}
		v := res.Env.Lookup(name)
		fmt.Printf("  %-16s %-12s %-5s %s\n", name, declType, v.Kind, v)
	}
}
