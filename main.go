// main.go
package main

import (
	"fmt"
	"os"

	"wx-yz/bfc/compiler"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bfc <source-file>")
		os.Exit(1)
	}

	input, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	out, err := compiler.NewCompiler().Compile(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling: %v\n", err)
		os.Exit(1)
	}

	// Module text, trailing newline included by the generator.
	fmt.Print(out)
}
