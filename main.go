// Package main provides the entry point for ia64dis.
// ia64dis is an IA-64 (Itanium) bundle decoder and disassembler.
//
// For the full CLI, use: go run ./cmd/ia64dis
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("ia64dis - IA-64 bundle decoder and disassembler")
	fmt.Println("")
	fmt.Println("Usage: ia64dis [options] <program.elf>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to a YAML or JSON configuration file")
	fmt.Println("  -raw       Treat the input as raw bundles (see -base)")
	fmt.Println("  -trace     Follow control flow from the entry point")
	fmt.Println("  -strict    Report reserved encodings as errors")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/ia64dis' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/ia64dis' instead.")
	}
}
