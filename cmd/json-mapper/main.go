// Package main provides the CLI entrypoint for json-mapper.
//
// json-mapper evaluates declarative mapping rulesets:
//   - eval: build a target document from a source document
//   - explain: same, plus per-field diagnostics
//   - ops: list the available operator types
package main

import (
	"fmt"
	"os"

	"json-mapper/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
