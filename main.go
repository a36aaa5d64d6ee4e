// Copyright (c) 2026, The ZIGMA Authors.
// See LICENSE for licensing information.

// Command zigma encrypts, decrypts and checksums byte streams with the
// ZIGMA permutation cipher. Operations are resolved fuzzily and
// configured through k[.sub]=v operands; see `zigma help`.
package main

import (
	"fmt"
	"os"

	"github.com/zehlchen/zigma/internal/registry"
)

// Injected at link time via -ldflags "-X main.version=... -X main.gitCommit=...".
var (
	version   = "(devel)"
	gitCommit = "unknown"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	printVersion()

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, red("error: no operation specified"))
		return 1
	}

	cmds := commandTable()
	cmd := resolveCommand(cmds, args[0])

	reg := registry.New()
	for _, kv := range cmd.defaults {
		reg.Update(kv[0], kv[1])
	}
	parseOperands(reg, args[1:])

	if err := cmd.run(reg); err != nil {
		fmt.Fprintln(os.Stderr, red("error: "+err.Error()))
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "ZIGMA %s@%s\n", version, gitCommit)
}

func handleHelp(*registry.Registry) error {
	fmt.Fprint(os.Stderr, usageText)
	return nil
}

func handleVersion(*registry.Registry) error {
	fmt.Fprintln(os.Stderr, "  Copyright (C) 2026 The ZIGMA Authors")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, yellow("  NOTICE: This program comes with ABSOLUTELY NO WARRANTY."))
	return nil
}

const usageText = `Usage: zigma OPERATION [OPERAND...]

OPERATION must be one of the following:
  encode, decode, check, help, version

OPERAND must be in the form of <KEY[.SUBKEY]>[=VALUE]
  KEY must be one of the following:
    in=FILE    read from FILE instead, or omit for:  <STDIN>
    out=FILE   write to FILE instead, or omit for:   <STDOUT>
    key=FILE   use FILE as master key, or omit for:  <CAPTURE>

  SUBKEY must be one of the following:
    .fmt=BASE   the base encoding of the data (16, 64, 256)
`
