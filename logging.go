// Copyright (c) 2026, The ZIGMA Authors.
// See LICENSE for licensing information.

package main

import (
	"os"

	"github.com/op/go-logging"
)

var log = setupLogging()

var stderrFormat = logging.MustStringFormatter(
	`%{color}zigma ▶ %{message}%{color:reset}`,
)

// setupLogging wires the module logger to stderr. The per-run
// diagnostics flow through it; ZIGMA_LOG_LEVEL silences them for
// scripted use. The version banner is written to stderr directly and
// is not affected by the level.
func setupLogging() *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetFormatter(stderrFormat)

	leveled := logging.AddModuleLevel(backend)
	switch os.Getenv("ZIGMA_LOG_LEVEL") {
	case "CRITICAL":
		leveled.SetLevel(logging.CRITICAL, "")
	case "ERROR":
		leveled.SetLevel(logging.ERROR, "")
	case "WARNING":
		leveled.SetLevel(logging.WARNING, "")
	case "NOTICE":
		leveled.SetLevel(logging.NOTICE, "")
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, "")
	default:
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)

	return logging.MustGetLogger("zigma")
}
