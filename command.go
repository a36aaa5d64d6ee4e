// Copyright (c) 2026, The ZIGMA Authors.
// See LICENSE for licensing information.

package main

import (
	"math"
	"strings"

	"github.com/zehlchen/zigma/internal/registry"
)

// command couples an operation name with its registry defaults and
// handler. Defaults are ordered pairs so the registry reflects them in
// a stable order.
type command struct {
	name     string
	defaults [][2]string
	run      func(*registry.Registry) error
}

// commandTable builds the operation table. It is constructed per call;
// there is no mutable global command state.
func commandTable() []command {
	return []command{
		{name: "encode", defaults: streamDefaults("256", "64"), run: handleEncode},
		{name: "decode", defaults: streamDefaults("64", "256"), run: handleDecode},
		{name: "check", defaults: [][2]string{
			{"in", ""}, {"in.fmt", "256"},
			{"out", ""}, {"out.fmt", "16"},
		}, run: handleCheck},
		{name: "help", run: handleHelp},
		{name: "version", run: handleVersion},
	}
}

func streamDefaults(inFmt, outFmt string) [][2]string {
	return [][2]string{
		{"in", ""}, {"in.fmt", inFmt},
		{"out", ""}, {"out.fmt", outFmt},
		{"key", ""}, {"key.fmt", "256"},
	}
}

// resolveCommand picks the operation for input: an exact name first,
// then a name the input is a prefix of, then the name at minimum edit
// distance. It always resolves; the last resort is the closest match.
func resolveCommand(cmds []command, input string) *command {
	best := 0
	bestDist := math.MaxInt

	for i := range cmds {
		if cmds[i].name == input || strings.HasPrefix(cmds[i].name, input) {
			return &cmds[i]
		}
		if d := levenshtein(cmds[i].name, input); d < bestDist {
			bestDist, best = d, i
		}
	}
	return &cmds[best]
}

// parseOperands folds k[.sub]=v arguments into the registry. A bare
// word is stored with an empty value; repeated keys update in place.
func parseOperands(reg *registry.Registry, args []string) {
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		reg.Update(key, value)
	}
}

// levenshtein returns the edit distance between s and t.
func levenshtein(s, t string) int {
	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(t)]
}
