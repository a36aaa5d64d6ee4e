package main

import "github.com/fatih/color"

// Color helpers for user-facing text. fatih/color disables itself when
// the stream is not a terminal, so scripted runs see plain text.

func red(s string) string {
	return color.New(color.FgHiRed).SprintFunc()(s)
}

func yellow(s string) string {
	return color.New(color.FgHiYellow).SprintFunc()(s)
}

func cyan(s string) string {
	return color.New(color.FgHiCyan).SprintFunc()(s)
}
