package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zehlchen/zigma/internal/buffer"
)

// stdin is shared across prompts so a second capture continues where
// the first one stopped reading.
var stdin = bufio.NewReader(os.Stdin)

// capturePassphrase prompts on stderr and reads a passphrase with
// terminal echo disabled. When stdin is not a terminal it falls back
// to a plain line read, which keeps the tool scriptable.
func capturePassphrase(prompt string) (*buffer.Buffer, error) {
	fmt.Fprint(os.Stderr, cyan(prompt))

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		p, err := term.ReadPassword(fd)
		fmt.Fprint(os.Stderr, "\r\n")
		if err != nil {
			return nil, fmt.Errorf("reading passphrase: %v", err)
		}
		return buffer.Own(p), nil
	}

	line, err := stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading passphrase: %v", err)
	}
	line = strings.TrimRight(line, "\r\n")
	return buffer.Own([]byte(line)), nil
}
