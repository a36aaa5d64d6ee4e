// Copyright (c) 2026, The ZIGMA Authors.
// See LICENSE for licensing information.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zehlchen/zigma/internal/buffer"
	"github.com/zehlchen/zigma/internal/codec"
	"github.com/zehlchen/zigma/internal/registry"
	"github.com/zehlchen/zigma/internal/zigma"
)

func handleEncode(reg *registry.Registry) error {
	return runStream(reg, true)
}

func handleDecode(reg *registry.Registry) error {
	return runStream(reg, false)
}

// runStream is the shared encode/decode driver: load the key, read the
// whole input in its wire encoding, transform it in place, and emit it
// in the output encoding.
func runStream(reg *registry.Registry, encoding bool) error {
	inBase, err := codec.ParseBase(reg.Value("in.fmt"))
	if err != nil {
		return err
	}
	outBase, err := codec.ParseBase(reg.Value("out.fmt"))
	if err != nil {
		return err
	}

	in, inName, err := openInput(reg.Value("in"))
	if err != nil {
		return err
	}
	defer in.Close()

	out, outName, err := openOutput(reg.Value("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	key, keyName, err := loadKeyMaterial(reg, encoding)
	if err != nil {
		return err
	}
	defer key.Destroy()

	mode := "decode"
	if encoding {
		mode = "encode"
	}
	log.Infof("mode: %s", mode)
	log.Infof("input: %s (base %s)", inName, inBase)
	log.Infof("output: %s (base %s)", outName, outBase)
	log.Infof("key: %s (%d/%d bytes)", keyName, key.Len(), zigma.MaxKeySize)

	cipher, err := zigma.New(key.Bytes())
	if err != nil {
		return err
	}
	defer cipher.Zero()

	payload, err := readPayload(in, inBase)
	if err != nil {
		return err
	}
	defer payload.Destroy()

	if encoding {
		cipher.Encode(payload.Bytes())
	} else {
		cipher.Decode(payload.Bytes())
	}

	if _, err := out.Write(codec.Encode(outBase, payload.Bytes())); err != nil {
		return err
	}

	log.Noticef("%s complete: %d bytes", mode, payload.Len())
	return nil
}

func handleCheck(reg *registry.Registry) error {
	inBase, err := codec.ParseBase(reg.Value("in.fmt"))
	if err != nil {
		return err
	}
	outBase, err := codec.ParseBase(reg.Value("out.fmt"))
	if err != nil {
		return err
	}

	in, inName, err := openInput(reg.Value("in"))
	if err != nil {
		return err
	}
	defer in.Close()

	out, _, err := openOutput(reg.Value("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	payload, err := readPayload(in, inBase)
	if err != nil {
		return err
	}
	defer payload.Destroy()

	cipher := zigma.NewHash()
	defer cipher.Zero()
	cipher.Encode(payload.Bytes())

	digest := cipher.HashFinal(zigma.ChecksumSize)
	if _, err := out.Write(codec.Encode(outBase, digest)); err != nil {
		return err
	}

	name := inName
	if name == "<STDIN>" {
		name = "-"
	}
	fmt.Fprintf(out, "  %s (%d)\n", name, payload.Len())
	return nil
}

// readPayload drains r and decodes it from its wire encoding. The raw
// text is wiped before returning; the caller owns the payload buffer.
func readPayload(r io.Reader, base codec.Base) (*buffer.Buffer, error) {
	raw := buffer.New(0)
	if _, err := raw.ReadFrom(r); err != nil {
		raw.Destroy()
		return nil, err
	}

	if base == codec.Base256 {
		return raw, nil
	}

	data, err := codec.Decode(base, raw.Bytes())
	raw.Destroy()
	if err != nil {
		return nil, err
	}
	return buffer.Own(data), nil
}

// loadKeyMaterial resolves the key: from the key= file decoded per
// key.fmt, or captured at the terminal. Encoding prompts twice and
// requires both passphrases to agree.
func loadKeyMaterial(reg *registry.Registry, confirm bool) (*buffer.Buffer, string, error) {
	keyBase, err := codec.ParseBase(reg.Value("key.fmt"))
	if err != nil {
		return nil, "", err
	}

	if path := reg.Value("key"); path != "" {
		key, err := readKeyFile(path, keyBase)
		if err != nil {
			return nil, "", err
		}
		return key, path, nil
	}

	key, err := capturePassphrase("Enter passphrase: ")
	if err != nil {
		return nil, "", err
	}
	if key.Len() == 0 {
		key.Destroy()
		return nil, "", errors.New("empty passphrase")
	}

	if confirm {
		again, err := capturePassphrase("Re-enter passphrase: ")
		if err != nil {
			key.Destroy()
			return nil, "", err
		}
		defer again.Destroy()

		if !bytes.Equal(key.Bytes(), again.Bytes()) {
			key.Destroy()
			return nil, "", errors.New("passphrases do not match")
		}
	}
	return key, "<PASSPHRASE>", nil
}

func readKeyFile(path string, keyBase codec.Base) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key, err := readPayload(f, keyBase)
	if err != nil {
		return nil, fmt.Errorf("key file %s: %v", path, err)
	}

	if key.Len() == 0 {
		key.Destroy()
		return nil, fmt.Errorf("key file %s is empty", path)
	}
	if key.Len() > zigma.MaxKeySize {
		key.Destroy()
		return nil, fmt.Errorf("key file %s is too large (%d bytes, limit %d)", path, key.Len(), zigma.MaxKeySize)
	}
	return key, nil
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), "<STDIN>", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func openOutput(path string) (io.WriteCloser, string, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, "<STDOUT>", nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
