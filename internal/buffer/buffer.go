// Copyright (c) 2026, The ZIGMA Authors.
// See LICENSE for licensing information.

// Package buffer provides a growable byte container that wipes its
// backing memory when it is released or reallocated. It holds key
// material and plaintext on behalf of the CLI, so the wipe is the one
// security-relevant obligation of the package.
package buffer

import "io"

const readChunk = 32 * 1024

// Buffer is an owned, growable byte container.
type Buffer struct {
	data []byte
}

// New returns a buffer of length n, zero-filled.
func New(n int) *Buffer {
	return &Buffer{data: make([]byte, n)}
}

// Own wraps p without copying; the buffer takes ownership of the
// backing array and will wipe it on Destroy.
func Own(p []byte) *Buffer {
	return &Buffer{data: p}
}

// Len reports the current length.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the live contents. The slice aliases the buffer and is
// invalidated by Resize, Append, ReadFrom and Destroy.
func (b *Buffer) Bytes() []byte { return b.data }

// Resize sets the length to n, preserving the prefix up to
// min(old, new). Newly exposed bytes are zero.
func (b *Buffer) Resize(n int) {
	if n <= len(b.data) {
		wipe(b.data[n:])
		b.data = b.data[:n]
		return
	}
	old := len(b.data)
	b.grow(n)
	b.data = b.data[:n]
	wipe(b.data[old:])
}

// Append copies p onto the end of the buffer.
func (b *Buffer) Append(p []byte) {
	old := len(b.data)
	b.grow(old + len(p))
	b.data = b.data[:old+len(p)]
	copy(b.data[old:], p)
}

// ReadFrom appends the remainder of r to the buffer.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if len(b.data) == cap(b.data) {
			b.grow(len(b.data) + readChunk)
		}
		n, err := r.Read(b.data[len(b.data):cap(b.data)])
		b.data = b.data[:len(b.data)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Destroy wipes the full backing array and releases it.
func (b *Buffer) Destroy() {
	wipe(b.data[:cap(b.data)])
	b.data = nil
}

// grow ensures capacity for at least n bytes. The old backing array is
// wiped before it is abandoned; plain append would leave stale copies
// of its contents behind.
func (b *Buffer) grow(n int) {
	if n <= cap(b.data) {
		return
	}
	newCap := 2 * cap(b.data)
	if newCap < n {
		newCap = n
	}
	fresh := make([]byte, len(b.data), newCap)
	copy(fresh, b.data)
	wipe(b.data[:cap(b.data)])
	b.data = fresh
}

func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
