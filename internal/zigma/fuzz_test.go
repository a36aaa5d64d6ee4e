package zigma

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("secret"), []byte("Hello, ZIGMA!"))
	f.Add([]byte{0x00}, []byte{})
	f.Add([]byte("A"), bytes.Repeat([]byte{0xFF}, 64))
	f.Add(bytes.Repeat([]byte{0x7F}, 256), []byte("long key seed"))

	f.Fuzz(func(t *testing.T, key, data []byte) {
		if len(key) == 0 {
			t.Skip("keyed path requires a non-empty key")
		}

		enc, err := New(key)
		if err != nil {
			t.Fatal(err)
		}
		dec, err := New(key)
		if err != nil {
			t.Fatal(err)
		}

		ciphertext := bytes.Clone(data)
		enc.Encode(ciphertext)
		dec.Decode(ciphertext)

		if !bytes.Equal(ciphertext, data) {
			t.Fatalf("roundtrip failed for key %x: got %x, want %x", key, ciphertext, data)
		}

		checkPermutation(t, enc)
		checkPermutation(t, dec)
	})
}
