package codec

import (
	"encoding/hex"
	"fmt"
)

// EncodeBase16 renders src as lowercase hex, two characters per byte.
func EncodeBase16(src []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)
	return dst
}

// DecodeBase16 parses hex text. ASCII whitespace is tolerated anywhere;
// any other non-hex byte and odd digit counts are errors.
func DecodeBase16(src []byte) ([]byte, error) {
	compact := make([]byte, 0, len(src))
	for _, c := range src {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		compact = append(compact, c)
	}

	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("base16: odd number of digits")
	}

	dst := make([]byte, hex.DecodedLen(len(compact)))
	if _, err := hex.Decode(dst, compact); err != nil {
		return nil, fmt.Errorf("base16: %v", err)
	}
	return dst, nil
}
