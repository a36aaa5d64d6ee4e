package codec

import (
	"encoding/base64"
	"fmt"
)

// wrapColumn is the output line width for base 64 text.
const wrapColumn = 76

// Sanitize strips ASCII whitespace and #-to-end-of-line comments from
// base 64 text. A comment opens only when the # sits at the start of
// the input or directly after a line break.
func Sanitize(src []byte) []byte {
	out := make([]byte, 0, len(src))
	inComment := false

	for i, c := range src {
		if c == '#' && (i == 0 || src[i-1] == '\n' || src[i-1] == '\r') {
			inComment = true
		}
		if c == '\n' || c == '\r' {
			inComment = false
			continue
		}
		if !inComment && c != ' ' && c != '\t' {
			out = append(out, c)
		}
	}
	return out
}

// EncodeBase64 renders src in the standard alphabet, wrapped at 76
// columns. The final partial line carries no trailing newline.
func EncodeBase64(src []byte) []byte {
	enc := base64.StdEncoding.EncodeToString(src)

	out := make([]byte, 0, len(enc)+len(enc)/wrapColumn+1)
	for i := 0; i < len(enc); i += wrapColumn {
		end := min(i+wrapColumn, len(enc))
		out = append(out, enc[i:end]...)
		if end-i == wrapColumn {
			out = append(out, '\n')
		}
	}
	return out
}

// DecodeBase64 sanitizes src and parses it strictly: after comment and
// whitespace stripping the text must be a multiple of four characters
// of the standard alphabet, with = only as trailing padding.
func DecodeBase64(src []byte) ([]byte, error) {
	clean := Sanitize(src)

	if len(clean)%4 != 0 {
		return nil, fmt.Errorf("base64: length %d is not a multiple of 4", len(clean))
	}

	out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(out, clean)
	if err != nil {
		return nil, fmt.Errorf("base64: %v", err)
	}
	return out[:n], nil
}
