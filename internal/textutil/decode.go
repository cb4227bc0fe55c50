package textutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names the decoder that produced a piece of text.
type Encoding string

const (
	EncodingUTF8BOM     Encoding = "utf-8-sig"
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1252 Encoding = "cp1252"
	EncodingLatin1      Encoding = "latin-1"
	EncodingLossy       Encoding = "utf-8-lossy"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Bytes Windows-1252 leaves unassigned. A strict decode rejects them.
var cp1252Undefined = [256]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

// Decode converts raw file bytes to text. It never fails; see DecodeDetect
// for the attempt order.
func Decode(data []byte) string {
	text, _ := DecodeDetect(data)
	return text
}

// DecodeDetect tries UTF-8 with a byte-order mark, plain UTF-8, Windows-1252
// and ISO-8859-1 in that order, each strictly, and falls back to UTF-8 with
// invalid sequences dropped.
func DecodeDetect(data []byte) (string, Encoding) {
	if rest, ok := bytes.CutPrefix(data, utf8BOM); ok && utf8.Valid(rest) {
		return string(rest), EncodingUTF8BOM
	}
	if utf8.Valid(data) {
		return string(data), EncodingUTF8
	}
	if !hasUndefinedCP1252(data) {
		if text, err := decodeWith(charmap.Windows1252, data); err == nil {
			return text, EncodingWindows1252
		}
	}
	if text, err := decodeWith(charmap.ISO8859_1, data); err == nil {
		return text, EncodingLatin1
	}
	return strings.ToValidUTF8(string(data), ""), EncodingLossy
}

// ReadFile reads the whole file at path and decodes it. Only opening or
// reading the file can fail.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data), nil
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}

func hasUndefinedCP1252(data []byte) bool {
	for _, b := range data {
		if cp1252Undefined[b] {
			return true
		}
	}
	return false
}
