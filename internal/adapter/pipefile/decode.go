package pipefile

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// fallbacks are tried in order once the input is known not to be UTF-8.
// accepts rejects input the encoding has no mapping for.
var fallbacks = []struct {
	name    string
	enc     encoding.Encoding
	accepts func([]byte) bool
}{
	{"windows-1252", charmap.Windows1252, definedInWindows1252},
	{"iso-8859-1", charmap.ISO8859_1, func([]byte) bool { return true }},
}

// definedInWindows1252 reports whether raw avoids the five byte values
// Windows-1252 leaves unassigned. The charmap decoder maps them silently.
func definedInWindows1252(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return false
		}
	}
	return true
}

// Decode converts raw file contents to UTF-8 text. UTF-8 input (with or
// without a byte order mark) is returned as is; anything else is decoded as
// Windows-1252, or as ISO-8859-1 when it holds bytes Windows-1252 leaves
// undefined. It also returns the name of the encoding that succeeded.
func Decode(raw []byte) (string, string, error) {
	if utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, utf8BOM)), "utf-8", nil
	}
	var lastErr error
	for _, fb := range fallbacks {
		if !fb.accepts(raw) {
			continue
		}
		out, err := fb.enc.NewDecoder().Bytes(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return string(out), fb.name, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no encoding accepted the input")
	}
	return "", "", lastErr
}
