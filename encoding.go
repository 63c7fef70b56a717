package whitespace

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// LookupEncoding returns the character encoding with the given name. The
// empty string, utf8, and utf-8 select UTF-8. ascii and latin1 select
// Windows-1252. utf16 and utf32 are little-endian; utf16be and utf32be are
// big-endian. Any other name is looked up in the IANA registry.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return unicode.UTF8, nil
	case "ascii", "latin1":
		return charmap.Windows1252, nil
	case "utf16", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "utf32", "utf32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case "utf32be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	}
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, &Error{Kind: Usage, IP: -1, Msg: "unknown encoding " + name, Err: err}
	}
	if e == nil {
		return nil, newError(Usage, -1, "unsupported encoding %s", name)
	}
	return e, nil
}
