package territory

import (
	"github.com/npillmayer/fontq/core"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// RISC OS knows its 8-bit character sets as "alphabets"; their names are
// what travels in the \E qualifier of a font string. Most of them are
// ISO 8859 variants (with RISC OS specific extensions in the control
// range, which we ignore here).
var alphabets = map[string]encoding.Encoding{
	"Latin1":   charmap.ISO8859_1,
	"Latin2":   charmap.ISO8859_2,
	"Latin3":   charmap.ISO8859_3,
	"Latin4":   charmap.ISO8859_4,
	"Cyrillic": charmap.ISO8859_5,
	"Greek":    charmap.ISO8859_7,
	"Hebrew":   charmap.ISO8859_8,
	"Latin5":   charmap.ISO8859_9,
	"Latin6":   charmap.ISO8859_10,
	"Latin7":   charmap.ISO8859_13,
	"Latin8":   charmap.ISO8859_14,
	"Latin9":   charmap.ISO8859_15,
	"Latin10":  charmap.ISO8859_16,
	"UTF8":     unicode.UTF8,
}

// Alphabet returns the character encoding for a RISC OS alphabet name, as
// used in the encoding qualifier of a font string.
func Alphabet(name string) (encoding.Encoding, error) {
	if enc, ok := alphabets[name]; ok {
		return enc, nil
	}
	tracer().Infof("no encoding known for alphabet %q", name)
	return nil, core.Error(core.EMISSING, "unknown alphabet %q", name)
}
