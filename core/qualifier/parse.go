package qualifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/fontq/core"
)

// Identifiers which can be used in a font string: printable ASCII without
// the space character.
var identifierPattern = regexp.MustCompile(`^[\x21-\x7e]+$`)

// errMalformed produces user level errors for font string parsing.
func errMalformed(format string, v ...interface{}) error {
	return core.Error(core.EINVALID, "font string: "+format, v...)
}

// Parse parses a font string into a QualifierSet. This is equivalent to
// the processing used by Font_FindFont.
//
// Classic FontManager accepts a matrix qualifier without a trailing space,
// whilst the PRM states that the space is required; needTrailingSpace
// selects the strict reading.
//
// Parsing is all-or-nothing: on a malformed string no partial set is
// returned.
func Parse(fontString string, needTrailingSpace bool) (*QualifierSet, error) {
	return parse(fontString, needTrailingSpace, false)
}

// parse is the tokenizer behind Parse and ApplyFields. With allowEmpty
// set, a qualifier may carry an empty payload, which marks the field for
// removal (used by Font_ApplyFields to delete qualifiers), and an empty
// input denotes "no fields at all".
func parse(s string, needTrailingSpace, allowEmpty bool) (*QualifierSet, error) {
	qs := &QualifierSet{raw: s, needTrailingSpace: needTrailingSpace}
	if s == "" {
		if allowEmpty {
			return qs, nil
		}
		return nil, errMalformed("empty font string")
	}
	pos := 0
	if s[0] != '\\' {
		// leading bare font name, ending at the first qualifier marker
		end := strings.IndexByte(s, '\\')
		if end < 0 {
			end = len(s)
		}
		name := s[:end]
		if !identifierPattern.MatchString(name) {
			return nil, errMalformed("invalid font name in %q", name)
		}
		qs.tokens = append(qs.tokens, Token{
			Tag:   TagFont,
			Span:  Span{0, end},
			value: name,
			bare:  true,
		})
		pos = end
	}
	for pos < len(s) {
		// Invariant: s[pos] == '\\'
		if pos+1 == len(s) {
			return nil, errMalformed("qualifier marker at end of %q", s)
		}
		tag := Tag(s[pos+1])
		kind, known := tag.payload()
		if !known {
			return nil, errMalformed("cannot parse qualifier '%s'", tag)
		}
		end := strings.IndexByte(s[pos+2:], '\\')
		if end < 0 {
			end = len(s)
		} else {
			end += pos + 2
		}
		field := s[pos+2 : end]
		tok := Token{Tag: tag, Span: Span{pos, end}}
		if field == "" {
			if !allowEmpty {
				return nil, errMalformed("qualifier '%s' with empty payload in %q", tag, s)
			}
			// removal marker, value stays nil
		} else {
			var err error
			switch kind {
			case stringPayload:
				if !identifierPattern.MatchString(field) {
					return nil, errMalformed("invalid name for qualifier '%s' in %q", tag, field)
				}
				tok.value = field
			case localPayload:
				tok.value, err = parseLocal(tag, field)
			case matrixPayload:
				tok.value, err = parseMatrix(field, needTrailingSpace)
			}
			if err != nil {
				return nil, err
			}
		}
		qs.tokens = append(qs.tokens, tok)
		pos = end
	}
	tracer().Debugf("font string %q parsed into %d qualifiers", s, len(qs.tokens))
	return qs, nil
}

// parseLocal decodes a territory-local name: a decimal territory number,
// a single space, and the name itself.
func parseLocal(tag Tag, field string) (Local, error) {
	i := strings.IndexByte(field, ' ')
	if i < 0 {
		return Local{}, errMalformed("qualifier '%s' needs territory and name in %q", tag, field)
	}
	territory, err := strconv.Atoi(field[:i])
	if err != nil {
		return Local{}, errMalformed("qualifier '%s' with invalid territory in %q", tag, field)
	}
	return Local{Territory: territory, Name: field[i+1:]}, nil
}
