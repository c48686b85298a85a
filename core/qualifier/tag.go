package qualifier

// Tag is the single-character identifier selecting a qualifier's meaning.
// The alphabet of tags is a fixed external contract, mirrored from the
// font manager's string format.
type Tag byte

// Qualifier tags of the font manager's string format.
const (
	TagFont          Tag = 'F' // font identifier
	TagLocalFont     Tag = 'f' // font with a territory-local name
	TagEncoding      Tag = 'E' // encoding name
	TagLocalEncoding Tag = 'e' // encoding with a territory-local name
	TagMatrix        Tag = 'M' // transformation matrix
)

// payloadKind classifies the payload grammar of a tag.
type payloadKind int8

const (
	stringPayload payloadKind = iota // identifier string
	localPayload                     // territory number, space, name
	matrixPayload                    // six decimal integers
)

// payload returns the payload grammar for a tag, with ok=false for a tag
// outside of the fixed table.
func (t Tag) payload() (kind payloadKind, ok bool) {
	switch t {
	case TagFont, TagEncoding:
		return stringPayload, true
	case TagLocalFont, TagLocalEncoding:
		return localPayload, true
	case TagMatrix:
		return matrixPayload, true
	}
	return 0, false
}

func (t Tag) String() string {
	return string(rune(t))
}

// Span is a half-open byte range [Start,End) into the string a token was
// parsed from.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by the span.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// Local is a territory-tagged name, the payload form of the TagLocalFont
// and TagLocalEncoding qualifiers.
type Local struct {
	Territory int
	Name      string
}

// Token is a single parsed qualifier field.
//
// A token remembers the byte range it occupied in the string it has been
// parsed from, marker included. Spans of the tokens of one parse are
// disjoint and strictly increasing; for tokens of a merged set they refer
// to whichever input string each token originated from.
type Token struct {
	Tag   Tag
	Span  Span
	value interface{} // string, Local or Matrix; nil for a removal marker
	bare  bool        // leading font name given without a \F marker
}

// Value returns the decoded payload of a token: a string for TagFont and
// TagEncoding, a Local for the territory-local variants, a Matrix for
// TagMatrix. Removal markers have a nil value.
func (t Token) Value() interface{} {
	return t.value
}

// IsRemoval is true for an empty field, which within Font_ApplyFields
// processing means "remove this qualifier".
func (t Token) IsRemoval() bool {
	return t.value == nil
}
