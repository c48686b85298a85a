package qualifier

import (
	"strconv"
	"strings"
)

// QualifierSet is the ordered collection of qualifiers parsed from one
// font string. Token order is the order of first appearance in the source
// string; a raw string may repeat a tag, in which case all occurrences are
// kept and the later ones take effect.
//
// A QualifierSet is immutable once created: ApplyFields produces a new set
// and leaves its inputs untouched, so sets may be shared freely between
// goroutines.
type QualifierSet struct {
	raw               string
	tokens            []Token
	needTrailingSpace bool
}

// Raw returns the string the set was created from. For a merged set this
// is the re-encoded form (see FontString).
func (qs *QualifierSet) Raw() string {
	return qs.raw
}

// Tokens returns the parsed qualifier tokens in source order.
func (qs *QualifierSet) Tokens() []Token {
	toks := make([]Token, len(qs.tokens))
	copy(toks, qs.tokens)
	return toks
}

// lookup finds the effective token for a tag, i.e. the last non-empty
// occurrence.
func (qs *QualifierSet) lookup(tag Tag) (Token, bool) {
	for i := len(qs.tokens) - 1; i >= 0; i-- {
		if qs.tokens[i].Tag == tag && !qs.tokens[i].IsRemoval() {
			return qs.tokens[i], true
		}
	}
	return Token{}, false
}

// FontName returns the font identifier, either from a leading bare name or
// from a \F qualifier. It returns "" if the set carries no name.
func (qs *QualifierSet) FontName() string {
	t, ok := qs.lookup(TagFont)
	if !ok {
		return ""
	}
	return t.value.(string)
}

// LocalFont returns the territory-local font name, if present.
func (qs *QualifierSet) LocalFont() (Local, bool) {
	t, ok := qs.lookup(TagLocalFont)
	if !ok {
		return Local{}, false
	}
	return t.value.(Local), true
}

// Encoding returns the encoding name, if present.
func (qs *QualifierSet) Encoding() (string, bool) {
	t, ok := qs.lookup(TagEncoding)
	if !ok {
		return "", false
	}
	return t.value.(string), true
}

// LocalEncoding returns the territory-local encoding name, if present.
func (qs *QualifierSet) LocalEncoding() (Local, bool) {
	t, ok := qs.lookup(TagLocalEncoding)
	if !ok {
		return Local{}, false
	}
	return t.value.(Local), true
}

// Matrix returns the transformation matrix, if present.
func (qs *QualifierSet) Matrix() (Matrix, bool) {
	t, ok := qs.lookup(TagMatrix)
	if !ok {
		return Matrix{}, false
	}
	return t.value.(Matrix), true
}

// FontString re-creates a font string from the set: the qualifiers in
// token order, each with its tag marker and re-encoded payload. A leading
// bare font name stays bare. If there is nothing but the font name, the
// name is returned on its own; there is no point in returning it with the
// qualifier prepended.
func (qs *QualifierSet) FontString() string {
	toks := make([]Token, 0, len(qs.tokens))
	for _, t := range qs.tokens {
		if !t.IsRemoval() {
			toks = append(toks, t)
		}
	}
	if len(toks) == 1 && toks[0].Tag == TagFont {
		return toks[0].value.(string)
	}
	var sb strings.Builder
	for i, t := range toks {
		// a name parsed bare keeps its form only in leading position;
		// merging may have pushed it behind other qualifiers
		if t.bare && i == 0 {
			sb.WriteString(t.value.(string))
			continue
		}
		sb.WriteByte('\\')
		sb.WriteByte(byte(t.Tag))
		switch v := t.value.(type) {
		case string:
			sb.WriteString(v)
		case Local:
			sb.WriteString(strconv.Itoa(v.Territory))
			sb.WriteByte(' ')
			sb.WriteString(v.Name)
		case Matrix:
			sb.WriteString(v.encode())
		}
	}
	return sb.String()
}

func (qs *QualifierSet) String() string {
	return qs.FontString()
}
