package qualifier

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ApplyFields merges the qualifiers of a second font string onto qs and
// returns the result as a new set; neither input is modified. This is
// equivalent to the processing used by Font_ApplyFields.
//
// The second string is a sparse patch, not a full replacement: a
// qualifier it does not mention is carried over from qs unchanged, a
// qualifier it defines wins (the last occurrence, if repeated), and a
// qualifier with an empty field is removed from the result. Classic
// FontManager operates on these strings as bare elements, whereas we
// process the strings into their constituents every time.
//
// The trailing-space strictness applies to the second string only and is
// independent of whatever mode qs was parsed under.
func (qs *QualifierSet) ApplyFields(fontString string, needTrailingSpace bool) (*QualifierSet, error) {
	overlay, err := parse(fontString, needTrailingSpace, true)
	if err != nil {
		return nil, err
	}
	// Ordered merge: a tag keeps the position of its first appearance,
	// tags new to the result are appended.
	merged := linkedhashmap.New()
	for _, t := range qs.tokens {
		merged.Put(t.Tag, t)
	}
	for _, t := range overlay.tokens {
		if t.IsRemoval() {
			tracer().Debugf("apply-fields removes qualifier '%s'", t.Tag)
			merged.Remove(t.Tag)
			continue
		}
		merged.Put(t.Tag, t)
	}
	result := &QualifierSet{needTrailingSpace: qs.needTrailingSpace}
	it := merged.Iterator()
	for it.Next() {
		result.tokens = append(result.tokens, it.Value().(Token))
	}
	result.raw = result.FontString()
	return result, nil
}
