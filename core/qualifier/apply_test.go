package qualifier

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse(`\FHomerton.Medium\ELatin1\M0 0 0 0 0 0`, false)
	assert.NoError(t, err)
	merged, err := qs.ApplyFields("", false)
	assert.NoError(t, err)
	assert.Equal(t, "Homerton.Medium", merged.FontName())
	enc, _ := merged.Encoding()
	assert.Equal(t, "Latin1", enc)
	m, ok := merged.Matrix()
	assert.True(t, ok)
	assert.Equal(t, Matrix{}, m)
}

func TestApplyFontName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse(`\FHomerton.Medium\ELatin1\M0 0 0 0 0 0`, false)
	assert.NoError(t, err)
	//
	// a bare name as well as a \F qualifier overrides the font name
	for _, overlay := range []string{"Selwyn", `\FSelwyn`} {
		merged, err := qs.ApplyFields(overlay, false)
		assert.NoError(t, err)
		assert.Equal(t, "Selwyn", merged.FontName())
		enc, _ := merged.Encoding()
		assert.Equal(t, "Latin1", enc)
	}
	// the inputs stay untouched
	assert.Equal(t, "Homerton.Medium", qs.FontName())
}

func TestApplyRemoval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse(`\FHomerton.Medium\ELatin1\M0 0 0 0 0 0`, false)
	assert.NoError(t, err)
	//
	merged, err := qs.ApplyFields(`\F`, false)
	assert.NoError(t, err)
	assert.Equal(t, "", merged.FontName())
	_, ok := merged.Encoding()
	assert.True(t, ok)
	//
	merged, err = qs.ApplyFields(`\F\E`, false)
	assert.NoError(t, err)
	assert.Equal(t, "", merged.FontName())
	_, ok = merged.Encoding()
	assert.False(t, ok)
	_, ok = merged.Matrix()
	assert.True(t, ok)
}

func TestApplyAppendsNewTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse("Trinity.Medium", false)
	assert.NoError(t, err)
	merged, err := qs.ApplyFields(`\ELatin1\M65536 0 0 65536 0 0 `, false)
	assert.NoError(t, err)
	tags := []Tag{}
	for _, tok := range merged.Tokens() {
		tags = append(tags, tok.Tag)
	}
	assert.Equal(t, []Tag{TagFont, TagEncoding, TagMatrix}, tags)
	assert.Equal(t, `Trinity.Medium\ELatin1\M65536 0 0 65536 0 0 `, merged.FontString())
}

func TestApplyBareNameBehindQualifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	// the base carries no name, so the bare overlay name is appended and
	// must regain its \F marker in non-leading position
	qs, err := Parse(`\ELatin1`, false)
	assert.NoError(t, err)
	merged, err := qs.ApplyFields("Selwyn", false)
	assert.NoError(t, err)
	assert.Equal(t, `\ELatin1\FSelwyn`, merged.FontString())
	reparsed, err := Parse(merged.FontString(), false)
	assert.NoError(t, err)
	assert.Equal(t, "Selwyn", reparsed.FontName())
	enc, _ := reparsed.Encoding()
	assert.Equal(t, "Latin1", enc)
}

func TestApplyKeepsBasePosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse(`\FHomerton.Medium\ELatin1\M0 0 0 0 0 0`, false)
	assert.NoError(t, err)
	merged, err := qs.ApplyFields(`\EUTF8`, false)
	assert.NoError(t, err)
	tags := []Tag{}
	for _, tok := range merged.Tokens() {
		tags = append(tags, tok.Tag)
	}
	assert.Equal(t, []Tag{TagFont, TagEncoding, TagMatrix}, tags)
	enc, _ := merged.Encoding()
	assert.Equal(t, "UTF8", enc)
}

func TestApplyLastWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse("Homerton.Medium", false)
	assert.NoError(t, err)
	merged, err := qs.ApplyFields(`\ELatin1\ELatin2`, false)
	assert.NoError(t, err)
	enc, _ := merged.Encoding()
	assert.Equal(t, "Latin2", enc)
	assert.Len(t, merged.Tokens(), 2)
}

func TestApplySelfIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse(`\FHomerton.Medium\ELatin1\M65536 0 0 65536 0 0 `, false)
	assert.NoError(t, err)
	merged, err := qs.ApplyFields(qs.FontString(), false)
	assert.NoError(t, err)
	assert.Equal(t, qs.FontString(), merged.FontString())
	assert.Len(t, merged.Tokens(), len(qs.Tokens()))
	for i, tok := range merged.Tokens() {
		assert.Equal(t, qs.Tokens()[i].Tag, tok.Tag)
		assert.Equal(t, qs.Tokens()[i].Value(), tok.Value())
	}
}

func TestApplyMalformedOverlay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.qualifier")
	defer teardown()
	//
	qs, err := Parse("Homerton.Medium", false)
	assert.NoError(t, err)
	_, err = qs.ApplyFields(`\M0 0`, false)
	assert.Error(t, err)
}
