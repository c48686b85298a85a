/*
Package font handles the scalable fonts behind font identifiers.

A font qualifier string names a font by its RISC OS identifier, e.g.
"Homerton.Medium" or "Trinity.Bold.Italic": a family name followed by
weight and style parts, separated by dots. This package loads the outline
fonts such identifiers resolve to and prepares sized typecases from them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"fmt"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontq.font'
func tracer() tracing.Trace {
	return tracing.Select("fontq.font")
}

// ScalableFont is an outline font, loaded from an OpenType or TrueType
// container.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scaled font, i.e. a font set up for rendering at a
// certain size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face
	size               float64
}

// LoadOpenTypeFont loads an OpenType font from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := ioutil.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err == nil {
		f.Filepath = fontfile
	}
	return f, err
}

// ParseOpenTypeFont interprets a byte blob as an OpenType font.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase derives a typecase at a given point size from a scalable
// font. Sizes outside of 5pt…500pt are snapped to 10pt.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Errorf("font size must be 5pt < size < 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: fontsize,
		DPI:  600,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.face = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the font a typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the sized font face of a typecase.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// PtSize returns the point size of a typecase.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// --- Font identifiers ------------------------------------------------------

// SystemName converts a RISC OS font identifier into the family name
// platform font lookup expects: "Homerton.Medium.Oblique" becomes
// "Homerton Medium Oblique".
func SystemName(identifier string) string {
	return strings.ReplaceAll(identifier, ".", " ")
}

// Family returns the leading family part of a font identifier.
func Family(identifier string) string {
	if dot := strings.IndexByte(identifier, '.'); dot >= 0 {
		return identifier[:dot]
	}
	return identifier
}

// NormalizeIdentifier produces the form of a font identifier used as a
// lookup key: identifiers compare case-insensitively.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// GuessStyleAndWeight derives style and weight from the weight and style
// parts of a font identifier.
func GuessStyleAndWeight(identifier string) (xfont.Style, xfont.Weight) {
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	parts := strings.Split(NormalizeIdentifier(identifier), ".")
	if len(parts) > 1 {
		for _, part := range parts[1:] {
			switch part {
			case "italic":
				style = xfont.StyleItalic
			case "oblique":
				style = xfont.StyleOblique
			case "bold":
				weight = xfont.WeightBold
			case "light":
				weight = xfont.WeightLight
			case "medium", "regular":
				weight = xfont.WeightNormal
			}
		}
	}
	return style, weight
}

// --- Descriptors -----------------------------------------------------------

// Descriptor describes a font variant installed on the platform, without
// the font being loaded.
type Descriptor struct {
	Family   string
	Path     string
	Variants []string
}

// MatchConfidence rates the quality of matching a font descriptor against
// a font identifier.
type MatchConfidence int

const (
	NoConfidence   MatchConfidence = 0
	LowConfidence  MatchConfidence = 2
	HighConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font descriptors for the best match of a
// family name pattern, style and weight.
func ClosestMatch(fdesc []Descriptor, pattern string, style xfont.Style, weight xfont.Weight) (
	match Descriptor, variant string, confidence MatchConfidence) {
	//
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	for _, desc := range fdesc {
		family := strings.ToLower(desc.Family)
		if family != pattern && !strings.HasPrefix(family, pattern) {
			continue
		}
		c := LowConfidence
		if family == pattern {
			c = HighConfidence
		}
		for _, v := range desc.Variants {
			if matchesVariant(v, style, weight) && c > confidence {
				match, variant, confidence = desc, v, c
			}
		}
	}
	return
}

func matchesVariant(variant string, style xfont.Style, weight xfont.Weight) bool {
	switch variant {
	case "italic":
		return style == xfont.StyleItalic || style == xfont.StyleOblique
	case "bold":
		return weight >= xfont.WeightSemiBold
	case "light":
		return weight < xfont.WeightNormal
	case "regular":
		return style == xfont.StyleNormal && weight == xfont.WeightNormal
	}
	return false
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic(fmt.Sprintf("cannot load fallback font: %v", err)) // this cannot happen
	}
	return gofont
}
