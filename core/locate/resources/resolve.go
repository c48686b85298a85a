package resources

import (
	"context"
	"fmt"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontq/core"
	"github.com/npillmayer/fontq/core/font"
	"github.com/npillmayer/fontq/core/font/fontregistry"
	"github.com/npillmayer/fontq/core/qualifier"
	"github.com/npillmayer/fontq/core/territory"
	"github.com/npillmayer/schuko"
)

// NotFound returns an application error for a missing font.
func NotFound(identifier string) error {
	e := fmt.Errorf("resource missing: %v", identifier)
	return core.WrapError(e, core.EMISSING, "font not found: %s", identifier)
}

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is the promise type returned by the font resolving
// functions.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

// ResolveFontString resolves a font qualifier string to a typecase at a
// given size, the lookup half of Font_FindFont processing. The string is
// parsed leniently (no trailing space required on a matrix); a malformed
// string is reported immediately, before any resolving starts.
func ResolveFontString(conf schuko.Configuration, fontString string, size float64) (TypeCasePromise, error) {
	qs, err := qualifier.Parse(fontString, false)
	if err != nil {
		return nil, err
	}
	return ResolveTypeCase(conf, qs, size), nil
}

// ResolveTypeCase resolves a parsed qualifier set to a typecase. The
// font identifier is looked up in the global font registry, then among
// the platform's installed fonts, then in a fontconfig inventory (see
// findFontConfigFont). If the set carries a matrix, the vertical scale
// term is applied to the nominal size. A font which cannot be resolved
// yields the fallback typecase together with an error.
func ResolveTypeCase(conf schuko.Configuration, qs *qualifier.QualifierSet, size float64) TypeCasePromise {
	identifier := qs.FontName()
	if local, ok := qs.LocalFont(); ok {
		if lang, err := territory.Language(local.Territory); err == nil {
			tracer().Debugf("font %s has the local name %q for %s", identifier, local.Name, lang)
		}
	}
	if m, ok := qs.Matrix(); ok {
		size = size * m[3]
	}
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		defer func() {
			ch <- result
			close(ch)
		}()
		if identifier == "" {
			result.err = core.Error(core.EINVALID, "font string carries no font name")
			result.font, _ = fontregistry.GlobalRegistry().TypeCase("fallback", size)
			return
		}
		if t, err := fontregistry.GlobalRegistry().TypeCase(identifier, size); err == nil {
			result.font = t
			return
		}
		var f *font.ScalableFont
		if fpath, err := findfont.Find(font.SystemName(identifier)); err == nil && fpath != "" {
			tracer().Debugf("%s is a system font", identifier)
			f, result.err = font.LoadOpenTypeFont(fpath)
		}
		if f == nil {
			style, weight := font.GuessStyleAndWeight(identifier)
			desc, variant := findFontConfigFont(conf, font.Family(identifier), style, weight)
			if desc.Path != "" {
				tracer().Debugf("fontconfig lists %s as %s|%s", identifier, desc.Family, variant)
				f, result.err = font.LoadOpenTypeFont(desc.Path)
			}
		}
		if f != nil {
			fontregistry.GlobalRegistry().StoreFont(identifier, f)
			result.font, result.err = fontregistry.GlobalRegistry().TypeCase(identifier, size)
			return
		}
		// keep the first real error, otherwise report the miss
		result.font, _ = fontregistry.GlobalRegistry().TypeCase(identifier, size)
		if result.err == nil {
			result.err = NotFound(identifier)
		}
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}
