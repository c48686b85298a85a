package resources

import (
	"testing"

	"github.com/npillmayer/fontq/core"
	"github.com/npillmayer/fontq/core/font"
	"github.com/npillmayer/fontq/core/font/fontregistry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolveMalformedFontString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.resources")
	defer teardown()
	//
	_, err := ResolveFontString(nil, `Homerton.Medium\M0 0`, 10.0)
	if err == nil {
		t.Errorf("expected a malformed font string to be rejected before resolving, wasn't")
	}
}

func TestResolveFromRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.resources")
	defer teardown()
	//
	fontregistry.GlobalRegistry().StoreFont("Trinity.Medium", font.FallbackFont())
	promise, err := ResolveFontString(nil, "Trinity.Medium", 12.0)
	if err != nil {
		t.Fatal(err)
	}
	tc, err := promise.TypeCase()
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 12.0 {
		t.Errorf("expected a 12pt typecase, is %.1f", tc.PtSize())
	}
}

// Without an application configuration the fontconfig lookup is simply
// unavailable; an unknown font then degrades to the fallback typecase and
// an error, it must not crash the resolver.
func TestResolveUnknownFontWithoutConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.resources")
	defer teardown()
	//
	promise, err := ResolveFontString(nil, "NoSuch.FontFamily", 10.0)
	if err != nil {
		t.Fatal(err)
	}
	tc, err := promise.TypeCase()
	if err == nil {
		t.Error("expected an error for an unresolvable font, got none")
	} else if core.Code(err) != core.EMISSING {
		t.Errorf("expected error code EMISSING, got %d", core.Code(err))
	}
	if tc == nil {
		t.Fatal("expected the fallback typecase for an unresolvable font, got none")
	}
	if tc.PtSize() != 10.0 {
		t.Errorf("expected a 10pt fallback typecase, is %.1f", tc.PtSize())
	}
}

// A matrix qualifier scales the nominal font size by its vertical scale
// term.
func TestResolveAppliesMatrixScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontq.resources")
	defer teardown()
	//
	fontregistry.GlobalRegistry().StoreFont("Trinity.Medium", font.FallbackFont())
	promise, err := ResolveFontString(nil, `Trinity.Medium\M131072 0 0 131072 0 0 `, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	tc, err := promise.TypeCase()
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 20.0 {
		t.Errorf("expected the matrix to scale 10pt to 20pt, is %.1f", tc.PtSize())
	}
}
