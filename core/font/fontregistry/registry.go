package fontregistry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/fontq/core"
	"github.com/npillmayer/fontq/core/font"
)

// Registry holds the fonts loaded for an application, keyed by their
// normalized font identifier, together with the typecases derived from
// them. It also keeps an index of the identifiers for enumeration, the
// processing behind Font_ListFonts.
type Registry struct {
	sync.Mutex
	fonts       map[string]*font.ScalableFont
	typecases   map[string]*font.TypeCase
	identifiers *trie.Trie // normalized identifier → canonical identifier
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold the loaded
// fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts:       make(map[string]*font.ScalableFont),
		typecases:   make(map[string]*font.TypeCase),
		identifiers: trie.New(),
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font is stored under the normalized form of the given identifier.
// If that key is already associated with a font, the stored font will not
// be overridden.
func (fr *Registry) StoreFont(identifier string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := font.NormalizeIdentifier(identifier)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		fr.fonts[key] = f
		fr.identifiers.Add(key, identifier)
	}
}

// TypeCase returns a typecase with a given font identifier and size.
// If a suitable typecase has already been cached, TypeCase will return
// the cached one. If a font has been stored under the identifier, a
// typecase will be derived from it.
//
// If no typecase can be produced, TypeCase derives one from the
// system-wide fallback font and returns it together with an error.
func (fr *Registry) TypeCase(identifier string, size float64) (*font.TypeCase, error) {
	key := font.NormalizeIdentifier(identifier)
	tracer().Debugf("registry searches for font %s at %.2f", key, size)
	tname := appendSize(key, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Infof("registry found typecase %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[key]; ok {
		t, err := f.PrepareCase(size)
		tracer().Infof("font registry has font %s, caches at %.2f", key, size)
		fr.typecases[tname] = t
		return t, err
	}
	tracer().Infof("registry does not contain font %s", identifier)
	err := core.Error(core.EMISSING, "font %s not found in registry", identifier)
	//
	// store a typecase from the fallback font, if not present yet, and return it
	tname = appendSize("fallback", size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := font.FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback typecase at %.2f", size)
	fr.fonts["fallback"] = f
	fr.typecases[tname] = t
	return t, err
}

// ListFonts enumerates the identifiers of the stored fonts which start
// with a given prefix (case-insensitively). An empty prefix lists all of
// them. The canonical identifiers are returned, sorted.
func (fr *Registry) ListFonts(prefix string) []string {
	fr.Lock()
	defer fr.Unlock()
	keys := fr.identifiers.PrefixSearch(font.NormalizeIdentifier(prefix))
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if node, ok := fr.identifiers.Find(key); ok {
			ids = append(ids, node.Meta().(string))
		}
	}
	sort.Strings(ids)
	return ids
}

// DebugList dumps the registry contents to the trace.
func (fr *Registry) DebugList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Debugf("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Debugf("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Debugf("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Debugf("------------------------")
}

func appendSize(name string, size float64) string {
	return fmt.Sprintf("%s-%.2f", name, size)
}
