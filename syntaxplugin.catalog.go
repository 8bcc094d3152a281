package syntaxplugin

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog holds the localized strings of one plugin, one flat table per locale.
//
// Directory structure:
//
//	<root>/
//	  lang/
//	    en/lang.yaml
//	    de/lang.yaml
//	    pt-br/lang.yaml
//
// Each lang.yaml is a flat mapping of keys to strings.
type Catalog struct {
	locales map[string]map[string]string
	names   []string
	matcher language.Matcher
}

// LoadCatalog reads every language file under <root>/lang. A plugin without a
// lang directory gets an empty catalog.
func LoadCatalog(root string) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(root, LangDirName, "*", LangFileName))
	if err != nil {
		return nil, NewCatalogReadError(root, err)
	}
	sort.Strings(paths)

	c := &Catalog{locales: make(map[string]map[string]string, len(paths))}
	for _, path := range paths {
		locale := filepath.Base(filepath.Dir(path))
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewCatalogReadError(path, err)
		}
		messages := make(map[string]string)
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, NewCatalogParseError(path, locale, err)
		}
		c.locales[locale] = messages
	}
	c.index()
	return c, nil
}

// NewCatalog builds a catalog from in-memory tables keyed by locale
func NewCatalog(locales map[string]map[string]string) *Catalog {
	c := &Catalog{locales: make(map[string]map[string]string, len(locales))}
	for locale, messages := range locales {
		c.locales[locale] = messages
	}
	c.index()
	return c
}

// index orders locale names with the default locale first and builds the matcher
func (c *Catalog) index() {
	c.names = c.names[:0]
	for name := range c.locales {
		c.names = append(c.names, name)
	}
	sort.Slice(c.names, func(i, j int) bool {
		if c.names[i] == DefaultLocale || c.names[j] == DefaultLocale {
			return c.names[i] == DefaultLocale
		}
		return c.names[i] < c.names[j]
	})
	if len(c.names) == 0 {
		c.matcher = nil
		return
	}
	tags := make([]language.Tag, len(c.names))
	for i, name := range c.names {
		tags[i] = language.Make(name)
	}
	c.matcher = language.NewMatcher(tags)
}

// Locales returns the available locales in sorted order
func (c *Catalog) Locales() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	sort.Strings(names)
	return names
}

// Len returns the number of locales in the catalog
func (c *Catalog) Len() int {
	return len(c.locales)
}

// Resolve returns the locale the catalog would use for the requested one.
// An exact directory name wins; otherwise the closest language is chosen,
// falling back to the default locale.
func (c *Catalog) Resolve(locale string) string {
	if _, ok := c.locales[locale]; ok {
		return locale
	}
	if c.matcher == nil {
		return DefaultLocale
	}
	_, idx, confidence := c.matcher.Match(language.Make(locale))
	if confidence == language.No {
		return DefaultLocale
	}
	return c.names[idx]
}

// Translator returns a Translator for locale. Keys missing in that locale are
// looked up in the default locale.
func (c *Catalog) Translator(locale string) Translator {
	resolved := c.Resolve(locale)
	return &catalogTranslator{
		primary:  c.locales[resolved],
		fallback: c.locales[DefaultLocale],
	}
}

type catalogTranslator struct {
	primary  map[string]string
	fallback map[string]string
}

func (t *catalogTranslator) Lookup(key string) string {
	if text := t.primary[key]; text != "" {
		return text
	}
	return t.fallback[key]
}
