// Package i18n loads the embedded locale catalogs used to render and classify
// roll messages and to localize the Discord commands.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// reverseNamespaces limits the reverse index to status labels
var reverseNamespaces = []string{"roll.", "common."}

type catalogFile struct {
	Locale        string            `yaml:"locale"`
	DiscordLocale string            `yaml:"discord_locale"`
	Messages      map[string]string `yaml:"messages"`
}

type localeMessages struct {
	locale   string
	discord  string
	tag      language.Tag
	own      map[string]string
	messages map[string]string // own merged over the base locale
}

// Catalog holds every loaded locale and a reverse index from status label to key
type Catalog struct {
	locales map[string]*localeMessages
	names   []string // parallel to tags, base locale first
	tags    []language.Tag
	matcher language.Matcher
	builder *catalog.Builder
	reverse map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded locale files
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := LoadFromFS(embeddedLocales)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFromFS loads locales/*.yaml from fsys
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, localeGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New(ErrMsgNoCatalogs)
	}
	sort.Strings(paths)

	c := &Catalog{
		locales: make(map[string]*localeMessages, len(paths)),
		builder: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
		reverse: make(map[string]string),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := c.add(path, file); err != nil {
			return nil, err
		}
	}

	base, ok := c.locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("%s: %s", ErrMsgMissingBase, BaseLocale)
	}

	c.names = append(c.names, BaseLocale)
	for _, name := range sortedKeys(c.locales) {
		if name != BaseLocale {
			c.names = append(c.names, name)
		}
	}

	for _, name := range c.names {
		lm := c.locales[name]
		lm.messages = make(map[string]string, len(base.own))
		for key, value := range base.own {
			lm.messages[key] = value
		}
		for key, value := range lm.own {
			if _, ok := base.own[key]; !ok {
				return nil, fmt.Errorf("locale %s key %q: %s", name, key, ErrMsgMissingBaseKey)
			}
			lm.messages[key] = value
		}

		for _, key := range sortedKeys(lm.messages) {
			if err := c.builder.SetString(lm.tag, key, lm.messages[key]); err != nil {
				return nil, fmt.Errorf("register %s %q: %w", name, key, err)
			}
		}
		for _, key := range sortedKeys(lm.own) {
			if err := c.index(key, lm.own[key]); err != nil {
				return nil, fmt.Errorf("locale %s: %w", name, err)
			}
		}
		c.tags = append(c.tags, lm.tag)
	}

	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(path string, file catalogFile) error {
	name := strings.TrimSpace(file.Locale)
	if name == "" {
		return fmt.Errorf("catalog %s: %s", path, ErrMsgMissingLocale)
	}
	if _, exists := c.locales[name]; exists {
		return fmt.Errorf("catalog %s: %s: %s", path, ErrMsgDuplicateLocale, name)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, name, err)
	}

	discord := strings.TrimSpace(file.DiscordLocale)
	if discord == "" {
		discord = name
	}

	own := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		own[strings.TrimSpace(key)] = value
	}

	c.locales[name] = &localeMessages{locale: name, discord: discord, tag: tag, own: own}
	return nil
}

func (c *Catalog) index(key, label string) error {
	indexed := false
	for _, prefix := range reverseNamespaces {
		if strings.HasPrefix(key, prefix) {
			indexed = true
			break
		}
	}
	if !indexed {
		return nil
	}

	normalized := NormalizeLabel(label)
	if existing, ok := c.reverse[normalized]; ok && existing != key {
		return fmt.Errorf("%q %s (%s, %s)", label, ErrMsgConflictingLabel, existing, key)
	}
	c.reverse[normalized] = key
	return nil
}

// NormalizeLabel trims, lower-cases and NFC-normalizes a status label
func NormalizeLabel(label string) string {
	return norm.NFC.String(cases.Lower(language.Und).String(strings.TrimSpace(label)))
}

// ReverseTranslate maps a rendered status label in any locale back to its key
func (c *Catalog) ReverseTranslate(label string) (string, bool) {
	key, ok := c.reverse[NormalizeLabel(label)]
	return key, ok
}

// Locales returns the loaded locale names, base locale first
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Message returns the value of key in locale, falling back to the base locale
func (c *Catalog) Message(locale, key string) (string, bool) {
	lm, ok := c.locales[strings.TrimSpace(locale)]
	if !ok {
		lm = c.locales[BaseLocale]
	}
	value, ok := lm.messages[key]
	return value, ok
}

// Localizer returns a Localizer for the closest supported match of locale.
// Unknown or empty locales resolve to the base locale.
func (c *Catalog) Localizer(locale string) *Localizer {
	idx := 0
	if tag, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, idx, _ = c.matcher.Match(tag)
	}
	lm := c.locales[c.names[idx]]
	return &Localizer{
		catalog: c,
		locale:  lm.locale,
		printer: message.NewPrinter(lm.tag, message.Catalog(c.builder)),
	}
}

// DiscordLocalizations returns the values of key keyed by Discord locale code.
// Only locales that define key themselves are included.
func (c *Catalog) DiscordLocalizations(key string) map[string]string {
	out := make(map[string]string, len(c.names))
	for _, name := range c.names {
		lm := c.locales[name]
		if value, ok := lm.own[key]; ok {
			out[lm.discord] = value
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
