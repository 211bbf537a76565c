package localization

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/catalog-browser/internal/model"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const localeDir = "locales"

// Translator resolves dotted keys against per-language dictionaries.
// Dictionaries are read once and never change, so a Translator is safe for
// concurrent use.
type Translator struct {
	dictionaries map[model.Language]Branch
	fallback     model.Language
}

// NewTranslator loads the dictionaries shipped with the app
func NewTranslator() (*Translator, error) {
	dictionaries := make(map[model.Language]Branch)
	for _, lang := range model.Languages() {
		data, err := localeFS.ReadFile(path.Join(localeDir, lang.String()+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dictionary: %w", lang, err)
		}
		dict, err := ParseDictionary(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s dictionary: %w", lang, err)
		}
		dictionaries[lang] = dict
	}
	return NewTranslatorFromDictionaries(dictionaries), nil
}

// NewTranslatorFromDictionaries builds a translator over the given trees
func NewTranslatorFromDictionaries(dictionaries map[model.Language]Branch) *Translator {
	return &Translator{
		dictionaries: dictionaries,
		fallback:     model.DefaultLanguage,
	}
}

// ParseDictionary decodes a YAML document into a dictionary tree
func ParseDictionary(data []byte) (Branch, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return buildTree(raw), nil
}

// Resolve returns the text for key in lang, then in the default language,
// and finally the key itself
func (t *Translator) Resolve(key string, lang model.Language) string {
	if text, ok := t.lookup(key, lang); ok {
		return text
	}
	if lang != t.fallback {
		if text, ok := t.lookup(key, t.fallback); ok {
			return text
		}
	}
	return key
}

func (t *Translator) lookup(key string, lang model.Language) (string, bool) {
	dict, ok := t.dictionaries[lang]
	if !ok {
		return "", false
	}
	return Lookup(dict, key)
}

// HasLanguage reports whether a dictionary exists for lang
func (t *Translator) HasLanguage(lang model.Language) bool {
	_, ok := t.dictionaries[lang]
	return ok
}

// Languages returns available languages with their display names
func (t *Translator) Languages() map[model.Language]string {
	names := make(map[model.Language]string, len(t.dictionaries))
	for lang := range t.dictionaries {
		name, ok := t.lookup(KeyLanguageName, lang)
		if !ok {
			name = strings.ToUpper(lang.String())
		}
		names[lang] = name
	}
	return names
}
