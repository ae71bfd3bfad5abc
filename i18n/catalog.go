// Package i18n supplies message providers backed by per-language catalogs of
// issue-code templates. Catalogs ship with built-in English and Japanese
// dictionaries and can be extended from YAML.
package i18n

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	govalid "github.com/reoring/govalid"
)

// Catalog maps issue codes to message templates per language. Configure it
// during setup; Provider values handed to validators only read it.
type Catalog struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
}

// NewCatalog returns a catalog seeded with the built-in dictionaries.
// The first registered language (English) is the fallback for unmatched
// requests.
func NewCatalog() *Catalog {
	c := &Catalog{messages: map[language.Tag]map[string]string{}}
	c.merge(language.English, builtinEN)
	c.merge(language.Japanese, builtinJA)
	c.matcher = language.NewMatcher(c.tags)
	return c
}

// Add merges templates for a language, overriding existing codes.
func (c *Catalog) Add(lang string, templates map[string]string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("i18n: invalid language %q: %w", lang, err)
	}
	c.merge(tag, templates)
	c.matcher = language.NewMatcher(c.tags)
	return nil
}

// Parse merges a YAML document of shape lang -> code -> template.
func (c *Catalog) Parse(data []byte) error {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("i18n: parse catalog: %w", err)
	}
	for lang, templates := range doc {
		if err := c.Add(lang, templates); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a YAML catalog file and merges it.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("i18n: read catalog: %w", err)
	}
	return c.Parse(data)
}

// Provider returns a message provider for the best-matching language.
// Unparseable or unknown requests fall back to the catalog's first language.
func (c *Catalog) Provider(lang string) govalid.MessageProvider {
	_, idx := language.MatchStrings(c.matcher, lang)
	return provider{templates: c.messages[c.tags[idx]]}
}

func (c *Catalog) merge(tag language.Tag, templates map[string]string) {
	dst, ok := c.messages[tag]
	if !ok {
		dst = map[string]string{}
		c.messages[tag] = dst
		c.tags = append(c.tags, tag)
	}
	for code, tpl := range templates {
		dst[code] = tpl
	}
}

type provider struct {
	templates map[string]string
}

// Message renders the template registered for code, or "" so the rule falls
// back to its built-in default when the catalog has no entry.
func (p provider) Message(code, property string, params map[string]any) string {
	tpl, ok := p.templates[code]
	if !ok {
		return ""
	}
	return govalid.RenderMessage(tpl, property, params)
}

var builtinEN = map[string]string{
	govalid.CodeRequired:      "is required",
	govalid.CodeNotEmpty:      "must not be empty",
	govalid.CodeTooShort:      "is too short (minimum {min})",
	govalid.CodeTooLong:       "is too long (maximum {max})",
	govalid.CodeTooSmall:      "is too small (minimum {min})",
	govalid.CodeTooBig:        "is too big (maximum {max})",
	govalid.CodeOutOfRange:    "must be between {min} and {max}",
	govalid.CodePattern:       "has an invalid format",
	govalid.CodeInvalidEnum:   "must be one of the allowed values",
	govalid.CodeInvalidFormat: "has an invalid format",
	govalid.CodeCreditCard:    "must be a valid credit card number",
	govalid.CodePredicate:     "is invalid",
}

var builtinJA = map[string]string{
	govalid.CodeRequired:      "必須です",
	govalid.CodeNotEmpty:      "空にできません",
	govalid.CodeTooShort:      "短すぎます（最小 {min}）",
	govalid.CodeTooLong:       "長すぎます（最大 {max}）",
	govalid.CodeTooSmall:      "小さすぎます（最小 {min}）",
	govalid.CodeTooBig:        "大きすぎます（最大 {max}）",
	govalid.CodeOutOfRange:    "{min} から {max} の範囲で指定してください",
	govalid.CodePattern:       "形式が不正です",
	govalid.CodeInvalidEnum:   "許可された値のいずれかを指定してください",
	govalid.CodeInvalidFormat: "形式が不正です",
	govalid.CodeCreditCard:    "有効なクレジットカード番号を指定してください",
	govalid.CodePredicate:     "不正な値です",
}
