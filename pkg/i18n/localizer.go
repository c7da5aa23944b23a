// Package i18n provides the string tables used for user-facing text.
//
// Tables are embedded JSON objects mapping keys to strings, one per
// language. A key missing from the active table renders as
// "{language}:{key}" so gaps are visible rather than blank.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed strings/*.json
var tables embed.FS

// ErrUnsupportedLanguage is returned when no string table matches a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var supported = []language.Tag{
	language.English,
	language.Portuguese,
}

var matcher = language.NewMatcher(supported)

// Supported returns the languages that have a string table.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Localizer looks up strings in the active table.
// It is safe for concurrent use.
type Localizer struct {
	mu       sync.RWMutex
	lang     language.Tag
	mappings map[string]string
	subs     []func(language.Tag)
}

// New creates a Localizer with lang loaded.
func New(lang language.Tag) (*Localizer, error) {
	l := &Localizer{}
	if err := l.Load(lang); err != nil {
		return nil, err
	}
	return l, nil
}

// Parse parses a BCP 47 tag such as "pt-BR" and matches it against the
// supported tables.
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, s, err)
	}
	return match(tag)
}

func match(tag language.Tag) (language.Tag, error) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, tag)
	}
	return supported[idx], nil
}

// Load switches the active table to the best match for lang and notifies
// subscribers.
func (l *Localizer) Load(lang language.Tag) error {
	tag, err := match(lang)
	if err != nil {
		return err
	}

	base, _ := tag.Base()
	data, err := tables.ReadFile("strings/" + base.String() + ".json")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnsupportedLanguage, tag, err)
	}

	var mappings map[string]string
	if err := json.Unmarshal(data, &mappings); err != nil {
		return fmt.Errorf("parse %s strings: %w", tag, err)
	}

	l.mu.Lock()
	l.lang = tag
	l.mappings = mappings
	subs := make([]func(language.Tag), len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, fn := range subs {
		fn(tag)
	}
	return nil
}

// Language returns the active language.
func (l *Localizer) Language() language.Tag {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// Get returns the string for key. Escaped "\n" sequences become newlines.
func (l *Localizer) Get(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if s, ok := l.mappings[key]; ok {
		return strings.ReplaceAll(s, `\n`, "\n")
	}
	return l.lang.String() + ":" + key
}

// Getf formats the string for key with args.
func (l *Localizer) Getf(key string, args ...any) string {
	return fmt.Sprintf(l.Get(key), args...)
}

// Subscribe registers fn to run after every successful Load.
func (l *Localizer) Subscribe(fn func(language.Tag)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}
