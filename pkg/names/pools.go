package names

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Language identifies a name culture.
type Language string

// Supported name cultures.
const (
	Portuguese Language = "pt"
	Italian    Language = "it"
	English    Language = "en"
	Russian    Language = "ru"
	Spanish    Language = "es"
)

// Valid reports whether l is one of the supported cultures.
func (l Language) Valid() bool {
	switch l {
	case Portuguese, Italian, English, Russian, Spanish:
		return true
	}
	return false
}

// Gender selects the first-name pool and the inflection rules.
type Gender int

// Genders.
const (
	Woman Gender = iota
	Man
)

func (g Gender) String() string {
	if g == Woman {
		return "woman"
	}
	return "man"
}

// Errors returned by LoadPools and ComposeSurname.
var (
	ErrInvalidPools    = errors.New("invalid name pools")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Pool is the ordered list of names of one culture.
type Pool struct {
	Lang  Language `yaml:"lang"`
	Names []string `yaml:"names"`
}

// Pools holds the first-name and surname tables.
// A *Pools returned by LoadPools or DefaultPools must not be modified.
type Pools struct {
	Women    []Pool `yaml:"women"`
	Men      []Pool `yaml:"men"`
	Surnames []Pool `yaml:"surnames"`

	women    map[Language][]string
	men      map[Language][]string
	surnames map[Language][]string
}

//go:embed pools.yaml
var defaultPoolsYAML []byte

var defaultPools = mustLoadPools(defaultPoolsYAML)

// DefaultPools returns the compiled-in pools.
func DefaultPools() *Pools {
	return defaultPools
}

func mustLoadPools(data []byte) *Pools {
	p, err := LoadPools(data)
	if err != nil {
		panic(fmt.Sprintf("names: embedded pools: %v", err))
	}
	return p
}

// LoadPools parses YAML pool data and validates it.
func LoadPools(data []byte) (*Pools, error) {
	var p Pools
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPools, err)
	}
	if err := p.index(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Pools) index() error {
	var err error
	if p.women, err = indexPools("women", p.Women); err != nil {
		return err
	}
	if p.men, err = indexPools("men", p.Men); err != nil {
		return err
	}
	p.surnames, err = indexPools("surnames", p.Surnames)
	return err
}

func indexPools(table string, pools []Pool) (map[Language][]string, error) {
	if len(pools) == 0 {
		return nil, fmt.Errorf("%w: %s: no languages", ErrInvalidPools, table)
	}
	m := make(map[Language][]string, len(pools))
	for _, pool := range pools {
		if !pool.Lang.Valid() {
			return nil, fmt.Errorf("%w: %s: unsupported language %q", ErrInvalidPools, table, pool.Lang)
		}
		if _, dup := m[pool.Lang]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate language %q", ErrInvalidPools, table, pool.Lang)
		}
		if len(pool.Names) == 0 {
			return nil, fmt.Errorf("%w: %s: %s has no names", ErrInvalidPools, table, pool.Lang)
		}
		m[pool.Lang] = pool.Names
	}
	return m, nil
}

// Validate checks the size rules that keep the "draw until different"
// loops terminating.
func (p *Pools) Validate() error {
	for _, g := range []Gender{Woman, Man} {
		for _, pool := range p.firstNames(g) {
			if _, ok := p.surnames[pool.Lang]; !ok {
				return fmt.Errorf("%w: %s first names in %s have no surnames", ErrInvalidPools, g, pool.Lang)
			}
		}
		if en, ok := p.firstNamesIndex(g)[English]; ok && distinct(en) < 2 {
			return fmt.Errorf("%w: %s first names in en need at least 2 distinct values", ErrInvalidPools, g)
		}
	}

	// Surname() composes with the men's table, so an English surname
	// culture needs English men's names for the middle-name form.
	if _, ok := p.surnames[English]; ok {
		if _, ok := p.men[English]; !ok {
			return fmt.Errorf("%w: en surnames require en men first names", ErrInvalidPools)
		}
	}

	var others []string
	for _, pool := range p.Surnames {
		if pool.Lang != English {
			others = append(others, pool.Names...)
		}
	}
	if distinct(others) < 2 {
		return fmt.Errorf("%w: non-English surnames need at least 2 distinct values", ErrInvalidPools)
	}
	return nil
}

func (p *Pools) firstNames(g Gender) []Pool {
	if g == Woman {
		return p.Women
	}
	return p.Men
}

func (p *Pools) firstNamesIndex(g Gender) map[Language][]string {
	if g == Woman {
		return p.women
	}
	return p.men
}

// Languages returns the surname cultures in table order.
func (p *Pools) Languages() []Language {
	langs := make([]Language, len(p.Surnames))
	for i, pool := range p.Surnames {
		langs[i] = pool.Lang
	}
	return langs
}

func distinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
