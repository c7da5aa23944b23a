package names

import (
	"fmt"

	"github.com/getmockd/mockvars/pkg/random"
)

// Synthesizer generates first names, surnames and full names from Pools.
// It holds no mutable state of its own and is safe for concurrent use when
// its Source is.
type Synthesizer struct {
	pools *Pools
	src   random.Source
}

// New creates a synthesizer over the default pools.
// A nil src uses random.Global().
func New(src random.Source) *Synthesizer {
	return NewWithPools(DefaultPools(), src)
}

// NewWithPools creates a synthesizer over custom pools, which must come from
// LoadPools. A nil pools uses DefaultPools.
func NewWithPools(pools *Pools, src random.Source) *Synthesizer {
	if pools == nil {
		pools = DefaultPools()
	}
	return &Synthesizer{pools: pools, src: random.Or(src)}
}

// Pools returns the pools the synthesizer draws from.
func (s *Synthesizer) Pools() *Pools {
	return s.pools
}

// RandomGender picks Woman or Man with equal probability.
func (s *Synthesizer) RandomGender() Gender {
	if random.Chance(s.src, 5) {
		return Woman
	}
	return Man
}

// FirstName returns a first name of a random gender.
func (s *Synthesizer) FirstName() string {
	return s.FirstNameOf(s.RandomGender())
}

// FirstNameOf returns a first name of gender g from a random culture.
func (s *Synthesizer) FirstNameOf(g Gender) string {
	_, name := s.drawFirstName(g)
	return name
}

// drawFirstName picks a culture, then a name within it.
func (s *Synthesizer) drawFirstName(g Gender) (Language, string) {
	pool := random.Pick(s.src, s.pools.firstNames(g))
	return pool.Lang, random.Pick(s.src, pool.Names)
}

// Surname returns a standalone surname clause. The clause is composed for
// a random first name and treated as a man's for inflection.
func (s *Synthesizer) Surname() string {
	lang := random.Pick(s.src, s.pools.Surnames).Lang
	firstName := s.FirstName()
	return s.composeSurname(lang, firstName, Man)
}

// FullName returns a full name of a random gender.
func (s *Synthesizer) FullName() string {
	return s.FullNameOf(s.RandomGender())
}

// FullNameOf returns "{first name} {surname clause}" for gender g.
func (s *Synthesizer) FullNameOf(g Gender) string {
	lang, firstName := s.drawFirstName(g)
	return firstName + " " + s.composeSurname(lang, firstName, g)
}

// ComposeSurname builds the surname clause for firstName in culture lang.
func (s *Synthesizer) ComposeSurname(lang Language, firstName string, g Gender) (string, error) {
	if _, ok := s.pools.surnames[lang]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if _, ok := s.pools.firstNamesIndex(g)[lang]; !ok && lang == English {
		return "", fmt.Errorf("%w: no %s first names for %q", ErrUnknownLanguage, g, lang)
	}
	return s.composeSurname(lang, firstName, g), nil
}

func (s *Synthesizer) composeSurname(lang Language, firstName string, g Gender) string {
	return render(s.decideStructure(lang, firstName, g))
}
