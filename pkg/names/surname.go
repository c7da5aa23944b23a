package names

import (
	"strings"

	"github.com/getmockd/mockvars/pkg/random"
)

// Structure is the shape of a surname clause chosen by decideStructure.
// It is either MiddleNameStructure or CrossCultureStructure.
type Structure interface {
	structure()
}

// MiddleNameStructure is the English form: a second first name followed by
// a single surname.
type MiddleNameStructure struct {
	MiddleName string
	Surname    string
}

// CrossCultureStructure holds two surnames, possibly of different cultures.
type CrossCultureStructure struct {
	First  string
	Second string
	// FeminineInflection appends "a" to components ending in "v".
	FeminineInflection bool
	// SpanishJoin renders "de {First} y {Second}".
	SpanishJoin bool
}

func (MiddleNameStructure) structure()   {}
func (CrossCultureStructure) structure() {}

// Probabilities in tenths.
const (
	middleNameChance  = 8
	spanishJoinChance = 4
	swapChance        = 5
)

// decideStructure draws the components of a surname clause. Draw order is
// fixed; changing it changes seeded output.
func (s *Synthesizer) decideStructure(lang1 Language, firstName string, g Gender) Structure {
	surname1 := random.Pick(s.src, s.pools.surnames[lang1])

	if lang1 == English && random.Chance(s.src, middleNameChance) {
		candidates := s.pools.firstNamesIndex(g)[lang1]
		middle := random.Pick(s.src, candidates)
		for middle == firstName {
			middle = random.Pick(s.src, candidates)
		}
		return MiddleNameStructure{MiddleName: middle, Surname: surname1}
	}

	var lang2 Language
	var surname2 string
	for {
		pool := random.Pick(s.src, s.pools.Surnames)
		lang2 = pool.Lang
		surname2 = random.Pick(s.src, pool.Names)
		// English is never the second culture.
		if surname2 != surname1 && lang2 != English {
			break
		}
	}

	join := lang1 == Spanish && lang2 == Spanish && random.Chance(s.src, spanishJoinChance)

	first, second := surname1, surname2
	if random.Chance(s.src, swapChance) {
		first, second = second, first
	}

	return CrossCultureStructure{
		First:              first,
		Second:             second,
		FeminineInflection: lang1 == Russian && g == Woman,
		SpanishJoin:        join,
	}
}

// render formats a Structure. It draws nothing.
func render(st Structure) string {
	switch st := st.(type) {
	case MiddleNameStructure:
		return st.MiddleName + " " + normalizeParticle(st.Surname)
	case CrossCultureStructure:
		if st.SpanishJoin {
			return "de " + st.First + " y " + st.Second
		}
		first := normalizeParticle(st.First)
		second := normalizeParticle(st.Second)
		if st.FeminineInflection {
			first = feminine(first)
			second = feminine(second)
		}
		return first + " " + second
	}
	return ""
}

func normalizeParticle(surname string) string {
	if surname == "La Cruz" {
		return "de La Cruz"
	}
	return surname
}

func feminine(surname string) string {
	if strings.HasSuffix(surname, "v") {
		return surname + "a"
	}
	return surname
}
