// Package names synthesizes culturally plausible first names, surnames and
// full names for Portuguese, Italian, English, Russian and Spanish.
//
// # Composition rules
//
// A full name is one first name followed by a surname clause. The clause is
// built in two stages: a structure is drawn, then rendered.
//
//   - English: 80% of the time the clause is a middle name (another English
//     first name of the same gender, never equal to the first name)
//     followed by one English surname.
//   - Otherwise two different surnames are drawn, the second from any
//     culture except English. The order is swapped half the time.
//   - When both cultures are Spanish the pair is joined as "de X y Y" 40% of
//     the time.
//   - Russian women's surnames ending in "v" take the feminine "a".
//   - "La Cruz" is rendered with its particle, "de La Cruz".
//
// # Pools
//
// Name tables are embedded from pools.yaml and validated once at init.
// Custom tables can be loaded with LoadPools and passed to NewWithPools.
//
// # Reproducibility
//
// All draws go through a random.Source. A seeded source yields the same
// names in the same order:
//
//	s := names.New(random.NewSeeded(42))
//	s.FullName() // same value on every run
package names
