// Package vars resolves predefined variables such as $guid, $today and
// $randomFullName to generated values.
//
// A key that is not predefined resolves to ("", false); callers usually
// keep the placeholder text as is.
package vars

import (
	"log/slog"

	"code.cloudfoundry.org/clock"

	"github.com/getmockd/mockvars/pkg/logging"
	"github.com/getmockd/mockvars/pkg/names"
	"github.com/getmockd/mockvars/pkg/random"
)

// Predefined variable keys. Keys are case-sensitive.
const (
	KeyGUID                  = "$guid"
	KeyNow                   = "$now"
	KeyToday                 = "$today"
	KeyRandomBirthDate       = "$randomBirthDate"
	KeyRandomBirthDateOver18 = "$randomBirthDateOver18"
	KeyRandomInt             = "$randomInt"
	KeyRandomFullName        = "$randomFullName"
	KeyRandomManFullName     = "$randomManFullName"
	KeyRandomWomanFullName   = "$randomWomanFullName"
	KeyRandomFirstName       = "$randomFirstName"
	KeyRandomManFirstName    = "$randomManFirstName"
	KeyRandomWomanFirstName  = "$randomWomanFirstName"
	KeyRandomLastName        = "$randomLastName"
)

var keys = []string{
	KeyGUID,
	KeyNow,
	KeyToday,
	KeyRandomBirthDate,
	KeyRandomBirthDateOver18,
	KeyRandomInt,
	KeyRandomFullName,
	KeyRandomManFullName,
	KeyRandomWomanFullName,
	KeyRandomFirstName,
	KeyRandomManFirstName,
	KeyRandomWomanFirstName,
	KeyRandomLastName,
}

// Keys returns the predefined variable keys in declaration order.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Resolver resolves predefined variables. It is safe for concurrent use
// when its random source is.
type Resolver struct {
	src   random.Source
	clock clock.Clock
	names *names.Synthesizer
	log   *slog.Logger
	table map[string]func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSource sets the entropy source. Defaults to random.Global().
func WithSource(src random.Source) Option {
	return func(r *Resolver) { r.src = src }
}

// WithClock sets the clock used by $now, $today and birth dates.
func WithClock(c clock.Clock) Option {
	return func(r *Resolver) { r.clock = c }
}

// WithSynthesizer sets the name synthesizer. By default one is built over
// the default pools and the resolver's source.
func WithSynthesizer(s *names.Synthesizer) Option {
	return func(r *Resolver) { r.names = s }
}

// WithLogger sets the logger. Defaults to logging.Nop().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	r.src = random.Or(r.src)
	if r.clock == nil {
		r.clock = clock.NewClock()
	}
	if r.names == nil {
		r.names = names.New(r.src)
	}
	if r.log == nil {
		r.log = logging.Nop()
	}

	r.table = map[string]func() string{
		KeyGUID:                  r.guid,
		KeyNow:                   r.now,
		KeyToday:                 r.today,
		KeyRandomBirthDate:       func() string { return r.birthDate(false) },
		KeyRandomBirthDateOver18: func() string { return r.birthDate(true) },
		KeyRandomInt:             r.randomInt,
		KeyRandomFullName:        r.names.FullName,
		KeyRandomManFullName:     func() string { return r.names.FullNameOf(names.Man) },
		KeyRandomWomanFullName:   func() string { return r.names.FullNameOf(names.Woman) },
		KeyRandomFirstName:       r.names.FirstName,
		KeyRandomManFirstName:    func() string { return r.names.FirstNameOf(names.Man) },
		KeyRandomWomanFirstName:  func() string { return r.names.FirstNameOf(names.Woman) },
		KeyRandomLastName:        r.names.Surname,
	}
	return r
}

// Resolve returns a freshly generated value for key. The second result is
// false when key is not a predefined variable.
func (r *Resolver) Resolve(key string) (string, bool) {
	gen, ok := r.table[key]
	if !ok {
		r.log.Debug("not a predefined variable", "key", key)
		return "", false
	}
	return gen(), true
}

// IsPredefined reports whether key is a predefined variable.
// It draws no entropy.
func (r *Resolver) IsPredefined(key string) bool {
	_, ok := r.table[key]
	return ok
}
