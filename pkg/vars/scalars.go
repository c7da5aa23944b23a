package vars

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/getmockd/mockvars/pkg/random"
)

// Layouts for generated dates and times.
const (
	// NowLayout keeps seven fractional digits and a numeric offset, so
	// values round-trip through time.Parse.
	NowLayout  = "2006-01-02T15:04:05.0000000-07:00"
	DateLayout = "2006-01-02"
)

// Birth dates are today minus a day count in [min, max).
const (
	birthDateMaxDays     = 365 * 100
	birthDateMinDays     = 1
	birthDateMinDaysOf18 = 365 * 18
)

func (r *Resolver) guid() string {
	id, err := uuid.NewRandomFromReader(random.Reader{Src: r.src})
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (r *Resolver) now() string {
	return r.clock.Now().Format(NowLayout)
}

func (r *Resolver) today() string {
	return r.clock.Now().Format(DateLayout)
}

func (r *Resolver) birthDate(atLeast18 bool) string {
	minDays := birthDateMinDays
	if atLeast18 {
		minDays = birthDateMinDaysOf18
	}
	days := minDays + r.src.IntN(birthDateMaxDays-minDays)
	return r.clock.Now().AddDate(0, 0, -days).Format(DateLayout)
}

// randomInt covers the full int64 range.
func (r *Resolver) randomInt() string {
	return strconv.FormatInt(int64(r.src.Uint64()), 10)
}
