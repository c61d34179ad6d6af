package seeder

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
)

// NewSource returns a deterministic random source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DataGenerator produces field values and entity collections from a single
// random source. It is not safe for concurrent use.
type DataGenerator struct {
	rand      *rand.Rand
	defects   config.Defects
	reference time.Time
	tally     Tally
}

func NewDataGenerator(r *rand.Rand, defects config.Defects, reference time.Time) *DataGenerator {
	return &DataGenerator{
		rand:      r,
		defects:   defects,
		reference: reference,
		tally:     make(Tally),
	}
}

// Tally returns a copy of the defects injected so far.
func (g *DataGenerator) Tally() Tally {
	out := make(Tally, len(g.tally))
	for k, v := range g.tally {
		out[k] = v
	}
	return out
}

func (g *DataGenerator) chance(p float64) bool {
	return g.rand.Float64() < p
}

// intRange draws from [lo, hi] inclusive.
func (g *DataGenerator) intRange(lo, hi int) int {
	return lo + g.rand.IntN(hi-lo+1)
}

func (g *DataGenerator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rand.Float64()
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// Email returns first.last@domain, lower-cased. When inject is set it is
// replaced by a malformed address with the configured email rate.
func (g *DataGenerator) Email(first, last string, inject bool) string {
	first, last = strings.ToLower(first), strings.ToLower(last)
	if inject && g.chance(g.defects.EmailRate) {
		g.tally.Add(BadEmail)
		return pick(g.rand, badEmailForms)(first, last)
	}
	return fmt.Sprintf("%s.%s@%s", first, last, pick(g.rand, emailDomains))
}

// Phone returns +1-NNN-NNN-NNNN with area and exchange codes in 200-999.
func (g *DataGenerator) Phone(inject bool) string {
	if inject && g.chance(g.defects.PhoneRate) {
		g.tally.Add(BadPhone)
		return pick(g.rand, badPhones)
	}
	return fmt.Sprintf("+1-%d-%d-%d", g.intRange(200, 999), g.intRange(200, 999), g.intRange(1000, 9999))
}

// Date returns a day within base ± days.
func (g *DataGenerator) Date(base time.Time, days int, inject bool) model.Date {
	if inject && g.chance(g.defects.DateRate) {
		g.tally.Add(BadDate)
		return model.RawDate(pick(g.rand, badDates))
	}
	offset := g.intRange(-days, days)
	return model.DateOf(base.AddDate(0, 0, offset))
}
