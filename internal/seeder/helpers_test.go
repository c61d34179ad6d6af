package seeder

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
	"github.com/Lumos-Labs-HQ/sampledata/internal/model"
)

var (
	reference = time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)

	emailPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+@(gmail|yahoo|outlook|company)\.com$`)
	phonePattern = regexp.MustCompile(`^\+1-[2-9]\d{2}-[2-9]\d{2}-\d{4}$`)
	moneyPattern = regexp.MustCompile(`^-?\d+\.\d{2}$`)
	ratePattern  = regexp.MustCompile(`^\d+\.\d{6}$`)
	idPatterns   = map[string]*regexp.Regexp{
		"customer":    regexp.MustCompile(`^CUST\d{6}$`),
		"account":     regexp.MustCompile(`^ACC\d{8}$`),
		"transaction": regexp.MustCompile(`^TXN\d{10}$`),
		"balance":     regexp.MustCompile(`^BAL\d{10}$`),
		"fx":          regexp.MustCompile(`^FX\d{8}$`),
	}
)

func newGenerator(seed uint64, defects config.Defects) *DataGenerator {
	return NewDataGenerator(NewSource(seed), defects, reference)
}

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

// checkRate fails when got is more than five standard deviations away
// from n×p.
func checkRate(t *testing.T, name string, got, n int, p float64) {
	t.Helper()
	want := float64(n) * p
	sd := math.Sqrt(float64(n) * p * (1 - p))
	if math.Abs(float64(got)-want) > 5*sd+1 {
		t.Errorf("%s: got %d of %d, expected about %.0f (p=%g)", name, got, n, want, p)
	}
}
