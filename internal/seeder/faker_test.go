package seeder

import (
	"slices"
	"testing"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
)

func TestEmail(t *testing.T) {
	g := newGenerator(1, config.Defects{EmailRate: 1})

	for i := 0; i < 200; i++ {
		if got := g.Email("John", "Smith", false); !emailPattern.MatchString(got) {
			t.Fatalf("Expected a clean email, got %q", got)
		}
	}

	allowed := []string{"john@", "john.smith", "john@invalid", ""}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got := g.Email("John", "Smith", true)
		if !slices.Contains(allowed, got) {
			t.Fatalf("Unexpected defect email %q", got)
		}
		seen[got] = true
	}
	if len(seen) != len(allowed) {
		t.Errorf("Expected every defect form to appear, saw %v", seen)
	}

	if n := g.Tally()[BadEmail]; n != 200 {
		t.Errorf("Expected 200 bad emails tallied, got %d", n)
	}
}

func TestEmailZeroRateNeverInjects(t *testing.T) {
	g := newGenerator(2, config.Defects{})
	for i := 0; i < 500; i++ {
		if got := g.Email("Jane", "Doe", true); !emailPattern.MatchString(got) {
			t.Fatalf("Expected a clean email with zero rate, got %q", got)
		}
	}
}

func TestPhone(t *testing.T) {
	g := newGenerator(3, config.Defects{PhoneRate: 1})

	for i := 0; i < 500; i++ {
		if got := g.Phone(false); !phonePattern.MatchString(got) {
			t.Fatalf("Expected a clean phone, got %q", got)
		}
	}

	for i := 0; i < 200; i++ {
		got := g.Phone(true)
		if !slices.Contains(badPhones, got) {
			t.Fatalf("Unexpected defect phone %q", got)
		}
		if phonePattern.MatchString(got) {
			t.Fatalf("Defect phone %q passes the phone format", got)
		}
	}
}

func TestDate(t *testing.T) {
	g := newGenerator(4, config.Defects{DateRate: 1})

	lo := reference.AddDate(0, 0, -30)
	hi := reference.AddDate(0, 0, 30)
	for i := 0; i < 500; i++ {
		d := g.Date(reference, 30, false)
		tm, ok := d.Time()
		if !ok {
			t.Fatalf("Expected a valid date, got raw %q", d.String())
		}
		if tm.Before(lo) || tm.After(hi) {
			t.Fatalf("Date %s outside ±30 days of %s", d, reference.Format("2006-01-02"))
		}
		if !validDate(d.String()) {
			t.Fatalf("Date %q does not parse", d.String())
		}
	}

	for i := 0; i < 200; i++ {
		d := g.Date(reference, 30, true)
		if d.Valid() {
			t.Fatalf("Defect date %q reported as valid", d.String())
		}
		if !slices.Contains(badDates, d.String()) {
			t.Fatalf("Unexpected defect date %q", d.String())
		}
	}
}

func TestSameSeedSameValues(t *testing.T) {
	a := newGenerator(99, config.Default().Defects)
	b := newGenerator(99, config.Default().Defects)

	for i := 0; i < 100; i++ {
		if x, y := a.Phone(true), b.Phone(true); x != y {
			t.Fatalf("Expected identical sequences, got %q and %q", x, y)
		}
	}
}
