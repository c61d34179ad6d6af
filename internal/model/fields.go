package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk format of every date column.
const DateLayout = "2006-01-02"

// Date is a calendar date, or the raw token that was injected in its place.
type Date struct {
	t     time.Time
	raw   string
	valid bool
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), valid: true}
}

// RawDate keeps an injected value verbatim. It never reports as valid,
// even when the token happens to parse.
func RawDate(s string) Date {
	return Date{raw: s}
}

func (d Date) Time() (time.Time, bool) {
	return d.t, d.valid
}

func (d Date) Valid() bool {
	return d.valid
}

func (d Date) String() string {
	if !d.valid {
		return d.raw
	}
	return d.t.Format(DateLayout)
}

// Amount is a fixed-point value rendered with a fixed number of decimal
// places, or a raw injected token.
type Amount struct {
	value  decimal.Decimal
	places int32
	raw    string
	valid  bool
}

func AmountOf(v decimal.Decimal, places int32) Amount {
	return Amount{value: v.Round(places), places: places, valid: true}
}

func RawAmount(s string) Amount {
	return Amount{raw: s}
}

func (a Amount) Decimal() (decimal.Decimal, bool) {
	return a.value, a.valid
}

func (a Amount) Valid() bool {
	return a.valid
}

func (a Amount) String() string {
	if !a.valid {
		return a.raw
	}
	return a.value.StringFixed(a.places)
}
