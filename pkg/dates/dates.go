package dates

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Layout is the wire format for calendar dates across the API and storage.
const Layout = "2006-01-02"

// Date is a calendar day with no time-of-day component. Rental and
// maintenance windows are closed intervals of Dates, inclusive on both ends.
type Date struct {
	t time.Time
}

// New builds a Date from year/month/day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in UTC.
func Today() Date {
	now := time.Now().UTC()
	return New(now.Year(), now.Month(), now.Day())
}

// Parse converts a "2006-01-02" string into a Date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format %s", s, Layout)
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(Layout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to o. Negative when o
// is before d.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

// Overlaps reports whether the closed intervals [startA, endA] and
// [startB, endB] intersect. Both boundaries count: two windows that share a
// single day conflict. Rentals are billed in whole days, so a vehicle
// returned on day D cannot also go out on day D.
func Overlaps(startA, endA, startB, endB Date) bool {
	return !(endA.Before(startB) || endB.Before(startA))
}

// Covers reports whether day lies inside the closed interval [start, end].
func Covers(start, end, day Date) bool {
	return !day.Before(start) && !day.After(end)
}

// BilledDays returns the billable duration of [start, end] with a minimum
// charge of one day, so a same-day rental still bills one full day.
func BilledDays(start, end Date) int {
	days := start.DaysUntil(end)
	if days <= 0 {
		return 1
	}
	return days
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", data)
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalBSONValue stores the date as its string form so documents stay
// readable and lexicographically sortable by date.
func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
