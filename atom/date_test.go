package atom

import (
	"errors"
	"testing"
	"time"

	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2003-12-13T18:30:02Z", time.Date(2003, 12, 13, 18, 30, 2, 0, time.UTC)},
		{"2003-12-13T18:30:02.25Z", time.Date(2003, 12, 13, 18, 30, 2, 250000000, time.UTC)},
		{
			"2003-12-13T18:30:02+01:00",
			time.Date(2003, 12, 13, 18, 30, 2, 0, time.FixedZone("+01:00", 3600)),
		},
		{
			"2003-12-13T18:30:02.25-05:30",
			time.Date(2003, 12, 13, 18, 30, 2, 250000000, time.FixedZone("-05:30", -(5*3600+1800))),
		},
		{" 2003-12-13T18:30:02Z ", time.Date(2003, 12, 13, 18, 30, 2, 0, time.UTC)},
	}
	for _, c := range cases {
		got := ParseDate(c.in)
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	// A date alone, a missing zone, a missing T separator, an offset
	// without a colon, a two-digit year: none of these match the grammar.
	cases := []string{
		"",
		"not a date",
		"2003-12-13",
		"2003-12-13T18:30:02",
		"2003-12-13 18:30:02Z",
		"2003-12-13T18:30:02+0100",
		"03-12-13T18:30:02Z",
	}
	for _, c := range cases {
		if got := ParseDate(c); !got.IsZero() {
			t.Errorf("ParseDate(%q) = %v, want zero time", c, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2003, 12, 13, 18, 30, 2, 0, time.UTC), "2003-12-13T18:30:02Z"},
		{time.Date(2003, 12, 13, 18, 30, 2, 250000000, time.UTC), "2003-12-13T18:30:02.25Z"},
		{
			time.Date(2003, 12, 13, 18, 30, 2, 0, time.FixedZone("", 3600)),
			"2003-12-13T18:30:02+01:00",
		},
		{
			time.Date(2003, 12, 13, 18, 30, 2, 0, time.FixedZone("", -(5*3600+1800))),
			"2003-12-13T18:30:02-05:30",
		},
	}
	for _, c := range cases {
		if got := FormatDate(c.in); got != c.want {
			t.Errorf("FormatDate(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	in := "2003-12-13T18:30:02.125+02:00"
	if got := FormatDate(ParseDate(in)); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

func TestDate_PopulateRequiresTime(t *testing.T) {
	el := xmltree.NewRoot(name("updated"))
	err := new(Date).Populate(el)

	var incomplete *binding.IncompleteObjectError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Populate() error = %v, want *binding.IncompleteObjectError", err)
	}
	if incomplete.Field != "time" {
		t.Errorf("missing field = %q, want %q", incomplete.Field, "time")
	}
}

func TestDecodeDate_UnparseableDegrades(t *testing.T) {
	el := xmltree.NewRoot(name("updated"))
	el.Text = "yesterday-ish"

	d := DecodeDate(el).(*Date)
	if !d.Time.IsZero() {
		t.Errorf("Time = %v, want zero", d.Time)
	}
}
