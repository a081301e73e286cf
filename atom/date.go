package atom

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/atomtree/binding"
	"github.com/tsawler/atomtree/xmltree"
)

// Date is a date construct (RFC 4287 section 3.3). A zero Time means the
// date was absent or unparseable; encoding a zero Date fails.
type Date struct {
	Common
	Time time.Time
}

// NewDate returns a date construct for t.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// DecodeDate decodes a date-construct element. Unparseable text degrades
// to a zero time.
func DecodeDate(el *xmltree.Element) binding.Node {
	d := new(Date)
	d.ReadXML(el, nil)
	return d
}

// ReadXML fills the construct from el.
func (d *Date) ReadXML(el *xmltree.Element, disp *binding.Dispatch) {
	d.Time = ParseDate(xmltree.InnerText(el))
	d.Common.ReadXML(el, disp)
}

// StandardTag returns the zero name: a date construct is always encoded
// under a caller-supplied tag (updated, published, ...).
func (d *Date) StandardTag() xmltree.Name {
	return xmltree.Name{}
}

// Populate implements binding.Node. The time is required.
func (d *Date) Populate(el *xmltree.Element) error {
	if d.Time.IsZero() {
		return &binding.IncompleteObjectError{Type: "atom date construct", Field: "time"}
	}
	return d.PrepareXML(el)
}

// PrepareXML writes the construct onto el.
func (d *Date) PrepareXML(el *xmltree.Element) error {
	if err := d.Common.PrepareXML(el); err != nil {
		return err
	}
	el.Text = FormatDate(d.Time)
	return nil
}

var dateRe = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(\.\d+)?(Z|[-+]\d{2}:\d{2})$`)

// ParseDate parses an RFC 3339 style timestamp:
// YYYY-MM-DDThh:mm:ss[.fraction](Z|±hh:mm). It returns the zero time for
// anything that does not match.
func ParseDate(s string) time.Time {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	sec, _ := strconv.Atoi(m[6])

	nsec := 0
	if m[7] != "" {
		frac, _ := strconv.ParseFloat(m[7], 64)
		nsec = int(frac * 1e9)
	}

	loc := time.UTC
	if m[8] != "Z" {
		sign := 1
		if m[8][0] == '-' {
			sign = -1
		}
		offHour, _ := strconv.Atoi(m[8][1:3])
		offMin, _ := strconv.Atoi(m[8][4:6])
		loc = time.FixedZone(m[8], sign*(offHour*3600+offMin*60))
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc)
}

// FormatDate renders a timestamp in the same grammar, always with an
// explicit offset or Z and with trailing zeros trimmed off the fraction.
func FormatDate(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if ns := t.Nanosecond(); ns != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	_, off := t.Zone()
	if off == 0 {
		return s + "Z"
	}
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return s + fmt.Sprintf("%s%02d:%02d", sign, off/3600, (off%3600)/60)
}
