package reports

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// sentinel filter value meaning "no constraint".
const filterAll = "all"

// Options carries the user's filter selections into a transform. Start and
// End bound the report's date field inclusively on both ends; a zero value
// leaves that end open. Filters holds categorical selections keyed by filter
// name; missing, empty and "all" values apply no constraint.
type Options struct {
	Start   time.Time
	End     time.Time
	Filters map[string]string
	Now     time.Time
}

// Filter reports the selected value for name and whether it constrains the
// result set at all.
func (o Options) Filter(name string) (string, bool) {
	v, ok := o.Filters[name]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, filterAll) {
		return "", false
	}
	return v, true
}

// FilterID is Filter for numeric identifier filters. A non-numeric selection
// matches nothing rather than everything.
func (o Options) FilterID(name string) (int64, bool) {
	v, ok := o.Filter(name)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, true
	}
	return id, true
}

// InRange reports whether t falls inside the selected interval. Records
// without a usable date are excluded whenever either bound is set.
func (o Options) InRange(t time.Time) bool {
	if o.Start.IsZero() && o.End.IsZero() {
		return true
	}
	if t.IsZero() {
		return false
	}
	day := t.Truncate(24 * time.Hour)
	if !o.Start.IsZero() && day.Before(o.Start.Truncate(24*time.Hour)) {
		return false
	}
	if !o.End.IsZero() && day.After(o.End.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

// RangeLabel renders the selected interval for report subtitles.
func (o Options) RangeLabel() string {
	switch {
	case o.Start.IsZero() && o.End.IsZero():
		return "All dates"
	case o.Start.IsZero():
		return "Through " + fmtDate(o.End)
	case o.End.IsZero():
		return "From " + fmtDate(o.Start)
	default:
		return fmtDate(o.Start) + " to " + fmtDate(o.End)
	}
}

// clock returns the injected timestamp or the wall clock.
func (o Options) clock() time.Time {
	if !o.Now.IsZero() {
		return o.Now
	}
	return time.Now()
}

var moneyPrinter = message.NewPrinter(language.English)

func fmtMoney(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006")
}

func fmtCount(n int) string {
	return strconv.Itoa(n)
}

// fmtQuantity drops the fraction for whole quantities.
func fmtQuantity(v float64) string {
	if v == math.Trunc(v) {
		return moneyPrinter.Sprintf("%.0f", v)
	}
	return moneyPrinter.Sprintf("%.2f", v)
}

func fmtHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orNA(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "N/A"
	}
	return *s
}
