package annotate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// calledBy separates a duration report from its call-site annotation.
const calledBy = " CALLED BY "

// reportPattern matches a duration report such as
//
//	User Load (0.3ms)  SELECT "users".* FROM "users"
//	Query (0.002 seconds)  SELECT 1
//
// optionally wrapped in SGR color sequences. Groups: label, number, unit,
// remainder.
var reportPattern = regexp.MustCompile(
	`(?m)^\s*(?:\x1b\[[0-9;]*m)*([^(]*)\(([0-9.]+)\s*(seconds?|[mnu]?s)\)(?:\x1b\[[0-9;]*m)*\s*(.*)`,
)

// annotatedPattern matches a message that already ends with a call site,
// ignoring trailing whitespace.
var annotatedPattern = regexp.MustCompile(`(?s)` + calledBy + `'.*'\s*\z`)

// Match reports whether s has the shape of a duration report that has not
// been annotated yet.
func Match(s string) bool {
	return reportPattern.MatchString(s) && !annotatedPattern.MatchString(s)
}

// Report holds the parts of a duration report.
type Report struct {
	Label  string // text before the parenthesized duration, trimmed
	Number string // duration value as written
	Unit   string // s, ms, us, ns, second, or seconds
	Rest   string // text after the duration, e.g. the SQL statement
}

// ParseReport splits s into its report parts. It returns false if s does
// not satisfy [Match].
func ParseReport(s string) (Report, bool) {
	if !Match(s) {
		return Report{}, false
	}

	m := reportPattern.FindStringSubmatch(s)

	return Report{
		Label:  strings.TrimSpace(m[1]),
		Number: m[2],
		Unit:   m[3],
		Rest:   m[4],
	}, true
}

// unitScale converts a report unit to seconds.
var unitScale = map[string]float64{
	"s":       1,
	"second":  1,
	"seconds": 1,
	"ms":      1e-3,
	"us":      1e-6,
	"ns":      1e-9,
}

// Seconds returns the reported duration in seconds, or 0 if the number
// does not parse.
func (r Report) Seconds() float64 {
	n, err := strconv.ParseFloat(r.Number, 64)
	if err != nil {
		return 0
	}

	return n * unitScale[r.Unit]
}

// Duration returns the reported duration.
func (r Report) Duration() time.Duration {
	return time.Duration(r.Seconds() * float64(time.Second))
}
