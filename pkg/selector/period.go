package selector

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nikogura/cv-tailor/pkg/textutil"
	"github.com/pkg/errors"
)

// PeriodOrder breaks score ties between two period display strings. It returns a
// negative number when a ranks ahead of b, positive when b ranks ahead, zero otherwise.
type PeriodOrder func(a, b string) int

// LexicalPeriodOrder ranks the period string that sorts later first. It is a plain
// string comparison, so "2023 -- Present" ranks ahead of "2020 -- 2022" but periods
// written in different formats may not follow the calendar.
func LexicalPeriodOrder(a, b string) (cmp int) {
	cmp = strings.Compare(b, a)
	return cmp
}

// ChronologicalPeriodOrder ranks by parsed end year, then start year, most recent
// first. "Present" is open-ended. Periods without a four-digit year rank last, and
// anything still tied falls back to LexicalPeriodOrder.
func ChronologicalPeriodOrder(a, b string) (cmp int) {
	ra, okA := parsePeriod(a)
	rb, okB := parsePeriod(b)

	switch {
	case okA && !okB:
		cmp = -1
		return cmp
	case !okA && okB:
		cmp = 1
		return cmp
	case okA && okB:
		if ra.end != rb.end {
			cmp = compareDesc(ra.end, rb.end)
			return cmp
		}
		if ra.start != rb.start {
			cmp = compareDesc(ra.start, rb.start)
			return cmp
		}
	}

	cmp = LexicalPeriodOrder(a, b)
	return cmp
}

const (
	// TieBreakLexical is the configuration name of LexicalPeriodOrder.
	TieBreakLexical = "lexical"
	// TieBreakChronological is the configuration name of ChronologicalPeriodOrder.
	TieBreakChronological = "chronological"
)

//nolint:gochecknoglobals // Tie-break registry
var PeriodOrders = map[string]PeriodOrder{
	TieBreakLexical:       LexicalPeriodOrder,
	TieBreakChronological: ChronologicalPeriodOrder,
}

// PeriodOrderByName looks up a registered tie-break. An empty name selects the default.
func PeriodOrderByName(name string) (order PeriodOrder, err error) {
	if name == "" {
		name = TieBreakLexical
	}

	order, ok := PeriodOrders[name]
	if !ok {
		err = errors.Errorf("unknown tie-break %q (want %s or %s)", name, TieBreakLexical, TieBreakChronological)
		return order, err
	}

	return order, err
}

//nolint:gochecknoglobals // Compiled once
var yearPattern = regexp.MustCompile(`\d{4}`)

type yearRange struct {
	start int
	end   int
}

func parsePeriod(period string) (r yearRange, ok bool) {
	years := yearPattern.FindAllString(period, -1)
	if len(years) == 0 {
		return r, ok
	}

	// Four digits always fit in an int.
	r.start, _ = strconv.Atoi(years[0])
	r.end, _ = strconv.Atoi(years[len(years)-1])

	if strings.Contains(textutil.Fold(period), "present") {
		r.end = math.MaxInt
	}

	ok = true
	return r, ok
}

func compareDesc(a, b int) (cmp int) {
	switch {
	case a > b:
		cmp = -1
	case a < b:
		cmp = 1
	}
	return cmp
}
