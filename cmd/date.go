package cmd

import (
	"fmt"
	"regexp"
	"time"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// parseYearMonth parses a 'yyyy-mm' argument into its year and month.
func parseYearMonth(ds string) (year int, month int, err error) {
	if !yearMonthPattern.MatchString(ds) {
		return 0, 0, fmt.Errorf("invalid month format %q (want yyyy-mm)", ds)
	}
	date, err := time.Parse("2006-01", ds)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing month %q: %w", ds, err)
	}
	return date.Year(), int(date.Month()), nil
}
