package profiler

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Each aggregate must stay on one line of the log.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// formatTimestamp renders t without zero padding, e.g. "2024-3-5 7:8:9".
func formatTimestamp(t time.Time) string {
	return fmt.Sprintf(
		"%d-%d-%d %d:%d:%d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)
}

// formatNumber renders like a default C++ ostream: %g with 6 significant digits.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatAggregate(a Aggregate) string {
	return fmt.Sprintf(
		"%v (%v) Max = %v Min = %v Avg = %v",
		lineBreaks.Replace(a.Name), a.Count, formatNumber(a.Max), formatNumber(a.Min), formatNumber(a.Avg),
	)
}

func writeReport(w io.Writer, now time.Time, aggs []Aggregate) error {
	if _, err := fmt.Fprintln(w, formatTimestamp(now)); err != nil {
		return err
	}
	for _, a := range aggs {
		if _, err := fmt.Fprintln(w, formatAggregate(a)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
