package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"rangeseek/eui"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// formatPrice renders a price bar value as whole dollars with separators.
func formatPrice(v float32) string {
	return "$" + humanize.Commaf(math.Round(float64(v)))
}

// trimFormatter renders a percentage of a clip of the given length as a
// short duration.
func trimFormatter(length time.Duration) func(float32) string {
	return func(pct float32) string {
		d := time.Duration(float64(length) * float64(pct) / 100).Round(time.Second)
		if d <= 0 {
			return "0 s"
		}
		return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
	}
}

// rangesText describes every bar selection, one per line, for the clipboard.
func rangesText(bars []*eui.RangeBar) string {
	var sb strings.Builder
	for _, rb := range bars {
		fmt.Fprintf(&sb, "%s: %s\n", rb.Label, rb.Readout())
	}
	return sb.String()
}
