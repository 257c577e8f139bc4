// Package format renders values the way the dashboard displays them (pt-BR).
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the storage layout of date-only fields.
const DateLayout = "2006-01-02"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats v as Brazilian reais, e.g. "R$ 1.500,00".
func Currency(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// Number formats an integer with pt-BR grouping, e.g. "340.000".
func Number(v int64) string {
	return printer.Sprintf("%d", v)
}

// Date converts YYYY-MM-DD into DD/MM/YYYY. Unparseable input is returned unchanged.
func Date(v string) string {
	if v == "" {
		return "-"
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return v
	}
	return t.Format("02/01/2006")
}

// Percent returns part/total*100 rounded to one decimal; zero when total is zero.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round1(part / total * 100)
}

// Change returns the relative change from previous to current in percent, one decimal.
func Change(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1((current - previous) / previous * 100)
}

// PercentLabel renders a percentage with one decimal, e.g. "93.3%".
func PercentLabel(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// SignedPercentLabel renders a change with an explicit sign, e.g. "+1.2%".
func SignedPercentLabel(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CompactCurrency abbreviates large amounts the way the overview cards show them,
// e.g. "R$ 900K" or "R$ 1.23M".
func CompactCurrency(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("R$ %sM", trimZeros(fmt.Sprintf("%.2f", v/1_000_000)))
	case abs >= 1_000:
		return fmt.Sprintf("R$ %sK", trimZeros(fmt.Sprintf("%.1f", v/1_000)))
	default:
		return fmt.Sprintf("R$ %.0f", v)
	}
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
