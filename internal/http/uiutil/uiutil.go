package uiutil

import (
	"math"
	"strconv"
	"strings"
)

// byteUnits are the binary-prefixed units used for file sizes.
var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"} //nolint:gochecknoglobals // read-only unit table

// FormatBytes renders a byte count with 1024-based units, rounded to two
// decimals with trailing zeros trimmed: 0 → "0 Bytes", 1536 → "1.5 KB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	v := float64(n)
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	// 1023.999 KB rounds to 1024; promote it to the next unit.
	if math.Round(v*100)/100 >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	return trimFloat(v, 2) + " " + byteUnits[i]
}

// FormatPercent renders part/whole as a percentage with one decimal place.
// A zero whole renders as "0%".
func FormatPercent(part, whole int) string {
	if whole <= 0 {
		return "0%"
	}
	return trimFloat(float64(part)*100/float64(whole), 1) + "%"
}

// FormatRatio renders a 0..1 ratio as a percentage.
func FormatRatio(r float64) string {
	return trimFloat(r*100, 2) + "%"
}

// trimFloat rounds v to prec decimals and drops trailing zeros.
func trimFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Truncate keeps the first limit runes of text and appends "..." when
// anything was cut.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
