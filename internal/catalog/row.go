package catalog

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Row is one catalog entry. Rows are values and are never modified once the
// store hands them out.
type Row struct {
	ID       int
	Article  string
	Name     string
	Category string // empty means uncategorized
	Material string // empty means no material tag
	Price    int
}

// ParsePrice reads a leading integer the way a browser's parseInt does and
// returns 0 for anything that does not start with digits.
//
//	ParsePrice(" 1500")   == 1500
//	ParsePrice("1500.90") == 1500
//	ParsePrice("12abc")   == 12
//	ParsePrice("abc")     == 0
func ParsePrice(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return 0
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > math.MaxInt || n < math.MinInt {
		return 0
	}
	if neg {
		n = -n
	}
	return int(n)
}

// priceValue normalises a decoded document value into a price.
func priceValue(v any) int {
	switch p := v.(type) {
	case int:
		return p
	case int64:
		return int(p)
	case uint64:
		if p > math.MaxInt {
			return 0
		}
		return int(p)
	case float64:
		if math.IsNaN(p) || math.IsInf(p, 0) || p >= math.MaxInt || p < math.MinInt {
			return 0
		}
		return int(p)
	case string:
		return ParsePrice(p)
	default:
		return 0
	}
}
