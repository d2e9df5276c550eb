package values

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intLiteral   = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)
	floatLiteral = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

var boolWords = map[string]bool{
	"true":  true,
	"1":     true,
	"yes":   true,
	"on":    true,
	"false": false,
	"0":     false,
	"no":    false,
	"off":   false,
}

// ParseInt validates raw as a strict decimal integer literal that fits in
// bitSize bits. Surrounding whitespace is ignored; leading zeros, fractions
// and exponents are rejected.
func ParseInt(raw string, bitSize int) (int64, bool) {
	s := strings.TrimSpace(raw)
	if !intLiteral.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseUint is ParseInt for unsigned targets. A leading minus sign is only
// accepted for zero.
func ParseUint(raw string, bitSize int) (uint64, bool) {
	s := strings.TrimSpace(raw)
	if !intLiteral.MatchString(s) {
		return 0, false
	}
	if strings.HasPrefix(s, "-") {
		if s == "-0" {
			return 0, true
		}
		return 0, false
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bitSize)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseFloat validates raw as a decimal or scientific floating point literal.
// Hexadecimal forms, infinities, NaN and out of range values are rejected.
func ParseFloat(raw string, bitSize int) (float64, bool) {
	s := strings.TrimSpace(raw)
	if !floatLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseBool accepts true/false, 1/0, yes/no and on/off in any letter case.
func ParseBool(raw string) (bool, bool) {
	b, ok := boolWords[strings.ToLower(strings.TrimSpace(raw))]
	return b, ok
}
