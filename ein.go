// Package ein validates and masks Employer Identification Numbers, the
// nine-digit identifiers the IRS assigns to business entities.
//
// Only the structure and the issuing campus prefix are checked; no lookup
// against a registry of real businesses is made.
package ein

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

const maskChar = "X"

var (
	strictExpr = regexp.MustCompile(`^\d{9}$`)
	formatExpr = regexp.MustCompile(`^\d{2}[- ]?\d{7}$`)
	wordExpr   = regexp.MustCompile(`\w`)
	sepExpr    = regexp.MustCompile(`[- ]`)
)

// ErrInvalidEin matches any *InvalidEinError under errors.Is.
var ErrInvalidEin = errors.New("invalid Employer Identification Number")

type InvalidEinError struct {
	Value string
	Mode  ValidationMode
}

func (e *InvalidEinError) Error() string {
	return fmt.Sprintf("%v: %q (mode %v)", ErrInvalidEin, e.Value, e.Mode)
}

func (e *InvalidEinError) Is(target error) bool {
	return target == ErrInvalidEin
}

// Prefixes returns every campus prefix in table order. Prefixes shared by
// several campuses appear once per campus.
func Prefixes() []string {
	var prefixes []string
	for _, c := range campuses {
		prefixes = append(prefixes, c.Prefixes...)
	}
	return prefixes
}

func Campuses() []Campus {
	out := make([]Campus, len(campuses))
	for i, c := range campuses {
		out[i] = Campus{Name: c.Name, Prefixes: slices.Clone(c.Prefixes)}
	}
	return out
}

// CampusesFor returns the names of the campuses that issue prefix.
func CampusesFor(prefix string) []string {
	var names []string
	for _, c := range campuses {
		if slices.Contains(c.Prefixes, prefix) {
			names = append(names, c.Name)
		}
	}
	return names
}

func MatchesStrict(s string) bool {
	return strictExpr.MatchString(s)
}

func MatchesFormat(s string) bool {
	return formatExpr.MatchString(s)
}

// IsValid reports whether value is an EIN under mode. It never fails; any
// malformed input yields false. Unknown modes are treated as ModeFormat.
func IsValid(value string, mode ValidationMode) bool {
	var ok bool
	switch mode {
	case ModeStrict:
		ok = MatchesStrict(value)
	case ModeStrippedStrict:
		value = sepExpr.ReplaceAllString(value, "")
		ok = MatchesStrict(value)
	default:
		ok = MatchesFormat(value)
	}
	if !ok {
		return false
	}

	return slices.Contains(Prefixes(), value[0:2])
}

// Mask replaces every letter and digit of value with "X" except the last
// four characters, e.g. "12-3456789" becomes "XX-XXX6789". Separators keep
// their position. Values rejected by IsValid yield an *InvalidEinError.
func Mask(value string, mode ValidationMode) (string, error) {
	if !IsValid(value, mode) {
		return "", &InvalidEinError{Value: value, Mode: mode}
	}

	cut := len(value) - 4
	var b strings.Builder
	b.Grow(len(value))
	b.WriteString(wordExpr.ReplaceAllString(value[:cut], maskChar))
	b.WriteString(value[cut:])
	return b.String(), nil
}
