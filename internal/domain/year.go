package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// The tables cover 2014 through 2024
const (
	MinYear = 2014
	MaxYear = 2024
)

// Validation messages for the year range inputs
const (
	MsgYearLength = "'From Year' and 'To Year' must be 4-digit numbers."
	MsgYearNumber = "Please enter valid 4-digit years."
	MsgYearBounds = "Years must be between 2014 and 2024."
	MsgYearOrder  = "'From Year' should be <= 'To Year'."
)

// YearRange is an inclusive range of calendar years
type YearRange struct {
	From int
	To   int
}

// Contains reports whether t falls in the range
func (r YearRange) Contains(t time.Time) bool {
	y := t.Year()
	return y >= r.From && y <= r.To
}

func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// ValidateYears checks the raw year inputs and returns the message to show
// next to them, or "" when they form a valid range.
// Checks run in order and the first failure wins:
//  1. both values are exactly 4 characters
//  2. both values parse as integers
//  3. both values lie in [MinYear, MaxYear]
//  4. from <= to
func ValidateYears(from, to string) string {
	_, err := ParseYearRange(from, to)
	if err != nil {
		return err.Error()
	}
	return ""
}

// ParseYearRange parses and validates the raw year inputs.
// The returned error is a *ValidationError holding the same message
// ValidateYears reports.
// Length counts characters, not bytes. The number check tolerates surrounding
// whitespace, a sign, digit-separating underscores and fullwidth digits, so
// " 202" fails on bounds and "２０２０" is 2020.
func ParseYearRange(from, to string) (YearRange, error) {
	if utf8.RuneCountInString(from) != 4 || utf8.RuneCountInString(to) != 4 {
		return YearRange{}, newValidationError(MsgYearLength)
	}

	fromYear, err := parseYear(from)
	if err != nil {
		return YearRange{}, newValidationError(MsgYearNumber)
	}
	toYear, err := parseYear(to)
	if err != nil {
		return YearRange{}, newValidationError(MsgYearNumber)
	}

	if !yearInBounds(fromYear) || !yearInBounds(toYear) {
		return YearRange{}, newValidationError(MsgYearBounds)
	}
	if fromYear > toYear {
		return YearRange{}, newValidationError(MsgYearOrder)
	}

	return YearRange{From: fromYear, To: toYear}, nil
}

// ValidateYear guards a year picked from the enumerated list
func ValidateYear(year int) error {
	if !yearInBounds(year) {
		return newValidationError(fmt.Sprintf("year must be between %d and %d, got %d", MinYear, MaxYear, year))
	}
	return nil
}

// ValidateMonth guards a month picked from the enumerated list
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return newValidationError(fmt.Sprintf("month must be between 1 and 12, got %d", month))
	}
	return nil
}

// Years lists the selectable years in ascending order
func Years() []int {
	years := make([]int, 0, MaxYear-MinYear+1)
	for y := MinYear; y <= MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

// Months lists the selectable months in ascending order
func Months() []int {
	months := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, m)
	}
	return months
}

// parseYear reads a typed year the way the input field accepts it
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(width.Narrow.String(s))
	if strings.Contains(s, "_") {
		digits := strings.TrimLeft(s, "+-")
		if strings.HasPrefix(digits, "_") || strings.HasSuffix(digits, "_") || strings.Contains(digits, "__") {
			return 0, fmt.Errorf("misplaced underscore in %q", s)
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	return strconv.Atoi(s)
}

func yearInBounds(year int) bool {
	return year >= MinYear && year <= MaxYear
}
