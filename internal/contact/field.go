// Package contact defines the validated value types and the Record entity
// for a single client: name, phone numbers, and birthday.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BirthdayFormat is the fixed textual layout for birthdays (DD-MM-YYYY).
const BirthdayFormat = "02-01-2006"

// Sentinel errors for caller-checkable validation failures.
var (
	ErrEmptyName       = errors.New("contact: name cannot be empty")
	ErrInvalidPhone    = errors.New("contact: invalid phone number")
	ErrInvalidBirthday = errors.New("contact: invalid birthday")
)

// phonePattern matches exactly ten ASCII digits, no separators or country code.
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Name is a value object holding a client identifier.
// Always valid in memory; use NewName to construct.
type Name struct {
	value string
}

// NewName creates a Name from a raw string. Any non-empty string is
// accepted; strings that are empty after trimming whitespace are not.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }

// Phone is a value object holding a ten-digit phone number.
// Always valid in memory; use NewPhone to construct.
type Phone struct {
	value string
}

// NewPhone creates a Phone from a raw string. The value must be exactly
// ten characters long and every character must be an ASCII decimal digit.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, fmt.Errorf("%w: %q must be exactly 10 digits, got length %d",
			ErrInvalidPhone, raw, len(raw))
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a value object holding a calendar date. The zero value is
// the unset state, which is valid.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a birthday from its DD-MM-YYYY textual form.
// Impossible calendar dates ("31-02-2021") are rejected. An empty
// string yields the unset Birthday.
func NewBirthday(raw string) (Birthday, error) {
	if raw == "" {
		return Birthday{}, nil
	}
	d, err := time.Parse(BirthdayFormat, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q is not a valid DD-MM-YYYY date", ErrInvalidBirthday, raw)
	}
	return Birthday{date: d}, nil
}

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// Date returns the stored calendar date. Meaningful only when !IsZero().
func (b Birthday) Date() time.Time { return b.date }

// String renders the date as DD-MM-YYYY, or "" when unset.
func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(BirthdayFormat)
}
