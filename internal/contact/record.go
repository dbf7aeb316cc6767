package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for caller-checkable record conditions.
var (
	ErrPhoneNotFound = errors.New("contact: phone not found")
	ErrNoBirthday    = errors.New("contact: no birthday set")
)

// Record holds one client's data: a name fixed at construction, an
// insertion-ordered list of phone numbers, and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// New constructs a Record with no phones. birthday may be "" for unset.
func New(name, birthday string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	b, err := NewBirthday(birthday)
	if err != nil {
		return nil, err
	}
	return &Record{name: n, birthday: b}, nil
}

// Name returns the client name.
func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// Birthday returns the stored birthday (zero when unset).
func (r *Record) Birthday() Birthday { return r.birthday }

// AddPhone validates and appends a phone number, returning a
// confirmation message. Duplicate numbers are not rejected here;
// pre-checking is the caller's concern.
func (r *Record) AddPhone(number string) (string, error) {
	p, err := NewPhone(number)
	if err != nil {
		return "", err
	}
	r.phones = append(r.phones, p)
	return fmt.Sprintf("Phone number %q was added to contact %q", number, r.name), nil
}

// FindPhone returns the first phone matching number exactly.
// Absence is a normal outcome, not an error.
func (r *Record) FindPhone(number string) (Phone, bool) {
	if i := r.indexOf(number); i >= 0 {
		return r.phones[i], true
	}
	return Phone{}, false
}

// EditPhone replaces oldNum with newNum in place, preserving its
// position in the list. Fails with ErrPhoneNotFound when oldNum is
// absent; a validation failure on newNum leaves the list untouched.
func (r *Record) EditPhone(oldNum, newNum string) error {
	i := r.indexOf(oldNum)
	if i < 0 {
		return fmt.Errorf("%w: %q for contact %q", ErrPhoneNotFound, oldNum, r.name)
	}
	p, err := NewPhone(newNum)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// RemovePhone deletes the first phone matching number.
// Removing an absent number is a no-op.
func (r *Record) RemovePhone(number string) {
	i := r.indexOf(number)
	if i < 0 {
		return
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
}

// SetBirthday replaces the birthday, returning a confirmation message.
func (r *Record) SetBirthday(date string) (string, error) {
	b, err := NewBirthday(date)
	if err != nil {
		return "", err
	}
	r.birthday = b
	return fmt.Sprintf("Birthday %q was added to contact %q", date, r.name), nil
}

// DaysToBirthday returns the number of whole days from now to the next
// occurrence of the birthday's day and month. A birthday falling on
// today's date counts as zero days away. February 29 birthdays target
// March 1 in non-leap years (time.Date normalization).
// Fails with ErrNoBirthday when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, error) {
	if r.birthday.IsZero() {
		return 0, fmt.Errorf("%w for contact %q", ErrNoBirthday, r.name)
	}

	bd := r.birthday.Date()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(now.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(now.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24), nil
}

// String renders the contact name and its semicolon-joined phone numbers.
func (r *Record) String() string {
	nums := make([]string, len(r.phones))
	for i, p := range r.phones {
		nums[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(nums, "; "))
}

// indexOf returns the position of the first phone with the given value,
// or -1. Linear scan; phone lists per contact are small.
func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.String() == number {
			return i
		}
	}
	return -1
}
