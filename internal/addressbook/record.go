package addressbook

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/assistant-bot/internal/config"
)

// Record is one contact: an immutable name, an ordered list of phones and an
// optional birthday. Phone uniqueness is the caller's concern.
type Record struct {
	name     Name
	birthday Birthday
	phones   []Phone
}

// NewRecord builds a Record with no phones. A nil birthday leaves it empty.
func NewRecord(name string, birthday *string) (*Record, error) {
	bday, err := MakeBirthday(birthday)
	if err != nil {
		return nil, err
	}
	return &Record{
		name:     MakeName(name),
		birthday: bday,
	}, nil
}

// Name returns the identity name.
func (r *Record) Name() Name { return r.name }

// Birthday returns the current birthday, possibly empty.
func (r *Record) Birthday() Birthday { return r.birthday }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// HasPhone reports whether p is among the record's phones.
func (r *Record) HasPhone(p Phone) bool { return slices.Contains(r.phones, p) }

// AddPhone appends p.
func (r *Record) AddPhone(p Phone) {
	r.phones = append(r.phones, p)
}

// RemovePhone drops every occurrence of p. Removing an absent phone is a no-op.
func (r *Record) RemovePhone(p Phone) {
	r.phones = slices.DeleteFunc(r.phones, func(q Phone) bool { return q == p })
}

// EditPhone replaces the first phone equal to oldRaw with newRaw, keeping its
// position. Both values are validated before the list is touched; a missing
// old phone yields a *NotFoundError and leaves the list unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	oldPhone, err := MakePhone(oldRaw)
	if err != nil {
		return err
	}
	newPhone, err := MakePhone(newRaw)
	if err != nil {
		return err
	}

	i := slices.Index(r.phones, oldPhone)
	if i < 0 {
		return &NotFoundError{Field: config.FieldPhone, Value: oldPhone.String()}
	}
	r.phones[i] = newPhone
	return nil
}

// AddBirthday replaces the birthday outright. Refusing to overwrite an
// existing one is left to the caller. On error the old birthday is kept.
func (r *Record) AddBirthday(raw string) error {
	bday, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = bday
	return nil
}

// SetBirthday replaces the birthday with an already validated value.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = b
}

// RemoveBirthday clears the birthday.
func (r *Record) RemoveBirthday() {
	r.birthday = Birthday{}
}

// NextBirthday returns the date of the next birthday on or after the calendar
// day of now. A Feb 29 birthday falls on Mar 1 in non-leap years.
func (r *Record) NextBirthday(now time.Time) (time.Time, bool) {
	if !r.birthday.IsSet() {
		return time.Time{}, false
	}
	return nextOccurrence(calendarDay(now), r.birthday.Date()), true
}

// DaysToNextBirthday counts the days from today to the next birthday, 0 when
// today is the birthday. The bool is false when no birthday is set.
func (r *Record) DaysToNextBirthday(now time.Time) (int, bool) {
	next, ok := r.NextBirthday(now)
	if !ok {
		return 0, false
	}
	return daysBetween(calendarDay(now), next), true
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf(config.FormatRecord, r.name, strings.Join(phones, config.PhoneSeparator), r.birthday)
}

// nextOccurrence projects birthDate's month and day onto today's year, moving
// to the following year if that date is already behind today.
// time.Date normalizes Feb 29 to Mar 1 when the target year is not a leap year.
func nextOccurrence(today, birthDate time.Time) time.Time {
	candidate := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}
