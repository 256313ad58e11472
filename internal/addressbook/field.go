// Package addressbook holds the contact model: validated field values, the
// Record aggregate and the ordered Book that indexes records by name.
package addressbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/assistant-bot/internal/config"
)

// Field is the closed set of values a Record is built from: Name, Phone and
// Birthday. Each renders to text.
type Field interface {
	fmt.Stringer
	field()
}

// -----------------------------------------------------------------------------
// Name
// -----------------------------------------------------------------------------

// Name is the identity of a Record. It is stored verbatim; emptiness is
// rejected by the caller before a Record is built.
type Name struct {
	value string
}

// MakeName wraps raw without validation.
func MakeName(raw string) Name {
	return Name{value: raw}
}

func (n Name) String() string { return n.value }
func (Name) field()           {}

// -----------------------------------------------------------------------------
// Phone
// -----------------------------------------------------------------------------

// Phone is a normalized nine digit number. The zero value is not a valid
// phone; build one with MakePhone. Phones compare equal with ==.
type Phone struct {
	digits string
}

// MakePhone strips every non-digit rune from raw and requires exactly
// config.PhoneDigits digits to remain.
func MakePhone(raw string) (Phone, error) {
	var b strings.Builder
	for _, r := range raw {
		// Only ASCII digits count; unicode.IsDigit would admit other scripts.
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != config.PhoneDigits {
		return Phone{}, &FormatError{
			Field:  config.FieldPhone,
			Input:  raw,
			Reason: config.ReasonPhoneDigits,
		}
	}
	return Phone{digits: b.String()}, nil
}

func (p Phone) String() string { return p.digits }
func (Phone) field()           {}

// -----------------------------------------------------------------------------
// Birthday
// -----------------------------------------------------------------------------

// Birthday is an optional calendar date. The zero value is the empty birthday.
type Birthday struct {
	date time.Time
	set  bool
}

// MakeBirthday parses raw as dd-mm-yyyy. A nil raw yields the empty Birthday.
// Impossible dates such as 31-04-2020 or 29-02-2021 are rejected.
func MakeBirthday(raw *string) (Birthday, error) {
	if raw == nil {
		return Birthday{}, nil
	}
	return ParseBirthday(*raw)
}

// ParseBirthday is MakeBirthday for a present value.
func ParseBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return Birthday{}, &FormatError{
			Field:  config.FieldBirthday,
			Input:  raw,
			Reason: config.ReasonBirthdayFormat,
		}
	}
	return Birthday{date: t, set: true}, nil
}

// BirthdayFromDate builds a set Birthday from the calendar date of t.
func BirthdayFromDate(t time.Time) Birthday {
	return Birthday{date: calendarDay(t), set: true}
}

// IsSet reports whether the birthday holds a date.
func (b Birthday) IsSet() bool { return b.set }

// Date returns the birthday at midnight UTC, or the zero time when empty.
func (b Birthday) Date() time.Time { return b.date }

// Equal reports whether both birthdays are empty or hold the same date.
func (b Birthday) Equal(o Birthday) bool {
	return b.set == o.set && b.date.Equal(o.date)
}

func (b Birthday) String() string {
	if !b.set {
		return ""
	}
	return b.date.Format(config.DateFormatBirthday)
}

func (Birthday) field() {}
