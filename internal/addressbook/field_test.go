package addressbook_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/assistant-bot/internal/addressbook"
	"github.com/tartampluch/assistant-bot/internal/config"
)

func TestMakeName_Verbatim(t *testing.T) {
	for _, raw := range []string{"Alice", "  spaced  ", "", "Żaneta"} {
		assert.Equal(t, raw, addressbook.MakeName(raw).String())
	}
}

func TestMakePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"PlainDigits", "123456789", "123456789", false},
		{"Punctuation", "(123) 456-789", "123456789", false},
		{"LettersInterleaved", "a1b2c3d4e5f6g7h8i9", "123456789", false},
		{"Plus prefix", "+1 2 3 4 5 6 7 8 9", "123456789", false},
		{"TooShort", "12345678", "", true},
		{"TooLong", "1234567890", "", true},
		{"Empty", "", "", true},
		{"NoDigits", "call me", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := addressbook.MakePhone(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, addressbook.ErrFormat))

				var fe *addressbook.FormatError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, config.FieldPhone, fe.Field)
				assert.Equal(t, tt.raw, fe.Input)
				assert.Equal(t, config.ReasonPhoneDigits, fe.Reason)
				assert.Contains(t, err.Error(), "must contain exactly 9 digits")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

// TestMakePhone_Idempotent checks that re-normalizing a rendered phone is stable.
func TestMakePhone_Idempotent(t *testing.T) {
	for _, raw := range []string{"123-456-789", "987 654 321", "0.0.0.1.1.1.2.2.2"} {
		first, err := addressbook.MakePhone(raw)
		require.NoError(t, err)

		second, err := addressbook.MakePhone(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestMakePhone_Equality(t *testing.T) {
	a, err := addressbook.MakePhone("123-456-789")
	require.NoError(t, err)
	b, err := addressbook.MakePhone("123 456 789")
	require.NoError(t, err)
	c, err := addressbook.MakePhone("123456780")
	require.NoError(t, err)

	assert.True(t, a == b, "phones with the same digits must be equal")
	assert.False(t, a == c)
}

func TestMakeBirthday(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		b, err := addressbook.MakeBirthday(nil)
		require.NoError(t, err)
		assert.False(t, b.IsSet())
		assert.Equal(t, "", b.String())
	})

	t.Run("Valid", func(t *testing.T) {
		raw := "15-06-1990"
		b, err := addressbook.MakeBirthday(&raw)
		require.NoError(t, err)
		assert.True(t, b.IsSet())
		assert.Equal(t, "15-06-1990", b.String())
		assert.Equal(t, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), b.Date())
	})

	invalid := []struct {
		name string
		raw  string
	}{
		{"NotLeapYear", "29-02-2021"},
		{"AprilHas30Days", "31-04-2020"},
		{"MonthOutOfRange", "01-13-2020"},
		{"IsoLayout", "1990-06-15"},
		{"SlashSeparated", "15/06/1990"},
		{"SingleDigitDay", "5-06-1990"},
		{"TwoDigitYear", "15-06-90"},
		{"Empty", ""},
		{"Garbage", "tomorrow"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			_, err := addressbook.MakeBirthday(&raw)
			require.Error(t, err)

			var fe *addressbook.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, config.FieldBirthday, fe.Field)
			assert.Contains(t, err.Error(), "must be in dd-mm-yyyy format")
		})
	}

	t.Run("LeapYear", func(t *testing.T) {
		b, err := addressbook.ParseBirthday("29-02-2020")
		require.NoError(t, err)
		assert.Equal(t, "29-02-2020", b.String())
	})
}

func TestBirthday_Equal(t *testing.T) {
	a, err := addressbook.ParseBirthday("01-01-2000")
	require.NoError(t, err)
	b := addressbook.BirthdayFromDate(time.Date(2000, 1, 1, 18, 30, 0, 0, time.Local))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(addressbook.Birthday{}))
	assert.True(t, addressbook.Birthday{}.Equal(addressbook.Birthday{}))
}

// TestField_SharedRendering exercises the three variants through the Field interface.
func TestField_SharedRendering(t *testing.T) {
	phone, err := addressbook.MakePhone("111-222-333")
	require.NoError(t, err)
	bday, err := addressbook.ParseBirthday("02-03-2004")
	require.NoError(t, err)

	fields := []addressbook.Field{addressbook.MakeName("Bob"), phone, bday, addressbook.Birthday{}}
	want := []string{"Bob", "111222333", "02-03-2004", ""}

	for i, f := range fields {
		assert.Equal(t, want[i], f.String())
	}
}
