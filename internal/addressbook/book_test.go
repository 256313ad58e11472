package addressbook_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/assistant-bot/internal/addressbook"
)

func names(records []*addressbook.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name().String())
	}
	return out
}

func TestBook_Insert_And_Get(t *testing.T) {
	book := addressbook.NewBook()
	assert.Equal(t, 0, book.Len())

	alice := newRecord(t, "Alice")
	book.Insert(alice)

	got, ok := book.Get("Alice")
	require.True(t, ok)
	assert.Same(t, alice, got)

	_, ok = book.Get("alice")
	assert.False(t, ok, "Get is exact-case")
	assert.Equal(t, 1, book.Len())
}

func TestBook_Insert_OverwriteKeepsPosition(t *testing.T) {
	book := addressbook.NewBook()
	book.Insert(newRecord(t, "A"))
	book.Insert(newRecord(t, "B"))
	book.Insert(newRecord(t, "C"))

	replacement := newRecord(t, "B", "222222222")
	book.Insert(replacement)

	all := slices.Collect(book.Iterate())
	assert.Equal(t, []string{"A", "B", "C"}, names(all))
	assert.Same(t, replacement, all[1])
	assert.Equal(t, 3, book.Len())
}

func TestBook_Insert_CaseVariantsAreDistinctKeys(t *testing.T) {
	book := addressbook.NewBook()
	book.Insert(newRecord(t, "Bob"))
	book.Insert(newRecord(t, "BOB"))

	assert.Equal(t, 2, book.Len())
	assert.Equal(t, []string{"Bob", "BOB"}, names(book.FindByKeyword("bob")))
}

func TestBook_FindByKeyword(t *testing.T) {
	book := addressbook.NewBook()
	alice := newRecord(t, "Alice", "111111111")
	bob := newRecord(t, "Bob", "222222222", "111111111")
	carol := newRecord(t, "Carol")
	book.Insert(alice)
	book.Insert(bob)
	book.Insert(carol)

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"NameUpper", "ALICE", []string{"Alice"}},
		{"NameMixed", "cArOl", []string{"Carol"}},
		{"SharedPhone", "111111111", []string{"Alice", "Bob"}},
		{"SinglePhone", "222222222", []string{"Bob"}},
		{"NoPartialMatch", "Ali", nil},
		{"PhoneNotNormalized", "111-111-111", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := book.FindByKeyword(tt.keyword)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, names(got))
		})
	}

	got := book.FindByKeyword("ALICE")
	require.Len(t, got, 1)
	assert.Same(t, alice, got[0])
}

func TestBook_FindByKeyword_UnicodeFolding(t *testing.T) {
	book := addressbook.NewBook()
	book.Insert(newRecord(t, "Straße"))
	book.Insert(newRecord(t, "Élodie"))

	assert.Equal(t, []string{"Élodie"}, names(book.FindByKeyword("éLODIE")))
	assert.Equal(t, []string{"Straße"}, names(book.FindByKeyword("STRASSE")))
}

func TestBook_PhoneExists(t *testing.T) {
	book := addressbook.NewBook()
	phone := mustPhone(t, "555555555")

	assert.False(t, book.PhoneExists("Bob", phone), "no record named Bob yet")

	bob := newRecord(t, "Bob", "111111111")
	book.Insert(bob)
	assert.False(t, book.PhoneExists("bob", phone))

	bob.AddPhone(phone)
	assert.True(t, book.PhoneExists("BOB", phone))
	assert.True(t, book.PhoneExists("Bob", mustPhone(t, "555-555-555")))
}

func TestBook_PhoneExists_UsesFirstMatch(t *testing.T) {
	book := addressbook.NewBook()
	book.Insert(newRecord(t, "Bob"))
	book.Insert(newRecord(t, "BOB", "555555555"))

	assert.False(t, book.PhoneExists("bob", mustPhone(t, "555555555")))
}

func TestBook_Iterate(t *testing.T) {
	book := addressbook.NewBook()
	assert.Empty(t, slices.Collect(book.Iterate()))

	a, b, c := newRecord(t, "A"), newRecord(t, "B"), newRecord(t, "C")
	book.Insert(a)
	book.Insert(b)
	book.Insert(c)

	seq := book.Iterate()
	assert.Equal(t, []*addressbook.Record{a, b, c}, slices.Collect(seq))

	// The same sequence can be walked again.
	assert.Equal(t, []*addressbook.Record{a, b, c}, slices.Collect(seq))

	// A traversal does not observe records inserted after it started.
	var seen []string
	for r := range book.Iterate() {
		seen = append(seen, r.Name().String())
		if r == a {
			book.Insert(newRecord(t, "D"))
		}
	}
	assert.Equal(t, []string{"A", "B", "C"}, seen)
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(slices.Collect(book.Iterate())))
}

func TestBook_Iterate_EarlyBreak(t *testing.T) {
	book := addressbook.NewBook()
	book.Insert(newRecord(t, "A"))
	book.Insert(newRecord(t, "B"))

	count := 0
	for range book.Iterate() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestBook_Upcoming(t *testing.T) {
	now := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

	book := addressbook.NewBook()
	add := func(name, bday string) {
		r := newRecord(t, name)
		if bday != "" {
			require.NoError(t, r.AddBirthday(bday))
		}
		book.Insert(r)
	}
	add("Zoe", "20-10-1991")
	add("NoBirthday", "")
	add("Adam", "20-10-1980")
	add("Today", "17-10-2000")
	add("FarAway", "01-03-1999")
	add("JustPassed", "16-10-1970")

	got := book.Upcoming(now, 30)
	require.Len(t, got, 3)

	assert.Equal(t, "Today", got[0].Record.Name().String())
	assert.Equal(t, 0, got[0].Days)
	assert.Equal(t, "Adam", got[1].Record.Name().String(), "ties sorted by name")
	assert.Equal(t, "Zoe", got[2].Record.Name().String())
	assert.Equal(t, 3, got[2].Days)
	assert.Equal(t, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), got[2].Next)

	all := book.Upcoming(now, 366)
	assert.Len(t, all, 5)
	assert.Equal(t, "JustPassed", all[len(all)-1].Record.Name().String())
}

func TestBook_Search(t *testing.T) {
	book := addressbook.NewBook()
	book.Insert(newRecord(t, "Alice", "111111111"))
	book.Insert(newRecord(t, "Bob", "222222222", "111111111"))

	tests := []struct {
		name      string
		byName    string
		byPhone   string
		wantNames []string
	}{
		{"NameOnly", "alice", "", []string{"Alice"}},
		{"PhoneOnly", "", "111-111-111", []string{"Alice", "Bob"}},
		{"Both", "BOB", "111111111", []string{"Bob"}},
		{"BothMismatch", "Alice", "222222222", nil},
		{"InvalidPhone", "", "12", nil},
		{"NameNeverMatchesPhone", "111111111", "", nil},
		{"NoFilter", "", "", []string{"Alice", "Bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := book.Search(tt.byName, tt.byPhone)
			if tt.wantNames == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantNames, names(got))
		})
	}
}
