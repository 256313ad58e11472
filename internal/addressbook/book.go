package addressbook

import (
	"cmp"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/tartampluch/assistant-bot/internal/config"
	"golang.org/x/text/cases"
)

// Book maps identity names to Records and remembers insertion order.
//
// Keys are the exact names given at insertion while lookups fold case, so
// "Bob" and "BOB" can coexist and both answer FindByKeyword("bob"). Callers
// that want one entry per folded name check FindByKeyword before Insert.
//
// A Book is owned by a single goroutine; it does no locking.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.order) }

// Insert stores r under its exact name. A record already stored under that
// name is replaced in place and keeps its position.
func (b *Book) Insert(r *Record) {
	key := r.Name().String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r

	slog.Debug(config.MsgRecordAdded,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, key,
		config.LogKeyCount, len(b.order))
}

// Get returns the record stored under exactly name.
func (b *Book) Get(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// FindByKeyword returns, in insertion order, every record whose name or one of
// whose phones equals keyword ignoring case.
func (b *Book) FindByKeyword(keyword string) []*Record {
	fold := cases.Fold()
	want := fold.String(keyword)

	var out []*Record
	for _, key := range b.order {
		r := b.records[key]
		if fold.String(key) == want || r.hasPhoneText(fold, want) {
			out = append(out, r)
		}
	}

	slog.Debug(config.MsgRecordFound,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyKeyword, keyword,
		config.LogKeyCount, len(out))
	return out
}

// PhoneExists reports whether the first record matching nameKeyword holds
// phone. It is false when no record matches.
func (b *Book) PhoneExists(nameKeyword string, phone Phone) bool {
	found := b.FindByKeyword(nameKeyword)
	if len(found) == 0 {
		return false
	}
	return found[0].HasPhone(phone)
}

// Search narrows records by name and phone. An empty argument does not
// filter; a non-empty name must equal the record's name ignoring case and a
// non-empty phone must normalize to one of its phones.
func (b *Book) Search(name, phone string) []*Record {
	fold := cases.Fold()
	wantName := fold.String(name)

	var wantPhone Phone
	if phone != "" {
		p, err := MakePhone(phone)
		if err != nil {
			return nil
		}
		wantPhone = p
	}

	var out []*Record
	for r := range b.Iterate() {
		if name != "" && fold.String(r.Name().String()) != wantName {
			continue
		}
		if phone != "" && !r.HasPhone(wantPhone) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Iterate yields the records present at call time, in insertion order.
// Each call takes a fresh snapshot, so inserts made during a traversal are
// not seen by it.
func (b *Book) Iterate() iter.Seq[*Record] {
	snapshot := make([]*Record, len(b.order))
	for i, key := range b.order {
		snapshot[i] = b.records[key]
	}
	return slices.Values(snapshot)
}

// Upcoming is a record whose next birthday falls inside a query window.
type Upcoming struct {
	Record *Record
	Next   time.Time
	Days   int
}

// Upcoming lists records whose next birthday is at most withinDays away,
// soonest first, ties broken by name.
func (b *Book) Upcoming(now time.Time, withinDays int) []Upcoming {
	today := calendarDay(now)

	var out []Upcoming
	for r := range b.Iterate() {
		next, ok := r.NextBirthday(today)
		if !ok {
			continue
		}
		days := daysBetween(today, next)
		if days > withinDays {
			continue
		}
		out = append(out, Upcoming{Record: r, Next: next, Days: days})
	}

	fold := cases.Fold()
	slices.SortStableFunc(out, func(a, b Upcoming) int {
		if c := cmp.Compare(a.Days, b.Days); c != 0 {
			return c
		}
		return cmp.Compare(fold.String(a.Record.Name().String()), fold.String(b.Record.Name().String()))
	})
	return out
}

func (r *Record) hasPhoneText(fold cases.Caser, want string) bool {
	for _, p := range r.phones {
		if fold.String(p.String()) == want {
			return true
		}
	}
	return false
}
