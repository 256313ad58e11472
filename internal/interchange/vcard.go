// Package interchange converts address book records to and from standard
// formats: vCard for contacts and iCalendar for birthday events.
package interchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/assistant-bot/internal/addressbook"
	"github.com/tartampluch/assistant-bot/internal/config"
)

// uidNamespace seeds deterministic UIDs so re-exporting a contact yields the
// same identifier every time.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(config.UIDNamespace))

// UID returns the stable identifier used for a contact name.
func UID(name string) uuid.UUID {
	return uuid.NewSHA1(uidNamespace, []byte(name))
}

// EncodeVCards writes one vCard 4.0 per record.
func EncodeVCards(w io.Writer, records iter.Seq[*addressbook.Record]) error {
	enc := vcard.NewEncoder(w)
	n := 0
	for r := range records {
		if err := enc.Encode(toCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		n++
	}

	slog.Debug(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompInterchange,
		config.LogKeyCount, n)
	return nil
}

func toCard(r *addressbook.Record) vcard.Card {
	name := r.Name().String()

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetName(&vcard.Name{GivenName: name})
	card.SetValue(vcard.FieldUID, UID(name).URN())

	for _, p := range r.Phones() {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.String(),
			Params: vcard.Params{vcard.ParamType: {vcard.TypeVoice}},
		})
	}

	if b := r.Birthday(); b.IsSet() {
		card.SetValue(vcard.FieldBirthday, b.Date().Format(config.DateFormatFullDash))
	}
	return card
}

// DecodeVCards reads every card in r and turns it into a Record.
// Cards without a usable name are skipped; phones and birthdays that fail
// validation are dropped from their card. Each skipped item is reported in
// the returned slice. The only fatal error is ctx cancellation.
func DecodeVCards(ctx context.Context, r io.Reader) ([]*addressbook.Record, []error, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompInterchange)

	dec := vcard.NewDecoder(r)
	var (
		records []*addressbook.Record
		skipped []error
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep going: one broken card should not lose the rest.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			skipped = append(skipped, fmt.Errorf("%s: %w", config.ErrVCardDecode, err))
			continue
		}

		rec, problems := fromCard(card)
		for _, p := range problems {
			log.Debug(config.MsgSkippedField, config.LogKeyError, p)
		}
		skipped = append(skipped, problems...)
		if rec != nil {
			records = append(records, rec)
		}
	}

	log.Info(config.MsgImported,
		config.LogKeyImported, len(records),
		config.LogKeySkipped, len(skipped),
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return records, skipped, nil
}

func fromCard(card vcard.Card) (*addressbook.Record, []error) {
	name := cardName(card)
	if name == "" {
		return nil, []error{fmt.Errorf("%s: %s", config.ErrVCardDecode, config.FieldName+" is empty")}
	}

	rec, err := addressbook.NewRecord(name, nil)
	if err != nil {
		return nil, []error{err}
	}

	var problems []error
	for _, tel := range card.Values(vcard.FieldTelephone) {
		p, err := addressbook.MakePhone(strings.TrimPrefix(tel, "tel:"))
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", name, err))
			continue
		}
		rec.AddPhone(p)
	}

	if raw := card.Value(vcard.FieldBirthday); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %s %q: %w", name, config.FieldBirthday, raw, err))
		} else {
			rec.SetBirthday(addressbook.BirthdayFromDate(date))
		}
	}
	return rec, problems
}

// cardName prefers FN over the structured N property.
func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.Value(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join(strings.Fields(n.GivenName+" "+n.FamilyName), " "))
	}
	return ""
}

// parseDate handles the vCard BDAY layouts. Dates without a year are placed
// in config.DefaultLeapYear so --02-29 survives.
func parseDate(value string) (time.Time, error) {
	for _, f := range []string{config.DateFormatFullDash, config.DateFormatFullBasic, time.RFC3339} {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
