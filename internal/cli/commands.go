package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/tartampluch/assistant-bot/internal/addressbook"
	"github.com/tartampluch/assistant-bot/internal/config"
	"github.com/tartampluch/assistant-bot/internal/interchange"
)

// Handlers return an error only when the session itself cannot go on
// (input closed, output broken, exit requested). Anything the user typed
// wrong is reported and the loop continues.

func (b *Bot) goodBye(context.Context) error {
	b.say(config.TKeyGoodBye, nil)
	return errStop
}

func (b *Bot) hello(context.Context) error {
	b.say(config.TKeyHello, nil)
	return nil
}

func (b *Bot) help(context.Context) error {
	b.say(config.TKeyHelp, nil)
	return nil
}

// --- Records ---

func (b *Bot) addRecord(ctx context.Context) error {
	name, err := b.askTrimmed(ctx, config.TKeyPromptName)
	if err != nil {
		return err
	}
	if name == "" {
		b.say(config.TKeyErrNameEmpty, nil)
		return nil
	}
	if len(b.Book.FindByKeyword(name)) > 0 {
		b.say(config.TKeyErrNameExists, map[string]any{"Name": name})
		return nil
	}

	record, err := addressbook.NewRecord(name, nil)
	if err != nil {
		return err
	}

	rawPhone, err := b.askTrimmed(ctx, config.TKeyPromptPhone)
	if err != nil {
		return err
	}
	var phoneText string
	if rawPhone != "" {
		if phone, ok := b.parsePhone(rawPhone); ok {
			record.AddPhone(phone)
			phoneText = phone.String()
		}
	}

	rawBirthday, err := b.askTrimmed(ctx, config.TKeyPromptBirthday)
	if err != nil {
		return err
	}
	if rawBirthday != "" {
		if err := record.AddBirthday(rawBirthday); err != nil {
			b.reportFormat(err)
		}
	}

	b.Book.Insert(record)
	b.say(config.TKeyOkRecordAdded, map[string]any{
		"Name":     name,
		"Phone":    phoneText,
		"Birthday": record.Birthday().String(),
	})
	return nil
}

func (b *Bot) find(ctx context.Context) error {
	name, err := b.askTrimmed(ctx, config.TKeyPromptSearchName)
	if err != nil {
		return err
	}
	phone, err := b.askTrimmed(ctx, config.TKeyPromptSearchPhone)
	if err != nil {
		return err
	}
	if name == "" && phone == "" {
		b.say(config.TKeyErrFindEmpty, nil)
		return nil
	}

	found := b.Book.Search(name, phone)
	if len(found) == 0 {
		b.say(config.TKeyErrNoMatches, nil)
		return nil
	}
	b.say(config.TKeyOkMatches, nil)
	for _, r := range found {
		b.println(r.String())
	}
	return nil
}

func (b *Bot) showAll(ctx context.Context) error {
	if b.Book.Len() == 0 {
		b.say(config.TKeyErrBookEmpty, nil)
		return nil
	}

	b.say(config.TKeyOkAll, nil)
	pageSize := max(b.Settings.PageSize, 1)
	shown, total := 0, b.Book.Len()
	for r := range b.Book.Iterate() {
		b.println(r.String())
		shown++
		if shown%pageSize == 0 && shown < total {
			if _, err := b.ask(ctx, config.TKeyPromptNextPage); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Phones ---

func (b *Bot) addPhone(ctx context.Context) error {
	record, name, err := b.askRecord(ctx)
	if err != nil || record == nil {
		return err
	}

	raw, err := b.askTrimmed(ctx, config.TKeyPromptPhone)
	if err != nil {
		return err
	}
	if raw == "" {
		b.say(config.TKeyErrPhoneEmpty, nil)
		return nil
	}
	phone, ok := b.parsePhone(raw)
	if !ok {
		return nil
	}
	if b.Book.PhoneExists(name, phone) {
		b.say(config.TKeyErrPhoneExists, map[string]any{"Name": name, "Phone": phone.String()})
		return nil
	}

	record.AddPhone(phone)
	b.log.Debug(config.MsgPhoneAdded, config.LogKeyName, name, config.LogKeyPhone, phone.String())
	b.say(config.TKeyOkPhoneAdded, map[string]any{"Name": name, "Phone": phone.String()})
	return nil
}

func (b *Bot) editPhone(ctx context.Context) error {
	record, name, err := b.askRecord(ctx)
	if err != nil || record == nil {
		return err
	}

	rawNew, err := b.askTrimmed(ctx, config.TKeyPromptNewPhone)
	if err != nil {
		return err
	}
	if rawNew == "" {
		b.say(config.TKeyErrNewPhoneEmpty, nil)
		return nil
	}
	newPhone, ok := b.parsePhone(rawNew)
	if !ok {
		return nil
	}

	rawOld, err := b.askTrimmed(ctx, config.TKeyPromptOldPhone)
	if err != nil {
		return err
	}

	err = record.EditPhone(rawOld, rawNew)
	var notFound *addressbook.NotFoundError
	switch {
	case err == nil:
		b.log.Debug(config.MsgPhoneEdited, config.LogKeyName, name, config.LogKeyOld, rawOld, config.LogKeyNew, newPhone.String())
		b.say(config.TKeyOkPhoneUpdated, map[string]any{"Phone": newPhone.String()})
	case errors.As(err, &notFound):
		b.say(config.TKeyErrOldPhoneMissing, map[string]any{"Name": name, "Phone": notFound.Value})
	default:
		b.reportFormat(err)
	}
	return nil
}

func (b *Bot) removePhone(ctx context.Context) error {
	record, name, err := b.askRecord(ctx)
	if err != nil || record == nil {
		return err
	}

	raw, err := b.askTrimmed(ctx, config.TKeyPromptRemovePhone)
	if err != nil {
		return err
	}
	phone, perr := addressbook.MakePhone(raw)
	if perr != nil || !record.HasPhone(phone) {
		b.say(config.TKeyErrPhoneMissing, map[string]any{"Name": name, "Phone": raw})
		return nil
	}

	record.RemovePhone(phone)
	b.log.Debug(config.MsgPhoneRemoved, config.LogKeyName, name, config.LogKeyPhone, phone.String())
	b.say(config.TKeyOkPhoneRemoved, map[string]any{"Phone": phone.String()})
	return nil
}

// --- Birthdays ---

func (b *Bot) addBirthday(ctx context.Context) error {
	record, name, err := b.askRecord(ctx)
	if err != nil || record == nil {
		return err
	}
	if record.Birthday().IsSet() {
		b.say(config.TKeyErrBirthdayExists, map[string]any{"Name": name})
		return nil
	}

	raw, err := b.askTrimmed(ctx, config.TKeyPromptBirthday)
	if err != nil {
		return err
	}
	if raw == "" {
		b.say(config.TKeyErrBirthdayEmpty, nil)
		return nil
	}
	if err := record.AddBirthday(raw); err != nil {
		b.reportFormat(err)
		return nil
	}

	b.log.Debug(config.MsgBdaySet, config.LogKeyName, name, config.LogKeyValue, raw)
	b.say(config.TKeyOkBirthdayAdded, map[string]any{"Name": name, "Birthday": record.Birthday().String()})
	return nil
}

func (b *Bot) removeBirthday(ctx context.Context) error {
	record, name, err := b.askRecord(ctx)
	if err != nil || record == nil {
		return err
	}
	if !record.Birthday().IsSet() {
		b.say(config.TKeyErrBirthdayMissing, map[string]any{"Name": name})
		return nil
	}

	record.RemoveBirthday()
	b.log.Debug(config.MsgBdayRemoved, config.LogKeyName, name)
	b.say(config.TKeyOkBirthdayRemoved, map[string]any{"Name": name})
	return nil
}

func (b *Bot) daysToBirthday(ctx context.Context) error {
	record, name, err := b.askRecord(ctx)
	if err != nil || record == nil {
		return err
	}

	days, ok := record.DaysToNextBirthday(b.Clock.Now())
	if !ok {
		b.say(config.TKeyErrBirthdayMissing, map[string]any{"Name": name})
		return nil
	}
	b.println(b.Msg.Plural(config.TKeyOkDays, days, map[string]any{"Name": name, "Days": days}))
	return nil
}

func (b *Bot) upcoming(context.Context) error {
	window := b.Settings.UpcomingDays
	data := map[string]any{"Days": window}

	list := b.Book.Upcoming(b.Clock.Now(), window)
	if len(list) == 0 {
		b.println(b.Msg.Plural(config.TKeyErrNoUpcoming, window, data))
		return nil
	}

	b.println(b.Msg.Plural(config.TKeyOkUpcoming, window, data))
	for _, u := range list {
		b.println(fmt.Sprintf(config.FormatUpcoming,
			u.Record.Name(), u.Next.Format(config.DateFormatBirthday), u.Days))
	}
	return nil
}

// --- Interchange ---

func (b *Bot) export(context.Context) error {
	if b.Book.Len() == 0 {
		b.say(config.TKeyErrBookEmpty, nil)
		return nil
	}
	if err := interchange.EncodeVCards(b.out, b.Book.Iterate()); err != nil {
		b.log.Error(config.ErrVCardEncode, config.LogKeyError, err)
		b.say(config.TKeyErrExport, map[string]any{"Reason": err.Error()})
	}
	return nil
}

func (b *Bot) calendar(context.Context) error {
	cal := &interchange.Calendar{
		Clock:           b.Clock,
		ReminderTrigger: b.Settings.Reminder,
		FormatSummary:   b.Msg.SummaryFormatter(),
	}
	data, _, err := cal.Render(b.Book.Iterate())
	if err != nil {
		b.log.Error(config.ErrICalEncode, config.LogKeyError, err)
		b.say(config.TKeyErrExport, map[string]any{"Reason": err.Error()})
		return nil
	}
	if _, err := b.out.Write(data); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

// --- Helpers ---

// askRecord prompts for a name and resolves it to the first matching record.
// A nil record with a nil error means the problem was already reported.
func (b *Bot) askRecord(ctx context.Context) (*addressbook.Record, string, error) {
	name, err := b.askTrimmed(ctx, config.TKeyPromptName)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		b.say(config.TKeyErrNameEmpty, nil)
		return nil, "", nil
	}

	found := b.Book.FindByKeyword(name)
	if len(found) == 0 {
		b.say(config.TKeyErrNameMissing, map[string]any{"Name": name})
		return nil, "", nil
	}
	return found[0], name, nil
}

func (b *Bot) parsePhone(raw string) (addressbook.Phone, bool) {
	phone, err := addressbook.MakePhone(raw)
	if err != nil {
		b.reportFormat(err)
		return addressbook.Phone{}, false
	}
	return phone, true
}

// reportFormat prints a FormatError in the words of the field that failed.
func (b *Bot) reportFormat(err error) {
	var fe *addressbook.FormatError
	if !errors.As(err, &fe) {
		b.log.Error(config.MsgCommandFailed, config.LogKeyError, err)
		return
	}
	key := config.TKeyErrPhoneFormat
	if fe.Field == config.FieldBirthday {
		key = config.TKeyErrBirthdayFormat
	}
	b.say(key, map[string]any{"Reason": fe.Error()})
}
