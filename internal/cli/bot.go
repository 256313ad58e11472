// Package cli is the interactive front end: it reads commands and field
// values line by line, calls into the address book and prints the outcome.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/assistant-bot/internal/addressbook"
	"github.com/tartampluch/assistant-bot/internal/config"
)

// errStop ends the command loop without an error.
var errStop = errors.New("stop")

type line struct {
	text string
	err  error
}

// Bot drives one session against a Book. It is not safe for concurrent use.
type Bot struct {
	Book     *addressbook.Book
	Clock    addressbook.Clock
	Msg      *Messages
	Settings config.Settings

	out      io.Writer
	lines    chan line
	done     chan struct{}
	log      *slog.Logger
	commands map[string]func(ctx context.Context) error
}

// New wires a Bot reading from in and writing to out.
func New(in io.Reader, out io.Writer, book *addressbook.Book, settings config.Settings) *Bot {
	b := &Bot{
		Book:     book,
		Clock:    addressbook.RealClock{},
		Msg:      NewMessages(settings.Language),
		Settings: settings,
		out:      out,
		lines:    make(chan line),
		done:     make(chan struct{}),
		log:      slog.With(config.LogKeyComponent, config.CompCLI),
	}
	b.commands = map[string]func(ctx context.Context) error{
		config.CmdGoodBye:        b.goodBye,
		config.CmdClose:          b.goodBye,
		config.CmdExit:           b.goodBye,
		config.CmdHello:          b.hello,
		config.CmdHelp:           b.help,
		config.CmdAdd:            b.addRecord,
		config.CmdAddPhone:       b.addPhone,
		config.CmdEditPhone:      b.editPhone,
		config.CmdRemovePhone:    b.removePhone,
		config.CmdAddBirthday:    b.addBirthday,
		config.CmdRemoveBirthday: b.removeBirthday,
		config.CmdFind:           b.find,
		config.CmdDaysToBirthday: b.daysToBirthday,
		config.CmdShowAll:        b.showAll,
		config.CmdUpcoming:       b.upcoming,
		config.CmdExport:         b.export,
		config.CmdCalendar:       b.calendar,
	}

	go b.readLines(in)
	return b
}

// Run processes commands until an exit command, end of input or ctx is done.
// Bad input never ends the loop; only a failing reader or writer does.
func (b *Bot) Run(ctx context.Context) error {
	defer close(b.done)

	for {
		raw, err := b.ask(ctx, config.TKeyPromptCommand)
		if err != nil {
			return b.finish(err)
		}

		cmd := strings.ToLower(strings.TrimSpace(raw))
		if strings.Contains(cmd, config.CmdTerminator) {
			return nil
		}

		handler, ok := b.commands[cmd]
		if !ok {
			b.log.Debug(config.MsgUnknownCmd, config.LogKeyCommand, cmd)
			b.say(config.TKeyErrInvalidCommand, nil)
			continue
		}

		b.log.Debug(config.MsgCommand, config.LogKeyCommand, cmd)
		if err := handler(ctx); err != nil {
			return b.finish(err)
		}
	}
}

func (b *Bot) finish(err error) error {
	switch {
	case errors.Is(err, errStop):
		return nil
	case errors.Is(err, io.EOF):
		b.log.Info(config.MsgInputClosed)
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		b.log.Info(config.MsgCtxCancel)
		return nil
	}
	b.log.Error(config.MsgCommandFailed, config.LogKeyError, err)
	return err
}

// readLines feeds b.lines until the reader fails or Run returns.
// Reading happens here so a blocked terminal read cannot hold up cancellation.
func (b *Bot) readLines(in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case b.lines <- line{text: sc.Text()}:
		case <-b.done:
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	} else {
		err = fmt.Errorf("%s: %w", config.ErrReadInput, err)
	}
	select {
	case b.lines <- line{err: err}:
	case <-b.done:
	}
}

// ask prints the prompt for key and waits for the next line.
func (b *Bot) ask(ctx context.Context, key string) (string, error) {
	if _, err := fmt.Fprint(b.out, b.Msg.Get(key, nil)); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-b.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// askTrimmed is ask with surrounding whitespace removed.
func (b *Bot) askTrimmed(ctx context.Context, key string) (string, error) {
	s, err := b.ask(ctx, key)
	return strings.TrimSpace(s), err
}

// say prints a translated message on its own line.
func (b *Bot) say(key string, data map[string]any) {
	b.println(b.Msg.Get(key, data))
}

func (b *Bot) println(s string) {
	// A broken terminal surfaces on the next prompt; nothing useful to do here.
	_, _ = fmt.Fprintln(b.out, s)
}
