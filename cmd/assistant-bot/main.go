package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/assistant-bot/internal/addressbook"
	"github.com/tartampluch/assistant-bot/internal/cli"
	"github.com/tartampluch/assistant-bot/internal/config"
	"github.com/tartampluch/assistant-bot/internal/interchange"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages argument parsing, logging and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	lang := flag.String(config.FlagLang, "", config.FlagDescLang)
	importPath := flag.String(config.FlagImport, "", config.FlagDescImport)
	flag.Parse()

	if *showVersion {
		printVersion(os.Stdout)
		return config.ExitCodeSuccess
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}
	if *lang != "" {
		settings.Language = *lang
		if err := settings.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return config.ExitCodeError
		}
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// The terminal belongs to the conversation, so logs go to a file.
	logCloser := setupLogging(*debugMode || settings.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(settings)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, os.Stdin, os.Stdout, settings, *importPath); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run seeds the address book and hands the terminal to the command loop.
func run(ctx context.Context, in io.Reader, out io.Writer, settings config.Settings, importPath string) error {
	book := addressbook.NewBook()

	if importPath != "" {
		if err := importContacts(ctx, book, importPath); err != nil {
			return err
		}
	}

	return cli.New(in, out, book, settings).Run(ctx)
}

// importContacts loads a .vcf file into book. Cards that cannot be used are
// logged and skipped; only an unreadable file is an error.
func importContacts(ctx context.Context, book *addressbook.Book, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrImportFile, err)
	}
	defer func() { _ = f.Close() }()

	records, skipped, err := interchange.DecodeVCards(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrImportFile, err)
	}
	for _, r := range records {
		book.Insert(r)
	}

	slog.Info(config.MsgImported,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyFile, path,
		config.LogKeyImported, len(records),
		config.LogKeySkipped, len(skipped),
	)
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(settings config.Settings) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
			slog.String(config.LogKeyLang, settings.Language),
		),
	)
}

// setupLogging installs a JSON slog logger writing to the cache-dir log file,
// or to stderr when that file cannot be opened.
func setupLogging(debugMode bool) io.Closer {
	var w io.Writer = os.Stderr
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			w = f
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
