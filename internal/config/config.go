package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ProductID identifies the generator in exported vCards and calendars.
var ProductID = "-//Assistant Bot//" + Version + "//EN"

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Assistant Bot"
	AppID       = "com.github.tartampluch.assistant-bot"
	LogFileName = "app.log"
	EnvPrefix   = "ASSISTANT_BOT_"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagImport       = "import"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescLang     = "Message language (overrides " + EnvPrefix + "LANGUAGE)"
	FlagDescImport   = "Seed the address book from a .vcf file"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Command Vocabulary
// -----------------------------------------------------------------------------

const (
	CmdTerminator     = "."
	CmdGoodBye        = "good bye"
	CmdClose          = "close"
	CmdExit           = "exit"
	CmdHello          = "hello"
	CmdAdd            = "add"
	CmdAddPhone       = "add phone"
	CmdEditPhone      = "edit phone"
	CmdRemovePhone    = "remove phone"
	CmdAddBirthday    = "add birthday"
	CmdRemoveBirthday = "remove birthday"
	CmdFind           = "find"
	CmdDaysToBirthday = "days to birthday"
	CmdShowAll        = "show all"
	CmdUpcoming       = "birthdays"
	CmdExport         = "export"
	CmdCalendar       = "calendar"
	CmdHelp           = "help"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Prompts
	TKeyPromptCommand     = "prompt_command"
	TKeyPromptName        = "prompt_name"
	TKeyPromptPhone       = "prompt_phone"
	TKeyPromptBirthday    = "prompt_birthday"
	TKeyPromptNewPhone    = "prompt_new_phone"
	TKeyPromptOldPhone    = "prompt_old_phone"
	TKeyPromptRemovePhone = "prompt_remove_phone"
	TKeyPromptSearchName  = "prompt_search_name"
	TKeyPromptSearchPhone = "prompt_search_phone"
	TKeyPromptNextPage    = "prompt_next_page"

	// Conversation
	TKeyGoodBye = "msg_goodbye"
	TKeyHello   = "msg_hello"
	TKeyHelp    = "msg_help"

	// Successes
	TKeyOkRecordAdded     = "ok_record_added"
	TKeyOkPhoneAdded      = "ok_phone_added"
	TKeyOkPhoneUpdated    = "ok_phone_updated"
	TKeyOkPhoneRemoved    = "ok_phone_removed"
	TKeyOkBirthdayAdded   = "ok_birthday_added"
	TKeyOkBirthdayRemoved = "ok_birthday_removed"
	TKeyOkMatches         = "ok_matches"
	TKeyOkDays            = "ok_days" // Requires Name, Days (plural)
	TKeyOkAll             = "ok_all"
	TKeyOkUpcoming        = "ok_upcoming" // Requires Days (plural)

	// Errors (user facing)
	TKeyErrNameEmpty       = "err_name_empty"
	TKeyErrNameExists      = "err_name_exists"
	TKeyErrNameMissing     = "err_name_missing"
	TKeyErrPhoneFormat     = "err_phone_format"
	TKeyErrPhoneEmpty      = "err_phone_empty"
	TKeyErrPhoneExists     = "err_phone_exists"
	TKeyErrPhoneMissing    = "err_phone_missing"
	TKeyErrOldPhoneMissing = "err_old_phone_missing"
	TKeyErrNewPhoneEmpty   = "err_new_phone_empty"
	TKeyErrBirthdayFormat  = "err_birthday_format"
	TKeyErrBirthdayEmpty   = "err_birthday_empty"
	TKeyErrBirthdayExists  = "err_birthday_exists"
	TKeyErrBirthdayMissing = "err_birthday_missing"
	TKeyErrFindEmpty       = "err_find_empty"
	TKeyErrNoMatches       = "err_no_matches"
	TKeyErrBookEmpty       = "err_book_empty"
	TKeyErrNoUpcoming      = "err_no_upcoming" // Requires Days (plural)
	TKeyErrInvalidCommand  = "err_invalid_command"
	TKeyErrExport          = "err_export"

	// Calendar event titles
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	PhoneDigits         = 9
	DefaultLanguage     = "en"
	DefaultPageSize     = 5
	DefaultUpcomingDays = 30
	DefaultLeapYear     = 2000 // Year used when a vCard BDAY omits it (--MM-DD)
	DefaultReminder     = "-P1D"
	UIDNamespace        = "assistant-bot-v1"
)

// SupportedLanguages defines the list of available message catalogs (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the dd-mm-yyyy layout accepted from and shown to users.
	DateFormatBirthday = "02-01-2006"

	// vCard BDAY layouts
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	PhoneSeparator = ", "
	FormatRecord   = "Name: %s, Phones: %s, Birthday: %s"
	FormatUpcoming = "%s: %s (%d)"
)

// -----------------------------------------------------------------------------
// Validation Reasons
// -----------------------------------------------------------------------------

const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"

	ReasonPhoneDigits    = "must contain exactly 9 digits"
	ReasonBirthdayFormat = "must be in dd-mm-yyyy format"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "assistant-bot"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardVersion = "4.0"

	DefaultICalRefresh = 24 * time.Hour

	FormatUID            = "%s-%d@%s"
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//Assistant Bot//EN\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrReadInput     = "failed to read input"
	ErrWriteOutput   = "failed to write output"
	ErrVCardEncode   = "failed to encode vCard data"
	ErrVCardDecode   = "failed to decode vCard"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrDateParse     = "unable to parse date"
	ErrImportFile    = "failed to open import file"
	ErrSettings      = "invalid settings"
	ErrParseEnv      = "parse env"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrNotFound      = "not found"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, leaving command loop"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgCommand       = "Command received"
	MsgCommandFailed = "Command failed"
	MsgUnknownCmd    = "Unknown command"
	MsgInputClosed   = "Input closed"
	MsgRecordAdded   = "Record inserted"
	MsgRecordFound   = "Keyword lookup"
	MsgPhoneAdded    = "Phone added"
	MsgPhoneRemoved  = "Phone removed"
	MsgPhoneEdited   = "Phone edited"
	MsgBdaySet       = "Birthday set"
	MsgBdayRemoved   = "Birthday removed"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedField  = "Skipping invalid vCard field"
	MsgImported      = "Records imported"
	MsgGenSuccess    = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyCommand   = "command"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyName      = "name"
	LogKeyPhone     = "phone"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyValue     = "value"
	LogKeyKeyword   = "keyword"
	LogKeyCount     = "count"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyImported  = "imported"
	LogKeySkipped   = "skipped"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain        = "main"
	CompBook        = "addressbook"
	CompCLI         = "cli"
	CompInterchange = "interchange"
	CompI18n        = "i18n"
)
