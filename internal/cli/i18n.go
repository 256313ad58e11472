package cli

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/assistant-bot/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Messages resolves user-facing text from the embedded catalogs.
type Messages struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	Languages []string
}

// NewMessages loads every locales/active.<lang>.json and selects lang,
// falling back to English for missing translations.
func NewMessages(lang string) *Messages {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	m := &Messages{bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		m.Languages = append(m.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	m.localizer = i18n.NewLocalizer(bundle, lang, config.DefaultLanguage)
	return m
}

// Get translates key with optional template data. A missing key comes back
// as the key itself so the gap is visible instead of silent.
func (m *Messages) Get(key string, data map[string]any) string {
	return m.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

// Plural translates a message that varies with count.
func (m *Messages) Plural(key string, count int, data map[string]any) string {
	return m.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data, PluralCount: count})
}

func (m *Messages) localize(lc *i18n.LocalizeConfig) string {
	msg, err := m.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return lc.MessageID
	}
	return msg
}

// SummaryFormatter returns a calendar event title builder in the selected language.
func (m *Messages) SummaryFormatter() func(name string, age int, yearKnown bool) string {
	return func(name string, age int, yearKnown bool) string {
		data := map[string]any{"Name": name, "Age": age}
		switch {
		case !yearKnown:
			return m.Get(config.TKeyEvtSummary, data)
		case age == 0:
			return m.Get(config.TKeyEvtSummaryBirth, data)
		default:
			return m.Get(config.TKeyEvtSummaryAge, data)
		}
	}
}
