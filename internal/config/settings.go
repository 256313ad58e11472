package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Settings holds the runtime options read from the environment.
type Settings struct {
	Language     string `env:"LANGUAGE" envDefault:"en" validate:"required,oneof=en fr"`
	PageSize     int    `env:"PAGE_SIZE" envDefault:"5" validate:"min=1,max=100"`
	UpcomingDays int    `env:"UPCOMING_DAYS" envDefault:"30" validate:"min=1,max=366"`
	Reminder     string `env:"REMINDER" envDefault:"-P1D"`
	Debug        bool   `env:"DEBUG"`
}

// LoadSettings parses ASSISTANT_BOT_* variables and validates the result.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrParseEnv, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks value ranges and supported languages.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%s: %w", ErrSettings, err)
	}
	return nil
}
