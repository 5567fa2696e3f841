package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/logger"
)

var validate = validator.New()

// Validate checks the loaded configuration against its field constraints
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", domain.ErrInvalidConfig)
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(fields, ", "))
}

// Warnings returns non-fatal notes about the configuration
func Warnings(cfg *Config) []string {
	var warnings []string

	if !cfg.RenderMarkers && cfg.Environment == logger.EnvironmentProduction {
		warnings = append(warnings, "RENDER_MARKERS is disabled in production - glow and invisible items will render plain")
	}

	return warnings
}
