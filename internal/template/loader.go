package template

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/panel"
	"github.com/osse101/PanelKit_Go/internal/validation"
)

//go:embed items.schema.json
var itemsSchema []byte

// Config is a file of item templates
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def describes the initial state of one panel item
type Def struct {
	Key         string   `json:"key"`
	Material    string   `json:"material,omitempty"`
	Amount      int      `json:"amount,omitempty"`
	PlayerHead  string   `json:"player_head,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description []string `json:"description,omitempty"`
	Glow        bool     `json:"glow,omitempty"`
	Invisible   bool     `json:"invisible,omitempty"`
}

// Loader reads item template files
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
}

type templateLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader with the item template schema registered
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, itemsSchema); err != nil {
		return nil, err
	}
	return &templateLoader{schemaValidator: v}, nil
}

// Load reads, validates and parses a template file
func (l *templateLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTemplateFailed, err)
	}
	return l.Parse(data, path)
}

// Parse validates and parses template JSON. source names the data in errors.
func (l *templateLoader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaFailed, domain.ErrInvalidTemplate, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTemplateFailed, err)
	}

	keys := make(map[string]bool, len(config.Items))
	for _, def := range config.Items {
		if keys[def.Key] {
			return nil, fmt.Errorf(ErrFmtDuplicateKey, domain.ErrInvalidTemplate, def.Key)
		}
		keys[def.Key] = true
	}

	slog.Debug(LogMsgTemplateLoaded, "source", source, "items", len(config.Items))
	return &config, nil
}

// Builder turns the definition into an item builder
func (d Def) Builder() *panel.Builder {
	b := panel.NewBuilder()
	if d.Amount > 0 {
		b.WithAmount(d.Amount)
	}
	if d.Material != "" {
		b.WithMaterial(domain.Material(d.Material))
	}
	if d.PlayerHead != "" {
		b.WithPlayerHead(d.PlayerHead)
	}
	if d.Name != nil {
		b.WithName(*d.Name)
	}
	return b.
		WithDescription(d.Description...).
		WithGlow(d.Glow).
		WithInvisible(d.Invisible)
}

// Builders returns one builder per definition, keyed by definition key
func (c *Config) Builders() map[string]*panel.Builder {
	out := make(map[string]*panel.Builder, len(c.Items))
	for _, def := range c.Items {
		out[def.Key] = def.Builder()
	}
	return out
}
