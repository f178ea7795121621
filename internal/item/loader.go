package item

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

//go:embed schema/items.schema.json
var itemsSchema []byte

// ErrInvalidConfig is returned for stock files that parse but make no sense
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents a JSON stock file
type Config struct {
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Items       []domain.Item `json:"items"`
}

// Loader reads and validates stock files
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, itemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchemaFailed, err)
	}
	return &itemLoader{schemaValidator: v}, nil
}

// Load reads, schema-checks and validates a stock file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Parse(data, path)
}

// Parse schema-checks and validates stock file contents. source names the
// input in error messages.
func (l *itemLoader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks what the schema cannot. Quality and sellIn are accepted
// as given; the update engine never corrects starting values.
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	for i, it := range config.Items {
		if it.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, domain.ErrInvalidItem, i)
		}
	}

	return nil
}

// DefaultItems returns the classic nine-item stock used when no file is given
func DefaultItems() []domain.Item {
	return []domain.Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: domain.NameAgedBrie, SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: domain.NameSulfuras, SellIn: 0, Quality: domain.LegendaryQuality},
		{Name: domain.NameSulfuras, SellIn: -1, Quality: domain.LegendaryQuality},
		{Name: domain.NameBackstagePass, SellIn: 15, Quality: 20},
		{Name: domain.NameBackstagePass, SellIn: 10, Quality: 49},
		{Name: domain.NameBackstagePass, SellIn: 5, Quality: 49},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
	}
}
