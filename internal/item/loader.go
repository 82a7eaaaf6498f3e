package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CustomItemEffects_Go/internal/chatcolor"
	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/logger"
	"github.com/osse101/CustomItemEffects_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateDisplayName = errors.New("duplicate display name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	DisplayName     string     `json:"display_name" validate:"required"`
	Material        string     `json:"material" validate:"required,material"`
	CooldownSeconds int        `json:"cooldown_seconds" validate:"gte=0,lte=9223372036"`
	Lore            []string   `json:"lore,omitempty"`
	Ability         AbilityDef `json:"ability"`
}

// AbilityDef names the ability an item performs and its numeric parameters
type AbilityDef struct {
	Name   string             `json:"name" validate:"required"`
	Params map[string]float64 `json:"params,omitempty"`
}

// Definition converts the JSON form to the constructor input
func (d Def) Definition() (Definition, error) {
	material, err := domain.ParseMaterial(d.Material)
	if err != nil {
		return Definition{}, err
	}
	return Definition{
		DisplayName:     d.DisplayName,
		Material:        material,
		CooldownSeconds: d.CooldownSeconds,
		Lore:            d.Lore,
	}, nil
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config, factory AbilityFactory, opts ...Option) ([]*CustomItem, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	v := validator.New()
	_ = v.RegisterValidation("material", validateMaterial)

	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        v,
	}
}

func validateMaterial(fl validator.FieldLevel) bool {
	_, err := domain.ParseMaterial(fl.Field().String())
	return err == nil
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, validation.ItemsSchema); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors the schema cannot see:
// unknown materials and display names that collide once translated.
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	displayNames := make(map[string]bool, len(config.Items))

	for i := range config.Items {
		def := &config.Items[i]

		if err := l.validateItemDef(i, def); err != nil {
			return err
		}

		// The identity tag is the translated name, so "&aX" and "§aX" collide
		name := chatcolor.Translate(def.DisplayName)
		if displayNames[name] {
			return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateDisplayName, def.DisplayName)
		}
		displayNames[name] = true
	}

	return nil
}

func (l *itemLoader) validateItemDef(index int, def *Def) error {
	err := l.validate.Struct(def)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	fe := fieldErrs[0]
	return fmt.Errorf(ErrFmtItemFieldInvalid, ErrInvalidConfig, index, def.DisplayName, fe.Namespace(), fe.Tag())
}

// Build constructs every configured item, resolving abilities through factory
func (l *itemLoader) Build(config *Config, factory AbilityFactory, opts ...Option) ([]*CustomItem, error) {
	items := make([]*CustomItem, 0, len(config.Items))

	for _, def := range config.Items {
		ability, err := factory(def.Ability.Name, def.Ability.Params)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildAbilityFailed, def.Ability.Name, def.DisplayName, err)
		}

		d, err := def.Definition()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildItemFailed, def.DisplayName, err)
		}

		item, err := New(d, ability, opts...)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildItemFailed, def.DisplayName, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// LoadItems loads, validates and builds the items in path and registers them
func LoadItems(ctx context.Context, path string, factory AbilityFactory, registry *Registry, opts ...Option) error {
	loader := NewLoader()

	config, err := loader.Load(path)
	if err != nil {
		return err
	}
	if err := loader.Validate(config); err != nil {
		return err
	}

	items, err := loader.Build(config, factory, opts...)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := registry.Register(item); err != nil {
			return err
		}
	}

	logger.FromContext(ctx).Info(LogMsgItemsLoaded, "path", path, "count", len(items), "version", config.Version)
	return nil
}
