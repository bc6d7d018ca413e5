package httpx

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultStatusTag is the tag an error uses to choose its own HTTP status.
const DefaultStatusTag = "StatusCode"

// Config is the declarative contract that turns results into transport
// responses. It is shared by httpx and grpcx.
type Config struct {
	// Namespace identifies the service in every error payload.
	Namespace string `yaml:"namespace" validate:"required"`
	// IncludeTags lists the reason tags copied into responses; empty means none.
	IncludeTags []string `yaml:"includeTags,omitempty" validate:"dive,required"`
	// DefaultFailureStatus is used when the first error does not choose one.
	DefaultFailureStatus int `yaml:"defaultFailureStatus" validate:"min=400,max=599"`
	// StatusTag names the tag holding a per-error status override.
	StatusTag string `yaml:"statusTag" validate:"required"`
}

var validate = validator.New()

// Normalize fills the defaults of unset fields.
func (c Config) Normalize() Config {
	if c.DefaultFailureStatus == 0 {
		c.DefaultFailureStatus = http.StatusBadRequest
	}
	if c.StatusTag == "" {
		c.StatusTag = DefaultStatusTag
	}
	return c
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid adapter config: %w", err)
	}
	return nil
}

// ParseConfig decodes, normalizes and validates a YAML config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse adapter config YAML: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read adapter config file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) includes(key string) bool {
	for _, k := range c.IncludeTags {
		if k == key {
			return true
		}
	}
	return false
}
