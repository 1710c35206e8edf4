package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CRYPTO_TOOLBOX_SERVER_PORT.
const EnvPrefix = "CRYPTO_TOOLBOX_"

// AppConfig aggregates every settings section
type AppConfig struct {
	Logger LoggerSettings `mapstructure:"logger"`
	Server ServerSettings `mapstructure:"server"`
	Crypto CryptoDefaults `mapstructure:"crypto"`
}

// Validate validates every section
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Crypto.Validate()
}

// DefaultValues returns the configuration used when no file or environment overrides exist.
func DefaultValues() map[string]interface{} {
	return map[string]interface{}{
		"logger": map[string]interface{}{
			"log_level":   LogLevelInfo,
			"log_type":    LogTypeConsole,
			"file_path":   "",
			"max_size":    10,
			"max_backups": 3,
			"max_age":     28,
		},
		"server": map[string]interface{}{
			"port":                  "8080",
			"allowed_origins":       []interface{}{"*"},
			"rate_limit_tokens":     10,
			"rate_limit_interval":   "1s",
			"shutdown_timeout":      "15s",
			"read_header_timeout":   "10s",
			"max_request_body_size": 1 << 20,
		},
		"crypto": map[string]interface{}{
			"aes_mode":        "GCM",
			"aes_padding":     "NONE",
			"aes_key_bits":    256,
			"aes_encoding":    "BASE64",
			"rsa_key_size":    2048,
			"rsa_pem_format":  "PKCS",
			"rsa_padding":     "OAEP_SHA256",
			"key_output_path": ".",
		},
	}
}

// LoadConfig builds an AppConfig from defaults, an optional YAML file and environment overrides.
// An empty path skips the file.
func LoadConfig(path string) (*AppConfig, error) {
	values := DefaultValues()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var fileValues map[string]interface{}
		if err := yaml.Unmarshal(data, &fileValues); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		mergeValues(values, fileValues)
	}

	applyEnvOverrides(values, os.Environ())

	cfg, err := decode(values)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(values map[string]interface{}) (*AppConfig, error) {
	var cfg AppConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// mergeValues copies src into dst, descending into nested sections.
func mergeValues(dst, src map[string]interface{}) {
	for key, value := range src {
		srcSection, srcIsMap := value.(map[string]interface{})
		dstSection, dstIsMap := dst[key].(map[string]interface{})
		if srcIsMap && dstIsMap {
			mergeValues(dstSection, srcSection)
			continue
		}
		dst[key] = value
	}
}

// applyEnvOverrides maps CRYPTO_TOOLBOX_<SECTION>_<KEY>=value onto values[section][key].
func applyEnvOverrides(values map[string]interface{}, environ []string) {
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || key == "" {
			continue
		}
		sectionValues, ok := values[section].(map[string]interface{})
		if !ok {
			continue
		}
		sectionValues[key] = value
	}
}

