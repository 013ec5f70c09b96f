package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/pkg/fileutil"
	"github.com/rohmanhakim/http-message/pkg/hashutil"
	"go.uber.org/zap/zapcore"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

type Config struct {
	//===============
	// Output
	//===============
	// Format used to print command results on stdout
	output OutputFormat
	// Minimum level of the diagnostic log written to stderr
	logLevel string

	//===============
	// Canonicalization
	//===============
	// Digest used when deriving cache keys from canonical URLs
	hashAlgo hashutil.HashAlgo
	// Whether internationalized hosts are converted to their ASCII (punycode) form
	punycode bool

	level  zapcore.Level
	envErr error
}

type configDTO struct {
	Output   string `json:"output,omitempty"`
	LogLevel string `json:"logLevel,omitempty"`
	HashAlgo string `json:"hashAlgo,omitempty"`
	// Pointer so that an explicit false can be told apart from absence
	Punycode *bool `json:"punycode,omitempty"`
}

func newConfigFromDTO(dto configDTO) *Config {
	cfg := WithDefault()

	// Only override if a non-zero value is provided
	if dto.Output != "" {
		cfg.output = OutputFormat(strings.ToLower(dto.Output))
	}
	if dto.LogLevel != "" {
		cfg.logLevel = strings.ToLower(dto.LogLevel)
	}
	if dto.HashAlgo != "" {
		cfg.hashAlgo = hashutil.HashAlgo(strings.ToLower(dto.HashAlgo))
	}
	if dto.Punycode != nil {
		cfg.punycode = *dto.Punycode
	}
	return cfg
}

// WithConfigFile starts a builder from the defaults overlaid with the JSON
// file at path. Further With* calls override the file.
func WithConfigFile(path string) (*Config, error) {
	if ext := strings.ToLower(fileutil.GetFileExtension(path)); ext != "json" {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s: expected a .json file", path)
	}
	_, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	err = json.Unmarshal(configContent, &cfgDTO)
	if err != nil {
		return nil, errors.Wrap(ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO), nil
}

// WithDefault creates a new Config builder holding the default values.
func WithDefault() *Config {
	defaultConfig := Config{
		output:   OutputText,
		logLevel: "info",
		hashAlgo: hashutil.HashAlgoSHA256,
		punycode: true,
	}
	return &defaultConfig
}

func (c *Config) WithOutput(output OutputFormat) *Config {
	c.output = output
	return c
}

func (c *Config) WithLogLevel(level string) *Config {
	c.logLevel = level
	return c
}

func (c *Config) WithHashAlgo(algo hashutil.HashAlgo) *Config {
	c.hashAlgo = algo
	return c
}

func (c *Config) WithPunycode(punycode bool) *Config {
	c.punycode = punycode
	return c
}

func (c *Config) Build() (Config, error) {
	if c.envErr != nil {
		return Config{}, c.envErr
	}

	switch c.output {
	case OutputText, OutputJSON:
	default:
		return Config{}, errors.Wrapf(ErrInvalidConfig, "output must be text or json, got %q", c.output)
	}

	level, err := zapcore.ParseLevel(c.logLevel)
	if err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "logLevel: %v", err)
	}
	c.level = level

	algo, err := hashutil.ParseAlgo(string(c.hashAlgo))
	if err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "hashAlgo: %v", err)
	}
	c.hashAlgo = algo

	return *c, nil
}

func (c Config) Output() OutputFormat {
	return c.output
}

func (c Config) LogLevel() zapcore.Level {
	return c.level
}

func (c Config) HashAlgo() hashutil.HashAlgo {
	return c.hashAlgo
}

func (c Config) Punycode() bool {
	return c.punycode
}
