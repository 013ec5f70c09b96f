package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/pkg/hashutil"
)

const (
	EnvPrefix   = "HTTPMSG_"
	EnvOutput   = EnvPrefix + "OUTPUT"
	EnvLogLevel = EnvPrefix + "LOG_LEVEL"
	EnvHashAlgo = EnvPrefix + "HASH_ALGO"
	EnvPunycode = EnvPrefix + "PUNYCODE"
)

// DefaultEnvFile is read when no other dotenv file is given. Its absence is
// not an error.
const DefaultEnvFile = ".env"

// ReadEnvironment collects HTTPMSG_* settings from a dotenv file and the
// process environment. Process variables take precedence over the file.
// A missing dotenv file is only an error when it was named explicitly.
func ReadEnvironment(dotenvPath string) (map[string]string, error) {
	env := map[string]string{}

	path := dotenvPath
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); err == nil {
		fileEnv, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Wrapf(ErrConfigParsingFail, "%s: %v", path, err)
		}
		for k, v := range fileEnv {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	} else if dotenvPath != "" {
		return nil, errors.Wrapf(ErrFileDoesNotExist, "%s: %v", dotenvPath, err)
	}

	for _, entry := range os.Environ() {
		k, v, ok := strings.Cut(entry, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// WithEnvironment overrides fields from HTTPMSG_* keys. Values that cannot
// be interpreted are reported by Build.
func (c *Config) WithEnvironment(env map[string]string) *Config {
	if v, ok := env[EnvOutput]; ok && v != "" {
		c.output = OutputFormat(strings.ToLower(v))
	}
	if v, ok := env[EnvLogLevel]; ok && v != "" {
		c.logLevel = strings.ToLower(v)
	}
	if v, ok := env[EnvHashAlgo]; ok && v != "" {
		c.hashAlgo = hashutil.HashAlgo(strings.ToLower(v))
	}
	if v, ok := env[EnvPunycode]; ok && v != "" {
		punycode, err := strconv.ParseBool(v)
		if err != nil {
			c.envErr = errors.Wrapf(ErrInvalidConfig, "%s=%q is not a boolean", EnvPunycode, v)
		} else {
			c.punycode = punycode
		}
	}
	return c
}
