package configuration

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
// Keys are always lower cased and nested keys are separated by ".".
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "failed to access config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "failed to load config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including default values and merges them into the
// loaded config. Existing keys will only be overwritten if they were set via command line.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars ("SLIST_LOG_LEVEL" maps to "log.level" for the prefix "SLIST").
// Only existing keys will be overwritten, all other keys are ignored. Values of keys that hold a list are split at ",".
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.ProviderWithValue(prefix, ".", func(key string, value string) (string, interface{}) {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			return "", nil
		}

		if isList(c.config.Get(mapKey)) {
			return mapKey, splitList(value)
		}

		return mapKey, value
	}), nil)
}

// Exists returns true if the given key is set.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// Bool returns the bool value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// Strings returns the string slice value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// All returns a flat map of all keys and their values.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Unmarshal decodes the subtree of the given key into the given struct (an empty key decodes the whole config).
func (c *Configuration) Unmarshal(key string, target interface{}) error {
	if err := c.config.Unmarshal(strings.ToLower(key), target); err != nil {
		return ierrors.Wrapf(err, "failed to unmarshal config key %q", key)
	}

	return nil
}

// Print writes the loaded configuration as indented JSON to the given writer.
func (c *Configuration) Print(w io.Writer) {
	if cfg, err := json.MarshalIndent(c.config.Raw(), "", "  "); err == nil {
		fmt.Fprintf(w, "Parameters loaded:\n%s\n", cfg)
	}
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// parserForFile returns the parser that matches the extension of the given file.
func parserForFile(filePath string) (koanf.Parser, error) {
	switch filepath.Ext(filePath) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "unsupported extension of %s", filePath)
	}
}

// isList returns true if the given config value is a list.
func isList(value interface{}) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Slice
}

// splitList splits a list given as a single comma separated string. An empty string is an empty list.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	elements := strings.Split(value, ",")
	for i, element := range elements {
		elements[i] = strings.TrimSpace(element)
	}

	return elements
}
