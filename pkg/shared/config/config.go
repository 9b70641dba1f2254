package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultConfigFile is read when no --config flag is given.
	DefaultConfigFile = "commentcheck.yml"
	// ConfigEnvVar overrides the default config file path.
	ConfigEnvVar = "COMMENTCHECK_CONFIG"

	DefaultSingleLineFormat  = `/\*.*\*/`
	DefaultSingleLineMessage = "This kind of comment is not allowed."
	DefaultThreads           = 1
	DefaultFormat            = "text"
)

type Config struct {
	Logger  Logger  `yaml:"logger"`
	Checker Checker `yaml:"checker"`
	Rules   Rules   `yaml:"rules"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type Checker struct {
	Threads int    `yaml:"threads"`
	Format  string `yaml:"format"`
}

type Rules struct {
	SingleLineComment  SingleLineComment  `yaml:"single_line_comment"`
	MethodBodyComments MethodBodyComments `yaml:"method_body_comments"`
}

// SingleLineComment configures the rule against block comments written on one line.
type SingleLineComment struct {
	Enabled *bool  `yaml:"enabled"`
	Format  string `yaml:"format"`
	Message string `yaml:"message"`
}

// MethodBodyComments configures the rule against line comments inside method bodies.
type MethodBodyComments struct {
	Enabled *bool `yaml:"enabled"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// ValidateConfigPath checks that path exists and is a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration file. A missing file is only an error
// when the path was requested explicitly; otherwise defaults are returned.
func LoadConfig(configPath string, explicit bool) (*Config, error) {
	cfg := &Config{}

	if err := LoadYAML(configPath, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Checker.Threads = SetThen(cfg.Checker.Threads, DefaultThreads)
	cfg.Checker.Format = SetThen(cfg.Checker.Format, DefaultFormat)
	cfg.Rules.SingleLineComment.Format = SetThen(cfg.Rules.SingleLineComment.Format, DefaultSingleLineFormat)
	cfg.Rules.SingleLineComment.Message = SetThen(cfg.Rules.SingleLineComment.Message, DefaultSingleLineMessage)
}
