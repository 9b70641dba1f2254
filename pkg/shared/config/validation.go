package config

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/commentcheck/internal/rules"
)

// MaxThreads caps the number of files checked concurrently.
const MaxThreads = 64

// SupportedFormats lists the report formats the checker can write.
var SupportedFormats = []string{"text", "json", "sarif"}

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateCheckerConfig(&cfg.Checker); err != nil {
		return fmt.Errorf("YAML global config: checker directive is invalid: %w", err)
	}
	if err := ValidateRulesConfig(&cfg.Rules); err != nil {
		return fmt.Errorf("YAML global config: rules directive is invalid: %w", err)
	}
	return nil
}

// ValidateRulesConfig compiles the single line comment format so a broken
// pattern is rejected while the configuration loads.
func ValidateRulesConfig(r *Rules) error {
	if r.SingleLineComment.Enabled != nil && !*r.SingleLineComment.Enabled {
		return nil
	}
	if _, err := rules.NewSingleLineCommentRule(r.SingleLineComment.Format, r.SingleLineComment.Message); err != nil {
		return fmt.Errorf("single_line_comment: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks the logger level name.
func ValidateLoggerConfig(l *Logger) error {
	switch strings.ToUpper(l.Level) {
	case "", "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	}
	return fmt.Errorf("unknown level %q", l.Level)
}

// ValidateCheckerConfig checks thread count and report format.
func ValidateCheckerConfig(c *Checker) error {
	if c.Threads < 1 || c.Threads > MaxThreads {
		return fmt.Errorf("threads must be between 1 and %d: %d", MaxThreads, c.Threads)
	}
	return ValidateFormat(c.Format)
}

// ValidateFormat checks that format is one of SupportedFormats.
func ValidateFormat(format string) error {
	for _, f := range SupportedFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported report format %q, expected one of: %s", format, strings.Join(SupportedFormats, ", "))
}
