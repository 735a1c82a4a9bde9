package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/olegiv/deeplog/internal/analyzer"
)

// envPrefix namespaces every environment variable, e.g. DEEPLOG_LOG_LEVEL.
const envPrefix = "DEEPLOG"

// Overrides holds command-line values. Empty fields leave the loaded value.
type Overrides struct {
	LogLevel string // --log-level
	NoColor  bool   // --no-color
}

// Config holds all application configuration
type Config struct {
	// Application
	LogLevel string
	LogDir   string // empty disables the diagnostic log file
	NoColor  bool

	// Analysis
	MaxLogSizeMB      int
	ProcessPattern    string
	HighlightKeywords []string

	// Capture
	LogCommand string
	FetchLast  string
	FetchStyle string
}

// Load loads configuration with CLI overrides.
// Priority: CLI flags > .env file > OS environment variables > defaults
func Load(overrides *Overrides) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Load .env to override OS environment variables
	_ = godotenv.Overload()

	setDefaults(v)

	config := &Config{
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogDir:            v.GetString("LOG_DIR"),
		NoColor:           v.GetBool("NO_COLOR"),
		MaxLogSizeMB:      v.GetInt("MAX_LOG_SIZE_MB"),
		ProcessPattern:    v.GetString("PROCESS_PATTERN"),
		HighlightKeywords: splitList(v.GetString("HIGHLIGHT_KEYWORDS")),
		LogCommand:        v.GetString("LOG_COMMAND"),
		FetchLast:         v.GetString("FETCH_LAST"),
		FetchStyle:        v.GetString("FETCH_STYLE"),
	}

	// Apply CLI overrides (highest priority)
	if overrides != nil {
		if overrides.LogLevel != "" {
			config.LogLevel = overrides.LogLevel
		}
		if overrides.NoColor {
			config.NoColor = true
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("NO_COLOR", false)
	v.SetDefault("MAX_LOG_SIZE_MB", 100)
	v.SetDefault("PROCESS_PATTERN", analyzer.DefaultProcessPattern)
	v.SetDefault("HIGHLIGHT_KEYWORDS", strings.Join(analyzer.DefaultHighlightKeywords, ","))
	v.SetDefault("LOG_COMMAND", "log")
	v.SetDefault("FETCH_LAST", "10m")
	v.SetDefault("FETCH_STYLE", "syslog")
}

// lastRegex matches the time windows accepted by "log show --last".
var lastRegex = regexp.MustCompile(`^\d+[smhd]?$`)

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.MaxLogSizeMB < 1 || c.MaxLogSizeMB > 1024 {
		return fmt.Errorf("MAX_LOG_SIZE_MB must be between 1 and 1024")
	}

	if _, err := analyzer.NewProcessExtractor(c.ProcessPattern); err != nil {
		return fmt.Errorf("PROCESS_PATTERN is invalid: %w", err)
	}

	if c.LogCommand == "" {
		return fmt.Errorf("LOG_COMMAND is required")
	}

	if c.FetchLast != "" && !lastRegex.MatchString(c.FetchLast) {
		return fmt.Errorf("FETCH_LAST must look like 10m, 2h or 1d (got: %s)", c.FetchLast)
	}

	return nil
}

// ValidateFetchLast checks a --last value given on the command line.
func ValidateFetchLast(last string) error {
	if !lastRegex.MatchString(last) {
		return fmt.Errorf("--last must look like 10m, 2h or 1d (got: %s)", last)
	}
	return nil
}

// splitList splits a comma-separated value and drops empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
