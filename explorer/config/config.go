package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/domain/entities/calendar"
	loaderConfig "bikeshare/loader/config"
	"bikeshare/utils"
)

const (
	configFilepath       = "./explorer/config/config.yaml"
	configPathEnvVarName = "BIKESHARE_CONFIG"
	defaultPageSize      = 5
	defaultLogLevel      = "info"
)

var validLogLevels = []string{"panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"}

// DataSpanConfig first and last month covered by the trip logs.
// Only these months are offered when filtering by month.
type DataSpanConfig struct {
	FirstMonth string `yaml:"first_month"`
	LastMonth  string `yaml:"last_month"`
}

// ExplorerConfig is built once at start and only read afterwards
type ExplorerConfig struct {
	LogLevel     string                         `yaml:"log_level"`
	PageSize     int                            `yaml:"page_size"`
	DataSpan     DataSpanConfig                 `yaml:"data_span"`
	LoaderConfig loaderConfig.LoaderConfig      `yaml:",inline"`
	ReportSink   communication.ReportSinkConfig `yaml:"report_sink"`
	months       []time.Month
}

// LoadConfig reads the config file from BIKESHARE_CONFIG or the default path
func LoadConfig() (*ExplorerConfig, error) {
	filepath := os.Getenv(configPathEnvVarName)
	if filepath == "" {
		filepath = configFilepath
	}

	configFile, err := utils.GetConfigFile(filepath)
	if err != nil {
		return nil, err
	}
	return ParseConfig(configFile)
}

// ParseConfig decodes and validates a yaml config
func ParseConfig(content []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(content, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s: %w", err.Error(), ErrInvalidConfig)
	}

	if err := explorerConfig.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidConfig)
	}
	return &explorerConfig, nil
}

// Months returns the months covered by the data, in calendar order
func (ec *ExplorerConfig) Months() []time.Month {
	months := make([]time.Month, len(ec.months))
	copy(months, ec.months)
	return months
}

func (ec *ExplorerConfig) validate() error {
	if ec.LogLevel == "" {
		ec.LogLevel = defaultLogLevel
	}
	if !utils.ContainsFold(ec.LogLevel, validLogLevels) {
		return fmt.Errorf("invalid log level %q", ec.LogLevel)
	}

	if ec.PageSize == 0 {
		ec.PageSize = defaultPageSize
	}
	if ec.PageSize < 0 {
		return fmt.Errorf("page_size must be positive, got %v", ec.PageSize)
	}

	first, last := time.January, time.June
	var err error
	if ec.DataSpan.FirstMonth != "" {
		if first, err = calendar.ParseMonth(ec.DataSpan.FirstMonth); err != nil {
			return fmt.Errorf("data_span.first_month: %w", err)
		}
	}
	if ec.DataSpan.LastMonth != "" {
		if last, err = calendar.ParseMonth(ec.DataSpan.LastMonth); err != nil {
			return fmt.Errorf("data_span.last_month: %w", err)
		}
	}
	if first > last {
		return fmt.Errorf("data_span.first_month %s is after last_month %s", first, last)
	}
	ec.months = calendar.MonthRange(first, last)

	if ec.ReportSink.Enabled && ec.ReportSink.ExchangeDeclarationConfig.Name == "" {
		return fmt.Errorf("report_sink is enabled but has no exchange name")
	}

	return ec.LoaderConfig.Validate()
}
