// Package config loads timecollect settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. TIMECOLLECT_GOOGLE_PROJECT_RANGE.
// The unprefixed name (PROJECT_RANGE) is accepted as a fallback.
const EnvPrefix = "TIMECOLLECT"

// Config represents the complete application configuration
type Config struct {
	Google    GoogleConfig    `yaml:"google" envconfig:"GOOGLE"`
	Timesheet TimesheetConfig `yaml:"timesheet" envconfig:"TIMESHEET"`
	Schedule  ScheduleConfig  `yaml:"schedule" envconfig:"SCHEDULE"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
}

// GoogleConfig locates the reference spreadsheets and API credentials
type GoogleConfig struct {
	CredentialsFile        string  `yaml:"credentials_file" envconfig:"CREDENTIALS_FILE"`
	ProjectSpreadsheetID   string  `yaml:"project_spreadsheet_id" envconfig:"PROJECT_SPREADSHEET_ID" validate:"required"`
	ProjectRange           string  `yaml:"project_range" envconfig:"PROJECT_RANGE" validate:"required"`
	EmployeesSpreadsheetID string  `yaml:"employees_spreadsheet_id" envconfig:"EMPLOYEES_SPREADSHEET_ID" validate:"required"`
	RequestsPerSecond      float64 `yaml:"requests_per_second" envconfig:"REQUESTS_PER_SECOND" validate:"gte=0"`
	Burst                  int     `yaml:"burst" envconfig:"BURST" validate:"gte=1"`
}

// TimesheetConfig describes which sheets are read and how they are laid out
type TimesheetConfig struct {
	Sheets         []string `yaml:"sheets" envconfig:"SHEETS" validate:"required,min=1,dive,required"`
	DataRange      string   `yaml:"data_range" envconfig:"DATA_RANGE" validate:"required"`
	DirectoryRange string   `yaml:"directory_range" envconfig:"DIRECTORY_RANGE" validate:"required"`
	DropColumns    []int    `yaml:"drop_columns" envconfig:"DROP_COLUMNS" validate:"dive,gte=0"`
	Workers        int      `yaml:"workers" envconfig:"WORKERS" validate:"gte=1"`
	// WorkbookDir switches to local <dir>/<spreadsheet id>.xlsx files instead of the Sheets API.
	WorkbookDir string `yaml:"workbook_dir" envconfig:"WORKBOOK_DIR"`
}

// ScheduleConfig is the first Sunday of the week schedule
type ScheduleConfig struct {
	StartYear  int `yaml:"start_year" envconfig:"START_YEAR" validate:"gte=1900,lte=9999"`
	StartMonth int `yaml:"start_month" envconfig:"START_MONTH" validate:"gte=1,lte=12"`
	StartDay   int `yaml:"start_day" envconfig:"START_DAY" validate:"gte=1,lte=31"`
}

// OutputConfig controls the export
type OutputConfig struct {
	File   string `yaml:"file" envconfig:"OUTPUT_FILE" validate:"required"`
	Format string `yaml:"format" envconfig:"OUTPUT_FORMAT" validate:"oneof=xlsx json"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"LOG_FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"LOG_OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"LOG_FILE" validate:"required_unless=Output console"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Google: GoogleConfig{
			CredentialsFile:   "google_credentials/credentials.json",
			RequestsPerSecond: 1,
			Burst:             5,
		},
		Timesheet: TimesheetConfig{
			Sheets:         []string{"202509", "202510"},
			DataRange:      "A7:BT39",
			DirectoryRange: "A:E",
			Workers:        4,
		},
		Schedule: ScheduleConfig{
			StartYear:  2024,
			StartMonth: 12,
			StartDay:   29,
		},
		Output: OutputConfig{
			File:   "output/TimeCollect.xlsx",
			Format: "xlsx",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/main_app.log",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or the first file found in the usual locations when path is empty), then
// the environment, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg; keys missing from the file keep their value.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	locations := []string{
		"timecollect.yaml",
		"configs/timecollect.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}
