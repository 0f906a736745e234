package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RecruitmentQuotas defines the target headcount per volunteer role
type RecruitmentQuotas struct {
	Marshals int `yaml:"marshals" validate:"min=0"`
	Scorers  int `yaml:"scorers" validate:"min=0"`
}

// Actor identifies the operator running the tool, used for audit
// attribution
type Actor struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
	Role string `yaml:"role,omitempty"`
}

// Config represents the application configuration
type Config struct {
	PostgresURL         string            `yaml:"postgresURL,omitempty"`
	ReportSheetID       string            `yaml:"reportSheetID,omitempty"`
	ReportTab           string            `yaml:"reportTab,omitempty"`
	AffiliateVariants   []string          `yaml:"affiliateVariants,omitempty"`
	AssignmentLocations []string          `yaml:"assignmentLocations,omitempty"`
	Supervisors         []string          `yaml:"supervisors,omitempty"`
	TeeTimeCapacity     int               `yaml:"teeTimeCapacity,omitempty" validate:"omitempty,min=1"`
	Quotas              RecruitmentQuotas `yaml:"quotas,omitempty"`
	Actor               Actor             `yaml:"actor"`
}

// Locations every tournament needs staffed regardless of local config
var requiredLocations = []string{"Hole 1", "Hole 18", "Clubhouse", "Scoring Tent"}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from fairway_crew.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the location
// list covers the staffed positions the tournament cannot run without
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	present := make(map[string]bool, len(cfg.AssignmentLocations))
	for _, loc := range cfg.AssignmentLocations {
		present[loc] = true
	}
	for _, loc := range requiredLocations {
		if !present[loc] {
			return fmt.Errorf("assignmentLocations missing required location %q", loc)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.TeeTimeCapacity == 0 {
		cfg.TeeTimeCapacity = 3
	}
	if cfg.Quotas.Marshals == 0 {
		cfg.Quotas.Marshals = 300
	}
	if cfg.Quotas.Scorers == 0 {
		cfg.Quotas.Scorers = 300
	}
	if len(cfg.AssignmentLocations) == 0 {
		cfg.AssignmentLocations = defaultLocations()
	}
	if cfg.ReportTab == "" {
		cfg.ReportTab = "Query Results"
	}
}

func defaultLocations() []string {
	locations := make([]string, 0, len(requiredLocations)+14)
	locations = append(locations, requiredLocations...)
	for hole := 2; hole < 18; hole++ {
		locations = append(locations, fmt.Sprintf("Hole %d", hole))
	}
	return locations
}

// findConfigFile searches for fairway_crew.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "fairway_crew.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
