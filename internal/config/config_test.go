package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		PostgresURL:         "postgres://localhost/fairway_crew",
		AssignmentLocations: defaultLocations(),
		TeeTimeCapacity:     3,
		Quotas:              RecruitmentQuotas{Marshals: 300, Scorers: 300},
		Actor:               Actor{ID: "op_1", Name: "Tournament Director"},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingActor(t *testing.T) {
	cfg := &Config{
		AssignmentLocations: defaultLocations(),
		TeeTimeCapacity:     3,
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_MissingRequiredLocation(t *testing.T) {
	cfg := &Config{
		AssignmentLocations: []string{"Hole 1", "Hole 18", "Clubhouse"},
		TeeTimeCapacity:     3,
		Actor:               Actor{ID: "op_1", Name: "Tournament Director"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Scoring Tent")
}

func TestValidate_InvalidTeeTimeCapacity(t *testing.T) {
	cfg := &Config{
		AssignmentLocations: defaultLocations(),
		TeeTimeCapacity:     -1,
		Actor:               Actor{ID: "op_1", Name: "Tournament Director"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
postgresURL: "postgres://localhost/fairway_crew"
reportSheetID: "sheet123"
reportTab: "Approved Marshals"
affiliateVariants:
  - "karen country club"
  - "kcc"
assignmentLocations:
  - "Hole 1"
  - "Hole 18"
  - "Clubhouse"
  - "Scoring Tent"
supervisors:
  - "Grace Wanjiru"
teeTimeCapacity: 4
quotas:
  marshals: 250
  scorers: 120
actor:
  id: "op_1"
  name: "Tournament Director"
  role: "admin"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/fairway_crew", cfg.PostgresURL)
	assert.Equal(t, "sheet123", cfg.ReportSheetID)
	assert.Equal(t, "Approved Marshals", cfg.ReportTab)
	assert.Equal(t, []string{"karen country club", "kcc"}, cfg.AffiliateVariants)
	assert.Equal(t, 4, cfg.TeeTimeCapacity)
	assert.Equal(t, 250, cfg.Quotas.Marshals)
	assert.Equal(t, 120, cfg.Quotas.Scorers)
	assert.Equal(t, "op_1", cfg.Actor.ID)
	assert.Equal(t, "Tournament Director", cfg.Actor.Name)
	assert.Contains(t, cfg.Supervisors, "Grace Wanjiru")
}

func TestLoadFromPath_MinimalConfigAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
actor:
  id: "op_1"
  name: "Tournament Director"
`

	err := os.WriteFile(configPath, []byte(minimalConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.TeeTimeCapacity)
	assert.Equal(t, 300, cfg.Quotas.Marshals)
	assert.Equal(t, 300, cfg.Quotas.Scorers)
	assert.Equal(t, "Query Results", cfg.ReportTab)
	assert.Contains(t, cfg.AssignmentLocations, "Hole 1")
	assert.Contains(t, cfg.AssignmentLocations, "Hole 9")
	assert.Contains(t, cfg.AssignmentLocations, "Scoring Tent")
	assert.Len(t, cfg.AssignmentLocations, 20)
	assert.Empty(t, cfg.AffiliateVariants)
}

func TestLoadFromPath_MissingActor(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_config.yaml")

	invalidConfig := `
postgresURL: "postgres://localhost/fairway_crew"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
postgresURL: "postgres://localhost"
  invalid indentation
actor:
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
