package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-draft-service/internal/draft"
)

// DraftConfig holds the defaults applied to drafts that leave options out.
type DraftConfig struct {
	Pool     string `yaml:"pool"`
	Rounds   int    `yaml:"rounds"`
	AITeams  int    `yaml:"ai_teams"`
	UserTeam string `yaml:"user_team"`
	Order    string `yaml:"order"`
}

// Settings is the shape of the optional YAML settings file.
type Settings struct {
	Draft DraftConfig `yaml:"draft"`
}

// ValidationError reports a settings value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func defaultDraft() DraftConfig {
	return DraftConfig{
		Pool:     "allTime",
		Rounds:   draft.DefaultRounds,
		AITeams:  draft.DefaultAITeamCount,
		UserTeam: draft.DefaultUserTeamName,
		Order:    string(draft.OrderLinear),
	}
}

// LoadSettings decodes a settings file. Unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the draft defaults.
func (d DraftConfig) Validate() error {
	if d.Rounds < 1 {
		return ValidationError{"draft.rounds", "must be >= 1"}
	}
	if d.AITeams < 1 {
		return ValidationError{"draft.ai_teams", "must be >= 1"}
	}
	if _, err := draft.ParseOrder(d.Order); err != nil {
		return ValidationError{"draft.order", "must be linear or snake"}
	}
	return nil
}

func loadDraft(settingsFile string) (DraftConfig, error) {
	cfg := defaultDraft()
	if settingsFile != "" {
		s, err := LoadSettings(settingsFile)
		if err != nil {
			return DraftConfig{}, err
		}
		cfg = cfg.merge(s.Draft)
	}

	cfg.Pool = envOrDefault(envPlayerPool, cfg.Pool)
	cfg.Rounds = intEnvOrDefault(envDraftRounds, cfg.Rounds)
	cfg.AITeams = intEnvOrDefault(envAITeamCount, cfg.AITeams)
	cfg.UserTeam = envOrDefault(envUserTeamName, cfg.UserTeam)
	cfg.Order = envOrDefault(envDraftOrder, cfg.Order)

	if err := cfg.Validate(); err != nil {
		return DraftConfig{}, err
	}
	return cfg, nil
}

// merge overlays the non-zero fields of other onto d.
func (d DraftConfig) merge(other DraftConfig) DraftConfig {
	if other.Pool != "" {
		d.Pool = other.Pool
	}
	if other.Rounds != 0 {
		d.Rounds = other.Rounds
	}
	if other.AITeams != 0 {
		d.AITeams = other.AITeams
	}
	if other.UserTeam != "" {
		d.UserTeam = other.UserTeam
	}
	if other.Order != "" {
		d.Order = other.Order
	}
	return d
}
