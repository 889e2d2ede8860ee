package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
)

// LotterySettings represents the lottery setup for a specific league
type LotterySettings struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TotalTeams   int       `json:"total_teams"`
	LotteryTeams int       `json:"lottery_teams"`
	Percentage   float64   `json:"default_percentage"`
	Odds         []float64 `json:"odds,omitempty"` // per lottery slot, worst team first
}

// LotteryConfig represents the entire lottery configuration file
type LotteryConfig struct {
	Instructions    string                     `json:"_instructions,omitempty"`
	Leagues         map[string]LotterySettings `json:"leagues"`
	DefaultSettings LotterySettings            `json:"default_settings"`
}

// DefaultLotteryConfig returns the configuration used when no settings file exists
func DefaultLotteryConfig() *LotteryConfig {
	return &LotteryConfig{
		Leagues: make(map[string]LotterySettings),
		DefaultSettings: LotterySettings{
			Name:         "Default League",
			Description:  "Twelve teams, six in the lottery with equal odds",
			TotalTeams:   12,
			LotteryTeams: 6,
			Percentage:   lottery.DefaultPercentage,
		},
	}
}

// LoadLotterySettings loads lottery configuration from the settings file
func LoadLotterySettings() (*LotteryConfig, error) {
	configPaths := []string{
		"configs/lottery_settings.json",
		"../configs/lottery_settings.json",
		"../../configs/lottery_settings.json",
	}

	var configData []byte
	var foundPath string

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			var readErr error
			configData, readErr = os.ReadFile(path)
			if readErr == nil {
				foundPath = path
				break
			}
		}
	}

	if foundPath == "" {
		return DefaultLotteryConfig(), nil
	}

	return parseLotteryConfig(configData, foundPath)
}

// LoadLotterySettingsFile loads lottery configuration from an explicit path
func LoadLotterySettingsFile(path string) (*LotteryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lottery settings: %w", err)
	}
	return parseLotteryConfig(data, path)
}

func parseLotteryConfig(data []byte, path string) (*LotteryConfig, error) {
	var config LotteryConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse lottery settings from %s: %w", path, err)
	}
	if config.Leagues == nil {
		config.Leagues = make(map[string]LotterySettings)
	}
	return &config, nil
}

// GetLotterySettings returns settings for a specific league ID
func (c *LotteryConfig) GetLotterySettings(leagueID string) LotterySettings {
	if settings, exists := c.Leagues[leagueID]; exists {
		return settings
	}

	return c.DefaultSettings
}

// DefaultDraftConfig builds the starting configuration for a new lottery
func (c *LotteryConfig) DefaultDraftConfig() lottery.DraftConfig {
	s := c.DefaultSettings
	draft := lottery.DefaultConfig(s.TotalTeams, s.LotteryTeams, s.Percentage)
	ApplyOdds(&draft, s.Odds)
	return draft
}

// ApplyOdds overwrites lottery percentages slot by slot. Lottery teams beyond
// the end of odds keep their current percentage.
func ApplyOdds(draft *lottery.DraftConfig, odds []float64) {
	slot := 0
	for i := range draft.Teams {
		if !draft.Teams[i].IsLottery {
			continue
		}
		if slot >= len(odds) {
			return
		}
		draft.Teams[i].Percentage = lottery.Float(odds[slot])
		slot++
	}
}
