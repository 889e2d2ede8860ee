package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
)

// LoadDraftConfig reads a draft configuration from a .json, .yaml or .yml file
func LoadDraftConfig(path string) (lottery.DraftConfig, error) {
	var draft lottery.DraftConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return draft, err
	}

	if err := ParseDraftConfig(raw, filepath.Ext(path), &draft); err != nil {
		return draft, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return draft, nil
}

// ParseDraftConfig decodes raw into draft; ext selects the format
func ParseDraftConfig(raw []byte, ext string, draft *lottery.DraftConfig) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(raw, draft)
	case ".json", "":
		return json.Unmarshal(raw, draft)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// MarshalDraftConfig encodes a draft configuration as YAML
func MarshalDraftConfig(draft lottery.DraftConfig) ([]byte, error) {
	return yaml.Marshal(draft)
}
