package sitefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thatsmidnight/website/infra/config/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the site file at filePath. The format follows the
// extension: .yaml/.yml or .toml.
// A missing file is not an error; it yields a nil config.
func LoadConfig(filePath string) (Config, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading site config file %s: %w", filePath, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	case ".toml":
		_, err = toml.Decode(string(raw), &cfg)
	default:
		return nil, fmt.Errorf("unsupported site config format %q for %s", ext, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling site config from %s: %w", filePath, err)
	}

	return cfg, nil
}

// GetConfigForStage returns the settings for stage, or nil when the config is
// nil or has no entry for it.
func GetConfigForStage(cfg Config, stage domain.StageType) *StageConfig {
	if cfg == nil {
		return nil
	}
	if stageConfig, ok := cfg[string(stage)]; ok {
		return &stageConfig
	}
	return nil
}
