package configs

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed engine.yaml
var embeddedConfigs embed.FS

// EngineDefaults returns the embedded engine default settings YAML.
func EngineDefaults() ([]byte, error) {
	data, err := fs.ReadFile(embeddedConfigs, "engine.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded engine defaults: %w", err)
	}
	return data, nil
}
