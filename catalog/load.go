package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a catalog file (TOML, YAML or JSON by extension) and validates it
// Invalid orbital parameters are rejected here, before any simulation state exists
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("sunRadius", 5.0)
	v.SetDefault("sunColor", "#ffaa00")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var c Catalog
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidCatalog, path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}
