package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown config format")

// Load reads the config file into v.
// The format is picked from the file extension, json or yaml.
func Load(file string, v interface{}) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read config '%s': %w", file, err)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("'%s': %w", file, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", file, err)
	}
	log.Debug().Str("file", file).Msg("loaded config")
	return nil
}
