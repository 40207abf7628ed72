package clients

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mindstep/aiplan/internal/profile"
)

// LoadProfileFile reads a profile from a JSON or YAML file.
func LoadProfileFile(path string) (profile.Profile, error) {
	var raw profile.RawProfile
	if err := decodeFile(path, &raw); err != nil {
		return profile.Profile{}, err
	}
	p, err := raw.Build()
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadCatalogFile reads a catalog from a JSON or YAML file of the form
// {"tasks": [...]}.
func LoadCatalogFile(path string) ([]profile.TaskCatalogEntry, error) {
	var env catalogEnvelope
	if err := decodeFile(path, &env); err != nil {
		return nil, err
	}
	return profile.BuildCatalog(env.Tasks), nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
