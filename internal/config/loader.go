package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadOptional behaves like loadYAML but treats a missing file as empty.
func loadOptional(path string, out any) error {
	err := loadYAML(path, out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadAll reads every data file under dir. Only rules.yaml is required;
// the others fall back to the built-in tables when absent.
func LoadAll(dir string) (*RulesConfig, *TypeChartConfig, *SpeciesConfig, *MovesConfig, error) {
	rc := DefaultRules()
	var tc TypeChartConfig
	var sc SpeciesConfig
	var mc MovesConfig
	if err := loadYAML(filepath.Join(dir, "rules.yaml"), rc); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load rules: %w", err)
	}
	if err := loadOptional(filepath.Join(dir, "typechart.yaml"), &tc); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := loadOptional(filepath.Join(dir, "species.yaml"), &sc); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := loadOptional(filepath.Join(dir, "moves.yaml"), &mc); err != nil {
		return nil, nil, nil, nil, err
	}
	rc.normalize()
	return rc, &tc, &sc, &mc, nil
}
