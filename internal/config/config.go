// Package config loads authored site configuration files.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// CurrentVersion is the only accepted value of the optional version key.
const CurrentVersion = "1"

//go:embed blueprint.yaml
var blueprint []byte

// Blueprint returns the bundled example configuration.
func Blueprint() []byte {
	return append([]byte(nil), blueprint...)
}

// document is the on-disk shape: a version marker plus the raw site fields.
type document struct {
	Version        string `yaml:"version,omitempty"`
	site.RawConfig `yaml:",inline"`
}

// Load reads, env-expands and decodes a site configuration file. The
// returned RawConfig is not validated; pass it to site.Build.
func Load(configPath string) (site.RawConfig, error) {
	if err := loadEnvFile(); err != nil {
		// Missing .env files are normal.
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return site.RawConfig{}, ferrors.NewError(ferrors.CategoryNotFound, "configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return site.RawConfig{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	raw, err := Parse(data)
	if err != nil {
		if c, ok := ferrors.AsClassified(err); ok {
			return site.RawConfig{}, c.WithContext("path", configPath)
		}
		return site.RawConfig{}, err
	}
	return raw, nil
}

// Parse expands ${VAR} references in data and decodes it. Unknown keys are
// rejected so that typos surface instead of silently becoming defaults.
func Parse(data []byte) (site.RawConfig, error) {
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return site.RawConfig{}, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal site config").Build()
	}
	if doc.Version != "" && doc.Version != CurrentVersion {
		return site.RawConfig{}, ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", doc.Version, CurrentVersion)).
			Build()
	}
	return doc.RawConfig, nil
}

// Init writes the bundled blueprint configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.NewError(ferrors.CategoryConfig, "configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}
	if err := os.WriteFile(configPath, blueprint, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
