package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/logging"
)

// Read reads a config from the given file, substituting ${VAR} references from the environment.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	cfg := Config{}
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", originalPath)
	}
	cfg.ConfigFilePath = originalPath

	if err := cfg.Validate("config"); err != nil {
		return nil, err
	}
	logger.Debugw("read planning problem",
		"path", originalPath,
		"start", cfg.Start,
		"goal", cfg.Goal,
		"obstacles", len(cfg.Obstacles),
	)
	return &cfg, nil
}
