// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fix

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the per-project configuration looked up in the
// working directory.
const ConfigFile = "gofix.yaml"

// A Config carries optional per-project defaults. Command-line flags
// override every field.
type Config struct {
	// Fixes restricts the default fix selection by name.
	// Empty means all registered fixes.
	Fixes []string `yaml:"fixes"`

	// Exclude lists glob patterns for file base names to skip in
	// directory mode.
	Exclude []string `yaml:"exclude"`

	// Jobs caps the directory-mode worker pool.
	// Zero means one worker per CPU.
	Jobs int `yaml:"jobs"`
}

// LoadConfig reads the configuration at path. A missing file is not
// an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, xerrors.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
