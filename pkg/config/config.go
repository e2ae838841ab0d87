// Minimize-to-tray wrapper
// Copyright (C) 2024, 2026 Rickard Armiento, httk
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	DebugEnv      = "TRAY_WRAPPER_DEBUG"
)

// Values are the optional launcher overrides read from launcher.toml next to
// the launcher binary. They only affect how the downstream helper is started,
// never the helper's own configuration file.
type Values struct {
	Python       string `toml:"python,omitempty"`
	VenvDir      string `toml:"venv,omitempty"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Python:       DefaultPython,
	VenvDir:      VenvDir,
}

type Instance struct {
	cfgPath string
	vals    Values
}

// NewConfig loads launcher overrides from launcher.toml in dir, if present.
// A missing file is not an error and yields the given defaults unchanged.
func NewConfig(fsys afero.Fs, dir string, defaults Values) (*Instance, error) {
	cfg := Instance{
		cfgPath: filepath.Join(dir, CfgFile),
		vals:    defaults,
	}

	data, err := afero.ReadFile(fsys, cfg.cfgPath)
	if os.IsNotExist(err) {
		return &cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.cfgPath, err)
	}

	if err := toml.Unmarshal(data, &cfg.vals); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfg.cfgPath, err)
	}

	if cfg.vals.Python == "" {
		cfg.vals.Python = defaults.Python
	}
	if cfg.vals.VenvDir == "" {
		cfg.vals.VenvDir = defaults.VenvDir
	}

	return &cfg, nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

// Python returns the interpreter used when no virtual environment is found.
// Either a bare name resolved via PATH or an absolute path.
func (c *Instance) Python() string {
	return c.vals.Python
}

// VenvDir returns the name of the virtual environment directory probed for
// under the repository root.
func (c *Instance) VenvDir() string {
	return c.vals.VenvDir
}

// DebugEnabled reports whether launcher debug logging is on, either via
// launcher.toml or the TRAY_WRAPPER_DEBUG environment variable.
func (c *Instance) DebugEnabled() bool {
	if os.Getenv(DebugEnv) == "1" {
		return true
	}
	return c.vals.DebugLogging
}
