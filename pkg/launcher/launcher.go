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

// Package launcher builds the argument vector and environment for a
// downstream tray helper and hands the process over to it.
package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/httk/minimize-to-tray-wrapper/pkg/config"
	"github.com/httk/minimize-to-tray-wrapper/pkg/helpers"
	"github.com/spf13/afero"
)

// App describes one downstream tray helper served by a launcher binary.
type App struct {
	// Name of the launcher binary, for logging.
	Name string
	// ConfEnv is the environment variable naming the helper's config file.
	ConfEnv string
	// ConfFile sits next to the launcher binary.
	ConfFile string
	// Script is the helper entrypoint under the repository's src directory.
	Script string
}

// Plan holds everything needed to start a downstream helper. Built once per
// invocation; there is no other process-wide state.
type Plan struct {
	Interpreter string
	Target      string
	ConfEnv     string
	ConfPath    string
	ModuleDir   string
	Args        []string
}

// NewPlan resolves the interpreter and fixed paths for app. selfDir is the
// canonicalized directory containing the launcher binary; args is the raw
// argument tail, forwarded untouched.
func NewPlan(fsys afero.Fs, cfg *config.Instance, app App, selfDir string, args []string) (*Plan, error) {
	topDir := helpers.TopDir(selfDir)

	interp, err := helpers.FindInterpreter(fsys, topDir, cfg.VenvDir(), cfg.Python())
	if err != nil {
		return nil, err
	}

	srcDir := filepath.Join(topDir, config.SrcDir)

	return &Plan{
		Interpreter: interp,
		Target:      filepath.Join(srcDir, app.Script),
		ConfEnv:     app.ConfEnv,
		ConfPath:    filepath.Join(selfDir, app.ConfFile),
		ModuleDir:   srcDir,
		Args:        args,
	}, nil
}

// Argv returns the full argument vector for the replacement process, with the
// original launcher arguments in order and unmodified.
func (p *Plan) Argv() []string {
	argv := make([]string, 0, len(p.Args)+2)
	argv = append(argv, p.Interpreter, p.Target)
	return append(argv, p.Args...)
}

// Environ returns the inherited environment with the helper config variable
// set and the module search path extended with the repository src directory.
func (p *Plan) Environ() []string {
	return p.environ(os.Environ())
}

func (p *Plan) environ(base []string) []string {
	pythonPath := p.ModuleDir

	env := make([]string, 0, len(base)+2)
	for _, kv := range base {
		if strings.HasPrefix(kv, p.ConfEnv+"=") {
			continue
		}
		if rest, ok := strings.CutPrefix(kv, config.PythonPathEnv+"="); ok {
			if rest != "" {
				pythonPath += string(os.PathListSeparator) + rest
			}
			continue
		}
		env = append(env, kv)
	}

	env = append(env, p.ConfEnv+"="+p.ConfPath)
	return append(env, config.PythonPathEnv+"="+pythonPath)
}
