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

package helpers

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrInterpreterNotFound is returned when neither a virtual environment
// interpreter nor a usable fallback interpreter can be located.
var ErrInterpreterNotFound = errors.New("python interpreter not found")

// ExeDir returns the absolute, symlink-canonicalized directory containing the
// running binary. The result is the same regardless of working directory and
// regardless of whether the binary was invoked through a symlink.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return exeDir(exe)
}

func exeDir(exe string) (string, error) {
	dir, err := filepath.EvalSymlinks(filepath.Dir(exe))
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize executable dir: %w", err)
	}
	return dir, nil
}

// TopDir returns the repository root, one level above the launcher's own
// directory.
func TopDir(selfDir string) string {
	return filepath.Dir(selfDir)
}

// venvPython returns the conventional interpreter location inside a virtual
// environment directory.
func venvPython(topDir, venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(topDir, venvDir, "Scripts", "python.exe")
	}
	return filepath.Join(topDir, venvDir, "bin", "python3")
}

// VenvInterpreter checks for a virtual environment under topDir and returns
// the path to its embedded interpreter if present.
func VenvInterpreter(fsys afero.Fs, topDir, venvDir string) (string, bool) {
	path := venvPython(topDir, venvDir)

	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	return path, true
}

// FindInterpreter selects the interpreter used to run the downstream helper.
// A virtual environment under topDir always wins; otherwise fallback is used,
// resolved via PATH when it is a bare name. Returns ErrInterpreterNotFound
// when neither can be located, so the failure is reported before any exec
// attempt rather than as an opaque OS error.
func FindInterpreter(fsys afero.Fs, topDir, venvDir, fallback string) (string, error) {
	if path, ok := VenvInterpreter(fsys, topDir, venvDir); ok {
		log.Debug().Str("interpreter", path).Msg("using virtual environment interpreter")
		return path, nil
	}

	if strings.ContainsRune(fallback, os.PathSeparator) {
		info, err := fsys.Stat(fallback)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrInterpreterNotFound, fallback)
		}
		return fallback, nil
	}

	path, err := exec.LookPath(fallback)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInterpreterNotFound, fallback)
	}

	log.Debug().Str("interpreter", path).Msg("using system interpreter")
	return path, nil
}
