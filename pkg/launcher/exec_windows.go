//go:build windows

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

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Exec has no true process replacement on Windows: the helper runs as a child
// with inherited stdio and environment, and the launcher exits with the
// child's exit code once it finishes.
func Exec(p *Plan) error {
	cmd := exec.Command(p.Interpreter, p.Argv()[1:]...) //nolint:gosec // interpreter path resolved by FindInterpreter
	cmd.Env = p.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", p.Interpreter, err)
	}

	os.Exit(0)
	return nil
}
