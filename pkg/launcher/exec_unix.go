//go:build !windows

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
	"fmt"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with the planned interpreter
// invocation. The process identity, file descriptors and exit code handling
// all pass to the helper; on success this never returns.
func Exec(p *Plan) error {
	if err := unix.Exec(p.Interpreter, p.Argv(), p.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", p.Interpreter, err)
	}
	return nil
}
