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

var AppVersion = "DEVELOPMENT"

const (
	AppName = "tray-wrapper"
	CfgFile = "launcher.toml"
	LogFile = "launcher.log"

	// VenvDir is the default name of the virtual environment directory
	// checked for under the repository root.
	VenvDir = "venv"

	// SrcDir holds the downstream helper scripts under the repository root.
	SrcDir = "src"

	DefaultPython = "python3"
	PythonPathEnv = "PYTHONPATH"
)
