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

// TrayWrapper wraps a single application window behind a tray icon.
var TrayWrapper = App{
	Name:     "tray-wrapper",
	ConfEnv:  "MINIMIZE_TO_TRAY_WRAPPER_CONF",
	ConfFile: "minimize-to-tray-wrapper.conf",
	Script:   "tray-wrapper-launch.py",
}

// MultiAppTray manages several applications behind one tray icon.
var MultiAppTray = App{
	Name:     "multi-app-tray",
	ConfEnv:  "MULTI_APP_TRAY_CONF",
	ConfFile: "multi-app-tray.conf",
	Script:   "multi-app-tray-launch.py",
}
