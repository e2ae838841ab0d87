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
	"github.com/httk/minimize-to-tray-wrapper/pkg/config"
	"github.com/httk/minimize-to-tray-wrapper/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Run is the shared entrypoint for all launcher binaries: resolve paths, load
// overrides, build the launch plan and hand the process over to app. It only
// returns on error; on success the process image is replaced.
func Run(app App, args []string) error {
	selfDir, err := helpers.ExeDir()
	if err != nil {
		return err
	}

	fsys := afero.NewOsFs()

	cfg, err := config.NewConfig(fsys, selfDir, config.BaseDefaults)
	if err != nil {
		return err
	}

	if cfg.DebugEnabled() {
		if err := helpers.InitLogging(); err != nil {
			return err
		}
		log.Info().
			Str("app", app.Name).
			Str("version", config.AppVersion).
			Strs("args", args).
			Msg("starting launcher")
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	plan, err := NewPlan(fsys, cfg, app, selfDir, args)
	if err != nil {
		return err
	}

	log.Debug().
		Str("interpreter", plan.Interpreter).
		Str("target", plan.Target).
		Str("conf", plan.ConfPath).
		Msg("launch plan ready")

	return Exec(plan)
}
