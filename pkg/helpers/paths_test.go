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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExeDir(t *testing.T) {
	t.Parallel()

	dir, err := ExeDir()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExeDirIgnoresWorkingDirectory(t *testing.T) {
	dir, err := ExeDir()
	require.NoError(t, err)

	t.Chdir(t.TempDir())

	again, err := ExeDir()
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestExeDirResolvesSymlinkedInvocation(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	realBin := filepath.Join(tmp, "real", "bin")
	require.NoError(t, os.MkdirAll(realBin, 0o755))
	require.NoError(t, os.Symlink(realBin, filepath.Join(tmp, "linkdir")))

	// TempDir itself may sit behind a symlink on some platforms.
	canonical, err := filepath.EvalSymlinks(realBin)
	require.NoError(t, err)

	dir, err := exeDir(filepath.Join(tmp, "linkdir", "tray-wrapper"))
	require.NoError(t, err)
	assert.Equal(t, canonical, dir)

	direct, err := exeDir(filepath.Join(realBin, "tray-wrapper"))
	require.NoError(t, err)
	assert.Equal(t, direct, dir)
	assert.Equal(t, filepath.Dir(canonical), TopDir(dir))
}

func TestTopDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		selfDir  string
		expected string
	}{
		{
			name:     "install_tree",
			selfDir:  "/opt/tray-wrapper/bin",
			expected: "/opt/tray-wrapper",
		},
		{
			name:     "home_checkout",
			selfDir:  "/home/user/src/tray-wrapper/bin",
			expected: "/home/user/src/tray-wrapper",
		},
		{
			name:     "root_level",
			selfDir:  "/bin",
			expected: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, TopDir(tt.selfDir))
		})
	}
}

func TestVenvInterpreter(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys,
		"/opt/tray-wrapper/venv/bin/python3", []byte("#!elf"), 0o755))

	path, ok := VenvInterpreter(fsys, "/opt/tray-wrapper", "venv")
	require.True(t, ok)
	assert.Equal(t, "/opt/tray-wrapper/venv/bin/python3", path)

	_, ok = VenvInterpreter(fsys, "/opt/elsewhere", "venv")
	assert.False(t, ok)
}

func TestVenvInterpreterRejectsDirectory(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/opt/tray-wrapper/venv/bin/python3", 0o755))

	_, ok := VenvInterpreter(fsys, "/opt/tray-wrapper", "venv")
	assert.False(t, ok)
}

func TestFindInterpreterPrefersVenv(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys,
		"/opt/tray-wrapper/venv/bin/python3", []byte("#!elf"), 0o755))
	require.NoError(t, afero.WriteFile(fsys,
		"/usr/bin/python3", []byte("#!elf"), 0o755))

	path, err := FindInterpreter(fsys, "/opt/tray-wrapper", "venv", "/usr/bin/python3")
	require.NoError(t, err)
	assert.Equal(t, "/opt/tray-wrapper/venv/bin/python3", path)
}

func TestFindInterpreterAbsoluteFallback(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys,
		"/usr/bin/python3", []byte("#!elf"), 0o755))

	path, err := FindInterpreter(fsys, "/opt/tray-wrapper", "venv", "/usr/bin/python3")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/python3", path)
}

func TestFindInterpreterNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	fsys := afero.NewMemMapFs()

	_, err := FindInterpreter(fsys, "/opt/tray-wrapper", "venv", "python3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInterpreterNotFound)

	_, err = FindInterpreter(fsys, "/opt/tray-wrapper", "venv", "/usr/bin/python3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInterpreterNotFound)
}
