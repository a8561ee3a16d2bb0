// This file is part of Gofceux.
//
// Gofceux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gofceux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gofceux.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to gofceux resources.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. For example, the following will return
// the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The first argument is a sub-directory of the config directory. It will be
// created if it does not exist. The second argument is the resource itself
// and is not checked for existence.
//
// The policy of ResourcePath() depends on the build. Release builds (built
// with the "release" build tag) use the user's config directory as returned
// by os.UserConfigDir(). On a modern Linux system that means:
//
//	/home/user/.config/gofceux/preferences
//
// Non-release builds use the ".gofceux" directory in the current working
// directory. This keeps development files away from the user's own
// preferences.
package paths
