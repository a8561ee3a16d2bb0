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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a program mode and each mode can have its own
// flags.
//
// Arguments are given once with NewArgs() and then consumed in layers by
// repeated calls to Parse(). Each layer declares its flags and the sub-modes
// that may follow them:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "HEADLESS", "PERFORMANCE", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default and is selected when the next argument
// is not a sub-mode name. Sub-mode names are compared case insensitively and
// are reported in upper case by Mode(). The mode layer is then parsed in the
// same way:
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 60, "number of frames to run")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		rom := md.GetArg(0)
//	}
//
// Path() returns every mode selected so far, separated by a slash. It is
// used as the banner of help messages for nested modes.
package modalflag
