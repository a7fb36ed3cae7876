// This file is part of mac-classic-rom-re.
//
// mac-classic-rom-re is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mac-classic-rom-re is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mac-classic-rom-re.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes
// (sometimes called sub-commands), allowing a different set of flags for
// each mode.
//
// At its simplest it can be used as a replacement for the flag package.
// Whereas with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments can then be retrieved with RemainingArgs() or
// GetArg().
//
// Program modes are declared with AddSubModes() before the call to Parse().
// After a successful parse, the selected mode is available through the
// Mode() function. NewMode() then readies the struct for the flags of that
// mode and Parse() can be called again for the next layer of arguments:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TRAPS", "EDISKS")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "TRAPS":
//		md.NewMode()
//		output := md.AddString("o", "", "output file")
//		p, err := md.Parse()
//		...
//	}
//
// Help messages are printed to the Output field automatically whenever the
// user asks for them with -help (or when flag parsing fails).
package modalflag
