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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Unlike the
// similarly named function in the fmt package, the formatting pattern is
// kept alongside the error and acts as its identity. Packages that want
// their failure conditions to be matchable export the pattern as a
// constant:
//
//	const GeometryMismatch = "edisk: geometry: %v"
//
//	return curated.Errorf(GeometryMismatch, "bad block size")
//
// Callers can then test for the condition without string comparison of the
// formatted message:
//
//	if curated.Is(err, edisk.GeometryMismatch) {
//		...
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// chain of wrapped curated errors.
package curated
