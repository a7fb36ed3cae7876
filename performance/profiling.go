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

// Package performance provides profiling helpers for the extraction passes.
// Profiles are written with the runtime/pprof package and can be examined
// with the go pprof tool.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/simon-frankau/mac-classic-rom-re/curated"
)

// sentinel error pattern returned by the functions in this package.
const ProfilingError = "performance: %v"

// RunProfiler runs the supplied function, optionally writing cpu and memory
// profiles. The prefix argument is used to name the profile files:
// <prefix>_cpu.profile and <prefix>_mem.profile.
func RunProfiler(profile bool, prefix string, run func() error) error {
	if !profile {
		return run()
	}

	cf, err := os.Create(prefix + "_cpu.profile")
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer cf.Close()

	err = pprof.StartCPUProfile(cf)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer pprof.StopCPUProfile()

	err = run()
	if err != nil {
		return err
	}

	mf, err := os.Create(prefix + "_mem.profile")
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	defer mf.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(mf)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}

	return nil
}
