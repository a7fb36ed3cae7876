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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/simon-frankau/mac-classic-rom-re/annotate"
	"github.com/simon-frankau/mac-classic-rom-re/edisk"
	"github.com/simon-frankau/mac-classic-rom-re/logger"
	"github.com/simon-frankau/mac-classic-rom-re/modalflag"
	"github.com/simon-frankau/mac-classic-rom-re/performance"
	"github.com/simon-frankau/mac-classic-rom-re/revision"
	"github.com/simon-frankau/mac-classic-rom-re/romimage"
	"github.com/simon-frankau/mac-classic-rom-re/statsview"
	"github.com/simon-frankau/mac-classic-rom-re/traps"
	"github.com/simon-frankau/mac-classic-rom-re/traps/names"
	"github.com/simon-frankau/mac-classic-rom-re/version"
)

// exit values. a mode that completes its work but with something to report
// uses a mode specific value, listed alongside the mode function.
const (
	exitClean = 0
	exitFatal = 2
)

func main() {
	// the value to use with os.Exit()
	exitVal := exitClean

	// ctrl-c abandons the run. nothing is partially written at interrupt
	// time because output files are only created once a decode has
	// completed in full.
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// run the selected mode as a go routine. the exit value is returned
	// over the channel once the mode has finished.
	endChan := make(chan int, 1)
	go func() {
		endChan <- launch()
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		exitVal = exitFatal
	case exitVal = <-endChan:
	}

	os.Exit(exitVal)
}

// launch parses the command line and despatches to the selected mode.
// the returned value is the value to use with os.Exit().
func launch() int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("TRAPS", "EDISKS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitClean

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitFatal
	}

	var exitVal int

	switch md.Mode() {
	case "TRAPS":
		exitVal, err = extractTraps(md)

	case "EDISKS":
		exitVal, err = extractEDisks(md)

	case "VERSION":
		vers, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
		return exitClean
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitFatal
	}

	return exitVal
}

// flags shared by the TRAPS and EDISKS modes.
type commonFlags struct {
	revisionID   *string
	revisionFile *string
	log          *bool
	stats        *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		revisionID:   md.AddString("revision", "classic", "ROM revision to assume"),
		revisionFile: md.AddString("revisionfile", "", "YAML file overriding revision constants"),
		log:          md.AddBool("log", false, "echo debugging log to stderr"),
		stats:        md.AddBool("statsview", false, "run stats server (requires a build with the statsview tag)"),
	}
}

// apply acts on the common flags once the mode has been parsed. returns
// the requested revision and the loaded ROM image.
func (cf commonFlags) apply(md *modalflag.Modes) (revision.Revision, *romimage.Image, error) {
	if *cf.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *cf.stats {
		statsview.Launch(os.Stderr)
	}

	if *cf.revisionFile != "" {
		err := revision.LoadFile(*cf.revisionFile)
		if err != nil {
			return revision.Revision{}, nil, err
		}
	}

	rev, err := revision.Lookup(*cf.revisionID)
	if err != nil {
		return revision.Revision{}, nil, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return revision.Revision{}, nil, fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		// fine
	default:
		return revision.Revision{}, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	img, err := romimage.Load(md.GetArg(0))
	if err != nil {
		return revision.Revision{}, nil, err
	}

	err = rev.Validate(img)
	if err != nil {
		return revision.Revision{}, nil, err
	}

	return rev, img, nil
}

// exit value for the TRAPS mode when the table decoded cleanly but some
// traps have no known name.
const exitUnmatchedTraps = 3

func extractTraps(md *modalflag.Modes) (int, error) {
	md.NewMode()

	cf := addCommonFlags(md)
	output := md.AddString("o", "", "write annotation script to file (default stdout)")
	namesFile := md.AddString("names", "", "trap names file merged over the built-in names")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitClean, err
	}

	rev, img, err := cf.apply(md)
	if err != nil {
		return exitClean, err
	}

	entries, err := traps.Decode(img, rev.TrapTable)
	if err != nil {
		return exitClean, err
	}

	table, err := names.ForEra(rev.NameEra)
	if err != nil {
		return exitClean, err
	}
	if *namesFile != "" {
		more, err := names.ReadNamesFile(*namesFile)
		if err != nil {
			return exitClean, err
		}
		table.Merge(more)
	}

	labeled := traps.Label(entries, table)

	unmatched := 0
	for _, l := range labeled {
		if !l.Matched {
			unmatched++
			fmt.Fprintf(os.Stderr, "! no name for %s\n", l.Entry)
		}
	}

	// the output file is only created once decoding has succeeded
	out := md.Output
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return exitClean, err
		}
		defer f.Close()
		out = f
	}

	err = annotate.Write(out, labeled)
	if err != nil {
		return exitClean, err
	}

	if unmatched > 0 {
		return exitUnmatchedTraps, nil
	}

	return exitClean, nil
}

// exit value for the EDISKS mode when every disk was written but one or
// more blocks could not be recovered.
const exitCorruptBlocks = 10

func extractEDisks(md *modalflag.Modes) (int, error) {
	md.NewMode()

	cf := addCommonFlags(md)
	output := md.AddString("o", "", "output file (only with a single embedded disk)")
	scan := md.AddBool("scan", false, "scan the whole ROM rather than the revision's disk region")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return exitClean, err
	}

	rev, img, err := cf.apply(md)
	if err != nil {
		return exitClean, err
	}

	reg := rev.DiskRegion
	if *scan {
		reg = romimage.Region{}
	}

	locations := edisk.Scan(img, reg)
	if len(locations) == 0 {
		fmt.Println("no embedded disks found")
		return exitClean, nil
	}

	if *output != "" && len(locations) > 1 {
		return exitClean, fmt.Errorf("-o requires a single embedded disk but %d were found", len(locations))
	}

	corrupt := 0

	run := func() error {
		for _, loc := range locations {
			disk, err := edisk.Extract(img, loc)
			if err != nil {
				return err
			}

			for _, idx := range disk.Corrupt {
				fmt.Fprintf(os.Stderr, "! disk at %06x: block %d unrecoverable, zero filled\n", loc, idx)
			}
			corrupt += len(disk.Corrupt)

			filename := disk.Filename()
			if *output != "" {
				filename = *output
			}

			err = os.WriteFile(filename, disk.Image, 0644)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d blocks\n", filename, len(disk.Image)/edisk.BlockSize)
		}
		return nil
	}

	err = performance.RunProfiler(*profile, "edisks", run)
	if err != nil {
		return exitClean, err
	}

	if corrupt > 0 {
		return exitCorruptBlocks, nil
	}

	return exitClean, nil
}
