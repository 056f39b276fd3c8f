// This file is part of gbheader.
//
// gbheader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbheader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbheader.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jetsetilly/gbheader/archivefs"
	"github.com/jetsetilly/gbheader/cartridgeloader"
	"github.com/jetsetilly/gbheader/catalogue"
	"github.com/jetsetilly/gbheader/curated"
	"github.com/jetsetilly/gbheader/header"
	"github.com/jetsetilly/gbheader/logger"
	"github.com/jetsetilly/gbheader/modalflag"
	"github.com/jetsetilly/gbheader/paths"
	"github.com/jetsetilly/gbheader/performance"
	"github.com/jetsetilly/gbheader/report"
	"github.com/jetsetilly/gbheader/statsview"
	"golang.org/x/sync/errgroup"
)

// the scan has completed but not every ROM could be loaded and parsed
const scanFailures = "scan: %d of %d ROMs failed"

func scan(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	workers := md.AddInt("workers", runtime.NumCPU(), "number of ROMs to parse concurrently")
	recurse := md.AddBool("recurse", false, "scan sub-directories and archives")
	profile := md.AddBool("profile", false, "write CPU and memory profiles for the scan")
	stats := md.AddBool("statsview", false, "run stats server during the scan (statsview builds only)")
	statsAddr := md.AddString("statsviewaddr", statsview.DefaultAddress, "address of the stats server")
	addToCatalogue := md.AddBool("catalogue", false, "add parsed headers to the catalogue")
	catalogueFile := md.AddString("cataloguefile", "", "catalogue file to use instead of the default")
	md.AdditionalHelp("The path can be a directory, a zip archive or a directory inside a zip archive.")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	setLogEcho(*log, output)

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(argumentError, fmt.Sprintf("directory or archive required for %s mode", md))
	case 1:
	default:
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	if *workers < 1 {
		return curated.Errorf(argumentError, fmt.Sprintf("number of workers must be at least one (%d)", *workers))
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(output, *statsAddr)
			defer stop()
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	var cataloguePath string
	if *addToCatalogue {
		cataloguePath, err = resolveCataloguePath(*catalogueFile)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := func() error {
		return scanCollection(ctx, md.GetArg(0), *workers, *recurse, cataloguePath, output)
	}

	if !*profile {
		return run()
	}

	name := archivefs.TrimArchiveExt(filepath.Base(md.GetArg(0)))

	cpuProfile := fmt.Sprintf("%s.profile", paths.UniqueFilename("scan_cpu", name))
	err = performance.ProfileCPU(cpuProfile, run)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "profile", "cpu profile written to %s", cpuProfile)

	memProfile := fmt.Sprintf("%s.profile", paths.UniqueFilename("scan_mem", name))
	err = performance.ProfileMem(memProfile)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "profile", "memory profile written to %s", memProfile)

	return nil
}

// scanCollection finds and parses every ROM at the path, writing one row per
// ROM to output in the order they were found. successfully parsed ROMs are
// added to the catalogue if cataloguePath is not empty
func scanCollection(ctx context.Context, path string, workers int, recurse bool, cataloguePath string, output io.Writer) error {
	filenames, err := collectROMs(path, recurse)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "scan", "%d ROMs found in %s", len(filenames), path)

	entries, err := scanROMs(ctx, path, filenames, workers)
	if err != nil {
		return err
	}

	var failed []report.Entry
	for _, e := range entries {
		fmt.Fprintln(output, report.Row(e))
		if e.Err != nil {
			failed = append(failed, e)
		}
	}

	if cataloguePath != "" {
		n, err := catalogue.Add(cataloguePath, entries)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "%d added to catalogue\n", n)
	}

	if len(failed) == 0 {
		return nil
	}

	// list of failures with the detail lines in a dim pen if possible
	w := output
	if isTerminal(output) {
		w = logger.NewColorizer(output, "red")
	}
	s := &strings.Builder{}
	fmt.Fprintf(s, "%d failures\n", len(failed))
	for _, e := range failed {
		fmt.Fprintf(s, "  %s: %v\n", e.Name, e.Err)
	}
	io.WriteString(w, s.String())

	return curated.Errorf(scanFailures, len(failed), len(entries))
}

// collectROMs returns the filenames of the ROM files at the path. the path
// must be a directory or an archive. if recurse is true then sub-directories
// and archives are also searched
func collectROMs(path string, recurse bool) ([]string, error) {
	var afs archivefs.Path
	err := afs.Set(path)
	if err != nil {
		return nil, err
	}
	defer afs.Close()

	if !afs.IsDir() {
		return nil, curated.Errorf(argumentError, fmt.Sprintf("%s is not a directory or archive", path))
	}

	nodes, err := afs.List()
	if err != nil {
		return nil, err
	}

	var filenames []string
	for _, n := range nodes {
		fn := filepath.Join(afs.String(), n.Name)

		if n.IsDir {
			if recurse {
				sub, err := collectROMs(fn, recurse)
				if err != nil {
					return nil, err
				}
				filenames = append(filenames, sub...)
			}
			continue
		}

		if cartridgeloader.IsROMFile(n.Name) {
			filenames = append(filenames, fn)
		}
	}

	return filenames, nil
}

// scanROMs loads and parses the named files concurrently. the returned
// entries are in the same order as the filenames. an error is returned only if
// the context is cancelled. errors with individual ROMs are recorded in the
// entry for that ROM
func scanROMs(ctx context.Context, root string, filenames []string, workers int) ([]report.Entry, error) {
	entries := make([]report.Entry, len(filenames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, fn := range filenames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = loadEntry(displayName(root, fn), fn)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, curated.Errorf("scan: %v", err)
	}

	return entries, nil
}

// displayName returns the filename relative to the root of the scan
func displayName(root string, filename string) string {
	rel, err := filepath.Rel(filepath.Clean(root), filename)
	if err != nil {
		return filepath.Base(filename)
	}
	return filepath.ToSlash(rel)
}

// loadEntry loads and parses a single ROM file
func loadEntry(name string, filename string) report.Entry {
	e := report.Entry{Name: name}

	cl := cartridgeloader.NewLoader(filename)
	e.Err = cl.Load()
	if e.Err != nil {
		logger.Log(logger.Allow, "scan", e.Err)
		return e
	}
	e.Hash = cl.Hash

	e.Header, e.Err = parseHeader(cl)
	if e.Err == nil {
		e.HeaderChecksumOK = header.HeaderChecksumOK(cl.Data)
	}

	return e
}
