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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gbheader/cartridgeloader"
	"github.com/jetsetilly/gbheader/catalogue"
	"github.com/jetsetilly/gbheader/curated"
	"github.com/jetsetilly/gbheader/easyterm"
	"github.com/jetsetilly/gbheader/easyterm/ansi"
	"github.com/jetsetilly/gbheader/header"
	"github.com/jetsetilly/gbheader/logger"
	"github.com/jetsetilly/gbheader/modalflag"
	"github.com/jetsetilly/gbheader/paths"
	"github.com/jetsetilly/gbheader/report"
	"github.com/jetsetilly/gbheader/version"
)

// exit values returned by launch()
const (
	exitSuccess  = 0
	exitArgument = 10
	exitFailure  = 20
)

// problems with the command line that are discovered by the mode functions.
// these result in the exitArgument value rather than exitFailure
const argumentError = "arguments: %v"

// name of the catalogue file in the resource directory
const defaultCatalogue = "catalogue"

// number of log entries shown when INFO fails to parse the header
const failureLogTail = 4

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. output is used for
// all normal output, help messages and errors. the return value is suitable
// for os.Exit()
func launch(args []string, output io.Writer) int {
	// the log only ever describes the current launch
	logger.Clear()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "SCAN", "CATALOGUE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		printError(output, "* error: %v", err)
		return exitArgument
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, output)

	case "SCAN":
		err = scan(md, output)

	case "CATALOGUE":
		err = listCatalogue(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		printError(output, "* error in %s mode: %v", md, err)
		if curated.Is(err, argumentError) {
			return exitArgument
		}
		return exitFailure
	}

	return exitSuccess
}

// isTerminal returns true if output is a file connected to a terminal
func isTerminal(output io.Writer) bool {
	if f, ok := output.(*os.File); ok {
		return easyterm.IsTerminal(f)
	}
	return false
}

// printError writes the error message to output. the message is written in red
// if output is a terminal
func printError(output io.Writer, format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if isTerminal(output) {
		s = fmt.Sprintf("%s%s%s", ansi.Pens["red"], s, ansi.NormalPen)
	}
	fmt.Fprintln(output, s)
}

// setLogEcho sends log entries to output as they are made if echo is true
func setLogEcho(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

// parseHeader parses the data in a loaded cartridge. the checksum diagnostic
// is logged on failure
func parseHeader(cl cartridgeloader.Loader) (header.RomHeader, error) {
	hdr, err := header.Parse(cl.Data)
	if err != nil {
		if curated.Is(err, header.BadChecksum) {
			logger.Logf(logger.Allow, "checksum", "%s: %04x computed over %d bytes",
				cl.ShortName(), header.ComputeChecksum(cl.Data), len(cl.Data))
		}
		logger.Log(logger.Allow, "header", err)
		return header.RomHeader{}, err
	}

	logger.Logf(logger.Allow, "header", "%s: checksum %04x ok", cl.ShortName(), hdr.Checksum)

	return hdr, nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	verbose := md.AddBool("verbose", false, "print all header fields")
	hash := md.AddString("hash", "", "expected SHA1 hash of the ROM data")
	memvizFile := md.AddString("memviz", "", "write graphviz rendering of the header to file")
	md.AdditionalHelp("The ROM can be a local file, a file inside a zip archive or a HTTP URL.")

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
		return curated.Errorf(argumentError, fmt.Sprintf("ROM file required for %s mode", md))
	case 1:
	default:
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	cl.Hash = *hash

	err = cl.Load()
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "info", "loaded %s (%d bytes)", cl.Filename, len(cl.Data))
	logger.Logf(logger.Verbosity(*verbose), "info", "sha1 %s", cl.Hash)

	hdr, err := parseHeader(cl)
	if err != nil {
		// the log has already been seen if it is being echoed
		if !*log {
			logger.Tail(output, failureLogTail)
		}
		return err
	}

	e := report.Entry{
		Name:             cl.ShortName(),
		Hash:             cl.Hash,
		Header:           hdr,
		HeaderChecksumOK: header.HeaderChecksumOK(cl.Data),
	}

	err = report.Summary(output, e, *verbose)
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, &hdr)
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "memviz", "header written to %s", *memvizFile)
	}

	return nil
}

// writeMemviz writes the graphviz rendering of the header to filename. the
// file is closed before returning so that write errors are not lost
func writeMemviz(filename string, hdr *header.RomHeader) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	w := bufio.NewWriter(f)
	report.Memviz(w, hdr)

	err = w.Flush()
	if err != nil {
		_ = f.Close()
		return curated.Errorf("memviz: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}

	return nil
}

// resolveCataloguePath returns filename if it is not empty. otherwise the path
// to the default catalogue in the resource directory is returned
func resolveCataloguePath(filename string) (string, error) {
	if filename != "" {
		return filename, nil
	}
	return paths.ResourcePath("", defaultCatalogue)
}

func listCatalogue(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	del := md.AddInt("delete", -1, "delete entry with key from the catalogue")
	file := md.AddString("file", "", "catalogue file to use instead of the default")
	md.AdditionalHelp("Catalogues are created and added to by the SCAN mode with the -catalogue flag.")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	setLogEcho(*log, output)

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	path, err := resolveCataloguePath(*file)
	if err != nil {
		return err
	}

	if *del >= 0 {
		return catalogue.Delete(path, *del, output)
	}

	return catalogue.List(path, output)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "print revision information only")

	p, err := md.Parse()
	if err != nil {
		return curated.Errorf(argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(argumentError, fmt.Sprintf("too many arguments for %s mode", md))
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(output, r)
		return nil
	}

	fmt.Fprintln(output, version.String())

	return nil
}
