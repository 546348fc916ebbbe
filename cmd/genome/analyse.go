package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/topogenome/archive"
	"github.com/katalvlaran/topogenome/genome"
	"github.com/katalvlaran/topogenome/netgraph"
)

// runAnalyse analyses a crystal net and, optionally, updates or removes
// the recognised topology name in an archive.
func runAnalyse(args []string) int {
	fs := flag.NewFlagSet("analyse", flag.ContinueOnError)
	inputPath := fs.String("input", "", "path to a genome edge-list file (default: standard input)")
	archivePath := fs.String("archive", "", "archive file or directory to look the result up in")
	update := fs.String("update", "", "record the result under this topology name in the archive")
	remove := fs.Bool("remove", false, "remove the net's key from the archive instead of looking it up")
	force := fs.Bool("force", false, "ignore archive generator version mismatch")
	minimize := fs.Bool("minimize", true, "run primitive-cell reduction before computing the genome")
	if err := fs.Parse(args); err != nil {
		return exitUnhandled
	}

	net, code := readNet(*inputPath)
	if code != exitSuccess {
		return code
	}

	cfg := genome.NewConfig(genome.WithMinimize(*minimize))
	key, err := genome.Genome(net, cfg)
	if err != nil {
		return classifyGenomeError(err)
	}

	if *archivePath == "" {
		fmt.Println(key)
		return exitSuccess
	}
	return analyseWithArchive(*archivePath, key, *update, *remove, *force)
}

// readNet loads a CrystalNet from path (or standard input when path is
// empty) by parsing the canonical genome-string form; CIF parsing and
// bond guessing remain external collaborators out of scope here.
func readNet(path string) (*netgraph.CrystalNet, int) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			notify.Println(err)
			return nil, exitInvalidInput
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		notify.Println(err)
		return nil, exitInvalidInput
	}
	net, err := genome.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		notify.Println(err)
		return nil, exitParseError
	}
	return net, exitSuccess
}

// classifyGenomeError maps a genome.Genome failure onto an exit code:
// errors inside the canonical-key computation are fatal and surfaced.
func classifyGenomeError(err error) int {
	notify.Println(err)
	switch {
	case errors.Is(err, genome.ErrInvalidInput),
		errors.Is(err, genome.ErrUnstableNet),
		errors.Is(err, netgraph.ErrNotThreeDimensional):
		return exitInvalidInput
	case errors.Is(err, genome.ErrInternal):
		return exitInternal
	default:
		return exitUnhandled
	}
}

// analyseWithArchive looks key up in the archive at path (a single file
// or a directory archive), or mutates it per -update/-remove.
func analyseWithArchive(path, key, update string, remove, force bool) int {
	arc, err := loadArchive(path, force)
	if err != nil {
		notify.Println(err)
		if errors.Is(err, archive.ErrVersionMismatch) {
			return exitUnhandled // recoverable with --force
		}
		return exitUnhandled
	}

	switch {
	case remove:
		arc.Remove(key)
		return saveMutatedArchive(arc, path)
	case update != "":
		arc.Put(key, update)
		return saveMutatedArchive(arc, path)
	}

	name, ok := arc.Lookup(key)
	if !ok {
		fmt.Println("UNKNOWN")
		return exitGenomeUnknown
	}
	fmt.Println(name)
	return exitSuccess
}

func loadArchive(path string, force bool) (*archive.Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return archive.LoadDir(path, force)
	}
	return archive.LoadFile(path, force)
}

// saveMutatedArchive persists arc back to path. Directory archives are
// read-only from this CLI's perspective: a directory archive is a
// read-time merge of per-file archives, and mutation always targets a
// single archive file.
func saveMutatedArchive(arc *archive.Archive, path string) int {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		notify.Println("cannot update/remove within a directory archive; pass a single archive file")
		return exitUnhandled
	}
	if err := arc.SaveFile(path); err != nil {
		notify.Println(err)
		return exitUnhandled
	}
	return exitSuccess
}
