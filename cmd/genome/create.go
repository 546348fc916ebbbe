package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/katalvlaran/topogenome/archive"
	"github.com/katalvlaran/topogenome/genome"
)

// runCreate creates a new archive file seeded from named built-in
// topologies.
func runCreate(args []string) int {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	archivePath := fs.String("archive", "", "path to write the new archive file to")
	builtin := fs.String("builtin", "all", fmt.Sprintf("comma-separated built-in names to seed (%s), or \"all\"", strings.Join(builtinNames(), ", ")))
	if err := fs.Parse(args); err != nil {
		return exitUnhandled
	}
	if *archivePath == "" {
		notify.Println("create: -archive is required")
		return exitInvalidInput
	}

	names, code := resolveBuiltinNames(*builtin)
	if code != exitSuccess {
		return code
	}

	arc := archive.New()
	cfg := genome.NewConfig()
	for _, name := range names {
		net := builtins[name]()
		key, err := genome.Genome(net, cfg)
		if err != nil {
			notify.Println(err)
			return exitInternal
		}
		arc.Put(key, name)
	}

	if err := arc.SaveFile(*archivePath); err != nil {
		notify.Println(err)
		return exitUnhandled
	}
	return exitSuccess
}

func resolveBuiltinNames(spec string) ([]string, int) {
	if spec == "all" {
		return builtinNames(), exitSuccess
	}
	var names []string
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if _, ok := builtins[name]; !ok {
			notify.Printf("unknown built-in %q (known: %s)", name, strings.Join(builtinNames(), ", "))
			return nil, exitInvalidInput
		}
		names = append(names, name)
	}
	return names, exitSuccess
}
