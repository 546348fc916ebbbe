package main

import (
	"errors"
	"flag"
	"os"
)

// runDelete deletes an archive file.
func runDelete(args []string) int {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	archivePath := fs.String("archive", "", "path to the archive file to delete")
	if err := fs.Parse(args); err != nil {
		return exitUnhandled
	}
	if *archivePath == "" {
		notify.Println("delete: -archive is required")
		return exitInvalidInput
	}

	if err := os.Remove(*archivePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			notify.Println(err)
			return exitInvalidInput
		}
		notify.Println(err)
		return exitUnhandled
	}
	return exitSuccess
}
