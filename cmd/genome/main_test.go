package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	notify = log.New(os.Stderr, "genome-test: ", 0)
	os.Exit(m.Run())
}

func TestCreateThenAnalyseFindsBuiltin(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "nets.txt")

	code := run([]string{"create", "-archive", archivePath, "-builtin", "pcu,dia"})
	require.Equal(t, exitSuccess, code)

	inputPath := filepath.Join(dir, "pcu.genome")
	require.NoError(t, os.WriteFile(inputPath, []byte(
		"3 1 1 1 0 0 3 1 1 0 1 0 3 1 1 0 0 1"), 0o644))

	code = run([]string{"analyse", "-input", inputPath, "-archive", archivePath})
	require.Equal(t, exitSuccess, code)
}

func TestAnalyseUnknownNetReportsGenomeUnknown(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "nets.txt")
	require.Equal(t, exitSuccess, run([]string{"create", "-archive", archivePath, "-builtin", "pcu"}))

	inputPath := filepath.Join(dir, "dia.genome")
	require.NoError(t, os.WriteFile(inputPath, []byte(
		"3 1 2 0 0 0 3 1 2 1 0 0 3 1 2 0 1 0 3 1 2 0 0 1"), 0o644))

	code := run([]string{"analyse", "-input", inputPath, "-archive", archivePath})
	require.Equal(t, exitGenomeUnknown, code)
}

func TestAnalyseMalformedInputIsParseError(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "bad.genome")
	require.NoError(t, os.WriteFile(inputPath, []byte("not a genome"), 0o644))

	code := run([]string{"analyse", "-input", inputPath})
	require.Equal(t, exitParseError, code)
}

func TestDeleteMissingArchiveIsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"delete", "-archive", filepath.Join(dir, "missing.txt")})
	require.Equal(t, exitInvalidInput, code)
}

func TestDeleteExistingArchiveSucceeds(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "nets.txt")
	require.Equal(t, exitSuccess, run([]string{"create", "-archive", archivePath, "-builtin", "pcu"}))
	require.Equal(t, exitSuccess, run([]string{"delete", "-archive", archivePath}))
	_, err := os.Stat(archivePath)
	require.True(t, os.IsNotExist(err))
}

func TestCreateUnknownBuiltinIsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "nets.txt")
	code := run([]string{"create", "-archive", archivePath, "-builtin", "not-a-real-net"})
	require.Equal(t, exitInvalidInput, code)
}

func TestUnknownSubcommandIsUnhandled(t *testing.T) {
	require.Equal(t, exitUnhandled, run([]string{"frobnicate"}))
}
