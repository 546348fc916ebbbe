package archive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// headerPrefix is the fixed prefix of an archive's first line: "Made by
// <tool> v<X.Y.Z>".
const headerPrefix = "Made by "

// Load parses an archive from r: first line "Made by <tool> vX.Y.Z",
// then blank-separated "key <genome>"/"id <name>" record pairs. If the
// parsed tool name matches ToolName but the version differs, Load
// returns ErrVersionMismatch unless force is true, in which case the
// mismatched archive is still returned.
func Load(r io.Reader, force bool) (*Archive, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		return nil, fmt.Errorf("archive: Load: %w: empty input", ErrMalformed)
	}
	firstLine := scanner.Text()
	tool, version, err := parseHeader(firstLine)
	if err != nil {
		return nil, fmt.Errorf("archive: Load: %w", err)
	}
	if tool == ToolName && version != ToolVersion && !force {
		return nil, fmt.Errorf("archive: Load: %w: archive is v%s, tool is v%s", ErrVersionMismatch, version, ToolVersion)
	}

	a := &Archive{version: version, entries: make(map[string]string)}
	rest := strings.Join(readAllLines(scanner), "\n")
	if err := parseRecords(rest, a); err != nil {
		return nil, fmt.Errorf("archive: Load: %w", err)
	}
	return a, nil
}

func readAllLines(scanner *bufio.Scanner) []string {
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// parseHeader splits "Made by <tool> v<X.Y.Z>" into (tool, version).
func parseHeader(line string) (tool, version string, err error) {
	if !strings.HasPrefix(line, headerPrefix) {
		return "", "", fmt.Errorf("%w: header %q missing %q prefix", ErrMalformed, line, headerPrefix)
	}
	rest := strings.TrimPrefix(line, headerPrefix)
	fields := strings.Fields(rest)
	if len(fields) != 2 || !strings.HasPrefix(fields[1], "v") {
		return "", "", fmt.Errorf("%w: header %q not \"<tool> v<X.Y.Z>\"", ErrMalformed, line)
	}
	return fields[0], strings.TrimPrefix(fields[1], "v"), nil
}

// parseRecords tokenizes the remainder of the archive by whitespace,
// expecting alternating "key <genome-tokens...> id <name>" groups. The
// genome string is itself whitespace-separated numeric fields, so a
// "key" group runs until the next "id" keyword rather than to the next
// line.
func parseRecords(body string, a *Archive) error {
	fields := strings.Fields(body)
	i := 0
	for i < len(fields) {
		if fields[i] != "key" {
			return fmt.Errorf("%w: expected \"key\", found %q", ErrMalformed, fields[i])
		}
		i++
		start := i
		for i < len(fields) && fields[i] != "id" {
			i++
		}
		if i >= len(fields) {
			return fmt.Errorf("%w: %v", ErrDanglingKey, strings.Join(fields[start:], " "))
		}
		key := strings.Join(fields[start:i], " ")
		i++ // consume "id"
		if i >= len(fields) {
			return fmt.Errorf("%w: missing name after \"id\"", ErrMalformed)
		}
		name := fields[i]
		i++
		if existing, ok := a.entries[key]; ok {
			a.entries[key] = joinNames(existing, name)
		} else {
			a.entries[key] = name
		}
	}
	return nil
}

// Save writes a to w, in key-sorted order for a deterministic byte
// stream.
func (a *Archive) Save(w io.Writer) error {
	a.muMeta.RLock()
	version := a.version
	a.muMeta.RUnlock()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%s v%s\n", headerPrefix, ToolName, version); err != nil {
		return fmt.Errorf("archive: Save: %w", err)
	}

	keys := a.Keys()
	sort.Strings(keys)
	a.muData.RLock()
	defer a.muData.RUnlock()
	for _, key := range keys {
		if _, err := fmt.Fprintf(bw, "key %s\nid %s\n", key, a.entries[key]); err != nil {
			return fmt.Errorf("archive: Save: %w", err)
		}
	}
	return bw.Flush()
}

// LoadFile loads the archive at path.
func LoadFile(path string, force bool) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive: LoadFile: %w", err)
	}
	defer f.Close()
	return Load(f, force)
}

// SaveFile persists a to path atomically: write to a temporary file in
// the same directory, then rename over path.
func (a *Archive) SaveFile(path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("archive: SaveFile: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if err = a.Save(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("archive: SaveFile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("archive: SaveFile: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("archive: SaveFile: %w", err)
	}
	return nil
}

// LoadDir loads and merges every archive file in dir, joining duplicate
// keys' names with ", ".
func LoadDir(dir string, force bool) (*Archive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("archive: LoadDir: %w", err)
	}
	merged := New()
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		a, err := LoadFile(filepath.Join(dir, ent.Name()), force)
		if err != nil {
			return nil, fmt.Errorf("archive: LoadDir: %s: %w", ent.Name(), err)
		}
		merged.Merge(a)
	}
	return merged, nil
}
