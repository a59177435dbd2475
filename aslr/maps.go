package aslr

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// mapping is one line of /proc/<pid>/maps.
type mapping struct {
	start  uintptr
	end    uintptr
	perms  string
	offset uint64
	path   string
}

func parseMaps(r io.Reader) ([]mapping, error) {
	var mappings []mapping

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return nil, fmt.Errorf("malformed maps line: '%s'", line)
		}

		startStr, endStr, found := strings.Cut(fields[0], "-")
		if !found {
			return nil, fmt.Errorf("malformed address range in maps line: '%s'", line)
		}

		start, err := strconv.ParseUint(startStr, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start address in maps line: '%s' - %w", line, err)
		}

		end, err := strconv.ParseUint(endStr, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end address in maps line: '%s' - %w", line, err)
		}

		offset, err := strconv.ParseUint(fields[2], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse offset in maps line: '%s' - %w", line, err)
		}

		var path string
		if len(fields) > 5 {
			path = strings.Join(fields[5:], " ")
		}

		mappings = append(mappings, mapping{
			start:  uintptr(start),
			end:    uintptr(end),
			perms:  fields[1],
			offset: offset,
			path:   path,
		})
	}

	err := scanner.Err()
	if err != nil {
		return nil, err
	}

	return mappings, nil
}

// imageBaseFromMaps returns the lowest address at which the start of
// the file matching name is mapped.
func imageBaseFromMaps(mappings []mapping, name string) (uintptr, error) {
	var base uintptr
	found := false

	for _, m := range mappings {
		if m.offset != 0 || !imagePathMatches(m.path, name) {
			continue
		}

		if !found || m.start < base {
			base = m.start
			found = true
		}
	}

	if !found {
		return 0, fmt.Errorf("image '%s' is not mapped", name)
	}

	return base, nil
}

func imagePathMatches(path string, name string) bool {
	if path == "" || strings.HasPrefix(path, "[") {
		return false
	}

	return path == name || filepath.Base(path) == name || strings.HasSuffix(path, "/"+name)
}
