package lib

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	inputSuffix  = ".in"
	outputSuffix = ".out"
)

// DiscoverCases returns the sorted, de-duplicated case numbers of every
// "<N>.in" file directly inside dir. Names whose stem is not an integer are
// ignored. A missing or unreadable directory yields an empty list and an error;
// callers should treat that as "no cases" rather than abort.
func DiscoverCases(fsys FileSystem, dir string) ([]int, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return []int{}, fmt.Errorf("Test directory '%s' not found: %w", dir, err)
	}
	if !info.IsDir() {
		return []int{}, fmt.Errorf("Test directory '%s' is not a directory", dir)
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return []int{}, fmt.Errorf("Error reading test directory '%s': %w", dir, err)
	}

	seen := make(map[int]bool)
	cases := []int{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		number, ok := parseCaseName(entry.Name())
		if !ok || seen[number] {
			continue
		}
		seen[number] = true
		cases = append(cases, number)
	}
	sort.Ints(cases)
	return cases, nil
}

func parseCaseName(name string) (int, bool) {
	if !strings.HasSuffix(name, inputSuffix) {
		return 0, false
	}
	number, err := strconv.Atoi(strings.TrimSuffix(name, inputSuffix))
	if err != nil {
		return 0, false
	}
	return number, true
}
