package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// completePath expands the last path segment of value to the first
// directory entry matching it, lexically. For multi-value fields only the
// final whitespace-separated token is completed. Directories get a
// trailing separator so a second Tab descends into them.
func completePath(value string, multi bool) string {
	prefix, word := "", value
	if multi {
		if idx := strings.LastIndexFunc(value, isSpace); idx >= 0 {
			prefix, word = value[:idx+1], value[idx+1:]
		}
	}

	dir, filePart := "", word
	if idx := strings.LastIndex(word, string(filepath.Separator)); idx >= 0 {
		dir, filePart = word[:idx+1], word[idx+1:]
	}

	searchDir := dir
	if searchDir == "" {
		searchDir = "."
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return value
	}

	var matches []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), filePart) {
			matches = append(matches, e.Name())
		}
	}
	if len(matches) == 0 {
		return value
	}
	sort.Strings(matches)

	completed := dir + matches[0]
	if fi, err := os.Stat(completed); err == nil && fi.IsDir() {
		completed += string(filepath.Separator)
	}
	return prefix + completed
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
