// Package wordlist loads the optional stop-word and bad-word files:
// one entry per line, case-insensitive, blank lines skipped.
package wordlist

import (
	"bufio"
	"os"
	"strings"

	errs "github.com/alizand/chatstat/internal/errors"
)

// Load reads a word list file into a lowercased set. An empty path or a
// missing file yields an empty set; both lists are optional.
func Load(path string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	if path == "" {
		return set, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, errs.NewConfigError("failed to open word list", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewConfigError("failed to read word list", err)
	}

	return set, nil
}
