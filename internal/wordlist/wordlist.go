// Package wordlist loads word banks for the typed-text challenge.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var defaultBank = []string{
	"CRANE", "TRUSS", "REBAR", "SHAFT", "FRAME",
	"TAPER", "HAMMER", "WRENCH", "GUARD", "DRAFT",
	"BENCH", "STRUT", "TRENCH", "GANTRY", "RAFTER",
	"BEAM", "DUCT", "GRATE", "CHUTE", "SPAN",
}

// Default returns a copy of the builtin word bank.
func Default() []string {
	out := make([]string, len(defaultBank))
	copy(out, defaultBank)
	return out
}

// LoadWords reads one word per line from path. Blank lines and lines
// starting with '#' are skipped; words rejected by FilterCaptcha are
// dropped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ReadWords(file)
}

// ReadWords parses a word bank from r.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := Normalize(line)
		if !FilterCaptcha(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list has no usable words (%d-%d letters, no %s)", MinLen, MaxLen, ambiguous)
	}
	return words, nil
}
