// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Load the dictionary from an environment-provided file or fall back
//     to the embedded default list.
//   - Accept both plain newline lists and JSON string arrays.
//   - Normalize entries (lowercase, fixed length, a–z only).
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   (or .json)
//   WORD_LENGTH=5                   (words of any other length are skipped)

package words

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultLength is the classic Wordle word length.
const DefaultLength = 5

//go:embed default_words.txt
var embeddedWords string

// Load returns the session dictionary. If WORDS_FILE is set the file is
// read (JSON array or one word per line); otherwise the embedded default
// list is used. WORD_LENGTH controls which entries are kept.
func Load() ([]string, error) {
	length := envInt("WORD_LENGTH", DefaultLength)
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return LoadFile(path, length)
	}
	out := Normalize(strings.Split(embeddedWords, "\n"), length)
	if len(out) == 0 {
		return nil, fmt.Errorf("words: embedded list has no %d-letter words", length)
	}
	return out, nil
}

// LoadFile reads a dictionary file. Content starting with '[' is parsed
// as a JSON string array; anything else is treated as one word per line.
func LoadFile(path string, length int) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []string
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("words: parse %s: %w", path, err)
		}
	} else {
		sc := bufio.NewScanner(strings.NewReader(string(raw)))
		for sc.Scan() {
			list = append(list, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	out := Normalize(list, length)
	if len(out) == 0 {
		return nil, errors.New("words: no usable words in " + path)
	}
	return out, nil
}

// Normalize lowercases and trims entries, keeping only alphabetic words
// of exactly the requested length.
func Normalize(list []string, length int) []string {
	var out []string
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// envInt reads an integer env var with a default.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
