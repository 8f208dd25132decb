package gamedata

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoWords is returned when a word list ends up empty.
var ErrNoWords = errors.New("no words loaded")

// WordsFile represents the structure of words.json.
type WordsFile struct {
	Words []string `json:"words"`
}

// LoadWords loads the embedded word list, normalised to lower case.
func LoadWords() ([]string, error) {
	file, err := Load[WordsFile]("words.json")
	if err != nil {
		return nil, err
	}
	return checkWords("words.json", Normalize(file.Words))
}

// MustLoadWords loads the embedded word list, panicking on error.
func MustLoadWords() []string {
	words, err := LoadWords()
	if err != nil {
		panic(err)
	}
	return words
}

// LoadWordsFile loads a word list from disk. Files ending in .json use the
// words.json layout; anything else is read as one word per line, with blank
// lines and lines starting with '#' skipped.
func LoadWordsFile(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		file, err := LoadFile[WordsFile](path)
		if err != nil {
			return nil, err
		}
		return checkWords(path, Normalize(file.Words))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return checkWords(path, Normalize(words))
}

// Normalize trims and lower-cases every word, dropping blanks and duplicates
// while keeping the original order.
func Normalize(words []string) []string {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = lower.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func checkWords(source string, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w from %s", ErrNoWords, source)
	}
	return words, nil
}
