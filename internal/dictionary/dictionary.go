// Package dictionary implements the DictionaryComposer: it combines a
// word list with the domain stem on both sides, hyphenated and
// concatenated, tagging every result Dictionary.
package dictionary

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/ravensec/domaintwist/internal/model"
)

// Composer generates dictionary-composed candidates.
type Composer struct{}

// New returns a ready-to-use DictionaryComposer.
func New() *Composer {
	return &Composer{}
}

// LoadWords reads one word per line from r, keeping only lines that are
// purely alphabetic.
func LoadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || !isAlpha(word) {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Generate composes each word in words with split's stem, emitting
// stem-word, stemword, word-stem and wordstem, each combined with split's
// original tld.
func (c *Composer) Generate(set *model.CandidateSet, split model.Split, words []string) {
	for _, w := range words {
		for _, stem := range [4]string{
			split.Stem + "-" + w,
			split.Stem + w,
			w + "-" + split.Stem,
			w + split.Stem,
		} {
			set.Add(model.Candidate{Algorithm: model.Dictionary, Name: stem + "." + split.TLD})
		}
	}
}
