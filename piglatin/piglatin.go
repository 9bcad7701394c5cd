// SPDX-License-Identifier: MIT

// Package piglatin translates names into a simplified Pig Latin: every word
// is lower-cased, its first letter moved to the end, and "ay" appended.
//
//	Translate("Paul Laskowski") == "aulpay askowskilay"
//
// Output is entirely lower case; no letter is re-capitalised.
package piglatin

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	suffix    = "ay"
	separator = " "
)

// ErrEmptyWord is returned for a word with no letters, which includes the
// empty input and the gap between two consecutive spaces.
var ErrEmptyWord = errors.New("piglatin: empty word")

// Word translates a single word.
func Word(w string) (string, error) {
	if w == "" {
		return "", ErrEmptyWord
	}
	w = strings.ToLower(w)
	_, size := utf8.DecodeRuneInString(w)

	return w[size:] + w[:size] + suffix, nil
}

// Translate splits name on single spaces and translates every word.
func Translate(name string) (string, error) {
	words := strings.Split(name, separator)
	out := make([]string, len(words))
	for i, w := range words {
		t, err := Word(w)
		if err != nil {
			return "", fmt.Errorf("Translate: word %d of %q: %w", i, name, err)
		}
		out[i] = t
	}

	return strings.Join(out, separator), nil
}
