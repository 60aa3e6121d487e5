package bip39

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kklash/bip39/wordlist"
)

// ErrUnknownWord is returned when parsing a sentence containing a word
// which is not a member of the selected language's wordlist.
var ErrUnknownWord = errors.New("word is not a member of the wordlist")

// ErrInvalidSentenceLength is returned when parsing a sentence whose word
// count is not one of the five valid mnemonic lengths.
var ErrInvalidSentenceLength = errors.New("sentence is not a valid mnemonic length")

// ErrChecksumMismatch is returned when parsing a sentence whose embedded
// checksum bits do not match the checksum of the recovered entropy. This
// usually means one or more words were transcribed incorrectly.
var ErrChecksumMismatch = errors.New("failed to validate checksum embedded in mnemonic sentence")

// Parse decodes a mnemonic sentence in the given language back into the
// Mnemonic rooted at its entropy.
//
// The sentence is normalized to NFKD form and split on Unicode whitespace,
// so sentences joined with an ASCII space and Japanese sentences joined
// with an ideographic space both parse correctly. Word lookups are exact
// after normalization; there is no case folding.
//
// Parse verifies the checksum embedded in the sentence against the
// recovered entropy and fails with ErrChecksumMismatch when they disagree.
func Parse(sentence string, lang wordlist.Language) (*Mnemonic, error) {
	words := strings.Fields(norm.NFKD.String(sentence))

	indices := make([]uint16, len(words))
	for i, word := range words {
		index, ok := lang.Index(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a valid %s word", ErrUnknownWord, word, lang)
		}
		indices[i] = index
	}

	layout, ok := layoutByWordCount(len(words))
	if !ok {
		return nil, fmt.Errorf("%w: got %d words", ErrInvalidSentenceLength, len(words))
	}

	packed := make([]byte, layout.packedBytes())
	for i, index := range indices {
		writeBits(packed, i*wordlist.BitsPerWord, wordlist.BitsPerWord, index)
	}

	entropy := packed[:layout.entropyBytes()]
	embedded := byte(readBits(packed, layout.entropyBits, layout.checksumBits))
	if embedded != checksum(entropy, layout.checksumBits) {
		return nil, ErrChecksumMismatch
	}

	return &Mnemonic{entropy: entropy, layout: layout}, nil
}

// Valid reports whether the given sentence parses as a well-formed
// mnemonic in the given language, including checksum verification.
func Valid(sentence string, lang wordlist.Language) bool {
	_, err := Parse(sentence, lang)
	return err == nil
}
