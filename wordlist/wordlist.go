package wordlist

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Size is the number of words in every wordlist.
const Size = 2048

// BitsPerWord is the number of bits of payload data encoded by each word.
const BitsPerWord = 11

// ideographicSpace is the full-width space which joins Japanese mnemonics.
const ideographicSpace = "　"

// ErrUnknownLanguage is returned by ParseLanguage when given a name which
// does not match any supported wordlist.
var ErrUnknownLanguage = errors.New("unknown wordlist language")

// Language identifies one of the reference wordlists.
//
// Every wordlist contains exactly 2048 words, stored in NFKD form in the
// list order fixed by the standard. Word indices are positions in that
// order and are only meaningful alongside the Language they came from.
type Language int

const (
	English Language = iota
	Czech
	French
	Italian
	Japanese
	Korean
	Portuguese
	Spanish
	ChineseSimplified
	ChineseTraditional

	nLanguages
)

var languageNames = [nLanguages]string{
	English:            "english",
	Czech:              "czech",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Portuguese:         "portuguese",
	Spanish:            "spanish",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
}

// The data directory holds one file per wordlist, named after the language
// with one word per line in list order, copied from the reference BIP39
// wordlists. The word ordering in these files must never change, as it
// would alter the meaning of encoded mnemonics.
//
//go:embed data
var wordlistFS embed.FS

type wordList struct {
	words   []string
	indices map[string]uint16
}

var wordLists [nLanguages]*wordList

func init() {
	for lang := English; lang < nLanguages; lang++ {
		wl, err := loadWordList(languageNames[lang])
		if err != nil {
			panic(fmt.Sprintf("failed to load embedded %s wordlist: %s", languageNames[lang], err))
		}
		wordLists[lang] = wl
	}
}

func loadWordList(name string) (*wordList, error) {
	data, err := wordlistFS.ReadFile("data/" + name + ".txt")
	if err != nil {
		return nil, err
	}

	wl := &wordList{
		words:   make([]string, 0, Size),
		indices: make(map[string]uint16, Size),
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if _, ok := wl.indices[word]; ok {
			return nil, fmt.Errorf("duplicate word %q", word)
		}
		wl.indices[word] = uint16(len(wl.words))
		wl.words = append(wl.words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(wl.words) != Size {
		return nil, fmt.Errorf("expected %d words, found %d", Size, len(wl.words))
	}
	return wl, nil
}

// Languages returns all supported wordlist languages.
func Languages() []Language {
	languages := make([]Language, nLanguages)
	for i := range languages {
		languages[i] = Language(i)
	}
	return languages
}

// ParseLanguage maps a language name, as returned by Language.String, back
// to its Language value. Returns ErrUnknownLanguage if the name does not
// identify a supported wordlist.
func ParseLanguage(name string) (Language, error) {
	for lang, langName := range languageNames {
		if name == langName {
			return Language(lang), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

// String returns the lower-case name of the language, as used by the
// reference wordlist files ("english", "chinese_simplified", etc).
func (lang Language) String() string {
	if lang < 0 || lang >= nLanguages {
		return fmt.Sprintf("Language(%d)", int(lang))
	}
	return languageNames[lang]
}

func (lang Language) list() *wordList {
	if lang < 0 || lang >= nLanguages {
		panic(fmt.Sprintf("invalid wordlist.Language value %d", int(lang)))
	}
	return wordLists[lang]
}

// Word returns the word at the given index of the language's wordlist.
//
// Panics if the index is not less than Size, as such an index can never
// have come from a valid mnemonic word.
func (lang Language) Word(index uint16) string {
	if index >= Size {
		panic(fmt.Sprintf("wordlist.Word called with out-of-range index %d", index))
	}
	return lang.list().words[index]
}

// Index returns the index of the given word in the language's wordlist.
// The word is normalized to NFKD form before lookup, so both composed and
// decomposed spellings of accented words are accepted. Returns false if
// the word is not a member of the wordlist.
func (lang Language) Index(word string) (uint16, bool) {
	index, ok := lang.list().indices[norm.NFKD.String(word)]
	return index, ok
}

// Words returns a copy of the language's full wordlist in list order.
func (lang Language) Words() []string {
	words := make([]string, Size)
	copy(words, lang.list().words)
	return words
}

// Separator returns the string which joins words of this language into a
// single mnemonic sentence: an ideographic space for Japanese, and an
// ASCII space for every other language.
func (lang Language) Separator() string {
	if lang == Japanese {
		return ideographicSpace
	}
	return " "
}
