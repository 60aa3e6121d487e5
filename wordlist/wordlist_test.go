package wordlist

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func shouldPanicWith(t *testing.T, expectedPanicString string, fn func()) {
	defer func() {
		panicValue := recover()
		if panicValue == nil {
			t.Fatalf("expected function to panic with %q", expectedPanicString)
		}

		panicString, ok := panicValue.(string)
		if !ok {
			t.Fatalf("expected string panic value, got: %v", panicValue)
		}

		if !strings.Contains(panicString, expectedPanicString) {
			t.Fatalf("received unexpected panic: %q - wanted %q", panicString, expectedPanicString)
		}
	}()

	fn()
}

func TestWordListIntegrity(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(lang.String(), func(t *testing.T) {
			words := lang.Words()
			if len(words) != Size {
				t.Fatalf("expected %d words in %s wordlist, got %d", Size, lang, len(words))
			}

			seen := make(map[string]struct{}, Size)
			for i, word := range words {
				if word == "" {
					t.Fatalf("found empty word at index %d", i)
				}
				if _, ok := seen[word]; ok {
					t.Fatalf("found duplicate word %q at index %d", word, i)
				}
				seen[word] = struct{}{}

				if !norm.NFKD.IsNormalString(word) {
					t.Errorf("word %q at index %d is not NFKD-normalized", word, i)
				}
				if strings.ContainsAny(word, " \t\n　") {
					t.Errorf("word %q at index %d contains separator characters", word, i)
				}
			}
		})
	}
}

func TestWordIndexRoundTrip(t *testing.T) {
	for _, lang := range Languages() {
		for i, word := range lang.Words() {
			index, ok := lang.Index(word)
			if !ok {
				t.Fatalf("failed to find %s word %q in its own wordlist", lang, word)
			}
			if int(index) != i {
				t.Fatalf("wrong index for %s word %q\nWanted %d\nGot    %d", lang, word, i, index)
			}
			if returned := lang.Word(index); returned != word {
				t.Fatalf("wrong word for %s index %d\nWanted %s\nGot    %s", lang, index, word, returned)
			}
		}
	}
}

func TestKnownWordPositions(t *testing.T) {
	fixtures := []struct {
		lang  Language
		index uint16
		word  string
	}{
		{English, 0, "abandon"},
		{English, 3, "about"},
		{English, 2047, "zoo"},
		{Czech, 0, "abdikace"},
		{Czech, 2047, "zvyk"},
		{French, 0, "abaisser"},
		{French, 2047, "zoologie"},
		{Italian, 0, "abaco"},
		{Italian, 2047, "zuppa"},
		{Japanese, 0, "あいこくしん"},
		{Japanese, 3, "あおぞら"},
		{Japanese, 2047, "われる"},
		{Korean, 0, "가격"},
		{Korean, 2047, "힘껏"},
		{Portuguese, 0, "abacate"},
		{Portuguese, 2047, "zumbido"},
		{Spanish, 0, "ábaco"},
		{Spanish, 2047, "zurdo"},
		{ChineseSimplified, 0, "的"},
		{ChineseTraditional, 0, "的"},
	}

	for _, fixture := range fixtures {
		if word := fixture.lang.Word(fixture.index); word != fixture.word {
			t.Errorf(
				"wrong %s word at index %d\nWanted %q\nGot    %q",
				fixture.lang, fixture.index, fixture.word, word,
			)
		}
	}
}

func TestIndexNormalizesLookups(t *testing.T) {
	// Composed spellings must resolve to the same index as the decomposed
	// forms stored in the wordlist files.
	fixtures := []struct {
		lang  Language
		word  string
		index uint16
	}{
		{Spanish, "ábaco", 0},              // ábaco, NFC
		{Spanish, "ábaco", 0},             // ábaco, NFD
		{Japanese, "あおぞら", 3}, // あおぞら with precomposed ぞ
		{Korean, "가격", 0},             // 가격 as Hangul syllables
	}

	for _, fixture := range fixtures {
		index, ok := fixture.lang.Index(fixture.word)
		if !ok {
			t.Fatalf("failed to find %s word %q", fixture.lang, fixture.word)
		}
		if index != fixture.index {
			t.Errorf(
				"wrong index for %s word %q\nWanted %d\nGot    %d",
				fixture.lang, fixture.word, fixture.index, index,
			)
		}
	}

	if _, ok := English.Index("ABANDON"); ok {
		t.Errorf("expected upper-case word lookup to fail")
	}
	if _, ok := English.Index("notaword"); ok {
		t.Errorf("expected unknown word lookup to fail")
	}
}

func TestParseLanguage(t *testing.T) {
	for _, lang := range Languages() {
		parsed, err := ParseLanguage(lang.String())
		if err != nil {
			t.Fatalf("failed to parse language name %q: %s", lang.String(), err)
		}
		if parsed != lang {
			t.Fatalf("wrong language for name %q\nWanted %d\nGot    %d", lang.String(), lang, parsed)
		}
	}

	if _, err := ParseLanguage("klingon"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage for bogus language name, got: %v", err)
	}
	if _, err := ParseLanguage("English"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage for capitalized language name, got: %v", err)
	}
}

func TestSeparator(t *testing.T) {
	for _, lang := range Languages() {
		expected := " "
		if lang == Japanese {
			expected = "　"
		}
		if sep := lang.Separator(); sep != expected {
			t.Errorf("wrong separator for %s\nWanted %q\nGot    %q", lang, expected, sep)
		}
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	words := English.Words()
	words[0] = "tampered"
	if word := English.Word(0); word != "abandon" {
		t.Fatalf("mutating Words() result affected the wordlist: got %q", word)
	}
}

func TestWordPanicsOnOutOfRangeIndex(t *testing.T) {
	shouldPanicWith(t, "out-of-range index", func() {
		English.Word(Size)
	})
}
