package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/kklash/bip39/wordlist"
)

// LanguageOption is the wordlist selection flag shared by every subcommand.
type LanguageOption struct {
	Language string
}

// AddFlags registers the language selection flag.
func (opts *LanguageOption) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(
		&opts.Language,
		"lang",
		wordlist.English.String(),
		justifyOptionDescription(
			"Wordlist `language` of the mnemonic. One of: "+strings.Join(languageNames(), ", ")+". (optional)",
		),
	)
}

// Parse resolves the flag value to a wordlist.Language.
func (opts *LanguageOption) Parse() (wordlist.Language, error) {
	lang, err := wordlist.ParseLanguage(opts.Language)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrPrintUsage, err)
	}
	return lang, nil
}

func languageNames() []string {
	languages := wordlist.Languages()
	names := make([]string, len(languages))
	for i, lang := range languages {
		names[i] = lang.String()
	}
	return names
}
