package main

import (
	"flag"
	"fmt"
	"strings"
)

type WordsOptions struct {
	LanguageOption
}

var WordsCommand = &Command[WordsOptions]{
	Name:        "bip39 words",
	Description: "Print every word in a wordlist in index order, one word per line.",
	UsageExamples: []string{
		"bip39 words",
		"bip39 words -lang japanese",
	},
	AddFlags: func(flags *flag.FlagSet, opts *WordsOptions) {
		opts.LanguageOption.AddFlags(flags)
	},
	Execute: func(opts *WordsOptions, args []string) error {
		return printWords(opts)
	},
}

func printWords(opts *WordsOptions) error {
	lang, err := opts.LanguageOption.Parse()
	if err != nil {
		return err
	}

	fmt.Println(strings.Join(lang.Words(), "\n"))
	return nil
}
