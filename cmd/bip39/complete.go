package main

import (
	"flag"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

type CompleteOptions struct {
	LanguageOption
}

var CompleteCommand = &Command[CompleteOptions]{
	Name:        "bip39 complete",
	Description: "List the wordlist words which begin with the given prefix. Useful for completing a partially transcribed phrase.",
	UsageExamples: []string{
		"bip39 complete car",
		"bip39 complete -lang spanish tor",
	},
	AddFlags: func(flags *flag.FlagSet, opts *CompleteOptions) {
		opts.LanguageOption.AddFlags(flags)
	},
	Execute: func(opts *CompleteOptions, args []string) error {
		return completePrefix(opts, args)
	},
}

func completePrefix(opts *CompleteOptions, args []string) error {
	lang, err := opts.LanguageOption.Parse()
	if err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one word prefix argument", ErrPrintUsage)
	}

	// Normalize so the printed words byte-match the wordlist entries even
	// when the prefix was typed in a composed form.
	prefix := norm.NFKD.String(args[0])

	result := lang.Search(prefix)
	if len(result.Suffixes) == 0 {
		return fmt.Errorf("no %s words begin with %q", lang, prefix)
	}

	for _, suffix := range result.Suffixes {
		fmt.Println(prefix + suffix)
	}

	return nil
}
