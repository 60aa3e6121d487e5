package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/kklash/bip39"
)

type SeedOptions struct {
	LanguageOption
	Passphrase    string
	AskPassphrase bool
}

var SeedCommand = &Command[SeedOptions]{
	Name:        "bip39 seed",
	Description: "Derive the 64-byte seed encoded by a mnemonic phrase, printed as hex.",
	UsageExamples: []string{
		"bip39 seed",
		"bip39 seed zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		"bip39 seed -passphrase hunter2 zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		"bip39 seed -lang korean -ask-passphrase",
		"bip39 generate | bip39 seed",
	},
	AddFlags: func(flags *flag.FlagSet, opts *SeedOptions) {
		opts.LanguageOption.AddFlags(flags)

		flags.StringVar(
			&opts.Passphrase,
			"passphrase",
			"",
			justifyOptionDescription(
				"Passphrase which salts the seed derivation. Prefer "+magenta("-ask-passphrase")+
					" when running interactively, to keep the passphrase out of your shell history. (optional)",
			),
		)

		flags.BoolVar(
			&opts.AskPassphrase,
			"ask-passphrase",
			false,
			justifyOptionDescription("Prompt for the passphrase on the terminal with input hidden. (optional)"),
		)
	},
	Execute: func(opts *SeedOptions, args []string) error {
		return deriveAndPrintSeed(opts, args)
	},
}

func deriveAndPrintSeed(opts *SeedOptions, args []string) error {
	lang, err := opts.LanguageOption.Parse()
	if err != nil {
		return err
	}

	sentence, err := readSentence(args)
	if err != nil {
		return err
	}

	mnemonic, err := bip39.Parse(sentence, lang)
	if err != nil {
		return err
	}

	passphrase := opts.Passphrase
	if opts.AskPassphrase {
		if passphrase != "" {
			return fmt.Errorf("%w: -passphrase and -ask-passphrase are mutually exclusive", ErrPrintUsage)
		}
		passphrase, err = userInputPassphrase("Enter seed passphrase: ", false)
		if err != nil {
			return err
		}
	}

	// Derive from the sentence text rather than the parsed mnemonic, so
	// non-English sentences produce their standard seeds.
	seed := bip39.SeedFromSentence(mnemonic.Sentence(lang), passphrase)
	fmt.Println(hex.EncodeToString(seed))

	return nil
}
