package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kklash/bip39"
)

// wordCountEntropyBits maps the valid mnemonic lengths to their entropy
// strength in bits.
var wordCountEntropyBits = map[uint]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

type GenerateOptions struct {
	LanguageOption
	WordCount uint
	ShowSeed  bool
}

var GenerateCommand = &Command[GenerateOptions]{
	Name:        "bip39 generate",
	Description: "Generate a new mnemonic phrase from secure random entropy.",
	UsageExamples: []string{
		"bip39 generate",
		"bip39 generate -words 12",
		"bip39 generate -lang japanese",
		"bip39 generate -words 15 -lang spanish",
		"bip39 generate -show-seed",
	},
	AddFlags: func(flags *flag.FlagSet, opts *GenerateOptions) {
		opts.LanguageOption.AddFlags(flags)

		flags.UintVar(
			&opts.WordCount,
			"words",
			24,
			justifyOptionDescription("Number of words in the mnemonic phrase. One of 12, 15, 18, 21 or 24. (optional)"),
		)

		flags.BoolVar(
			&opts.ShowSeed,
			"show-seed",
			false,
			justifyOptionDescription(
				"Also derive and print the seed encoded by the new mnemonic. Prompts "+
					"for an optional passphrase when running interactively. (optional)",
			),
		)
	},
	Execute: func(opts *GenerateOptions, args []string) error {
		return generateAndPrintMnemonic(opts)
	},
}

func generateAndPrintMnemonic(opts *GenerateOptions) error {
	lang, err := opts.LanguageOption.Parse()
	if err != nil {
		return err
	}

	entropyBits, ok := wordCountEntropyBits[opts.WordCount]
	if !ok {
		return fmt.Errorf("%w: invalid word count %d", ErrPrintUsage, opts.WordCount)
	}

	entropy, err := bip39.GenerateEntropy(entropyBits)
	if err != nil {
		return err
	}
	mnemonic, err := bip39.New(entropy)
	if err != nil {
		return err
	}

	eprintf("Generated mnemonic phrase encoding %d bits of entropy:\n\n", entropyBits)
	printMnemonic(mnemonic.Words(lang))
	eprintln()
	printDebugInfo(os.Stderr, [][2]string{
		{"Language", lang.String()},
		{"Entropy", hex.EncodeToString(mnemonic.Entropy())},
	})
	eprintln()

	if opts.ShowSeed {
		passphrase := ""
		if stdinIsTerminal() {
			passphrase, err = userInputPassphrase("Enter seed passphrase (optional): ", true)
			if err != nil {
				return err
			}
		}
		printDebugInfo(os.Stderr, [][2]string{
			{"Seed", hex.EncodeToString(mnemonic.Seed(passphrase))},
		})
		eprintln()
	}

	eprint("Save this phrase in a secure place, preferably offline, on paper.\n\n")

	// The bare sentence is the only thing written to stdout, so the output
	// can be piped into other tools.
	fmt.Println(mnemonic.Sentence(lang))

	return nil
}

func printMnemonic(words []string) {
	for i, word := range words {
		humanIndex := strconv.Itoa(i + 1)
		spacing := strings.Repeat(" ", 4-len(humanIndex))
		eprintf("%s:%s%s\n", humanIndex, spacing, bold(magenta(word)))
	}
}
