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

type InspectOptions struct {
	LanguageOption
}

var InspectCommand = &Command[InspectOptions]{
	Name:        "bip39 inspect",
	Description: "Decode a mnemonic phrase and print the entropy and checksum data it encodes.",
	UsageExamples: []string{
		"bip39 inspect",
		"bip39 inspect zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		"bip39 inspect -lang french",
		"bip39 generate | bip39 inspect",
	},
	AddFlags: func(flags *flag.FlagSet, opts *InspectOptions) {
		opts.LanguageOption.AddFlags(flags)
	},
	Execute: func(opts *InspectOptions, args []string) error {
		return inspectMnemonic(opts, args)
	},
}

func inspectMnemonic(opts *InspectOptions, args []string) error {
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

	indices := mnemonic.Indices()
	indexStrings := make([]string, len(indices))
	for i, index := range indices {
		indexStrings[i] = strconv.Itoa(int(index))
	}

	printDebugInfo(os.Stdout, [][2]string{
		{"Language", lang.String()},
		{"Words", strconv.Itoa(mnemonic.WordCount())},
		{"Entropy", hex.EncodeToString(mnemonic.Entropy())},
		{"Checksum", fmt.Sprintf("%d bits, 0b%0*b", mnemonic.ChecksumBits(), mnemonic.ChecksumBits(), mnemonic.Checksum())},
		{"Indices", strings.Join(indexStrings, " ")},
	})

	return nil
}
