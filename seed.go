package bip39

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/kklash/bip39/wordlist"
)

const (
	// SeedSize is the length in bytes of every derived seed.
	SeedSize = 64

	// seedIterations is the PBKDF2 iteration count fixed by the standard.
	seedIterations = 2048

	// seedSaltPrefix prefixes the passphrase to form the PBKDF2 salt.
	seedSaltPrefix = "mnemonic"
)

// Seed derives the mnemonic's seed using the given passphrase: 64 bytes of
// PBKDF2-HMAC-SHA512 output over the mnemonic's canonical English
// sentence, salted with "mnemonic" + passphrase, at 2048 iterations. The
// empty passphrase is valid and is the common default.
//
// Seed always uses the English sentence as password material, so a
// Mnemonic derives the same seed regardless of which language it is
// displayed in. To derive the standard seed for a sentence rendered in
// another language, pass that sentence to SeedFromSentence instead.
func (m *Mnemonic) Seed(passphrase string) []byte {
	return SeedFromSentence(m.Sentence(wordlist.English), passphrase)
}

// SeedFromSentence derives the 64-byte seed for a mnemonic sentence
// without decoding it. Both the sentence and the salt are normalized to
// NFKD form before hashing, as the standard requires; normalization also
// maps Japanese ideographic space separators to ASCII spaces.
//
// The sentence is not validated. Callers who need to be sure the sentence
// is a well-formed mnemonic should check it with Parse or Valid first.
func SeedFromSentence(sentence, passphrase string) []byte {
	password := norm.NFKD.String(sentence)
	salt := norm.NFKD.String(seedSaltPrefix + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New)
}
